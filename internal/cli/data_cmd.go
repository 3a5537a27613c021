package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jthornhill/wayfare/internal/cli/formatter"
	"github.com/jthornhill/wayfare/internal/csvio"
	"github.com/jthornhill/wayfare/internal/store"
)

func newStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show trip statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Print(formatter.StatsSummary(app.Store.Statistics()))
			return nil
		},
	}
}

func newBreakdownCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "breakdown",
		Short: "Show cost per category",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Print(formatter.CostBreakdown(app.Store.CostBreakdown()))
			return nil
		},
	}
}

func newExportCmd(app *App) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all activities as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := os.Stdout
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("creating %s: %w", output, err)
				}
				defer f.Close()
				w = f
			}

			if err := csvio.Export(w, app.Store.Activities()); err != nil {
				return err
			}
			if output != "" {
				fmt.Printf("Exported %d activities to %s\n", app.Store.Len(), output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to file instead of stdout")
	return cmd
}

func newImportCmd(app *App) *cobra.Command {
	var (
		keepDuplicates bool
		skipValidation bool
		batchSize      int
	)

	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import activities from a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[0], err)
			}
			defer f.Close()

			inputs, err := csvio.ReadInputs(f)
			if err != nil {
				return err
			}

			res, err := app.Store.Import(cmd.Context(), inputs, store.ImportOptions{
				SkipDuplicates: !keepDuplicates,
				SkipValidation: skipValidation,
				BatchSize:      batchSize,
			})
			if err != nil {
				return err
			}
			if res.Imported > 0 {
				if err := app.persist(cmd.Context()); err != nil {
					return err
				}
			}

			fmt.Print(formatter.ImportSummary(res))
			return nil
		},
	}

	cmd.Flags().BoolVar(&keepDuplicates, "keep-duplicates", false, "Import rows that duplicate existing activities")
	cmd.Flags().BoolVar(&skipValidation, "no-validate", false, "Import rows that fail validation")
	cmd.Flags().IntVar(&batchSize, "batch-size", store.DefaultImportBatchSize, "Rows per processing batch")

	return cmd
}
