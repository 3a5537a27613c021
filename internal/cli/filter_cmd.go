package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jthornhill/wayfare/internal/cli/formatter"
	"github.com/jthornhill/wayfare/internal/store"
)

func newFilterCmd(app *App) *cobra.Command {
	var (
		search, startDate, endDate, transport string
		minCost, maxCost                      string
		booking, categories                   []string
		clear                                 bool
	)

	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Set or clear the activity filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			if clear {
				app.Store.ResetFilters()
				fmt.Println("Filters cleared.")
				return nil
			}

			var p store.FilterPatch
			if cmd.Flags().Changed("search") {
				p.Search = &search
			}
			if cmd.Flags().Changed("after") {
				p.StartDate = &startDate
			}
			if cmd.Flags().Changed("before") {
				p.EndDate = &endDate
			}
			if cmd.Flags().Changed("transport") {
				p.Transport = &transport
			}
			if cmd.Flags().Changed("booking") {
				p.Booking = &booking
			}
			if cmd.Flags().Changed("min-cost") {
				p.MinCost = &minCost
			}
			if cmd.Flags().Changed("max-cost") {
				p.MaxCost = &maxCost
			}
			if cmd.Flags().Changed("category") {
				p.Categories = &categories
			}

			app.Store.UpdateFilters(p)
			view := app.Store.Filtered()
			fmt.Printf("%d of %d activities match:\n", len(view), app.Store.Len())
			fmt.Print(formatter.ActivityTable(view, app.Config.HighCostThreshold))
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Search term")
	cmd.Flags().StringVar(&startDate, "after", "", "Earliest date (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringVar(&endDate, "before", "", "Latest date (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringVar(&transport, "transport", "", "Exact transport mode")
	cmd.Flags().StringSliceVar(&booking, "booking", nil, "Allowed booking statuses (TRUE,FALSE)")
	cmd.Flags().StringVar(&minCost, "min-cost", "", "Minimum cost (inclusive)")
	cmd.Flags().StringVar(&maxCost, "max-cost", "", "Maximum cost (inclusive)")
	cmd.Flags().StringSliceVar(&categories, "category", nil, "Allowed categories")
	cmd.Flags().BoolVar(&clear, "clear", false, "Reset all filters")

	return cmd
}

func newSortCmd(app *App) *cobra.Command {
	var order string

	cmd := &cobra.Command{
		Use:   "sort <field>",
		Short: "Set the sort order (date, activity, cost, startTime, createdAt, updatedAt)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.Store.SetSort(args[0], strings.ToLower(order))
			fmt.Printf("Sorting by %s %s.\n", cfg.Field, cfg.Order)
			fmt.Print(formatter.ActivityTable(app.Store.Filtered(), app.Config.HighCostThreshold))
			return nil
		},
	}

	cmd.Flags().StringVar(&order, "order", "asc", "asc or desc")
	return cmd
}
