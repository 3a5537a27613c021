package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jthornhill/wayfare/internal/cli/formatter"
	"github.com/jthornhill/wayfare/internal/domain"
)

func newAddCmd(app *App) *cobra.Command {
	var in domain.Input
	var interactive bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an activity",
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive {
				filled, err := runAddForm(in)
				if err != nil {
					return err
				}
				in = filled
			}

			a, err := app.Store.Add(in)
			if err != nil {
				return err
			}
			if err := app.persist(cmd.Context()); err != nil {
				return err
			}

			fmt.Printf("Added %s [%s] as %s\n", a.Name, a.DateString(), formatter.CategoryLabel(a.Category))
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Name, "name", "", "Activity name")
	cmd.Flags().StringVar(&in.Date, "date", "", "Date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&in.StartTime, "start", "", "Start time (HH:MM)")
	cmd.Flags().StringVar(&in.EndTime, "end", "", "End time (HH:MM)")
	cmd.Flags().StringVar(&in.StartFrom, "from", "", "Departure location")
	cmd.Flags().StringVar(&in.ReachTo, "to", "", "Arrival location")
	cmd.Flags().StringVar(&in.TransportMode, "transport", "", "Transport mode")
	cmd.Flags().StringVar(&in.Booking, "booking", "FALSE", "Booking status (TRUE/FALSE)")
	cmd.Flags().StringVar(&in.Cost, "cost", "", "Cost")
	cmd.Flags().StringVar(&in.AdditionalDetails, "details", "", "Additional details")
	cmd.Flags().StringVar(&in.AccommodationDetails, "accommodation", "", "Accommodation details")
	cmd.Flags().StringVar(&in.Category, "category", "", "Category override (transport/accommodation/sightseeing/dining/other)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Fill the fields in a form")

	return cmd
}

func newListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List activities (filtered view)",
		RunE: func(cmd *cobra.Command, args []string) error {
			activities := app.Store.Filtered()
			if all {
				activities = app.Store.Activities()
			}
			fmt.Print(formatter.ActivityTable(activities, app.Config.HighCostThreshold))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Ignore filters and list everything")
	return cmd
}

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one activity in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveActivityID(app, args[0])
			if err != nil {
				return err
			}
			a, err := app.Store.GetByID(id)
			if err != nil {
				return err
			}
			fmt.Print(formatter.ActivityDetail(a, app.Config.HighCostThreshold))
			return nil
		},
	}
}

func newUpdateCmd(app *App) *cobra.Command {
	var (
		name, date, start, end, from, to      string
		transport, booking, cost              string
		details, accommodation, categoryInput string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update fields of an activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveActivityID(app, args[0])
			if err != nil {
				return err
			}

			var p domain.Patch
			set := func(flag string, target **string, value *string) {
				if cmd.Flags().Changed(flag) {
					*target = value
				}
			}
			set("name", &p.Name, &name)
			set("date", &p.Date, &date)
			set("start", &p.StartTime, &start)
			set("end", &p.EndTime, &end)
			set("from", &p.StartFrom, &from)
			set("to", &p.ReachTo, &to)
			set("transport", &p.TransportMode, &transport)
			set("booking", &p.Booking, &booking)
			set("cost", &p.Cost, &cost)
			set("details", &p.AdditionalDetails, &details)
			set("accommodation", &p.AccommodationDetails, &accommodation)
			set("category", &p.Category, &categoryInput)

			a, err := app.Store.Update(id, p)
			if err != nil {
				return err
			}
			if err := app.persist(cmd.Context()); err != nil {
				return err
			}

			fmt.Printf("Updated %s\n", a.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Activity name")
	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "End time (HH:MM)")
	cmd.Flags().StringVar(&from, "from", "", "Departure location")
	cmd.Flags().StringVar(&to, "to", "", "Arrival location")
	cmd.Flags().StringVar(&transport, "transport", "", "Transport mode")
	cmd.Flags().StringVar(&booking, "booking", "", "Booking status (TRUE/FALSE)")
	cmd.Flags().StringVar(&cost, "cost", "", "Cost")
	cmd.Flags().StringVar(&details, "details", "", "Additional details")
	cmd.Flags().StringVar(&accommodation, "accommodation", "", "Accommodation details")
	cmd.Flags().StringVar(&categoryInput, "category", "", "Category override")

	return cmd
}

func newRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm", "delete"},
		Short:   "Move an activity to the trash",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveActivityID(app, args[0])
			if err != nil {
				return err
			}
			if err := app.Store.Delete(id); err != nil {
				return err
			}
			if err := app.persist(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("Moved to trash. Use `wayfare trash` to restore.")
			return nil
		},
	}
}

func newDuplicateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "duplicate <id>",
		Short: "Duplicate an activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveActivityID(app, args[0])
			if err != nil {
				return err
			}
			dup, err := app.Store.Duplicate(id)
			if err != nil {
				return err
			}
			if err := app.persist(cmd.Context()); err != nil {
				return err
			}
			fmt.Printf("Duplicated as %s [%s]\n", dup.Name, dup.ID[:8])
			return nil
		},
	}
}

func newTrashCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trash",
		Short: "List recently deleted activities",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Print(formatter.DeletedTable(app.Store.Deleted()))
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "restore <index>",
		Short: "Restore a deleted activity by its trash index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var index int
			if _, err := fmt.Sscanf(args[0], "%d", &index); err != nil {
				return fmt.Errorf("invalid index %q", args[0])
			}
			a, err := app.Store.RestoreDeleted(index)
			if err != nil {
				return err
			}
			if err := app.persist(cmd.Context()); err != nil {
				return err
			}
			fmt.Printf("Restored %s\n", a.Name)
			return nil
		},
	})

	return cmd
}
