package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jthornhill/wayfare/internal/cli/formatter"
)

func newSnapshotCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Manage state snapshots",
	}

	cmd.AddCommand(
		newSnapshotCreateCmd(app),
		newSnapshotListCmd(app),
		newSnapshotRestoreCmd(app),
	)

	return cmd
}

func newSnapshotCreateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Capture the current state",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := app.Store.CreateSnapshot()
			if app.Snapshots != nil {
				if err := app.Snapshots.Save(cmd.Context(), snap); err != nil {
					return fmt.Errorf("saving snapshot: %w", err)
				}
			}
			fmt.Printf("Snapshot %s captured (%d activities)\n", snap.ID[:8], len(snap.Activities))
			return nil
		},
	}
}

func newSnapshotListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List persisted snapshots",
		RunE: func(cmd *cobra.Command, args []string) error {
			metas, err := app.Snapshots.List(cmd.Context(), 0)
			if err != nil {
				return err
			}
			if len(metas) == 0 {
				fmt.Println("No snapshots.")
				return nil
			}

			headers := []string{"ID", "Created", "Activities"}
			rows := make([][]string, 0, len(metas))
			for _, m := range metas {
				rows = append(rows, []string{
					m.ID[:8],
					m.CreatedAt.Format("2006-01-02 15:04:05"),
					fmt.Sprintf("%d", m.ActivityCount),
				})
			}
			fmt.Print(formatter.RenderTable(headers, rows))
			return nil
		},
	}
}

func newSnapshotRestoreCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "restore <id>",
		Short: "Replace live state from a persisted snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveSnapshotID(app, cmd, args[0])
			if err != nil {
				return err
			}

			snap, err := app.Snapshots.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			// Keep a safety copy of the current state before replacing it.
			if err := app.persist(cmd.Context()); err != nil {
				return err
			}
			if err := app.Store.LoadPayload(snap); err != nil {
				return err
			}
			if err := app.persist(cmd.Context()); err != nil {
				return err
			}

			fmt.Printf("Restored snapshot %s (%d activities)\n", id[:8], len(snap.Activities))
			return nil
		},
	}
}

func resolveSnapshotID(app *App, cmd *cobra.Command, input string) (string, error) {
	metas, err := app.Snapshots.List(cmd.Context(), 0)
	if err != nil {
		return "", err
	}

	var matches []string
	for _, m := range metas {
		if m.ID == input {
			return m.ID, nil
		}
		if len(input) > 0 && len(m.ID) >= len(input) && m.ID[:len(input)] == input {
			matches = append(matches, m.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("snapshot not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("snapshot ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}
