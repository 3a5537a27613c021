package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jthornhill/wayfare/internal/config"
	"github.com/jthornhill/wayfare/internal/repository"
	"github.com/jthornhill/wayfare/internal/store"
)

// App holds the wired dependencies used by CLI commands.
type App struct {
	Store     *store.Store
	Snapshots repository.SnapshotRepo
	Config    *config.Config
}

// NewRootCmd creates the top-level "wayfare" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "wayfare",
		Short: "Travel itinerary manager",
	}

	root.AddCommand(
		newAddCmd(app),
		newListCmd(app),
		newShowCmd(app),
		newUpdateCmd(app),
		newRemoveCmd(app),
		newDuplicateCmd(app),
		newTrashCmd(app),
		newFilterCmd(app),
		newSortCmd(app),
		newStatsCmd(app),
		newBreakdownCmd(app),
		newExportCmd(app),
		newImportCmd(app),
		newSnapshotCmd(app),
		newBrowseCmd(app),
	)

	return root
}

// persist hands the current state to the snapshot repository so the next
// session can pick it up, then trims old rows to the configured retention.
func (app *App) persist(ctx context.Context) error {
	if app.Snapshots == nil {
		return nil
	}
	snap := app.Store.CreateSnapshot()
	if err := app.Snapshots.Save(ctx, snap); err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}
	if _, err := app.Snapshots.Prune(ctx, app.Config.SnapshotRetention); err != nil {
		return fmt.Errorf("pruning snapshots: %w", err)
	}
	app.Store.MarkClean()
	return nil
}

// resolveActivityID matches user input against activity ids: exact match
// first, then unique prefix.
func resolveActivityID(app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("activity ID is required")
	}

	activities := app.Store.Activities()

	for _, a := range activities {
		if a.ID == input {
			return a.ID, nil
		}
	}

	var matches []string
	for _, a := range activities {
		if strings.HasPrefix(a.ID, input) {
			matches = append(matches, a.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("activity not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("activity ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}
