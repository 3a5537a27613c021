package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/jthornhill/wayfare/internal/cli"
	"github.com/jthornhill/wayfare/internal/config"
	"github.com/jthornhill/wayfare/internal/db"
	"github.com/jthornhill/wayfare/internal/events"
	"github.com/jthornhill/wayfare/internal/repository"
	"github.com/jthornhill/wayfare/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Optional .env for local overrides; absence is fine.
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("WAYFARE_CONFIG"))
	if err != nil {
		return err
	}

	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		lipgloss.SetColorProfile(termenv.Ascii) // no color codes in piped output
	}

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	snapshots := repository.NewSQLiteSnapshotRepo(database)

	st := store.New(store.Options{
		MaxActivities:   cfg.MaxActivities,
		TrashSize:       cfg.TrashSize,
		SnapshotHistory: cfg.SnapshotHistory,
	}, events.New(nil))
	if cfg.Debug {
		st.SetObserver(store.NewLogMutationObserver(os.Stderr))
	}

	// Pick up where the last session left off.
	if latest, err := snapshots.Latest(context.Background()); err == nil {
		if err := st.LoadPayload(latest); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: ignoring saved state: %v\n", err)
		}
	} else if !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("loading saved state: %w", err)
	}

	app := &cli.App{
		Store:     st,
		Snapshots: snapshots,
		Config:    cfg,
	}

	return cli.NewRootCmd(app).Execute()
}
