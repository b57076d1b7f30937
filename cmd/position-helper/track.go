// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pdiddy/position-helper/internal/clipboard"
	"github.com/pdiddy/position-helper/internal/tracker"
	"github.com/pdiddy/position-helper/pkg/types"
)

var gotoCmd = &cobra.Command{
	Use:   "goto <name>",
	Short: "Track your position against a saved waypoint",
	Long: `Goto looks up a waypoint saved with "waypoint add" or "waypoint capture"
and tracks the clipboard against it, exactly as if its coordinates had been
given on the command line.`,
	Args: cobra.ExactArgs(1),
	RunE: runGoto,
}

func init() {
	rootCmd.AddCommand(gotoCmd)
}

func runGoto(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	wp, err := store.Get(cmd.Context(), args[0])
	if cerr := store.Close(); cerr != nil && err == nil {
		err = fmt.Errorf("closing waypoint store: %w", cerr)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Tracking waypoint %s (%v)\n", wp.Name, wp.Coordinate)
	return runTracker(cmd, wp.Coordinate)
}

// runTracker polls the configured source until interrupted.
func runTracker(cmd *cobra.Command, target types.Coordinate) error {
	cfg := loadConfig()

	src, name, err := newSource(cfg.Source)
	if err != nil {
		return err
	}

	var log io.Writer = io.Discard
	if cfg.Tracker.Verbose {
		log = cmd.ErrOrStderr()
	}
	fmt.Fprintf(log, "Reading samples from %s every %v\n", name, cfg.Tracker.Interval)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sink := tracker.NewConsole(cmd.OutOrStdout(), cfg.Tracker.Unit, cfg.Tracker.Color)
	tr := tracker.New(target, src, sink, cfg.Tracker.Interval, log)

	// Run only returns once ctx is done; cancellation and deadlines both end
	// the session normally.
	if err := tr.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

// newSource returns the text source selected by cfg and a name for logging.
func newSource(cfg types.SourceConfig) (clipboard.Source, string, error) {
	if cfg.File != "" {
		return clipboard.FileSource{Path: cfg.File}, cfg.File, nil
	}
	src, err := clipboard.NewSystem()
	if err != nil {
		return nil, "", err
	}
	return src, "clipboard", nil
}
