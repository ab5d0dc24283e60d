package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/joshuapare/offsetkit/offsets"
)

func init() {
	rootCmd.AddCommand(newWatchCmd())
}

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <defs>",
		Short: "Watch a definitions file and log reloads",
		Long: `The watch command loads a definitions file, then blocks watching it for
changes. Each successful change swaps in a whole new snapshot; a broken
capture is logged and the previous snapshot stays live.

Example:
  offsetctl watch apex.offsets`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(args[0])
		},
	}
}

func runWatch(path string) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	reg, err := offsets.LoadFile(path)
	if err != nil {
		return err
	}
	store := offsets.NewStore(reg)
	log.Info("definitions loaded", "path", path, "entries", reg.Len())

	w, err := offsets.NewWatcher(store, path, log)
	if err != nil {
		return err
	}
	defer w.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := w.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
