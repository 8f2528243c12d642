package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/corey/pyast/internal/adapters/fsnotify"
	"github.com/corey/pyast/internal/bridge"
)

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Re-parse Python files as they change",
	Long:  "Watches a directory tree and re-parses each .py file on save,\nreporting syntax errors as they appear. Runs until interrupted.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	ctx, cancel := callContext()
	defer cancel()
	b, err := bridge.New(ctx, bridgeOptions()...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		fmt.Fprintln(os.Stderr, unavailableHint(err))
		return err
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Stop()

	err = w.Watch(dir, func(path string) {
		if _, err := os.Stat(path); err != nil {
			return // deleted; nothing to parse
		}
		pctx, pcancel := callContext()
		defer pcancel()
		root, err := b.Parse(pctx, path)
		if err != nil {
			log.Error("parse failed", "file", path, "err", err)
			return
		}
		log.Info("parsed", "file", path, "nodes", root.Count())
	})
	if err != nil {
		return err
	}

	log.Info("watching", "dir", dir, "interpreter", b.Interpreter())

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	return nil
}
