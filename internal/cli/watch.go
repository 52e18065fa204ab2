package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/chartscale/dataset"
	"github.com/katalvlaran/chartscale/internal/logger"
)

// errNotWatchable is returned by --watch for stdin and remote sources.
var errNotWatchable = errors.New("--watch needs a local file source")

// runMaybeWatching runs fn once and, with --watch, again on every change of
// the source file until the command context is cancelled. Failures of later
// runs are printed and do not stop the watch.
func runMaybeWatching(cmd *cobra.Command, src string, fn func() error) error {
	if watch && !watchable(src) {
		return errNotWatchable
	}
	if err := fn(); err != nil || !watch {
		return err
	}

	logger.Info("watching %s", src)
	return watchFile(cmd.Context(), src, func() {
		if err := fn(); err != nil {
			cmd.PrintErrln("Error:", err)
		}
	})
}

func watchable(src string) bool {
	return src != dataset.StdinURI && !strings.Contains(src, "://")
}

// watchFile calls onChange after every write to path. The parent directory is
// watched so editors that replace the file on save are still seen.
func watchFile(ctx context.Context, path string, onChange func()) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			logger.Debug("%s %s", ev.Op, ev.Name)
			onChange()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch %s: %w", path, err)
		}
	}
}
