package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

var watchDebounce time.Duration

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch <font.glyphs>",
	Short: "Revalidate a font source whenever it changes",
	Long: `Watch a font source and re-run validation every time the file is
written. Editors that replace the file on save are covered by watching
the containing directory and filtering for the target name.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWatchAction(cmd.Context(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 300*time.Millisecond, "Quiet period before revalidating after a change")
}

// runWatchAction implements the core logic for the watch command
func runWatchAction(ctx context.Context, path string) error {
	target, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("invalid path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() {
		_ = watcher.Close() // Best-effort cleanup
	}()

	// Watch the directory, not the file. Saves that replace the file
	// would otherwise silently detach the watch.
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(target), err)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("watching font source", "path", target, "debounce", watchDebounce)
	revalidate(path)

	// The timer starts stopped and is armed on each matching event, so
	// a burst of writes collapses into one validation run.
	debounce := time.NewTimer(watchDebounce)
	debounce.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("watch stopped")
			return nil

		case event, open := <-watcher.Events:
			if !open {
				return nil
			}
			changed, _ := filepath.Abs(event.Name)
			if changed != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			slog.Debug("source changed", "op", event.Op.String())
			debounce.Reset(watchDebounce)

		case err, open := <-watcher.Errors:
			if !open {
				return nil
			}
			slog.Error("watch error", "error", err)

		case <-debounce.C:
			revalidate(path)
		}
	}
}

// revalidate loads the font once and logs what it found. Load failures
// are expected mid-edit and never stop the watch.
func revalidate(path string) {
	font, diags, err := loadSource(path, 0)
	if err != nil {
		slog.Error("load failed", "error", err)
		return
	}

	if diags.Empty() {
		slog.Info("font is clean",
			"family", font.FamilyName,
			"glyphs", font.Glyphs().Len(),
			"masters", font.Masters().Len())
		return
	}

	for _, issue := range diags.Issues() {
		slog.Warn("decode issue", "path", issue.Path, "key", issue.Key, "error", issue.Err)
	}
	slog.Info("validation finished", "issues", diags.Len())
}
