package server

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// RebuildFunc regenerates the site after a source change. path is the file
// that triggered the rebuild.
type RebuildFunc func(ctx context.Context, path string) error

const rebuildDebounce = 300 * time.Millisecond

// Watch starts an fsnotify watcher on the given source roots and triggers
// rebuild (debounced) on file changes until ctx is cancelled.
//
// New directories created at runtime are automatically added to the watch
// list. Editor save patterns that fire several events in quick succession
// collapse into a single rebuild.
func Watch(ctx context.Context, roots []string, logger *slog.Logger, rebuild RebuildFunc) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	for _, root := range roots {
		if err := addDirsRecursive(w, root); err != nil {
			return err
		}
	}

	logger.Info("watcher: started", slog.String("roots", strings.Join(roots, ",")))

	// rebuildTimer debounces bursts of change events into one rebuild.
	var rebuildTimer *time.Timer
	var rebuildCh <-chan time.Time
	var pendingPath string

	scheduleRebuild := func(path string) {
		pendingPath = path
		if rebuildTimer == nil {
			rebuildTimer = time.NewTimer(rebuildDebounce)
			rebuildCh = rebuildTimer.C
		} else {
			rebuildTimer.Reset(rebuildDebounce)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if rebuildTimer != nil {
				rebuildTimer.Stop()
			}
			logger.Info("watcher: stopped")
			return nil

		case <-rebuildCh:
			logger.Info("watcher: rebuilding", slog.String("trigger", pendingPath))
			if err := rebuild(ctx, pendingPath); err != nil {
				logger.Error("watcher: rebuild failed", slog.String("error", err.Error()))
			}

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}

			if ev.Op&fsnotify.Create != 0 {
				if info, statErr := os.Stat(ev.Name); statErr == nil && info.IsDir() {
					if addErr := addDirsRecursive(w, ev.Name); addErr != nil {
						logger.Warn("watcher: add new dir failed",
							slog.String("path", ev.Name),
							slog.String("error", addErr.Error()))
					}
					continue
				}
			}

			if !relevantChange(ev) {
				continue
			}

			logger.Debug("watcher: change", slog.String("path", ev.Name), slog.String("op", ev.Op.String()))
			scheduleRebuild(ev.Name)

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher: error", slog.String("error", watchErr.Error()))
		}
	}
}

// relevantChange filters out events that cannot affect the generated site,
// such as editor swap files and chmod-only notifications.
func relevantChange(ev fsnotify.Event) bool {
	if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}

	base := filepath.Base(ev.Name)
	if strings.HasPrefix(base, ".") || strings.HasSuffix(base, "~") || strings.HasSuffix(base, ".swp") {
		return false
	}

	return true
}

// addDirsRecursive adds root and all its subdirectories to the watcher.
// Missing roots are skipped so optional source dirs do not fail the watch.
func addDirsRecursive(w *fsnotify.Watcher, root string) error {
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return nil
	}
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.Add(path)
		}
		return nil
	})
}
