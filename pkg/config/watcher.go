package config

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounceInterval is the time the watcher waits after the last file
// event before reloading, to collapse editor write bursts into one reload.
const DefaultDebounceInterval = 100 * time.Millisecond

// Watcher watches a configuration file for changes and invokes a callback
// with the freshly loaded configuration. Reloads are debounced to prevent
// reload storms from editors that write files in several steps.
type Watcher struct {
	path     string
	debounce time.Duration
	logger   *slog.Logger
	watcher  *fsnotify.Watcher
}

// NewWatcher creates a watcher for the configuration file at path.
func NewWatcher(path string, logger *slog.Logger) (*Watcher, error) {
	if path == "" {
		return nil, fmt.Errorf("watcher requires a configuration file path")
	}
	if logger == nil {
		logger = slog.Default()
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		path:     filepath.Clean(path),
		debounce: DefaultDebounceInterval,
		logger:   logger,
		watcher:  fsw,
	}, nil
}

// Watch blocks until the context is cancelled, invoking onReload with the
// reloaded configuration after each debounced change to the watched file.
// Reload failures are logged and the previous configuration stays in effect.
//
// The parent directory is watched rather than the file itself so that
// rename-and-replace saves (the common editor and configmap update pattern)
// keep being observed.
func (w *Watcher) Watch(ctx context.Context, onReload func(*Config)) error {
	dir := filepath.Dir(w.path)
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %q: %w", dir, err)
	}

	w.logger.Info("configuration watcher started",
		"path", w.path,
		"debounce_ms", w.debounce.Milliseconds(),
	)

	var timer *time.Timer
	var timerCh <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("configuration watcher stopped")
			return w.watcher.Close()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerCh = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}

		case <-timerCh:
			timer = nil
			timerCh = nil
			cfg, err := LoadConfigWithEnvOverrides(w.path)
			if err != nil {
				w.logger.Error("configuration reload failed, keeping previous configuration",
					"path", w.path,
					"error", err,
				)
				continue
			}
			w.logger.Info("configuration reloaded", "path", w.path)
			onReload(cfg)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error("configuration watcher error", "error", err)
		}
	}
}
