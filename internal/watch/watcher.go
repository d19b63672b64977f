// Package watch re-runs a callback whenever a single file changes on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher follows one file. It watches the parent directory so editors that
// save by rename-over are still seen.
type Watcher struct {
	watcher   *fsnotify.Watcher
	path      string // cleaned absolute path of the watched file
	debounce  time.Duration
	logger    *zap.Logger
	closeOnce sync.Once
	closeErr  error
}

// New starts watching path's directory. debounce coalesces bursts of events
// (e.g. truncate + write) into one callback; zero fires on every event.
func New(path string, debounce time.Duration, logger *zap.Logger) (*Watcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err = fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{
		watcher:  fw,
		path:     abs,
		debounce: debounce,
		logger:   logger,
	}, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string { return w.path }

// Close releases the underlying fsnotify watcher. Safe to call repeatedly.
func (w *Watcher) Close() error {
	w.closeOnce.Do(func() { w.closeErr = w.watcher.Close() })
	return w.closeErr
}

// relevant reports whether ev touches the watched file with new content.
func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename)
}

// Run blocks until ctx is done, calling onChange after each (debounced)
// change of the file. Callback errors are logged and the loop keeps going.
// Run closes the watcher before returning.
func (w *Watcher) Run(ctx context.Context, onChange func(path string) error) error {
	defer w.Close()

	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()
	pending := false

	fire := func() {
		pending = false
		if err := onChange(w.path); err != nil {
			w.logger.Warn("change handler failed", zap.String("path", w.path), zap.Error(err))
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			w.logger.Debug("file event", zap.String("path", ev.Name), zap.String("op", ev.Op.String()))
			if w.debounce <= 0 {
				fire()
				continue
			}
			if pending && !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(w.debounce)
			pending = true

		case <-timer.C:
			if pending {
				fire()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", zap.Error(err))
		}
	}
}
