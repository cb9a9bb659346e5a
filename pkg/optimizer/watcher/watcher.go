// Package watcher observes the ledger file for external changes. The status
// command uses it to refresh its display when another process (or a manual
// edit) rewrites the ledger.
package watcher

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/frogtech/optimizer/pkg/optimizer/logging"
)

// DefaultDebounce coalesces write bursts. The ledger is written with a temp
// file plus rename, which produces several events per save.
const DefaultDebounce = 250 * time.Millisecond

// Watcher observes a single ledger file.
type Watcher struct {
	path     string
	watcher  *fsnotify.Watcher
	debounce time.Duration
	logger   *logging.Logger

	mu     sync.Mutex
	closed bool
}

// New creates a watcher for the given ledger file. The parent directory is
// watched rather than the file itself so atomic renames are observed.
func New(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	return &Watcher{
		path:     abs,
		watcher:  fsw,
		debounce: DefaultDebounce,
		logger:   logging.Get("watcher"),
	}, nil
}

// SetDebounce overrides the event coalescing window.
func (w *Watcher) SetDebounce(d time.Duration) {
	if d > 0 {
		w.debounce = d
	}
}

// Run blocks until the context is cancelled, calling onChange after every
// debounced burst of ledger file events. onChange runs on the watcher
// goroutine.
func (w *Watcher) Run(ctx context.Context, onChange func()) {
	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.isLedgerEvent(event) {
				continue
			}

			// Restart the debounce window.
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}

		case <-timerC:
			if onChange != nil {
				onChange()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("watch error", "error", err)
		}
	}
}

// isLedgerEvent reports whether the event concerns the ledger file and is a
// content change.
func (w *Watcher) isLedgerEvent(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) != 0
}

// Close stops the watcher and releases resources.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true
	return w.watcher.Close()
}
