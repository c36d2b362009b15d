// Package fsnotify reloads site data when files in a site directory change.
package fsnotify

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits for a burst of events to
// settle before reporting a change.
const DefaultDebounce = 200 * time.Millisecond

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the debounce interval.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// WithOnError sets the callback for watch errors. Errors do not stop
// the watcher.
func WithOnError(fn func(error)) Option {
	return func(w *Watcher) {
		w.onError = fn
	}
}

// Watcher reports changes to a set of files in one directory.
type Watcher struct {
	dir      string
	names    map[string]bool
	debounce time.Duration
	onError  func(error)

	fsw *fsnotify.Watcher
}

// NewWatcher starts watching dir for changes to the named files. Watching
// the directory instead of the files keeps atomic replacements visible.
func NewWatcher(dir string, names []string, opts ...Option) (*Watcher, error) {
	w := &Watcher{
		dir:      dir,
		names:    make(map[string]bool, len(names)),
		debounce: DefaultDebounce,
		onError:  func(error) {},
	}
	for _, name := range names {
		w.names[name] = true
	}
	for _, opt := range opts {
		opt(w)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}
	w.fsw = fsw
	return w, nil
}

// Run calls onChange after the watched files change, until ctx is done.
// Events arriving within the debounce interval produce one call.
func (w *Watcher) Run(ctx context.Context, onChange func()) error {
	defer w.fsw.Close()

	timer := time.NewTimer(w.debounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !w.names[filepath.Base(ev.Name)] || ev.Op == fsnotify.Chmod {
				continue
			}
			timer.Reset(w.debounce)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.onError(err)
		case <-timer.C:
			onChange()
		}
	}
}
