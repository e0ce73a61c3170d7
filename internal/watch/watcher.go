// Package watch flags filesystem changes in the directory being browsed.
// The watcher never refreshes anything on its own: it only raises a flag
// the prompt loop surfaces as a "directory changed" notice, keeping
// refresh a deliberate user command.
package watch

import (
	"sync"
	"sync/atomic"

	"peruse/internal/log"

	"github.com/fsnotify/fsnotify"
)

// Watcher monitors a single directory for changes using fsnotify.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	stopChan  chan struct{}
	changed   atomic.Bool

	// Guards the watched directory across Watch calls
	mu  sync.Mutex
	dir string
}

// New creates a directory watcher and starts its event loop.
func New() (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsWatcher: fsWatcher,
		stopChan:  make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Watch switches the watcher to dir, dropping the previous directory and
// clearing the change flag.
func (w *Watcher) Watch(dir string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.dir != "" {
		// Best effort: the old directory may have vanished already
		_ = w.fsWatcher.Remove(w.dir)
	}
	if err := w.fsWatcher.Add(dir); err != nil {
		w.dir = ""
		return err
	}
	w.dir = dir
	w.changed.Store(false)
	return nil
}

// Changed reports whether the watched directory has changed since the
// last Clear.
func (w *Watcher) Changed() bool {
	return w.changed.Load()
}

// Clear resets the change flag, typically right after a refresh.
func (w *Watcher) Clear() {
	w.changed.Store(false)
}

func (w *Watcher) loop() {
	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			log.Debug("watch event: %s", event)
			w.changed.Store(true)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.LogWithFields(log.F("error", err)).Warn("fsnotify watcher error")
		case <-w.stopChan:
			return
		}
	}
}

// Close stops the event loop and releases the fsnotify watcher.
func (w *Watcher) Close() error {
	close(w.stopChan)
	return w.fsWatcher.Close()
}
