// file: internal/watcher/watcher.go
// version: 4.0.0
// guid: b2c3d4e5-f6a7-8901-bcde-f23456789012

package watcher

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the default debounce period.
const DefaultDebounce = 500 * time.Millisecond

// Callback is invoked after the debounce period with the watched file path.
type Callback func(path string)

// Watcher monitors a single results file and invokes a callback once writes
// to it settle. The parent directory is watched so files replaced by rename
// keep being tracked.
//
// A single goroutine owns the fsnotify channels and the debounce timer; the
// callback runs on that goroutine, so callbacks never overlap.
type Watcher struct {
	debounce time.Duration
	callback Callback

	mu   sync.Mutex
	path string
	fsw  *fsnotify.Watcher
	quit chan struct{}
	done chan struct{}
}

// New creates a Watcher. Pass 0 for debounce to use DefaultDebounce.
func New(callback Callback, debounce time.Duration) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{debounce: debounce, callback: callback}
}

// Start begins watching path. Calling Start on a running watcher does nothing.
func (w *Watcher) Start(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.fsw != nil {
		return nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	dir := filepath.Dir(abs)
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return fmt.Errorf("cannot watch %s: parent directory unavailable", path)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	w.path = abs
	w.fsw = fsw
	w.quit = make(chan struct{})
	w.done = make(chan struct{})
	go w.loop(fsw, abs, w.quit, w.done)
	return nil
}

// Stop shuts the watcher down and waits for its goroutine to exit. A pending
// debounced callback is dropped.
func (w *Watcher) Stop() {
	w.mu.Lock()
	fsw, quit, done := w.fsw, w.quit, w.done
	w.fsw = nil
	w.mu.Unlock()
	if fsw == nil {
		return
	}

	close(quit)
	fsw.Close()
	<-done
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.path
}

func (w *Watcher) loop(fsw *fsnotify.Watcher, path string, quit <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()
	pending := false

	for {
		select {
		case <-quit:
			return

		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			if !touches(event, path) {
				continue
			}
			// each relevant event pushes the deadline out again
			timer.Reset(w.debounce)
			pending = true

		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			log.Printf("[ERROR] watcher: %v", err)

		case <-timer.C:
			if !pending {
				continue
			}
			pending = false
			log.Printf("[INFO] watcher: %s changed", path)
			if w.callback != nil {
				w.callback(path)
			}
		}
	}
}

// touches reports whether event created or wrote path. Removals and renames
// away leave nothing to reload.
func touches(event fsnotify.Event, path string) bool {
	return filepath.Clean(event.Name) == path && event.Op&(fsnotify.Create|fsnotify.Write) != 0
}
