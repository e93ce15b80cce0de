// Package watcher re-runs bundle analysis when the build output changes.
//
// It watches a dist directory (and its subdirectories) with fsnotify and
// fires a callback after a quiet period, so a bundler writing dozens of
// chunks in one build triggers a single re-analysis.
package watcher

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period after the last filesystem event
// before the change callback fires.
const DefaultDebounce = 500 * time.Millisecond

// Watcher observes a build output directory and invokes a callback after
// changes settle.
type Watcher struct {
	dir      string
	debounce time.Duration
	onChange func()

	fsw    *fsnotify.Watcher
	stopCh chan struct{}
	wg     sync.WaitGroup
}

// New creates a Watcher over dir that invokes onChange after each settled
// batch of changes. A debounce of 0 uses DefaultDebounce.
func New(dir string, debounce time.Duration, onChange func()) (*Watcher, error) {
	if dir == "" {
		return nil, fmt.Errorf("watch directory cannot be empty")
	}
	if onChange == nil {
		return nil, fmt.Errorf("change callback cannot be nil")
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	return &Watcher{
		dir:      dir,
		debounce: debounce,
		onChange: onChange,
		stopCh:   make(chan struct{}),
	}, nil
}

// Start begins watching. It registers the directory tree with fsnotify and
// launches the event loop.
func (w *Watcher) Start() error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create filesystem watcher: %w", err)
	}
	w.fsw = fsw

	if err := w.addTree(w.dir); err != nil {
		fsw.Close()
		return err
	}

	w.wg.Add(1)
	go w.run()

	return nil
}

// addTree registers dir and every subdirectory with the fsnotify watcher.
func (w *Watcher) addTree(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("failed to walk %s: %w", path, err)
		}
		if !d.IsDir() {
			return nil
		}
		if err := w.fsw.Add(path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		return nil
	})
}

// run is the event loop: it collapses bursts of filesystem events into one
// callback invocation per quiet period.
func (w *Watcher) run() {
	defer w.wg.Done()

	// Timer starts stopped; the first event arms it.
	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}

			// New subdirectories need registering before their
			// contents produce events.
			if event.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.fsw.Add(event.Name); err != nil {
						fmt.Fprintf(os.Stderr, "watcher: failed to watch %s: %v\n", event.Name, err)
					}
				}
			}

			if event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) ||
				event.Op.Has(fsnotify.Remove) || event.Op.Has(fsnotify.Rename) {
				timer.Reset(w.debounce)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			fmt.Fprintf(os.Stderr, "watcher: filesystem error: %v\n", err)

		case <-timer.C:
			w.onChange()

		case <-w.stopCh:
			return
		}
	}
}

// Stop halts the watcher. Pending debounced changes are dropped.
func (w *Watcher) Stop() error {
	close(w.stopCh)

	var err error
	if w.fsw != nil {
		err = w.fsw.Close()
	}

	w.wg.Wait()
	return err
}
