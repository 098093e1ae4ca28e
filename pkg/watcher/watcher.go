package watcher

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches a single file and invokes a callback, debounced, when
// it is written, created, or renamed. Watching the parent directory
// rather than the file itself survives editors that replace the file on
// save.
type Watcher struct {
	fsw       *fsnotify.Watcher
	debouncer *Debouncer
	path      string
	done      chan struct{}
}

// Watch starts watching path and calls onChange (debounced) on every
// relevant event. The callback runs on the watcher's goroutine; callers
// needing to touch UI state should forward it as a message.
func Watch(path string, onChange func()) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve watch path: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		fsw:       fsw,
		debouncer: NewDebouncer(0),
		path:      abs,
		done:      make(chan struct{}),
	}
	go w.loop(onChange)
	return w, nil
}

func (w *Watcher) loop(onChange func()) {
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				w.debouncer.Trigger(onChange)
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Printf("warning: watch error: %v", err)
		case <-w.done:
			return
		}
	}
}

// Close stops watching and drops any pending callback.
func (w *Watcher) Close() error {
	close(w.done)
	w.debouncer.Cancel()
	return w.fsw.Close()
}
