package keymap

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Event conveys a reloaded table or a reload error from the watcher.
type Event struct {
	Table Table
	Err   error
}

// Watcher reloads the keymap whenever its file changes and publishes the
// result, so the host can swap bindings and reset viewer state the same way
// it would for any other configuration change.
type Watcher struct {
	path   string
	fsw    *fsnotify.Watcher
	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher watches the directory containing path; editors replace files
// rather than writing in place, so watching the file alone misses renames.
func NewWatcher(path string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, err
	}
	w := &Watcher{
		path:   path,
		fsw:    fsw,
		events: make(chan Event, 4),
	}
	w.wg.Add(1)
	go w.loop()
	go func() {
		w.wg.Wait()
		close(w.events)
	}()
	return w, nil
}

// Events returns the channel of reload events. It closes after Stop.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop ends the watch. The events channel closes once the loop drains.
func (w *Watcher) Stop() {
	w.fsw.Close()
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != filepath.Clean(w.path) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			table, err := Load(w.path)
			w.events <- Event{Table: table, Err: err}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.events <- Event{Err: err}
		}
	}
}
