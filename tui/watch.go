package tui

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceDelay coalesces the burst of events an editor save produces.
const debounceDelay = 150 * time.Millisecond

// Watcher reports changes to a single file. The parent directory is watched
// so that editors replacing the file by rename are still seen.
type Watcher struct {
	file    string
	watcher *fsnotify.Watcher
	changes chan struct{}
	errs    chan error
	done    chan struct{}
	once    sync.Once
}

// Watch starts watching path.
func Watch(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("tui: watch %s: %w", path, err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("tui: watch %s: %w", path, err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("tui: watch %s: %w", path, err)
	}

	w := &Watcher{
		file:    abs,
		watcher: fw,
		changes: make(chan struct{}, 1),
		errs:    make(chan error, 1),
		done:    make(chan struct{}),
	}
	go w.loop()

	return w, nil
}

// File returns the absolute path being watched.
func (w *Watcher) File() string { return w.file }

// Changes delivers one value per debounced burst of writes. It is closed by Close.
func (w *Watcher) Changes() <-chan struct{} { return w.changes }

// Errors delivers watcher errors without blocking the event loop.
func (w *Watcher) Errors() <-chan error { return w.errs }

// Close stops watching. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.watcher.Close()
	})

	return err
}

func (w *Watcher) loop() {
	defer close(w.changes)

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.file || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounceDelay)
			} else {
				timer.Reset(debounceDelay)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			select {
			case w.changes <- struct{}{}:
			default:
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.errs <- err:
			default:
			}
		}
	}
}
