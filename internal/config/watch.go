package config

import (
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounce = 250 * time.Millisecond

// Watcher reloads a config file when it changes on disk. It never applies
// the result itself; onChange runs on the watcher goroutine and the caller
// hands the config over to its own loop.
type Watcher struct {
	mu       sync.Mutex
	path     string
	watcher  *fsnotify.Watcher
	stop     chan struct{}
	onChange func(Config)
}

// NewWatcher returns a watcher that calls onChange with every valid reload.
func NewWatcher(onChange func(Config)) *Watcher {
	return &Watcher{onChange: onChange}
}

// Watch starts watching path, replacing any previous watch. The parent
// directory is watched so editors that save by rename are still seen.
func (w *Watcher) Watch(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.stopLocked()

	if path == "" {
		return nil
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return err
	}
	w.path = filepath.Clean(path)
	w.watcher = fw
	w.stop = make(chan struct{})
	go w.loop(fw, w.stop, w.path)

	slog.Debug("Watching config", "path", path)
	return nil
}

// Close stops watching.
func (w *Watcher) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.stopLocked()
}

func (w *Watcher) stopLocked() {
	if w.stop != nil {
		close(w.stop)
		w.stop = nil
	}
	if w.watcher != nil {
		w.watcher.Close()
		w.watcher = nil
	}
	w.path = ""
}

func (w *Watcher) loop(fw *fsnotify.Watcher, stop chan struct{}, path string) {
	var timer *time.Timer
	for {
		select {
		case <-stop:
			if timer != nil {
				timer.Stop()
			}
			return
		case ev, ok := <-fw.Events:
			if !ok {
				return
			}
			if !relevant(ev, path) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, func() { w.reload(path) })
		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			slog.Warn("Config watcher error", "error", err)
		}
	}
}

func relevant(ev fsnotify.Event, path string) bool {
	if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}
	name := filepath.Clean(ev.Name)
	if name == path {
		return true
	}
	return filepath.Base(name) == filepath.Base(path) && ev.Op&(fsnotify.Create|fsnotify.Rename) != 0
}

func (w *Watcher) reload(path string) {
	w.mu.Lock()
	current := w.path
	w.mu.Unlock()
	if current != path {
		return
	}

	cfg, err := Load(path)
	if err != nil {
		slog.Warn("Ignoring invalid config edit", "path", path, "error", err)
		return
	}
	slog.Debug("Config reloaded", "path", path)
	if w.onChange != nil {
		w.onChange(cfg)
	}
}
