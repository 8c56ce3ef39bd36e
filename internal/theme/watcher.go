package theme

import (
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches a user theme file for changes and triggers hot-reload.
// Embedded themes have no backing file and are never watched.
type Watcher struct {
	mu      sync.Mutex
	logger  *slog.Logger
	watcher *fsnotify.Watcher

	theme    *Theme
	onChange func(*Theme)

	done    chan struct{}
	running bool
}

// NewWatcher creates a watcher for the given theme. onChange is invoked
// with the freshly loaded theme every time the file content changes.
func NewWatcher(t *Theme, onChange func(*Theme), logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		logger:   logger,
		watcher:  fsw,
		theme:    t,
		onChange: onChange,
		done:     make(chan struct{}),
	}, nil
}

// Start begins watching. It is a no-op for embedded themes.
func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return nil
	}
	if w.theme == nil || w.theme.Path == "" {
		w.logger.Debug("not watching embedded theme")
		return nil
	}

	// Watch the directory containing the file (more reliable for writes)
	dir := filepath.Dir(w.theme.Path)
	if err := w.watcher.Add(dir); err != nil {
		return err
	}

	w.running = true
	go w.watch()

	w.logger.Debug("theme watcher started", "path", w.theme.Path)
	return nil
}

// watch is the main watch loop.
func (w *Watcher) watch() {
	filename := filepath.Base(w.theme.Path)

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			// Only care about our file
			if filepath.Base(event.Name) != filename {
				continue
			}

			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				w.reload()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("theme watcher error", "error", err)

		case <-w.done:
			return
		}
	}
}

func (w *Watcher) reload() {
	w.mu.Lock()
	t := w.theme
	callback := w.onChange
	w.mu.Unlock()

	fresh, changed, err := t.Reload()
	if err != nil {
		w.logger.Warn("failed to reload theme", "path", t.Path, "error", err)
		return
	}
	if !changed {
		return
	}

	w.mu.Lock()
	w.theme = fresh
	w.mu.Unlock()

	w.logger.Info("theme file changed, reloaded", "path", t.Path)
	if callback != nil {
		callback(fresh)
	}
}

// Stop stops the watcher.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return w.watcher.Close()
	}
	w.running = false
	close(w.done)
	return w.watcher.Close()
}

// IsRunning reports whether the watcher is active.
func (w *Watcher) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}
