// Package watcher hot-reloads dictionaries when their files change on
// disk: a replaced .aff/.dic pair rebuilds its engine, and an externally
// edited custom file is re-read. Events are debounced because editors and
// download managers touch files several times in quick succession.
package watcher

import (
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/kepka-app/lib-spellcheck/internal/custom"
	"github.com/kepka-app/lib-spellcheck/internal/service"
)

const debounceDelay = 200 * time.Millisecond

type Watcher struct {
	svc        *service.Service
	workingDir string
	log        *slog.Logger

	fsw  *fsnotify.Watcher
	done chan struct{}

	mu      sync.Mutex
	pending map[string]*time.Timer
}

func New(svc *service.Service, workingDir string, log *slog.Logger) *Watcher {
	return &Watcher{
		svc:        svc,
		workingDir: workingDir,
		log:        log,
		pending:    make(map[string]*time.Timer),
	}
}

// Start begins watching the working directory and the directories of the
// currently active languages. Call Rewatch after UpdateLanguages.
func (w *Watcher) Start() error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	w.fsw = fsw
	w.done = make(chan struct{})
	if err := fsw.Add(w.workingDir); err != nil {
		_ = fsw.Close()
		return err
	}
	w.Rewatch()
	go w.run()
	return nil
}

// Rewatch aligns the watched directories with the active language set.
// Add errors are ignored; a missing directory simply produces no events.
func (w *Watcher) Rewatch() {
	for _, lang := range w.svc.ActiveLanguages() {
		_ = w.fsw.Add(filepath.Join(w.workingDir, lang))
	}
}

func (w *Watcher) Stop() {
	if w.fsw == nil {
		return
	}
	close(w.done)
	_ = w.fsw.Close()
}

func (w *Watcher) run() {
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			w.dispatch(ev.Name)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Debug("watch error", "error", err)
		}
	}
}

func (w *Watcher) dispatch(path string) {
	name := filepath.Base(path)
	switch {
	case name == custom.FileName:
		w.debounce("custom:", func() {
			w.log.Debug("custom dictionary changed on disk")
			w.svc.ReloadCustom()
		})
	case strings.HasSuffix(name, ".aff") || strings.HasSuffix(name, ".dic"):
		lang := filepath.Base(filepath.Dir(path))
		w.debounce("lang:"+lang, func() {
			w.svc.ReloadLanguage(lang)
		})
	}
}

// debounce coalesces a burst of events for one key into a single callback.
func (w *Watcher) debounce(key string, fn func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if t, ok := w.pending[key]; ok {
		t.Stop()
	}
	w.pending[key] = time.AfterFunc(debounceDelay, func() {
		w.mu.Lock()
		delete(w.pending, key)
		w.mu.Unlock()
		fn()
	})
}
