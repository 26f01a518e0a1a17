// Package watch reports changes to documents under a docs directory.
package watch

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

const defaultDebounce = 150 * time.Millisecond

// Watcher watches a docs directory tree and emits slash-separated paths
// relative to the root for every written or created file.
type Watcher struct {
	root     string
	watcher  *fsnotify.Watcher
	debounce time.Duration
	logger   logrus.FieldLogger
	changes  chan string

	mu         sync.Mutex
	lastChange map[string]time.Time
}

// New creates a watcher over root and all of its subdirectories.
func New(root string, debounce time.Duration, logger logrus.FieldLogger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if debounce <= 0 {
		debounce = defaultDebounce
	}

	w := &Watcher{
		root:       filepath.Clean(root),
		watcher:    fw,
		debounce:   debounce,
		logger:     logger,
		changes:    make(chan string, 16),
		lastChange: make(map[string]time.Time),
	}

	// fsnotify is not recursive, so every directory is added explicitly.
	err = filepath.WalkDir(w.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != w.root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		return fw.Add(path)
	})
	if err != nil {
		fw.Close()
		return nil, err
	}
	return w, nil
}

// Changes delivers relative paths of changed documents.
func (w *Watcher) Changes() <-chan string {
	return w.changes
}

// Run processes events until ctx is cancelled, then closes Changes.
func (w *Watcher) Run(ctx context.Context) {
	defer close(w.changes)
	defer w.watcher.Close()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.logger.Debugf("fsnotify event: %s op=%v", event.Name, event.Op)
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			rel, ok := w.relative(event.Name)
			if !ok || !w.accept(rel, time.Now()) {
				continue
			}
			select {
			case w.changes <- rel:
			case <-ctx.Done():
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Errorf("Watcher error: %v", err)
		case <-ctx.Done():
			return
		}
	}
}

func (w *Watcher) relative(name string) (string, bool) {
	rel, err := filepath.Rel(w.root, name)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return "", false
	}
	return filepath.ToSlash(rel), true
}

// accept debounces rapid writes to the same file.
func (w *Watcher) accept(rel string, now time.Time) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if last, ok := w.lastChange[rel]; ok && now.Sub(last) < w.debounce {
		w.logger.Debugf("Debounced: %s (only %v since last change)", rel, now.Sub(last))
		return false
	}
	w.lastChange[rel] = now
	return true
}
