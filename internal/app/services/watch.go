package services

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/chmouel/lazycollect/internal/config"
	"github.com/chmouel/lazycollect/internal/models"
	"github.com/fsnotify/fsnotify"
)

// TreeWatchDebounce is the quiet period after the last filesystem event
// before a rescan is triggered.
const TreeWatchDebounce = 600 * time.Millisecond

// TreeWatchService watches the project tree and signals when files appear,
// disappear or are renamed, and when a collected file is written to.
type TreeWatchService struct {
	Started bool
	Waiting bool
	Root    string
	Events  chan struct{}
	Done    chan struct{}
	Paths   map[string]struct{}
	Mu      sync.Mutex
	Watcher *fsnotify.Watcher

	ignore     map[string]bool
	skipHidden bool
	outputRel  string
	categories []models.Category
	logf       func(string, ...any)
}

// NewTreeWatchService creates a watcher for the tree described by cfg.
func NewTreeWatchService(cfg *config.AppConfig, logf func(string, ...any)) *TreeWatchService {
	w := &TreeWatchService{
		ignore: make(map[string]bool),
		logf:   logf,
	}
	if cfg != nil {
		w.Root = cfg.Root
		w.skipHidden = cfg.SkipHidden
		w.outputRel, _ = cfg.OutputRel()
		w.categories = cfg.Categories
		for _, name := range cfg.IgnoreDirs {
			w.ignore[name] = true
		}
	}
	return w
}

// Start creates the fsnotify watcher and the background goroutine. It does
// nothing when auto refresh is disabled.
func (w *TreeWatchService) Start(cfg *config.AppConfig) (bool, error) {
	if w.Started || cfg == nil || !cfg.AutoRefresh || w.Root == "" {
		return false, nil
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return false, err
	}

	w.Started = true
	w.Watcher = watcher
	w.Events = make(chan struct{}, 1)
	w.Done = make(chan struct{})
	w.Paths = make(map[string]struct{})
	w.addWatchTree(w.Root)
	w.debugf("tree watcher: watching %d directories under %s", len(w.Paths), w.Root)

	go w.run()
	return true, nil
}

// Stop stops the watcher and closes channels.
func (w *TreeWatchService) Stop() {
	if !w.Started {
		return
	}
	close(w.Done)
	w.Started = false
	if w.Watcher != nil {
		_ = w.Watcher.Close()
	}
}

// NextEvent returns the event channel if waiting is not already active.
func (w *TreeWatchService) NextEvent() <-chan struct{} {
	if w.Events == nil || w.Waiting {
		return nil
	}
	w.Waiting = true
	return w.Events
}

// ResetWaiting clears the waiting flag after an event is processed.
func (w *TreeWatchService) ResetWaiting() {
	w.Waiting = false
}

// Signal notifies listeners of watcher activity.
func (w *TreeWatchService) Signal() {
	select {
	case <-w.Done:
		return
	default:
	}
	select {
	case w.Events <- struct{}{}:
	default:
	}
}

// Relevant reports whether an event on path can change the scan result.
func (w *TreeWatchService) Relevant(path string) bool {
	if path == "" || !w.IsUnderRoot(path) {
		return false
	}
	rel, err := filepath.Rel(w.Root, path)
	if err != nil {
		return false
	}
	if rel == "." {
		return true
	}
	rel = filepath.ToSlash(rel)
	for _, part := range strings.Split(rel, "/") {
		if w.skipped(part) {
			return false
		}
	}
	return rel != w.outputRel
}

// Collected reports whether a write to path can change a collected file's
// size, which only matters for files some category claims.
func (w *TreeWatchService) Collected(path string) bool {
	name := filepath.Base(path)
	for _, cat := range w.categories {
		if cat.Matches(name) {
			return true
		}
	}
	return false
}

// IsUnderRoot reports whether path is the project root or below it.
func (w *TreeWatchService) IsUnderRoot(path string) bool {
	if path == "" || w.Root == "" {
		return false
	}
	return path == w.Root || strings.HasPrefix(path, w.Root+string(filepath.Separator))
}

// MaybeWatchNewDir registers a newly created directory and its children.
func (w *TreeWatchService) MaybeWatchNewDir(path string) {
	if !w.Relevant(path) {
		return
	}
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return
	}
	w.addWatchTree(path)
}

func (w *TreeWatchService) skipped(name string) bool {
	if w.ignore[name] {
		return true
	}
	return w.skipHidden && strings.HasPrefix(name, ".") && name != ".env"
}

func (w *TreeWatchService) run() {
	for {
		select {
		case <-w.Done:
			return
		case event, ok := <-w.Watcher.Events:
			if !ok {
				return
			}
			if !w.Relevant(event.Name) {
				continue
			}
			switch {
			case event.Op&fsnotify.Create != 0:
				w.MaybeWatchNewDir(event.Name)
			case event.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
			case event.Op&fsnotify.Write != 0:
				// Sizes feed the stats and the max_file_size filter.
				if !w.Collected(event.Name) {
					continue
				}
			default:
				continue
			}
			w.Signal()
		case err, ok := <-w.Watcher.Errors:
			if !ok {
				return
			}
			w.debugf("tree watcher error: %v", err)
		}
	}
}

func (w *TreeWatchService) addWatchDir(path string) {
	w.Mu.Lock()
	defer w.Mu.Unlock()

	if _, ok := w.Paths[path]; ok {
		return
	}
	if err := w.Watcher.Add(path); err != nil {
		w.debugf("tree watcher add failed for %s: %v", path, err)
		return
	}
	w.Paths[path] = struct{}{}
}

func (w *TreeWatchService) addWatchTree(root string) {
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		if path != w.Root && w.skipped(d.Name()) {
			return filepath.SkipDir
		}
		w.addWatchDir(path)
		return nil
	})
}

func (w *TreeWatchService) debugf(format string, args ...any) {
	if w.logf == nil {
		return
	}
	w.logf(format, args...)
}
