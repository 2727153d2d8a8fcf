package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is how long a file must stay quiet before its callback
// runs
const DefaultDebounce = 300 * time.Millisecond

// FileWatcher watches files for changes and triggers callbacks. Callbacks
// run one at a time on the goroutine that called Run.
type FileWatcher struct {
	watcher   *fsnotify.Watcher
	log       *zap.Logger
	mu        sync.Mutex
	callbacks map[string]func(string)
	dirs      map[string]bool
	debounce  time.Duration
	timers    map[string]*time.Timer
	pending   map[string]bool
	wake      chan struct{}
}

// NewFileWatcher creates a new file watcher. A nil logger disables logging.
func NewFileWatcher(debounce time.Duration, log *zap.Logger) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if log == nil {
		log = zap.NewNop()
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	return &FileWatcher{
		watcher:   watcher,
		log:       log,
		callbacks: make(map[string]func(string)),
		dirs:      make(map[string]bool),
		debounce:  debounce,
		timers:    make(map[string]*time.Timer),
		pending:   make(map[string]bool),
		wake:      make(chan struct{}, 1),
	}, nil
}

// Watch registers callback for the given files. The parent directories are
// watched so that editors replacing a file on save keep triggering.
func (fw *FileWatcher) Watch(files []string, callback func(string)) error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	for _, file := range files {
		absPath, err := filepath.Abs(file)
		if err != nil {
			return fmt.Errorf("failed to resolve path %s: %w", file, err)
		}

		dir := filepath.Dir(absPath)
		if !fw.dirs[dir] {
			if err := fw.watcher.Add(dir); err != nil {
				return fmt.Errorf("failed to watch %s: %w", dir, err)
			}
			fw.dirs[dir] = true
		}

		fw.callbacks[absPath] = callback
		fw.log.Debug("watching file", zap.String("path", absPath))
	}

	return nil
}

// Files returns the watched files in sorted order
func (fw *FileWatcher) Files() []string {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	files := make([]string, 0, len(fw.callbacks))
	for file := range fw.callbacks {
		files = append(files, file)
	}
	sort.Strings(files)
	return files
}

// Run processes file events until ctx is done or the watcher is closed
func (fw *FileWatcher) Run(ctx context.Context) error {
	defer fw.stopTimers()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return nil
			}
			// Only trigger on write or create events
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				fw.handleFileChange(filepath.Clean(event.Name))
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return nil
			}
			fw.log.Warn("watcher error", zap.Error(err))

		case <-fw.wake:
			fw.dispatch()
		}
	}
}

// handleFileChange restarts the debounce timer of a watched file
func (fw *FileWatcher) handleFileChange(filePath string) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if _, exists := fw.callbacks[filePath]; !exists {
		return
	}

	if timer, exists := fw.timers[filePath]; exists {
		timer.Stop()
	}

	fw.timers[filePath] = time.AfterFunc(fw.debounce, func() {
		fw.mu.Lock()
		fw.pending[filePath] = true
		fw.mu.Unlock()

		select {
		case fw.wake <- struct{}{}:
		default:
		}
	})
}

// dispatch runs the callbacks of all files whose timers fired
func (fw *FileWatcher) dispatch() {
	fw.mu.Lock()
	type call struct {
		path     string
		callback func(string)
	}
	calls := make([]call, 0, len(fw.pending))
	for path := range fw.pending {
		if callback, ok := fw.callbacks[path]; ok {
			calls = append(calls, call{path, callback})
		}
		delete(fw.timers, path)
	}
	fw.pending = make(map[string]bool)
	fw.mu.Unlock()

	sort.Slice(calls, func(i, j int) bool { return calls[i].path < calls[j].path })
	for _, c := range calls {
		fw.log.Info("file changed", zap.String("path", c.path))
		c.callback(c.path)
	}
}

func (fw *FileWatcher) stopTimers() {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	for _, timer := range fw.timers {
		timer.Stop()
	}
	fw.timers = make(map[string]*time.Timer)
	fw.pending = make(map[string]bool)
}

// Close stops the watcher
func (fw *FileWatcher) Close() error {
	return fw.watcher.Close()
}

// RemoveAll removes all watched files
func (fw *FileWatcher) RemoveAll() error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	for dir := range fw.dirs {
		if err := fw.watcher.Remove(dir); err != nil {
			return err
		}
	}

	for _, timer := range fw.timers {
		timer.Stop()
	}
	fw.dirs = make(map[string]bool)
	fw.callbacks = make(map[string]func(string))
	fw.timers = make(map[string]*time.Timer)
	fw.pending = make(map[string]bool)
	return nil
}
