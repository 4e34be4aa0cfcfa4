// Package watch monitors Go source trees and triggers regeneration when
// files containing sha1gen directives may have changed.
package watch

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher monitors file system changes and triggers a callback with the
// batch of changed Go files.
type Watcher struct {
	watcher   *fsnotify.Watcher
	debouncer *Debouncer
	suffix    string
	onChange  func([]string) error
	log       *zap.Logger
	stopChan  chan struct{}
	wg        sync.WaitGroup
}

// New creates a Watcher over the given root directories. suffix is the
// generated-file suffix to ignore, so writes by the generator itself do
// not retrigger it.
func New(roots []string, suffix string, log *zap.Logger, onChange func([]string) error) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if log == nil {
		log = zap.NewNop()
	}

	w := &Watcher{
		watcher:   fsw,
		debouncer: NewDebouncer(100 * time.Millisecond),
		suffix:    suffix,
		onChange:  onChange,
		log:       log,
		stopChan:  make(chan struct{}),
	}

	w.debouncer.SetCallback(func(files []string) {
		if err := w.onChange(files); err != nil {
			w.log.Warn("regeneration failed", zap.Error(err))
		}
	})

	for _, root := range roots {
		if err := w.addTree(root); err != nil {
			fsw.Close()
			return nil, err
		}
	}

	return w, nil
}

// Start begins watching in the background.
func (w *Watcher) Start() {
	w.wg.Add(1)
	go w.watch()
}

// Stop stops the watcher and waits for the event loop to exit.
func (w *Watcher) Stop() error {
	select {
	case <-w.stopChan:
		return nil
	default:
		close(w.stopChan)
	}

	w.wg.Wait()
	w.debouncer.Stop()
	return w.watcher.Close()
}

// addTree registers root and every non-ignored subdirectory.
func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !entry.IsDir() {
			return nil
		}
		if path != root && ignoredDir(entry.Name()) {
			return filepath.SkipDir
		}
		if err := w.watcher.Add(path); err != nil {
			return fmt.Errorf("failed to watch directory %s: %w", path, err)
		}
		w.log.Debug("watching directory", zap.String("path", path))
		return nil
	})
}

// watch is the main event loop
func (w *Watcher) watch() {
	defer w.wg.Done()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if !w.relevant(event.Name) {
				continue
			}

			// Only Write and Create can change directive content.
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				w.log.Debug("file changed", zap.String("path", event.Name))
				w.debouncer.Add(event.Name)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error", zap.Error(err))

		case <-w.stopChan:
			return
		}
	}
}

// relevant reports whether a changed path can affect generated output:
// a Go file that is not itself generated and not in an ignored location.
func (w *Watcher) relevant(path string) bool {
	base := filepath.Base(path)
	if !strings.HasSuffix(base, ".go") {
		return false
	}
	if strings.HasSuffix(base, w.suffix+".go") {
		return false
	}
	if strings.HasPrefix(base, ".") {
		return false
	}
	dir := filepath.Dir(path)
	for _, part := range strings.Split(filepath.ToSlash(dir), "/") {
		if part != "." && part != ".." && ignoredDir(part) {
			return false
		}
	}
	return true
}

func ignoredDir(name string) bool {
	return strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") ||
		name == "vendor" || name == "testdata"
}

// Debouncer collects file changes and triggers callbacks after a delay
type Debouncer struct {
	duration time.Duration
	timer    *time.Timer
	files    map[string]struct{}
	mutex    sync.Mutex
	callback func([]string)
}

// NewDebouncer creates a new debouncer instance
func NewDebouncer(duration time.Duration) *Debouncer {
	return &Debouncer{
		duration: duration,
		files:    make(map[string]struct{}),
	}
}

// Add adds a file to the debouncer
func (d *Debouncer) Add(file string) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.files[file] = struct{}{}

	if d.timer != nil {
		d.timer.Stop()
	}

	d.timer = time.AfterFunc(d.duration, func() {
		d.flush()
	})
}

// flush triggers the callback with accumulated files
func (d *Debouncer) flush() {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if len(d.files) == 0 {
		return
	}

	files := make([]string, 0, len(d.files))
	for file := range d.files {
		files = append(files, file)
	}
	d.files = make(map[string]struct{})

	if d.callback != nil {
		d.callback(files)
	}
}

// SetCallback sets the callback function
func (d *Debouncer) SetCallback(callback func([]string)) {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	d.callback = callback
}

// Stop cancels any pending flush
func (d *Debouncer) Stop() {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
}
