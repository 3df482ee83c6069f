// Package watch reloads configuration when YAML files change on disk.
package watch

import (
	"log"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/younwookim/kingsandpigs/internal/infrastructure/config"
)

// Debounce is the minimum gap between two events for the same file
const Debounce = 100 * time.Millisecond

// Watcher reports changed YAML files under the watched directories
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// NewWatcher starts watching dirs
func NewWatcher(dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.Events)
	defer close(w.Errors)

	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !IsConfigFile(event.Name) {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < Debounce {
				continue
			}
			last[event.Name] = now
			select {
			case w.Events <- event.Name:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

// IsConfigFile reports whether path has a YAML extension
func IsConfigFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// Forward reloads every config through loader on each change and sends
// the result to out. A config that fails to load is logged and skipped,
// so the game keeps its last good config. out should have a buffer of
// one. Forward returns when the watcher is closed.
func (w *Watcher) Forward(loader *config.Loader, out chan *config.GameConfig) {
	for {
		select {
		case name, ok := <-w.Events:
			if !ok {
				return
			}
			cfg, err := loader.LoadAll()
			if err != nil {
				log.Printf("[Watch] reload after %s failed: %v", filepath.Base(name), err)
				continue
			}
			log.Printf("[Watch] reloaded after %s", filepath.Base(name))
			// Only the newest config matters; drop a stale one if the reader is behind.
			select {
			case out <- cfg:
			default:
				select {
				case <-out:
				default:
				}
				out <- cfg
			}
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			log.Printf("[Watch] %v", err)
		}
	}
}
