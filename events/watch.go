package events

import (
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const reloadDebounce = 100 * time.Millisecond

// Watcher reports changed event documents under a set of directories.
// Events carries the changed file path once the directory has been quiet
// for the debounce interval, so a burst of writes reports each file once,
// after its last write.
type Watcher struct {
	fs      *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewWatcher starts watching dirs.
func NewWatcher(dirs ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, err
		}
	}
	w := &Watcher{
		fs:      fw,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Close stops the watcher. Events and Errors are closed once the
// goroutine exits.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.fs.Close()
		<-w.done
	})
	return err
}

func (w *Watcher) run() {
	defer func() {
		close(w.Events)
		close(w.Errors)
		close(w.done)
	}()
	pending := make(map[string]struct{})
	quiet := time.NewTimer(reloadDebounce)
	quiet.Stop()
	defer quiet.Stop()
	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if !IsDocumentFile(ev.Name) {
				continue
			}
			pending[ev.Name] = struct{}{}
			quiet.Reset(reloadDebounce)
		case <-quiet.C:
			if !w.flush(pending) {
				return
			}
		case err, ok := <-w.fs.Errors:
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

// flush sends the pending paths in name order. It returns false when the
// watcher closed while sending.
func (w *Watcher) flush(pending map[string]struct{}) bool {
	paths := make([]string, 0, len(pending))
	for p := range pending {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	for _, p := range paths {
		delete(pending, p)
		select {
		case w.Events <- p:
		case <-w.closeCh:
			return false
		}
	}
	return true
}
