package backend

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/atomicstack/pushmenu/internal/logging/events"
	"github.com/cockroachdb/errors"
	"github.com/fsnotify/fsnotify"
)

// Event reports that the watched menu file changed, or that watching failed.
type Event struct {
	Path string
	Op   string
	Err  error
}

// Watcher publishes an event whenever the menu file is written, created or
// renamed into place. Bursts of filesystem notifications within the settle
// interval collapse into one event.
type Watcher struct {
	path   string
	settle time.Duration

	fs     *fsnotify.Watcher
	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher starts watching path. The parent directory is watched rather
// than the file itself so editors that save by rename are still observed.
func NewWatcher(path string, settle time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, "resolve %s", path)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "create file watcher")
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, errors.Wrapf(err, "watch %s", filepath.Dir(abs))
	}
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		path:   abs,
		settle: settle,
		fs:     fsw,
		ctx:    ctx,
		cancel: cancel,
		events: make(chan Event, 16),
	}
	events.Watch.Start(abs)

	w.wg.Add(1)
	go w.run()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w, nil
}

// Events returns a channel of change notifications. It is closed once the
// watcher has stopped.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Stop cancels the watcher.
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the watcher goroutine has exited and the events channel
// is closed.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) run() {
	defer w.wg.Done()
	defer w.fs.Close()

	throttle := newThrottle(w.settle)
	var (
		timer   *time.Timer
		fire    <-chan time.Time
		pending string
	)
	stopTimer := func() {
		if timer != nil {
			timer.Stop()
		}
	}
	defer stopTimer()

	emit := func(evt Event) bool {
		select {
		case <-w.ctx.Done():
			return false
		case w.events <- evt:
			return true
		}
	}

	for {
		select {
		case <-w.ctx.Done():
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			events.Watch.Change(ev.Name, ev.Op.String())
			pending = ev.Op.String()
			stopTimer()
			timer = time.NewTimer(w.settle)
			fire = timer.C
		case <-fire:
			fire = nil
			if !throttle.wait(w.ctx) {
				return
			}
			if !emit(Event{Path: w.path, Op: pending}) {
				return
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			if !emit(Event{Path: w.path, Err: errors.Wrap(err, "watch menu file")}) {
				return
			}
		}
	}
}
