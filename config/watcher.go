package config

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/pathtree/pathtree/observability"
	"github.com/pathtree/pathtree/router"
)

// RouterCallback is called with a freshly built router after every
// successful reload of the route table. Routers are never mutated in
// place; the consumer is expected to publish the new one with an
// atomic pointer swap.
type RouterCallback func(*router.Router)

// ErrorCallback is called when a reload fails.
type ErrorCallback func(error)

// Watcher watches a route table file and rebuilds the router when it
// changes.
type Watcher struct {
	path          string
	watcher       *fsnotify.Watcher
	registry      *EndpointRegistry
	callback      RouterCallback
	errorCallback ErrorCallback
	buildOpts     []router.BuilderOption
	logger        observability.Logger
	debounceDelay time.Duration
	mu            sync.Mutex
	stopCh        chan struct{}
	stoppedCh     chan struct{}
	running       bool
}

// WatcherOption is a functional option for configuring the watcher.
type WatcherOption func(*Watcher)

// WithDebounceDelay sets the debounce delay for file changes.
func WithDebounceDelay(delay time.Duration) WatcherOption {
	return func(w *Watcher) {
		w.debounceDelay = delay
	}
}

// WithLogger sets the logger for the watcher.
func WithLogger(logger observability.Logger) WatcherOption {
	return func(w *Watcher) {
		w.logger = logger
	}
}

// WithErrorCallback sets the error callback for the watcher.
func WithErrorCallback(callback ErrorCallback) WatcherOption {
	return func(w *Watcher) {
		w.errorCallback = callback
	}
}

// WithBuilderOptions sets the router builder options used on every
// rebuild.
func WithBuilderOptions(opts ...router.BuilderOption) WatcherOption {
	return func(w *Watcher) {
		w.buildOpts = opts
	}
}

// NewWatcher creates a new route table watcher.
func NewWatcher(path string, reg *EndpointRegistry, callback RouterCallback, opts ...WatcherOption) (*Watcher, error) {
	if callback == nil {
		return nil, fmt.Errorf("router callback is required")
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		path:          absPath,
		watcher:       fsWatcher,
		registry:      reg,
		callback:      callback,
		debounceDelay: 100 * time.Millisecond,
		logger:        observability.NopLogger(),
		stopCh:        make(chan struct{}),
		stoppedCh:     make(chan struct{}),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w, nil
}

// Start builds the router from the current file contents, delivers it
// to the callback, and begins watching for changes. The initial build
// failing is a startup error; later reload failures go to the error
// callback and leave the previous router in service.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	table, err := Load(w.path)
	if err != nil {
		return err
	}

	rt, err := BuildRouter(table, w.registry, w.buildOpts...)
	if err != nil {
		return err
	}
	w.callback(rt)

	// Watch the directory rather than the file itself so that
	// rename-based atomic writes keep being seen.
	dir := filepath.Dir(w.path)
	if err := w.watcher.Add(dir); err != nil {
		return err
	}

	w.logger.Info("started watching route table",
		observability.String("path", w.path),
	)

	go w.watch(ctx)

	return nil
}

// Stop stops watching the route table file.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.stoppedCh

	return w.watcher.Close()
}

// watch is the main watch loop.
func (w *Watcher) watch(ctx context.Context) {
	defer close(w.stoppedCh)

	var debounceTimer *time.Timer
	var debounceCh <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("route table watcher stopped due to context cancellation")
			return

		case <-w.stopCh:
			w.logger.Info("route table watcher stopped")
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			debounceTimer, debounceCh = w.handleFileEvent(event, debounceTimer, debounceCh)

		case <-debounceCh:
			debounceCh = nil
			w.reload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.handleWatchError(err)
		}
	}
}

// handleFileEvent processes a file system event and returns the
// updated debounce timer.
func (w *Watcher) handleFileEvent(
	event fsnotify.Event,
	debounceTimer *time.Timer,
	debounceCh <-chan time.Time,
) (timer *time.Timer, ch <-chan time.Time) {
	// Only process events for our route table file
	if filepath.Clean(event.Name) != w.path {
		return debounceTimer, debounceCh
	}

	if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
		return debounceTimer, debounceCh
	}

	w.logger.Debug("route table file changed",
		observability.String("path", event.Name),
		observability.String("op", event.Op.String()),
	)

	// Reset debounce timer
	if debounceTimer != nil {
		debounceTimer.Stop()
	}
	debounceTimer = time.NewTimer(w.debounceDelay)
	return debounceTimer, debounceTimer.C
}

// handleWatchError handles watcher errors.
func (w *Watcher) handleWatchError(err error) {
	w.logger.Error("route table watcher error",
		observability.Error(err),
	)
	if w.errorCallback != nil {
		w.errorCallback(err)
	}
}

// reload attempts to rebuild the router from the route table file.
func (w *Watcher) reload() {
	w.logger.Info("reloading route table",
		observability.String("path", w.path),
	)

	table, err := Load(w.path)
	if err != nil {
		w.logger.Error("failed to load route table",
			observability.Error(err),
		)
		if w.errorCallback != nil {
			w.errorCallback(err)
		}
		return
	}

	rt, err := BuildRouter(table, w.registry, w.buildOpts...)
	if err != nil {
		w.logger.Error("route table rejected",
			observability.Error(err),
		)
		if w.errorCallback != nil {
			w.errorCallback(err)
		}
		return
	}

	w.logger.Info("route table reloaded successfully")

	w.callback(rt)
}
