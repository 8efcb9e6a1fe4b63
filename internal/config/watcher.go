package config

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"

	"leapview/internal/eventbus"
)

// Watcher reloads the config file when it changes on disk and publishes a
// ConfigChangedEvent with the new value. Invalid files are reported as
// ErrorEvents and the previous config stays in effect.
type Watcher struct {
	svc      ConfigService
	bus      eventbus.EventBus
	path     string
	debounce time.Duration

	fsw  *fsnotify.Watcher
	once sync.Once
}

// WatcherOption configures a Watcher
type WatcherOption func(*Watcher)

// WithDebounce sets how long to wait for writes to settle before reloading
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d >= 0 {
			w.debounce = d
		}
	}
}

// NewWatcher creates a watcher for the service's config path. The parent
// directory is watched rather than the file so that editors which replace
// the file on save are still observed.
func NewWatcher(svc ConfigService, bus eventbus.EventBus, opts ...WatcherOption) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	path, err := filepath.Abs(svc.Path())
	if err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to resolve config path: %w", err)
	}

	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(path), err)
	}

	w := &Watcher{
		svc:      svc,
		bus:      bus,
		path:     path,
		debounce: 100 * time.Millisecond,
		fsw:      fsw,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Run processes file events until ctx is done or the watcher is closed
func (w *Watcher) Run(ctx context.Context) {
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			w.reload()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			logrus.Warnf("Config watcher error: %v", err)
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := w.svc.LoadFromPath(w.path)
	if err != nil {
		logrus.Warnf("Ignoring config change: %v", err)
		if w.bus != nil {
			w.bus.Publish(eventbus.ErrorEvent{Message: "config reload failed", Err: err})
		}
		return
	}

	logrus.Infof("Config reloaded from %s", w.path)
	if w.bus != nil {
		w.bus.Publish(eventbus.ConfigChangedEvent{Path: w.path, Config: cfg})
	}
}

// Close stops watching
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		err = w.fsw.Close()
	})
	return err
}
