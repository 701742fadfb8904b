// ============================================================================
// debugger - Diagnostics facade
// ============================================================================
//
// Package:     config
// Description: Hot reload of debugger settings on file change
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package config

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"

	"github.com/msto63/debugger/pkg/core/debugger"
)

// Watcher reloads a settings file when it changes and applies it to a Debugger
type Watcher struct {
	mu        sync.RWMutex
	path      string
	envPrefix string
	debounce  time.Duration
	target    *debugger.Debugger
	watcher   *fsnotify.Watcher
	onReload  func(*Settings)
	onError   func(error)
	stopCh    chan struct{}
	doneCh    chan struct{}
	running   bool
}

// NewWatcher creates a watcher for path. Environment overrides under
// envPrefix are re-applied after every reload.
func NewWatcher(path string, target *debugger.Debugger, envPrefix string, debounce time.Duration) *Watcher {
	if debounce <= 0 {
		debounce = 100 * time.Millisecond
	}
	return &Watcher{
		path:      filepath.Clean(path),
		envPrefix: envPrefix,
		debounce:  debounce,
		target:    target,
	}
}

// OnReload sets a callback run after each successful reload
func (w *Watcher) OnReload(fn func(*Settings)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onReload = fn
}

// OnError sets a callback for reload failures. The previous settings stay in effect.
func (w *Watcher) OnError(fn func(error)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onError = fn
}

// Start begins watching. It returns once the watch is registered; events
// are handled until ctx is done or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return errors.New("watcher already running")
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "failed to create watcher")
	}
	// Editors replace files by rename, so watch the directory.
	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		fw.Close()
		return errors.Wrapf(err, "failed to watch %s", filepath.Dir(w.path))
	}

	w.watcher = fw
	w.stopCh = make(chan struct{})
	w.doneCh = make(chan struct{})
	w.running = true

	go w.watchLoop(ctx, fw, w.stopCh, w.doneCh)
	return nil
}

// Stop ends watching and waits for the event loop to exit
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	close(w.stopCh)
	done := w.doneCh
	w.mu.Unlock()

	<-done
}

// IsRunning returns whether the watcher is active
func (w *Watcher) IsRunning() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.running
}

// Reload loads the file now and applies it
func (w *Watcher) Reload() error {
	s, err := Load(w.path)
	if err != nil {
		return err
	}
	if err := s.ApplyEnv(w.envPrefix); err != nil {
		return err
	}
	if err := s.Apply(w.target); err != nil {
		return err
	}

	w.mu.RLock()
	onReload := w.onReload
	w.mu.RUnlock()
	if onReload != nil {
		onReload(s)
	}
	return nil
}

// watchLoop handles file system events
func (w *Watcher) watchLoop(ctx context.Context, fw *fsnotify.Watcher, stop, done chan struct{}) {
	defer close(done)
	defer fw.Close()

	// A single save often produces several events
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			w.mu.Lock()
			w.running = false
			w.mu.Unlock()
			return

		case <-stop:
			return

		case event, ok := <-fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
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
			if err := w.Reload(); err != nil {
				w.reportError(err)
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			w.reportError(errors.Wrap(err, "watch error"))
		}
	}
}

func (w *Watcher) reportError(err error) {
	w.mu.RLock()
	onError := w.onError
	w.mu.RUnlock()
	if onError != nil {
		onError(err)
	}
}
