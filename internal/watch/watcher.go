// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package watch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ChangeFunc receives the content of the watched file after it settles.
type ChangeFunc func(content string)

// Watcher watches one file for external changes.
type Watcher struct {
	path     string
	debounce time.Duration
	onChange ChangeFunc

	watcher *fsnotify.Watcher

	mu      sync.Mutex
	pending time.Time // zero when nothing is pending
	last    string
	hasLast bool

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a watcher for path. Nothing is watched until Start.
func New(path string, debounce time.Duration, onChange ChangeFunc) (*Watcher, error) {
	if onChange == nil {
		return nil, errors.New("watch: nil change callback")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	return &Watcher{
		path:     abs,
		debounce: debounce,
		onChange: onChange,
		watcher:  fw,
	}, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Start begins watching. The current content, if any, is taken as already
// known and is not reported. Watching stops when ctx is done or on Close.
func (w *Watcher) Start(ctx context.Context) error {
	dir := filepath.Dir(w.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	if data, err := os.ReadFile(w.path); err == nil {
		w.mu.Lock()
		w.last, w.hasLast = string(data), true
		w.mu.Unlock()
	}

	ctx, w.cancel = context.WithCancel(ctx)
	w.wg.Add(2)
	go w.processEvents(ctx)
	go w.processPending(ctx)
	return nil
}

// Close stops watching and waits for the background goroutines.
func (w *Watcher) Close() error {
	if w.cancel != nil {
		w.cancel()
	}
	err := w.watcher.Close()
	w.wg.Wait()
	return err
}

// processEvents marks the file pending on any event that can change it.
func (w *Watcher) processEvents(ctx context.Context) {
	defer w.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				w.mu.Lock()
				w.pending = time.Now()
				w.mu.Unlock()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("watch: %s: %v", w.path, err)
		}
	}
}

// processPending reports a pending change once no event arrived for the
// debounce interval.
func (w *Watcher) processPending(ctx context.Context) {
	defer w.wg.Done()

	tick := w.debounce / 2
	if tick < 10*time.Millisecond {
		tick = 10 * time.Millisecond
	}
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case now := <-ticker.C:
			w.mu.Lock()
			ready := !w.pending.IsZero() && now.Sub(w.pending) >= w.debounce
			if ready {
				w.pending = time.Time{}
			}
			w.mu.Unlock()

			if ready {
				w.report()
			}
		}
	}
}

// report reads the file and invokes the callback if the content differs from
// the last content seen.
func (w *Watcher) report() {
	data, err := os.ReadFile(w.path)
	if errors.Is(err, fs.ErrNotExist) {
		// Removed, or mid-replace; the next Create will report it.
		return
	}
	if err != nil {
		log.Printf("watch: failed to read %s: %v", w.path, err)
		return
	}

	content := string(data)
	w.mu.Lock()
	if w.hasLast && content == w.last {
		w.mu.Unlock()
		return
	}
	w.last, w.hasLast = content, true
	w.mu.Unlock()

	w.onChange(content)
}

// Acknowledge records content as already known, so a write of it by this
// process is not reported back.
func (w *Watcher) Acknowledge(content string) {
	w.mu.Lock()
	w.last, w.hasLast = content, true
	w.mu.Unlock()
}
