package network

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/katalvlaran/roadtime/logging"
)

// DefaultDebounce is how long the watcher waits after the last event for a
// file before reloading it. Editors often write a file in several steps.
const DefaultDebounce = 100 * time.Millisecond

// Watcher reloads a network file whenever it changes on disk and publishes
// each successfully loaded Network on Updates. Files that fail to load are
// logged and skipped, so subscribers only ever see valid networks.
type Watcher struct {
	path     string
	debounce time.Duration
	watcher  *fsnotify.Watcher
	updates  chan Network
}

// NewWatcher creates a watcher for the network file at path.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("network: failed to resolve %s: %w", path, err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("network: failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		path:     abs,
		debounce: DefaultDebounce,
		watcher:  fw,
		updates:  make(chan Network, 1),
	}, nil
}

// Start watches the file's directory, which keeps working across editors
// that replace the file instead of writing it in place. Processing stops
// when ctx is cancelled or Close is called; Updates is closed then.
func (w *Watcher) Start(ctx context.Context) error {
	dir := filepath.Dir(w.path)
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("network: failed to watch %s: %w", dir, err)
	}
	logging.Info("watching network file", "path", w.path)

	go w.processEvents(ctx)

	return nil
}

// Updates returns the channel of reloaded networks.
func (w *Watcher) Updates() <-chan Network {
	return w.updates
}

// Close stops the underlying fsnotify watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.updates)

	flushTimer := time.NewTimer(w.debounce)
	flushTimer.Stop()

	for {
		select {
		case <-ctx.Done():
			w.watcher.Close()
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				logging.Debug("network file changed", "path", event.Name, "op", event.Op.String())
				flushTimer.Reset(w.debounce)
			}

		case <-flushTimer.C:
			n, err := Load(w.path)
			if err != nil {
				logging.Warn("ignoring network file", "path", w.path, "error", err)
				continue
			}
			logging.Info("network reloaded", "name", n.Name, "roads", len(n.Roads))
			select {
			case w.updates <- n:
			case <-ctx.Done():
				w.watcher.Close()
				return
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logging.Error("watcher error", "error", err)
		}
	}
}
