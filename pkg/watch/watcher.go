// Package watch delivers source-tree change events to the reconciler. It
// is a thin adapter over fsnotify: the engine itself has no dependency on
// any particular notification mechanism and only consumes the event
// channel, so a polling scanner could be substituted on platforms without
// native notification support.
package watch

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/isaacfidler/cratedig/pkg/errors"
	"github.com/isaacfidler/cratedig/pkg/logging"
	"github.com/isaacfidler/cratedig/pkg/types"
)

const (
	// eventBuffer bounds the outgoing event channel. A full sync cures
	// any gap, so dropping under extreme pressure is acceptable.
	eventBuffer = 1024

	// settleDelay is how long a newly created file gets to finish
	// writing before its Added event is delivered. Sample packs
	// download in bursts of partially written files.
	settleDelay = 500 * time.Millisecond
)

// Watcher watches the source root recursively and emits Added/Removed
// events for sample files. fsnotify does not watch recursively on its
// own; directories are registered as they are discovered.
type Watcher struct {
	root       string
	extensions map[string]bool
	watcher    *fsnotify.Watcher
	events     chan types.Event
	done       chan struct{}
	logger     zerolog.Logger
}

// New creates a watcher for root, filtering to the given extensions.
func New(root string, extensions []string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrWatchInit, "failed to create fsnotify watcher")
	}

	exts := make(map[string]bool, len(extensions))
	for _, e := range extensions {
		exts[strings.ToLower(e)] = true
	}

	return &Watcher{
		root:       root,
		extensions: exts,
		watcher:    fsw,
		events:     make(chan types.Event, eventBuffer),
		done:       make(chan struct{}),
		logger:     logging.GetLogger("watch"),
	}, nil
}

// Start registers every existing directory under the root and begins the
// event loop.
func (w *Watcher) Start() error {
	if err := w.addTree(w.root, false); err != nil {
		return errors.Wrapf(err, errors.ErrWatchInit, "failed to watch %s", w.root)
	}
	go w.loop()
	w.logger.Info().Str("root", w.root).Msg("Watching for changes")
	return nil
}

// Events returns the outgoing event channel. The channel is never
// closed; consumers leave via their own context.
func (w *Watcher) Events() <-chan types.Event {
	return w.events
}

// Stop shuts the watcher down and closes the event channel.
func (w *Watcher) Stop() error {
	close(w.done)
	return w.watcher.Close()
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handle(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn().
				Err(errors.Wrap(err, errors.ErrWatchEvent, "event delivery failed")).
				Msg("Watcher error")
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	switch {
	case event.Op&fsnotify.Create != 0:
		info, err := os.Stat(event.Name)
		if err != nil {
			return
		}
		if info.IsDir() {
			// A new pack directory: files may already exist inside
			// before the watch is registered, so announce them too.
			if err := w.addTree(event.Name, true); err != nil {
				w.logger.Warn().Err(err).Str("dir", event.Name).Msg("Failed to watch new directory")
			}
			return
		}
		if w.isSample(event.Name) {
			w.emitAfterSettle(event.Name)
		}

	case event.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
		if w.isSample(event.Name) {
			w.emit(types.Event{Kind: types.EventRemoved, Path: event.Name})
		}
	}
}

// addTree registers dir and every directory below it. When announce is
// set, sample files found along the way are emitted as Added.
func (w *Watcher) addTree(dir string, announce bool) error {
	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if info.IsDir() {
			return w.watcher.Add(path)
		}
		if announce && w.isSample(path) {
			w.emitAfterSettle(path)
		}
		return nil
	})
}

// emitAfterSettle delivers an Added event once the file has had a moment
// to finish writing. Delivery order across files is not guaranteed; the
// reconciler's diff is idempotent, so that is fine.
func (w *Watcher) emitAfterSettle(path string) {
	time.AfterFunc(settleDelay, func() {
		select {
		case <-w.done:
		default:
			w.emit(types.Event{Kind: types.EventAdded, Path: path})
		}
	})
}

func (w *Watcher) emit(event types.Event) {
	select {
	case w.events <- event:
	default:
		// Channel full: drop. The next full sync reconciles the gap.
		w.logger.Warn().Str("path", event.Path).Msg("Event buffer full, dropping event")
	}
}

func (w *Watcher) isSample(path string) bool {
	return w.extensions[strings.ToLower(filepath.Ext(path))]
}
