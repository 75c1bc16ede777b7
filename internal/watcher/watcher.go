// Package watcher watches the docs directory for changes with debouncing, so
// a burst of editor writes triggers a single re-validation.
package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DocsWatcher watches documentation files for changes
type DocsWatcher struct {
	watcher   *fsnotify.Watcher
	debouncer *debouncer
	filters   []FileFilter
	handlers  []ChangeHandler
	mutex     sync.RWMutex
}

// ChangeEvent represents a file change event
type ChangeEvent struct {
	Type    EventType
	Path    string
	ModTime time.Time
}

// EventType represents the type of file change
type EventType int

const (
	EventTypeCreated EventType = iota
	EventTypeModified
	EventTypeDeleted
	EventTypeRenamed
)

// String returns the string representation of the EventType
func (e EventType) String() string {
	switch e {
	case EventTypeCreated:
		return "created"
	case EventTypeModified:
		return "modified"
	case EventTypeDeleted:
		return "deleted"
	case EventTypeRenamed:
		return "renamed"
	default:
		return "unknown"
	}
}

// FileFilter determines if a file change should be considered
type FileFilter func(path string) bool

// ChangeHandler handles a debounced batch of file change events
type ChangeHandler func(events []ChangeEvent) error

// debouncer groups rapid file changes together
type debouncer struct {
	delay   time.Duration
	events  chan ChangeEvent
	output  chan []ChangeEvent
	timer   *time.Timer
	pending []ChangeEvent
	mutex   sync.Mutex
}

// NewDocsWatcher creates a watcher that batches changes with debounceDelay
func NewDocsWatcher(debounceDelay time.Duration) (*DocsWatcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &DocsWatcher{
		watcher: fsWatcher,
		debouncer: &debouncer{
			delay:   debounceDelay,
			events:  make(chan ChangeEvent, 100),
			output:  make(chan []ChangeEvent, 10),
			pending: make([]ChangeEvent, 0),
		},
		filters:  make([]FileFilter, 0),
		handlers: make([]ChangeHandler, 0),
	}, nil
}

// AddFilter adds a file filter
func (dw *DocsWatcher) AddFilter(filter FileFilter) {
	dw.mutex.Lock()
	defer dw.mutex.Unlock()
	dw.filters = append(dw.filters, filter)
}

// AddHandler adds a change handler
func (dw *DocsWatcher) AddHandler(handler ChangeHandler) {
	dw.mutex.Lock()
	defer dw.mutex.Unlock()
	dw.handlers = append(dw.handlers, handler)
}

// AddPath adds a directory to watch
func (dw *DocsWatcher) AddPath(path string) error {
	cleanPath := filepath.Clean(path)
	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("path contains directory traversal: %s", path)
	}
	return dw.watcher.Add(cleanPath)
}

// Start starts the watcher goroutines; they stop when ctx is cancelled
func (dw *DocsWatcher) Start(ctx context.Context) {
	go dw.debouncer.run(ctx)
	go dw.dispatchLoop(ctx)
	go dw.watchLoop(ctx)
}

// Stop stops the watcher and releases its resources
func (dw *DocsWatcher) Stop() error {
	dw.debouncer.mutex.Lock()
	if dw.debouncer.timer != nil {
		dw.debouncer.timer.Stop()
	}
	dw.debouncer.mutex.Unlock()
	return dw.watcher.Close()
}

func (dw *DocsWatcher) watchLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-dw.watcher.Events:
			if !ok {
				return
			}
			dw.handleFsnotifyEvent(event)
		case _, ok := <-dw.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are transient; keep watching
		}
	}
}

func (dw *DocsWatcher) handleFsnotifyEvent(event fsnotify.Event) {
	dw.mutex.RLock()
	filters := dw.filters
	dw.mutex.RUnlock()

	for _, filter := range filters {
		if !filter(event.Name) {
			return
		}
	}

	var modTime time.Time
	if info, err := os.Stat(event.Name); err == nil {
		modTime = info.ModTime()
	}

	var eventType EventType
	switch {
	case event.Op.Has(fsnotify.Create):
		eventType = EventTypeCreated
	case event.Op.Has(fsnotify.Write):
		eventType = EventTypeModified
	case event.Op.Has(fsnotify.Remove):
		eventType = EventTypeDeleted
	case event.Op.Has(fsnotify.Rename):
		eventType = EventTypeRenamed
	default:
		eventType = EventTypeModified
	}

	select {
	case dw.debouncer.events <- ChangeEvent{Type: eventType, Path: event.Name, ModTime: modTime}:
	default:
		// Channel full, skip this event
	}
}

func (dw *DocsWatcher) dispatchLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case events := <-dw.debouncer.output:
			dw.mutex.RLock()
			handlers := dw.handlers
			dw.mutex.RUnlock()

			for _, handler := range handlers {
				// Handler errors are the handler's to report
				_ = handler(events)
			}
		}
	}
}

func (d *debouncer) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event := <-d.events:
			d.addEvent(event)
		}
	}
}

func (d *debouncer) addEvent(event ChangeEvent) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.pending = append(d.pending, event)

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.flush)
}

func (d *debouncer) flush() {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if len(d.pending) == 0 {
		return
	}

	// Deduplicate events by path, keeping the latest
	eventMap := make(map[string]ChangeEvent, len(d.pending))
	for _, event := range d.pending {
		eventMap[event.Path] = event
	}

	events := make([]ChangeEvent, 0, len(eventMap))
	for _, event := range eventMap {
		events = append(events, event)
	}

	select {
	case d.output <- events:
	default:
		// Channel full, skip
	}

	d.pending = d.pending[:0]
}

// MarkdownFilter keeps only markdown files
func MarkdownFilter(path string) bool {
	return filepath.Ext(path) == ".md"
}

// NoHiddenFilter drops dotfiles and editor swap directories
func NoHiddenFilter(path string) bool {
	base := filepath.Base(path)
	return !strings.HasPrefix(base, ".")
}
