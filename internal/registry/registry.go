// Package registry maintains the in-memory catalog of design patterns and
// notifies watchers when entries change.
package registry

import (
	"sort"
	"sync"
	"time"

	"github.com/conneroisu/gopatterns/internal/types"
)

// PatternRegistry manages all cataloged patterns
type PatternRegistry struct {
	patterns map[string]*types.PatternInfo
	mutex    sync.RWMutex
	watchers []chan types.PatternEvent
}

// NewPatternRegistry creates an empty pattern registry
func NewPatternRegistry() *PatternRegistry {
	return &PatternRegistry{
		patterns: make(map[string]*types.PatternInfo),
		watchers: make([]chan types.PatternEvent, 0),
	}
}

// Register adds or updates a pattern in the registry, keyed by slug
func (r *PatternRegistry) Register(pattern *types.PatternInfo) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	eventType := types.EventTypeAdded
	if _, exists := r.patterns[pattern.Slug]; exists {
		eventType = types.EventTypeUpdated
	}

	r.patterns[pattern.Slug] = pattern

	r.notify(types.PatternEvent{
		Type:      eventType,
		Pattern:   pattern,
		Timestamp: time.Now(),
	})
}

// Get retrieves a pattern by slug
func (r *PatternRegistry) Get(slug string) (*types.PatternInfo, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	pattern, exists := r.patterns[slug]
	return pattern, exists
}

// GetAll returns all registered patterns keyed by slug
func (r *PatternRegistry) GetAll() map[string]*types.PatternInfo {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	result := make(map[string]*types.PatternInfo, len(r.patterns))
	for slug, pattern := range r.patterns {
		result[slug] = pattern
	}
	return result
}

// All returns the patterns sorted by category (catalog order) then slug.
func (r *PatternRegistry) All() []*types.PatternInfo {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	result := make([]*types.PatternInfo, 0, len(r.patterns))
	for _, pattern := range r.patterns {
		result = append(result, pattern)
	}

	order := map[types.Category]int{}
	for i, c := range types.Categories() {
		order[c] = i
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Category != result[j].Category {
			return order[result[i].Category] < order[result[j].Category]
		}
		return result[i].Slug < result[j].Slug
	})
	return result
}

// ByCategory returns the patterns of one category sorted by slug.
func (r *PatternRegistry) ByCategory(category types.Category) []*types.PatternInfo {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	result := make([]*types.PatternInfo, 0)
	for _, pattern := range r.patterns {
		if pattern.Category == category {
			result = append(result, pattern)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Slug < result[j].Slug })
	return result
}

// Remove removes a pattern from the registry
func (r *PatternRegistry) Remove(slug string) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	pattern, exists := r.patterns[slug]
	if !exists {
		return
	}

	delete(r.patterns, slug)

	r.notify(types.PatternEvent{
		Type:      types.EventTypeRemoved,
		Pattern:   pattern,
		Timestamp: time.Now(),
	})
}

// Watch returns a channel that receives pattern events
func (r *PatternRegistry) Watch() <-chan types.PatternEvent {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	ch := make(chan types.PatternEvent, 100)
	r.watchers = append(r.watchers, ch)
	return ch
}

// UnWatch removes a watcher channel and closes it
func (r *PatternRegistry) UnWatch(ch <-chan types.PatternEvent) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for i, watcher := range r.watchers {
		if watcher == ch {
			close(watcher)
			r.watchers = append(r.watchers[:i], r.watchers[i+1:]...)
			break
		}
	}
}

// Count returns the number of registered patterns
func (r *PatternRegistry) Count() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return len(r.patterns)
}

// notify fans the event out to watchers. Callers must hold the lock.
func (r *PatternRegistry) notify(event types.PatternEvent) {
	for _, watcher := range r.watchers {
		select {
		case watcher <- event:
		default:
			// Skip if channel is full
		}
	}
}
