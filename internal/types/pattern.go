// Package types provides common type definitions used throughout the
// gopatterns CLI. This package contains shared types to avoid circular
// dependencies between the registry, catalog, docs, and renderer packages.
package types

import (
	"io"
	"time"
)

// Category is one of the three classic pattern categories.
type Category string

const (
	CategoryCreational Category = "creational"
	CategoryStructural Category = "structural"
	CategoryBehavioral Category = "behavioral"
)

// Categories returns the categories in catalog order.
func Categories() []Category {
	return []Category{CategoryCreational, CategoryStructural, CategoryBehavioral}
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategoryCreational, CategoryStructural, CategoryBehavioral:
		return true
	}
	return false
}

// DemoFunc runs a pattern's illustrative example, writing its transcript to w.
type DemoFunc func(w io.Writer) error

// PatternInfo contains the catalog metadata for a single design pattern,
// including the documentation page it is paired with and the runnable demo
// that exercises the pattern's toy snippet.
type PatternInfo struct {
	// Slug is the pattern identifier used on the command line and as the
	// doc page filename (e.g. "abstract-factory")
	Slug string
	// Name is the display name (e.g. "Abstract Factory")
	Name string
	// Category is the classic category the pattern belongs to
	Category Category
	// Intent is the one-sentence statement of what the pattern is for
	Intent string
	// AlsoKnownAs lists alternative names from the literature
	AlsoKnownAs []string
	// Participants maps the pattern's textbook roles to the Go elements
	// that play them in the snippet
	Participants []Participant
	// DocPath is the path to the pattern's documentation page, resolved
	// against the configured docs directory
	DocPath string
	// Demo runs the pattern's example (nil only in partially-built tests)
	Demo DemoFunc
}

// Participant maps one textbook role to the snippet element playing it.
type Participant struct {
	// Role is the role name from the pattern write-up (e.g. "ConcreteBuilder")
	Role string
	// Element is the Go type or function playing the role (e.g. "HouseBuilder")
	Element string
}

// DocMeta is the YAML front matter of a pattern documentation page.
type DocMeta struct {
	Slug        string   `yaml:"slug"`
	Name        string   `yaml:"name"`
	Category    string   `yaml:"category"`
	Intent      string   `yaml:"intent"`
	AlsoKnownAs []string `yaml:"also_known_as,omitempty"`
}

// EventType represents the type of pattern change event.
type EventType string

const (
	EventTypeAdded   EventType = "added"
	EventTypeUpdated EventType = "updated"
	EventTypeRemoved EventType = "removed"
)

// PatternEvent represents a change in the pattern registry, delivered to
// watchers such as the validate-on-change loop.
type PatternEvent struct {
	// Type indicates the kind of change (added, updated, removed)
	Type EventType
	// Pattern contains the pattern information
	Pattern *PatternInfo
	// Timestamp records when the change occurred
	Timestamp time.Time
}
