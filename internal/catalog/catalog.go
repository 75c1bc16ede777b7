// Package catalog registers the built-in design patterns into a registry:
// the metadata for every cataloged pattern and the demo function that
// exercises its snippet.
package catalog

import (
	"path/filepath"

	"github.com/conneroisu/gopatterns/internal/registry"
	"github.com/conneroisu/gopatterns/internal/types"
)

// Register fills reg with the built-in patterns. DocPath is resolved against
// docsDir as <docsDir>/<slug>.md.
func Register(reg *registry.PatternRegistry, docsDir string) {
	for _, pattern := range builtin() {
		pattern.DocPath = filepath.Join(docsDir, pattern.Slug+".md")
		reg.Register(pattern)
	}
}

func builtin() []*types.PatternInfo {
	patterns := creationalPatterns()
	patterns = append(patterns, structuralPatterns()...)
	patterns = append(patterns, behavioralPatterns()...)
	return patterns
}
