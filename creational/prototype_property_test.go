//go:build property
// +build property

package creational

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestPrototypeProperties checks the clone contract over generated reports.
func TestPrototypeProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("clone equals original", prop.ForAll(
		func(title string, sections []string) bool {
			original := &Report{
				Title:    title,
				Sections: sections,
				Labels:   map[string]string{"k": title},
			}
			clone := original.Clone()
			return clone != original && cmp.Diff(original, clone) == ""
		},
		gen.AlphaString(),
		gen.SliceOf(gen.AlphaString()),
	))

	properties.Property("mutating clone leaves original intact", prop.ForAll(
		func(title string, sections []string) bool {
			if len(sections) == 0 {
				return true
			}
			original := &Report{Title: title, Sections: sections}
			snapshot := original.Clone()

			clone := original.Clone()
			clone.Sections[0] = clone.Sections[0] + "-mutated"

			return cmp.Diff(original, snapshot) == ""
		},
		gen.AlphaString(),
		gen.SliceOf(gen.AlphaString()),
	))

	properties.TestingRun(t)
}
