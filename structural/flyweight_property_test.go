//go:build property
// +build property

package structural

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestFlyweightProperties checks the interning contract over generated keys.
func TestFlyweightProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("same key always yields the same instance", prop.ForAll(
		func(species, color string) bool {
			factory := NewTreeKindFactory()
			return factory.Kind(species, color) == factory.Kind(species, color)
		},
		gen.AlphaString(),
		gen.AlphaString(),
	))

	properties.Property("kind count never exceeds distinct keys", prop.ForAll(
		func(species []string) bool {
			factory := NewTreeKindFactory()
			distinct := make(map[string]bool)
			for _, s := range species {
				factory.Kind(s, "green")
				distinct[s] = true
			}
			return factory.Count() == len(distinct)
		},
		gen.SliceOf(gen.AlphaString()),
	))

	properties.TestingRun(t)
}
