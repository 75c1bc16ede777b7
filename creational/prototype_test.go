package creational

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport_Clone_DistinctButEqual(t *testing.T) {
	original := &Report{
		Title:    "Quarterly",
		Sections: []string{"intro", "numbers"},
		Labels:   map[string]string{"owner": "ops"},
	}

	clone := original.Clone()

	require.NotSame(t, original, clone)
	assert.Empty(t, cmp.Diff(original, clone))
}

func TestReport_Clone_MutationDoesNotLeak(t *testing.T) {
	original := &Report{
		Title:    "Quarterly",
		Sections: []string{"intro"},
		Labels:   map[string]string{"owner": "ops"},
	}

	clone := original.Clone()
	clone.Title = "Annual"
	clone.Sections[0] = "changed"
	clone.Sections = append(clone.Sections, "extra")
	clone.Labels["owner"] = "finance"

	assert.Equal(t, "Quarterly", original.Title)
	assert.Equal(t, []string{"intro"}, original.Sections)
	assert.Equal(t, "ops", original.Labels["owner"])
}

func TestReport_Clone_NilReferenceFields(t *testing.T) {
	original := &Report{Title: "Bare"}
	clone := original.Clone()

	assert.Nil(t, clone.Sections)
	assert.Nil(t, clone.Labels)
	assert.Empty(t, cmp.Diff(original, clone))
}
