package creational

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactoryFor_FamiliesAreConsistent(t *testing.T) {
	tests := []struct {
		theme        string
		wantButton   string
		wantCheckbox string
	}{
		{"dark", "dark button pressed", "dark checkbox toggled"},
		{"light", "light button pressed", "light checkbox toggled"},
	}

	for _, tt := range tests {
		t.Run(tt.theme, func(t *testing.T) {
			factory, err := FactoryFor(tt.theme)
			require.NoError(t, err)

			assert.Equal(t, tt.wantButton, factory.NewButton().Press())
			assert.Equal(t, tt.wantCheckbox, factory.NewCheckbox().Toggle())
		})
	}
}

func TestFactoryFor_UnknownTheme(t *testing.T) {
	factory, err := FactoryFor("sepia")
	require.Error(t, err)
	assert.Nil(t, factory)
}
