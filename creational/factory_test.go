package creational

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShape(t *testing.T) {
	tests := []struct {
		kind     string
		size     float64
		wantType Shape
		wantArea float64
	}{
		{"circle", 2, Circle{}, 4 * math.Pi},
		{"square", 3, Square{}, 9},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			shape, err := NewShape(tt.kind, tt.size)
			require.NoError(t, err)
			assert.IsType(t, tt.wantType, shape)
			assert.Equal(t, tt.kind, shape.Name())
			assert.InDelta(t, tt.wantArea, shape.Area(), 1e-9)
		})
	}
}

func TestNewShape_UnknownKind(t *testing.T) {
	shape, err := NewShape("triangle", 1)
	require.Error(t, err)
	assert.Nil(t, shape)
	assert.Contains(t, err.Error(), `unknown shape kind "triangle"`)
}
