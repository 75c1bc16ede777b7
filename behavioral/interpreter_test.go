package behavioral

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExpr_Evaluates(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"7", 7},
		{"1 + 2", 3},
		{"1 + 2 - 3", 0},
		{"10 - 4 + 1", 7},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expr, err := ParseExpr(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, expr.Interpret())
		})
	}
}

func TestParseExpr_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"dangling operator", "1 +"},
		{"unknown operator", "1 * 2"},
		{"not a number", "one + 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseExpr(tt.input)
			assert.Error(t, err)
		})
	}
}

func TestExpr_ManualTree(t *testing.T) {
	// (4 - 1) + 2
	expr := Plus{Left: Minus{Left: Number(4), Right: Number(1)}, Right: Number(2)}
	assert.Equal(t, 5, expr.Interpret())
}
