package structural

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHomeTheater_WatchMovie(t *testing.T) {
	theater := NewHomeTheater()

	transcript := theater.WatchMovie("Metropolis")

	assert.Equal(t, []string{
		"lights dimmed",
		"amplifier on",
		"projector on",
		"playing Metropolis",
	}, transcript)
}

func TestHomeTheater_EndMovie(t *testing.T) {
	theater := NewHomeTheater()

	assert.Equal(t, []string{
		"projector off",
		"amplifier off",
		"lights raised",
	}, theater.EndMovie())
}
