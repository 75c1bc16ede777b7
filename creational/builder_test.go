package creational

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHouseBuilder_ReflectsConfiguredParts(t *testing.T) {
	house := NewHouseBuilder().
		Walls(6).
		Doors(2).
		Windows(8).
		Roof("flat").
		Garage().
		Build()

	assert.Equal(t, House{
		Walls:     6,
		Doors:     2,
		Windows:   8,
		Roof:      "flat",
		HasGarage: true,
	}, house)
}

func TestHouseBuilder_ZeroValueWithoutSteps(t *testing.T) {
	assert.Equal(t, House{}, NewHouseBuilder().Build())
}

func TestDirector_Presets(t *testing.T) {
	var director Director

	cottage := director.Cottage()
	assert.Equal(t, 4, cottage.Walls)
	assert.Equal(t, "thatched", cottage.Roof)
	assert.True(t, cottage.HasGarden)
	assert.False(t, cottage.HasGarage)

	villa := director.Villa()
	assert.Equal(t, 8, villa.Walls)
	assert.True(t, villa.HasGarage)
	assert.True(t, villa.HasGarden)
}
