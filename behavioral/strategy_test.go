package behavioral

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParcel_DefaultStrategy(t *testing.T) {
	parcel := NewParcel(10)

	assert.Equal(t, "road: 15.00", parcel.Quote())
}

func TestParcel_SwapStrategyAtRuntime(t *testing.T) {
	parcel := NewParcel(10)

	parcel.SetStrategy(AirShipping{})
	assert.Equal(t, "air: 50.00", parcel.Quote())

	parcel.SetStrategy(RoadShipping{})
	assert.Equal(t, "road: 15.00", parcel.Quote())
}

func TestShippingStrategies_CostFormulas(t *testing.T) {
	assert.InDelta(t, 3.0, RoadShipping{}.Cost(2), 1e-9)
	assert.InDelta(t, 18.0, AirShipping{}.Cost(2), 1e-9)
}
