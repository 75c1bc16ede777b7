package behavioral

import "fmt"

// ShippingStrategy computes a delivery cost; strategies are interchangeable
// at runtime.
type ShippingStrategy interface {
	Cost(weightKg float64) float64
	Label() string
}

// RoadShipping is the cheap, slow strategy.
type RoadShipping struct{}

func (RoadShipping) Cost(weightKg float64) float64 { return 1.5 * weightKg }
func (RoadShipping) Label() string                 { return "road" }

// AirShipping is the fast, expensive strategy.
type AirShipping struct{}

func (AirShipping) Cost(weightKg float64) float64 { return 4.0*weightKg + 10 }
func (AirShipping) Label() string                 { return "air" }

// Parcel is the context: it holds a strategy and uses it without knowing
// which one it is.
type Parcel struct {
	WeightKg float64
	strategy ShippingStrategy
}

// NewParcel creates a parcel shipped by road unless told otherwise.
func NewParcel(weightKg float64) *Parcel {
	return &Parcel{WeightKg: weightKg, strategy: RoadShipping{}}
}

// SetStrategy swaps the shipping strategy at runtime.
func (p *Parcel) SetStrategy(s ShippingStrategy) {
	p.strategy = s
}

// Quote prints the delivery quote under the current strategy.
func (p *Parcel) Quote() string {
	return fmt.Sprintf("%s: %.2f", p.strategy.Label(), p.strategy.Cost(p.WeightKg))
}
