package creational

import (
	"fmt"
	"math"
)

// Shape is the factory method pattern's toy product interface.
type Shape interface {
	Name() string
	Area() float64
}

// Circle is a concrete product.
type Circle struct {
	Radius float64
}

func (c Circle) Name() string  { return "circle" }
func (c Circle) Area() float64 { return math.Pi * c.Radius * c.Radius }

// Square is a concrete product.
type Square struct {
	Side float64
}

func (s Square) Name() string  { return "square" }
func (s Square) Area() float64 { return s.Side * s.Side }

// NewShape is the factory method: callers name a kind and receive the
// matching concrete Shape without depending on its type.
func NewShape(kind string, size float64) (Shape, error) {
	switch kind {
	case "circle":
		return Circle{Radius: size}, nil
	case "square":
		return Square{Side: size}, nil
	default:
		return nil, fmt.Errorf("unknown shape kind %q", kind)
	}
}
