package behavioral

import "math"

// Figure is an element that accepts visitors; Accept dispatches to the
// visitor method for the concrete type.
type Figure interface {
	Accept(v FigureVisitor) float64
}

// FigureVisitor declares one visit method per concrete figure.
type FigureVisitor interface {
	VisitDot(Dot) float64
	VisitDisc(Disc) float64
	VisitBox(Box) float64
}

// Dot is a figure with no extent.
type Dot struct{}

func (d Dot) Accept(v FigureVisitor) float64 { return v.VisitDot(d) }

// Disc is a round figure.
type Disc struct {
	Radius float64
}

func (d Disc) Accept(v FigureVisitor) float64 { return v.VisitDisc(d) }

// Box is a rectangular figure.
type Box struct {
	Width, Height float64
}

func (b Box) Accept(v FigureVisitor) float64 { return v.VisitBox(b) }

// AreaVisitor computes areas without the figures knowing about area.
type AreaVisitor struct{}

func (AreaVisitor) VisitDot(Dot) float64     { return 0 }
func (AreaVisitor) VisitDisc(d Disc) float64 { return math.Pi * d.Radius * d.Radius }
func (AreaVisitor) VisitBox(b Box) float64   { return b.Width * b.Height }

// PerimeterVisitor is a second operation added without touching the figures.
type PerimeterVisitor struct{}

func (PerimeterVisitor) VisitDot(Dot) float64     { return 0 }
func (PerimeterVisitor) VisitDisc(d Disc) float64 { return 2 * math.Pi * d.Radius }
func (PerimeterVisitor) VisitBox(b Box) float64   { return 2 * (b.Width + b.Height) }

// TotalArea folds a visitor over a slice of figures.
func TotalArea(figures []Figure) float64 {
	var visitor AreaVisitor
	total := 0.0
	for _, figure := range figures {
		total += figure.Accept(visitor)
	}
	return total
}
