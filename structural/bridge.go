package structural

import "fmt"

// Sketcher is the implementation side of the bridge: how a figure is drawn.
type Sketcher interface {
	SketchCircle(radius float64) string
}

// VectorSketcher draws with paths.
type VectorSketcher struct{}

func (VectorSketcher) SketchCircle(radius float64) string {
	return fmt.Sprintf("vector circle r=%.1f", radius)
}

// RasterSketcher draws with pixels.
type RasterSketcher struct{}

func (RasterSketcher) SketchCircle(radius float64) string {
	return fmt.Sprintf("raster circle r=%.1f", radius)
}

// CircleFigure is the abstraction side: a figure that delegates drawing to
// whichever Sketcher it is bridged to.
type CircleFigure struct {
	Radius   float64
	Sketcher Sketcher
}

// Draw renders the figure through the bridge.
func (c CircleFigure) Draw() string {
	return c.Sketcher.SketchCircle(c.Radius)
}

// Grow returns a scaled figure on the same Sketcher; abstraction and
// implementation vary independently.
func (c CircleFigure) Grow(factor float64) CircleFigure {
	return CircleFigure{Radius: c.Radius * factor, Sketcher: c.Sketcher}
}
