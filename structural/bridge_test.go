package structural

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCircleFigure_DrawsThroughBridge(t *testing.T) {
	vector := CircleFigure{Radius: 2, Sketcher: VectorSketcher{}}
	raster := CircleFigure{Radius: 2, Sketcher: RasterSketcher{}}

	assert.Equal(t, "vector circle r=2.0", vector.Draw())
	assert.Equal(t, "raster circle r=2.0", raster.Draw())
}

func TestCircleFigure_GrowKeepsSketcher(t *testing.T) {
	figure := CircleFigure{Radius: 1.5, Sketcher: VectorSketcher{}}

	grown := figure.Grow(2)

	assert.Equal(t, "vector circle r=3.0", grown.Draw())
	// Original is unchanged
	assert.Equal(t, "vector circle r=1.5", figure.Draw())
}
