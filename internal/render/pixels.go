package render

import (
	"image/color"

	"agelife/pkg/life"
)

var (
	// Background fills dead cells.
	Background = color.RGBA{R: 0x11, G: 0x11, B: 0x11, A: 0xff}
	// GridLine is white at 4% over Background, drawn in the 1px gap
	// between cells.
	GridLine = color.RGBA{R: 0x1b, G: 0x1b, B: 0x1b, A: 0xff}
)

// frameSize returns the pixel dimensions of a grid drawn with the given
// cell edge length.
func frameSize(g *life.Grid, size int) (w, h int) {
	return g.Cols * size, g.Rows * size
}

// fillAgeRGBA paints g into buf as RGBA pixels, size pixels per cell edge.
// Each live cell is a (size-1)² square in its age color; the remaining row
// and column of every cell carry the grid line color. With size 1 cells
// fill their single pixel.
func fillAgeRGBA(buf []byte, g *life.Grid, size int) {
	w, _ := frameSize(g, size)
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			fill, alive := life.AgeToColor(g.At(r, c))
			for dy := 0; dy < size; dy++ {
				y := r*size + dy
				for dx := 0; dx < size; dx++ {
					x := c*size + dx
					px := Background
					switch {
					case size > 1 && (dx == size-1 || dy == size-1):
						px = GridLine
					case alive:
						px = color.RGBA{R: fill.R, G: fill.G, B: fill.B, A: 0xff}
					}
					base := (y*w + x) * 4
					buf[base+0] = px.R
					buf[base+1] = px.G
					buf[base+2] = px.B
					buf[base+3] = px.A
				}
			}
		}
	}
}
