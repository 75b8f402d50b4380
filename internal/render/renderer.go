//go:build ebiten

package render

import (
	"agelife/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads an age grid into a single RGBA image and draws it.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter returns a painter; the image is allocated on first Blit.
func NewGridPainter() *GridPainter { return &GridPainter{} }

// Blit renders g with size pixels per cell edge at (x, y) on dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, g *life.Grid, size int, x, y float64) {
	if size <= 0 {
		return
	}
	w, h := frameSize(g, size)
	if gp.img == nil || w != gp.w || h != gp.h {
		if gp.img != nil {
			gp.img.Dispose()
		}
		gp.w, gp.h = w, h
		gp.img = ebiten.NewImage(w, h)
		gp.buf = make([]byte, 4*w*h)
	}
	fillAgeRGBA(gp.buf, g, size)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	dst.DrawImage(gp.img, op)
}

// Size returns the pixel dimensions of the last frame.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
