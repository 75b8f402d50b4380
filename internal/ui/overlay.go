//go:build ebiten

package ui

import (
	"image/color"
	"strconv"

	"agelife/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	legendStep   = 4
	legendHeight = 12
	legendMargin = 8
)

// Overlay draws the age legend on top of the grid. L toggles it.
type Overlay struct {
	show  bool
	strip []life.Color
}

// NewOverlay constructs a hidden legend overlay.
func NewOverlay() *Overlay {
	return &Overlay{strip: legendStrip()}
}

// Update toggles visibility.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		o.show = !o.show
	}
}

// Draw renders the legend anchored to the top-left corner at (x, y).
func (o *Overlay) Draw(screen *ebiten.Image, x, y int) {
	if !o.show {
		return
	}
	w := len(o.strip) * legendStep
	left, top := float32(x+legendMargin), float32(y+legendMargin)
	vector.DrawFilledRect(screen, left-4, top-4, float32(w+8), legendHeight+24, color.RGBA{A: 200}, false)
	for i, c := range o.strip {
		vector.DrawFilledRect(screen, left+float32(i*legendStep), top, legendStep, legendHeight, c, false)
	}
	face := basicfont.Face7x13
	for _, age := range legendAges {
		label := strconv.Itoa(int(age))
		if age == life.BreakOrangeRed {
			label += "+"
		}
		lx := int(left) + int(age-1)*legendStep
		text.Draw(screen, label, face, lx, int(top)+legendHeight+13, color.White)
	}
}
