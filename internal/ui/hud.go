//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"strconv"

	"agelife/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Driver is what the control bar operates on.
type Driver interface {
	core.ParameterControlsProvider
	core.IntParameterSetter
	core.FloatParameterSetter

	Running() bool
	Generation() int
	Toggle()
	StepOnce() bool
	Clear()
	Randomize() error
}

const (
	buttonToggle = iota
	buttonStep
	buttonClear
	buttonRandomize
)

var buttonLabels = []string{"Pause", "Step", "Clear", "Randomize"}

// HUD renders the control bar below the grid: play/pause, step, clear,
// randomize, the adjustable parameters and the generation counter.
type HUD struct {
	d        Driver
	controls []core.ParameterControl
	layout   barLayout
}

// NewHUD constructs a HUD for the provided driver.
func NewHUD(d Driver) *HUD {
	h := &HUD{d: d, controls: d.ParameterControls()}
	h.Relayout(0)
	return h
}

// Relayout anchors the bar at the given screen row.
func (h *HUD) Relayout(top int) {
	labels := make([]string, len(h.controls))
	for i, c := range h.controls {
		labels[i] = c.Label
	}
	h.layout = layoutBar(top, buttonLabels, labels)
}

// Contains reports whether the point lies on the bar.
func (h *HUD) Contains(x, y int) bool {
	return y >= h.layout.top && y < h.layout.top+BarHeight
}

// Update handles clicks on the bar.
func (h *HUD) Update() error {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return nil
	}
	p := image.Pt(ebiten.CursorPosition())
	switch hit(h.layout.buttons, p) {
	case buttonToggle:
		h.d.Toggle()
	case buttonStep:
		h.d.StepOnce()
	case buttonClear:
		h.d.Clear()
	case buttonRandomize:
		if err := h.d.Randomize(); err != nil {
			return err
		}
	}
	for i, c := range h.layout.controls {
		switch {
		case p.In(c.minus):
			h.adjust(h.controls[i], -1)
		case p.In(c.plus):
			h.adjust(h.controls[i], 1)
		}
	}
	return nil
}

func (h *HUD) adjust(ctrl core.ParameterControl, direction int) {
	current, ok := h.values()[ctrl.Key]
	if !ok {
		return
	}
	switch ctrl.Type {
	case core.ParamTypeInt:
		v, err := strconv.Atoi(current.Value)
		if err != nil {
			return
		}
		if next, changed := ctrl.AdjustInt(v, direction); changed {
			h.d.SetIntParameter(ctrl.Key, next)
		}
	case core.ParamTypeFloat:
		v, err := strconv.ParseFloat(current.Value, 64)
		if err != nil {
			return
		}
		if next, changed := ctrl.AdjustFloat(v, direction); changed {
			h.d.SetFloatParameter(ctrl.Key, next)
		}
	}
}

func (h *HUD) values() map[string]core.Parameter {
	out := map[string]core.Parameter{}
	for _, p := range h.d.Parameters() {
		out[p.Key] = p
	}
	return out
}

var (
	barColor    = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	buttonColor = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	textColor   = color.RGBA{R: 220, G: 220, B: 230, A: 255}
)

// Draw paints the bar across the full screen width.
func (h *HUD) Draw(screen *ebiten.Image) {
	face := basicfont.Face7x13
	w := screen.Bounds().Dx()
	vector.DrawFilledRect(screen, 0, float32(h.layout.top), float32(w), BarHeight, barColor, false)

	for i, r := range h.layout.buttons {
		label := buttonLabels[i]
		if i == buttonToggle && !h.d.Running() {
			label = "Play"
		}
		drawButton(screen, r, label)
	}

	values := h.values()
	for i, c := range h.layout.controls {
		ctrl := h.controls[i]
		text.Draw(screen, ctrl.Label, face, c.labelX, h.layout.baseline, textColor)
		value := "--"
		if p, ok := values[ctrl.Key]; ok {
			value = p.Value
		}
		text.Draw(screen, value, face, c.valueX, h.layout.baseline, textColor)
		drawButton(screen, c.minus, "-")
		drawButton(screen, c.plus, "+")
	}

	text.Draw(screen, fmt.Sprintf("Generation: %d", h.d.Generation()), face, h.layout.counterX, h.layout.baseline, textColor)
}

func drawButton(dst *ebiten.Image, r image.Rectangle, label string) {
	vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), buttonColor, false)
	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := r.Min.X + (r.Dx()-bounds.Dx())/2
	y := r.Min.Y + (r.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(dst, label, face, x, y, textColor)
}
