package life

import (
	"image/color"
	"math"
)

// Color is an opaque RGB triple.
type Color struct {
	R, G, B uint8
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

// Palette anchors of the age gradient.
var (
	Cyan   = Color{0, 255, 255}
	Green  = Color{0, 200, 0}
	Yellow = Color{255, 255, 0}
	Orange = Color{255, 140, 0}
	Red    = Color{255, 40, 20}
)

// Age breakpoints. Each is the last age of its band; ages past
// BreakOrangeRed render as pure Red.
const (
	BreakCyanGreen    = 5
	BreakGreenYellow  = 15
	BreakYellowOrange = 30
	BreakOrangeRed    = 61
)

type band struct {
	first, last uint32
	from, to    Color
}

// Band 1 starts at age 1 so that age 1 itself is t=0; the others start one
// past the previous breakpoint.
var bands = [...]band{
	{1, BreakCyanGreen, Cyan, Green},
	{BreakCyanGreen + 1, BreakGreenYellow, Green, Yellow},
	{BreakGreenYellow + 1, BreakYellowOrange, Yellow, Orange},
	{BreakYellowOrange + 1, BreakOrangeRed, Orange, Red},
}

// Lerp interpolates each channel from a to b by t. t is not clamped; channels
// saturate to the byte range.
func Lerp(a, b Color, t float64) Color {
	return Color{
		R: lerpChannel(a.R, b.R, t),
		G: lerpChannel(a.G, b.G, t),
		B: lerpChannel(a.B, b.B, t),
	}
}

func lerpChannel(a, b uint8, t float64) uint8 {
	v := math.Floor(float64(a) + (float64(b)-float64(a))*t + 0.5)
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}
	return uint8(v)
}

// AgeToColor maps a cell age to its display color. ok is false for dead
// cells, which are not drawn.
func AgeToColor(age uint32) (c Color, ok bool) {
	if age == 0 {
		return Color{}, false
	}
	if age == 1 {
		return Cyan, true
	}
	for _, b := range bands[:len(bands)-1] {
		if age <= b.last {
			return Lerp(b.from, b.to, bandT(b, age)), true
		}
	}
	last := bands[len(bands)-1]
	return Lerp(last.from, last.to, math.Min(bandT(last, age), 1)), true
}

func bandT(b band, age uint32) float64 {
	return float64(age-b.first) / float64(b.last-b.first)
}
