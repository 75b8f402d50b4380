package ui

import "image"

// BarHeight is the height of the control bar below the grid.
const BarHeight = 50

const (
	panelPadding = 10
	buttonHeight = 24
	buttonPadX   = 8
	buttonGap    = 6
	groupGap     = 18
	glyphWidth   = 7 // basicfont.Face7x13
	valueChars   = 5
	textBaseline = 4
)

type controlLayout struct {
	labelX int
	valueX int
	minus  image.Rectangle
	plus   image.Rectangle
}

type barLayout struct {
	top      int
	baseline int
	buttons  []image.Rectangle
	controls []controlLayout
	counterX int
}

func textWidth(s string) int { return len(s) * glyphWidth }

// layoutBar places the action buttons, then a label, value and -/+ pair per
// control, then the generation counter, left to right in a bar starting at
// top.
func layoutBar(top int, buttonLabels, controlLabels []string) barLayout {
	l := barLayout{top: top}
	y0 := top + (BarHeight-buttonHeight)/2
	l.baseline = y0 + buttonHeight/2 + textBaseline
	x := panelPadding

	for _, label := range buttonLabels {
		w := textWidth(label) + 2*buttonPadX
		l.buttons = append(l.buttons, image.Rect(x, y0, x+w, y0+buttonHeight))
		x += w + buttonGap
	}
	x += groupGap - buttonGap

	for _, label := range controlLabels {
		c := controlLayout{labelX: x}
		x += textWidth(label) + buttonGap
		c.valueX = x
		x += valueChars*glyphWidth + buttonGap
		c.minus = image.Rect(x, y0, x+buttonHeight, y0+buttonHeight)
		x += buttonHeight + buttonGap
		c.plus = image.Rect(x, y0, x+buttonHeight, y0+buttonHeight)
		x += buttonHeight + groupGap
		l.controls = append(l.controls, c)
	}
	l.counterX = x
	return l
}

// hit returns the index of the rectangle containing p, or -1.
func hit(rects []image.Rectangle, p image.Point) int {
	for i, r := range rects {
		if p.In(r) {
			return i
		}
	}
	return -1
}
