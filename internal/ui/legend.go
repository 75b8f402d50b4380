package ui

import "agelife/pkg/life"

// legendAges are the ages labelled under the legend strip.
var legendAges = []uint32{1, life.BreakCyanGreen, life.BreakGreenYellow, life.BreakYellowOrange, life.BreakOrangeRed}

// legendStrip samples the age gradient once per age from 1 through the last
// breakpoint.
func legendStrip() []life.Color {
	strip := make([]life.Color, 0, life.BreakOrangeRed)
	for age := uint32(1); age <= life.BreakOrangeRed; age++ {
		c, _ := life.AgeToColor(age)
		strip = append(strip, c)
	}
	return strip
}
