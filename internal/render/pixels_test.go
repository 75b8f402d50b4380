package render

import (
	"testing"

	"agelife/pkg/life"
)

func pixelAt(buf []byte, w, x, y int) [4]byte {
	base := (y*w + x) * 4
	return [4]byte{buf[base], buf[base+1], buf[base+2], buf[base+3]}
}

func TestFillAgeRGBALayout(t *testing.T) {
	g := life.NewGrid(2, 3)
	g.Set(0, 1, 1)
	g.Set(1, 2, 1000)

	const size = 4
	w, h := frameSize(g, size)
	if w != 12 || h != 8 {
		t.Fatalf("frame %dx%d, want 12x8", w, h)
	}
	buf := make([]byte, 4*w*h)
	fillAgeRGBA(buf, g, size)

	cyan := [4]byte{0, 255, 255, 255}
	red := [4]byte{255, 40, 20, 255}
	bg := [4]byte{Background.R, Background.G, Background.B, 255}
	line := [4]byte{GridLine.R, GridLine.G, GridLine.B, 255}

	cases := []struct {
		x, y int
		want [4]byte
	}{
		{0, 0, bg},
		{4, 0, cyan},
		{6, 2, cyan},
		{7, 0, line},
		{4, 3, line},
		{8, 4, red},
		{10, 6, red},
		{11, 7, line},
		{0, 4, bg},
	}
	for _, tc := range cases {
		if got := pixelAt(buf, w, tc.x, tc.y); got != tc.want {
			t.Fatalf("pixel (%d,%d) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestFillAgeRGBASinglePixelCells(t *testing.T) {
	g := life.NewGrid(1, 2)
	g.Set(0, 0, 1)
	buf := make([]byte, 8)
	fillAgeRGBA(buf, g, 1)
	if got := pixelAt(buf, 2, 0, 0); got != [4]byte{0, 255, 255, 255} {
		t.Fatalf("live pixel = %v", got)
	}
	if got := pixelAt(buf, 2, 1, 0); got[0] != Background.R {
		t.Fatalf("dead pixel = %v", got)
	}
}
