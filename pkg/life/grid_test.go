package life

import (
	"slices"
	"testing"

	"agelife/pkg/core"
)

func TestNewGridDefaults(t *testing.T) {
	g := NewGrid(Rows, Cols)
	if g.Rows != 60 || g.Cols != 80 {
		t.Fatalf("default grid is %dx%d, want 60x80", g.Rows, g.Cols)
	}
	if len(g.Ages()) != 60*80 {
		t.Fatalf("backing slice has %d cells", len(g.Ages()))
	}
	for i, a := range g.Ages() {
		if a != 0 {
			t.Fatalf("cell %d initialized to %d", i, a)
		}
	}
}

func TestNewGridDoesNotShareStorage(t *testing.T) {
	a := NewGrid(3, 4)
	b := NewGrid(3, 4)
	a.Set(1, 2, 9)
	if b.At(1, 2) != 0 {
		t.Fatal("grids share backing storage")
	}
}

func TestRandomGridFillExtremes(t *testing.T) {
	rng := core.NewRNG(1)
	if pop := RandomGrid(10, 12, 0, rng).Population(); pop != 0 {
		t.Fatalf("fill 0 produced %d live cells", pop)
	}
	full := RandomGrid(10, 12, 1, rng)
	if pop := full.Population(); pop != 120 {
		t.Fatalf("fill 1 produced %d live cells, want 120", pop)
	}
	if full.MaxAge() != 1 {
		t.Fatalf("random cells must be newborn, max age %d", full.MaxAge())
	}
}

func TestRandomGridDeterministic(t *testing.T) {
	a := RandomGrid(Rows, Cols, FillRatio, core.NewRNG(99))
	b := RandomGrid(Rows, Cols, FillRatio, core.NewRNG(99))
	if !slices.Equal(a.Ages(), b.Ages()) {
		t.Fatal("identical seeds produced different soups")
	}
	pop := a.Population()
	if pop < 900 || pop > 1500 {
		t.Fatalf("population %d far from a quarter of 4800", pop)
	}
}

func TestCloneIsDeep(t *testing.T) {
	g := NewGrid(4, 4)
	g.Set(0, 0, 3)
	c := g.Clone()
	c.Set(0, 0, 0)
	if g.At(0, 0) != 3 {
		t.Fatal("mutating clone changed original")
	}
}

func TestWrap(t *testing.T) {
	g := NewGrid(5, 7)
	cases := []struct{ r, c, wr, wc int }{
		{0, 0, 0, 0},
		{-1, -1, 4, 6},
		{5, 7, 0, 0},
		{-11, 15, 4, 1},
	}
	for _, tc := range cases {
		r, c := g.Wrap(tc.r, tc.c)
		if r != tc.wr || c != tc.wc {
			t.Fatalf("Wrap(%d,%d) = (%d,%d), want (%d,%d)", tc.r, tc.c, r, c, tc.wr, tc.wc)
		}
	}
}

func TestNoiseGrid(t *testing.T) {
	g, err := NoiseGrid(Rows, Cols, FillRatio, 5)
	if err != nil {
		t.Fatalf("NoiseGrid: %v", err)
	}
	want := Rows * Cols / 4
	pop := g.Population()
	if pop < want || pop > want+16 {
		t.Fatalf("noise population %d, want about %d", pop, want)
	}

	again, _ := NoiseGrid(Rows, Cols, FillRatio, 5)
	if !slices.Equal(g.Ages(), again.Ages()) {
		t.Fatal("noise soup not deterministic per seed")
	}

	empty, _ := NoiseGrid(8, 8, 0, 5)
	if empty.Population() != 0 {
		t.Fatal("fill 0 must yield an empty grid")
	}

	if _, err := NoiseGrid(8, 8, 1.5, 5); err == nil {
		t.Fatal("expected error for fill ratio above 1")
	}
}
