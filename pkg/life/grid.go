package life

import "agelife/pkg/core"

const (
	// Rows is the default grid height.
	Rows = 60
	// Cols is the default grid width.
	Cols = 80
	// FillRatio is the default probability of a live cell in a random soup.
	FillRatio = 0.25
)

// Grid stores per-cell ages in row-major order. A zero age is a dead cell;
// any positive age is the number of consecutive generations the cell has
// been alive.
type Grid struct {
	Rows, Cols int
	ages       []uint32
}

// NewGrid allocates a zeroed grid with the given dimensions.
func NewGrid(rows, cols int) *Grid {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	return &Grid{Rows: rows, Cols: cols, ages: make([]uint32, rows*cols)}
}

// RandomGrid allocates a grid where each cell is independently alive (age 1)
// with probability fillRatio.
func RandomGrid(rows, cols int, fillRatio float64, rng *core.RNG) *Grid {
	g := NewGrid(rows, cols)
	for i := range g.ages {
		if rng.Chance(fillRatio) {
			g.ages[i] = 1
		}
	}
	return g
}

// Ages exposes the backing slice so callers can read values directly.
func (g *Grid) Ages() []uint32 { return g.ages }

// Index returns the linear slice index for (r, c).
func (g *Grid) Index(r, c int) int { return r*g.Cols + c }

// At returns the age stored at (r, c).
func (g *Grid) At(r, c int) uint32 { return g.ages[r*g.Cols+c] }

// Set writes an age in place. The input layer uses it for paint and erase.
func (g *Grid) Set(r, c int, age uint32) { g.ages[r*g.Cols+c] = age }

// Alive reports whether the cell at (r, c) is alive.
func (g *Grid) Alive(r, c int) bool { return g.At(r, c) > 0 }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(r, c int) (int, int) {
	r = (r%g.Rows + g.Rows) % g.Rows
	c = (c%g.Cols + g.Cols) % g.Cols
	return r, c
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	out := &Grid{Rows: g.Rows, Cols: g.Cols, ages: make([]uint32, len(g.ages))}
	copy(out.ages, g.ages)
	return out
}

// Population counts the live cells.
func (g *Grid) Population() int {
	n := 0
	for _, a := range g.ages {
		if a > 0 {
			n++
		}
	}
	return n
}

// MaxAge returns the oldest age on the grid, or zero when it is empty.
func (g *Grid) MaxAge() uint32 {
	var oldest uint32
	for _, a := range g.ages {
		oldest = max(oldest, a)
	}
	return oldest
}
