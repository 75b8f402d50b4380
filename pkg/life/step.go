package life

import "golang.org/x/sync/errgroup"

// CountNeighbors returns the number of live Moore neighbors of (r, c) with
// toroidal wrapping on both axes. The cell itself is never counted.
// Coordinates outside the grid are wrapped first.
func CountNeighbors(g *Grid, r, c int) int {
	rows, cols := g.Rows, g.Cols
	r, c = g.Wrap(r, c)
	count := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			nr := (r + dr + rows) % rows
			nc := (c + dc + cols) % cols
			if g.ages[nr*cols+nc] > 0 {
				count++
			}
		}
	}
	return count
}

// NextGeneration returns the grid one generation after g. Survivors age by
// one, births start at age 1, everything else is dead. g is not modified.
func NextGeneration(g *Grid) *Grid {
	next := NewGrid(g.Rows, g.Cols)
	stepRows(g, next, 0, g.Rows)
	return next
}

// NextGenerationParallel computes the same result as NextGeneration with the
// rows split into bands evaluated concurrently.
func NextGenerationParallel(g *Grid, workers int) *Grid {
	if workers <= 1 || g.Rows < 2 {
		return NextGeneration(g)
	}
	if workers > g.Rows {
		workers = g.Rows
	}
	next := NewGrid(g.Rows, g.Cols)
	band := (g.Rows + workers - 1) / workers

	var eg errgroup.Group
	for start := 0; start < g.Rows; start += band {
		start, end := start, min(start+band, g.Rows)
		eg.Go(func() error {
			stepRows(g, next, start, end)
			return nil
		})
	}
	_ = eg.Wait()
	return next
}

// stepRows writes rows [start, end) of next from cur.
func stepRows(cur, next *Grid, start, end int) {
	cols := cur.Cols
	for r := start; r < end; r++ {
		for c := 0; c < cols; c++ {
			idx := r*cols + c
			next.ages[idx] = nextAge(cur.ages[idx], CountNeighbors(cur, r, c))
		}
	}
}

func nextAge(age uint32, neighbors int) uint32 {
	if age > 0 {
		if neighbors == 2 || neighbors == 3 {
			return age + 1
		}
		return 0
	}
	if neighbors == 3 {
		return 1
	}
	return 0
}
