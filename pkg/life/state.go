package life

import "agelife/pkg/core"

// State is the simulation value object a driver threads through its loop.
type State struct {
	Grid       *Grid
	Generation int
}

// NewState returns generation zero on an empty grid.
func NewState(rows, cols int) State {
	return State{Grid: NewGrid(rows, cols)}
}

// Step returns the following state. The receiver's grid is left untouched.
func (s State) Step() State {
	return State{Grid: NextGeneration(s.Grid), Generation: s.Generation + 1}
}

// StepParallel is Step with the generation computed by workers goroutines.
func (s State) StepParallel(workers int) State {
	return State{Grid: NextGenerationParallel(s.Grid, workers), Generation: s.Generation + 1}
}

// Clear returns an empty grid of the same size at generation zero.
func (s State) Clear() State {
	return NewState(s.Grid.Rows, s.Grid.Cols)
}

// Randomize returns a fresh random soup of the same size at generation zero.
func (s State) Randomize(fillRatio float64, rng *core.RNG) State {
	return State{Grid: RandomGrid(s.Grid.Rows, s.Grid.Cols, fillRatio, rng)}
}
