package life

import (
	"fmt"
	"slices"

	"github.com/aquilax/go-perlin"
)

// Perlin parameters for clustered soups.
const (
	noiseAlpha  = 2.0
	noiseBeta   = 2.0
	noiseOctave = 3
	noiseScale  = 0.12
)

// NoiseGrid seeds a grid from 2D Perlin noise instead of independent coin
// flips. The cells with the highest noise values are set alive so that
// roughly fillRatio of the grid starts populated, in blobs rather than dust.
func NoiseGrid(rows, cols int, fillRatio float64, seed int64) (*Grid, error) {
	if fillRatio < 0 || fillRatio > 1 {
		return nil, fmt.Errorf("fill ratio %v outside [0, 1]", fillRatio)
	}
	g := NewGrid(rows, cols)
	p := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctave, seed)

	values := make([]float64, len(g.ages))
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			values[g.Index(r, c)] = p.Noise2D(float64(c)*noiseScale, float64(r)*noiseScale)
		}
	}

	alive := int(float64(len(values))*fillRatio + 0.5)
	if alive == 0 {
		return g, nil
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	cut := sorted[len(sorted)-alive]
	for i, v := range values {
		if v >= cut {
			g.ages[i] = 1
		}
	}
	return g, nil
}
