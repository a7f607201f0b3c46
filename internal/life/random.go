package life

import "math"

// Source yields uniform floats in [0, 1). *math/rand/v2.Rand satisfies it.
type Source interface {
	Float64() float64
}

// RandomAliveProbability is the share of cells the randomize command brings to life.
const RandomAliveProbability = 0.3

// NewRandom returns a rows×cols grid where each cell is independently alive
// (age 1) with probability p. Probabilities outside [0, 1] are clamped; NaN is
// treated as 0.
func NewRandom(rows, cols int, p float64, src Source) Grid {
	p = clampProbability(p)
	threshold := 1 - p
	g := NewEmpty(rows, cols)
	for i := range g.cells {
		for j := range g.cells[i] {
			if p == 1 || src.Float64() > threshold {
				g.cells[i][j] = Newborn
			}
		}
	}
	return g
}

func clampProbability(p float64) float64 {
	switch {
	case math.IsNaN(p), p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}
