package main

import (
	"fmt"

	"agelife/internal/core"
	"agelife/internal/life"
)

// fate describes how a soup ended up.
type fate string

const (
	fateActive     fate = "active"
	fateExtinct    fate = "extinct"
	fateStill      fate = "still"
	fateOscillator fate = "period-2"
)

type censusResult struct {
	seed       int64
	fate       fate
	settledAt  int
	seeded     int
	population int
	oldest     life.Age
}

func (r censusResult) String() string {
	return fmt.Sprintf("seed=%-6d fate=%-8s settled=%-4d seeded=%-3d population=%-3d oldest=%d",
		r.seed, r.fate, r.settledAt, r.seeded, r.population, r.oldest)
}

// runSoup plays a random soup for at most steps generations and stops early
// once it dies out or repeats with period one or two.
func runSoup(seed int64, steps int) censusResult {
	g := life.NewRandom(life.NumRows, life.NumCols, life.RandomAliveProbability, core.NewRNG(seed))
	res := censusResult{seed: seed, fate: fateActive, seeded: g.Population()}

	var back life.Grid
	for gen := 1; gen <= steps; gen++ {
		next := life.Step(g)
		switch {
		case next.Population() == 0:
			res.fate = fateExtinct
		case next.SameShape(g):
			res.fate = fateStill
		case next.SameShape(back):
			res.fate = fateOscillator
		}
		back, g = g, next
		if res.fate != fateActive {
			res.settledAt = gen
			break
		}
	}
	res.population = g.Population()
	res.oldest = g.MaxAge()
	return res
}
