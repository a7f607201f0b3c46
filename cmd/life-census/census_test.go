package main

import "testing"

func TestRunSoupDeterministic(t *testing.T) {
	a := runSoup(11, 200)
	b := runSoup(11, 200)
	if a != b {
		t.Fatalf("same seed gave %v and %v", a, b)
	}
	if a.seeded == 0 {
		t.Fatal("soup seeded no cells")
	}
}

func TestRunSoupFates(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		res := runSoup(seed, 1000)
		switch res.fate {
		case fateExtinct:
			if res.population != 0 {
				t.Fatalf("seed %d extinct with population %d", seed, res.population)
			}
		case fateStill, fateOscillator:
			if res.population == 0 || res.settledAt == 0 {
				t.Fatalf("seed %d settled inconsistently: %v", seed, res)
			}
		case fateActive:
			if res.settledAt != 0 {
				t.Fatalf("seed %d active but settled at %d", seed, res.settledAt)
			}
		}
		if res.settledAt > 1000 {
			t.Fatalf("seed %d settled after the step budget: %v", seed, res)
		}
	}
}

func TestRunSoupStopsEarlyWithoutSteps(t *testing.T) {
	res := runSoup(3, 0)
	if res.fate != fateActive || res.population != res.seeded || res.oldest > 1 {
		t.Fatalf("zero-step soup changed: %v", res)
	}
}
