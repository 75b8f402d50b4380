package core

import "testing"

func TestChanceExtremes(t *testing.T) {
	rng := NewRNG(7)
	for i := 0; i < 1000; i++ {
		if rng.Chance(0) {
			t.Fatal("Chance(0) must never fire")
		}
		if !rng.Chance(1) {
			t.Fatal("Chance(1) must always fire")
		}
	}
}

func TestSeedDeterministic(t *testing.T) {
	a, b := NewRNG(42), NewRNG(42)
	for i := 0; i < 64; i++ {
		if a.Int64() != b.Int64() {
			t.Fatalf("draw %d differs for identical seeds", i)
		}
	}
}
