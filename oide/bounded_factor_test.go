package oide

import (
	"math/rand"
	"testing"
)

func sortedTriple(rng *rand.Rand) (lo, mid, hi float32) {
	vals := []float32{rng.Float32()*20 - 10, rng.Float32()*20 - 10, rng.Float32()*20 - 10}
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			if vals[j] < vals[i] {
				vals[i], vals[j] = vals[j], vals[i]
			}
		}
	}
	return vals[0], vals[1], vals[2]
}

// P1: opposite is involutive (spec §8 P1).
func TestBoundedFactorOppositeInvolutive(t *testing.T) {
	rng := rand.New(rand.NewSource(1234567890))
	for i := 0; i < 1000; i++ {
		lo, mid, hi := sortedTriple(rng)
		f := NewBoundedFactor(lo, hi, mid)
		got := f.Opposite(f.Zero()).Opposite(f.Zero()).Value()
		if diff := got - f.Value(); diff > 1e-4 || diff < -1e-4 {
			t.Fatalf("opposite not involutive: got %v want %v", got, f.Value())
		}
	}
}

// P2: adding an atom to its own opposite saturates at the upper bound
// (spec §8 P2).
func TestBoundedFactorAddOppositeSaturatesUpper(t *testing.T) {
	rng := rand.New(rand.NewSource(1234567890))
	for i := 0; i < 1000; i++ {
		lo, mid, hi := sortedTriple(rng)
		f := NewBoundedFactor(lo, hi, mid)
		sum := f.Add(f.Opposite(f.Zero()))
		if diff := sum.Value() - sum.Upper(); diff > 1e-4 || diff < -1e-4 {
			t.Fatalf("add(self, opposite(self)) = %v, want upper bound %v", sum.Value(), sum.Upper())
		}
	}
}

// P3: ApplyBounds always projects into [lower, upper] regardless of input.
func TestBoundedFactorApplyBoundsProjects(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		lo, _, hi := sortedTriple(rng)
		schema := NewBoundedFactor(lo, hi, lo)
		foreign := NewBoundedFactor(lo-100, hi+100, rng.Float32()*400-200)
		bounded := schema.ApplyBounds(foreign)
		if bounded.Value() < schema.Lower()-1e-3 || bounded.Value() > schema.Upper()+1e-3 {
			t.Fatalf("ApplyBounds escaped schema: %v not in [%v,%v]", bounded.Value(), schema.Lower(), schema.Upper())
		}
	}
}

// P4: parameter count is additive over a slice of atoms.
func TestBoundedFactorParameterCountAdditive(t *testing.T) {
	atoms := Sequence[BoundedFactor]{
		NewBoundedFactor(0, 1, 0.5),
		NewBoundedFactor(0, 1, 0.5),
		NewBoundedFactor(0, 1, 0.5),
	}
	if got, want := atoms.ParameterCount(), 3; got != want {
		t.Fatalf("ParameterCount() = %d, want %d", got, want)
	}
}

func TestBoundedFactorBasicAddition(t *testing.T) {
	f1 := NewBoundedFactor(0, 4, 2)
	f2 := NewBoundedFactor(0, 4, 3)
	if got := f1.Add(f2).Value(); got != 3 {
		t.Fatalf("Add() = %v, want 3", got)
	}

	g1 := NewBoundedFactor(10, 20, 19)
	g2 := NewBoundedFactor(10, 20, 19)
	if got := g1.Add(g2).Value(); got != 12 {
		t.Fatalf("Add() = %v, want 12", got)
	}
}

func TestBoundedFactorBasicDifference(t *testing.T) {
	f1 := NewBoundedFactor(-10, 10, 5)
	f2 := NewBoundedFactor(-10, 10, 5)
	if got := f1.Difference(f2).Value(); got != -10 {
		t.Fatalf("Difference() = %v, want -10", got)
	}

	g1 := NewBoundedFactor(-10, 10, 10)
	g2 := NewBoundedFactor(-10, 10, -10)
	if got := g1.Difference(g2).Value(); got != 10 {
		t.Fatalf("Difference() = %v, want 10", got)
	}

	h1 := NewBoundedFactor(-10, 10, 5)
	h2 := NewBoundedFactor(-10, 10, -7)
	if got := h1.Difference(h2).Value(); got != 2 {
		t.Fatalf("Difference() = %v, want 2", got)
	}
}

// Difference is anticommutative in the sense that summing both directions
// of difference recovers the first operand (spec §8, reference fuzz test
// fuzz_diff_correctly_uncomutative).
func TestBoundedFactorDiffUncommutativeRoundtrip(t *testing.T) {
	rng := rand.New(rand.NewSource(987654321))
	for i := 0; i < 1000; i++ {
		lo, _, hi := sortedTriple(rng)
		v1 := lo + rng.Float32()*(hi-lo)
		v2 := lo + rng.Float32()*(hi-lo)
		f1 := NewBoundedFactor(lo, hi, v1)
		f2 := NewBoundedFactor(lo, hi, v2)

		diff := f1.Difference(f2)
		diff2 := f2.Difference(f1)
		roundtrip := f1.Add(diff).Add(diff2)

		if d := f1.Value() - roundtrip.Value(); d > 1e-3 || d < -1e-3 {
			t.Fatalf("roundtrip mismatch: f1=%v roundtrip=%v", f1.Value(), roundtrip.Value())
		}
	}
}
