package oide

import (
	"math/rand"
	"testing"
)

func TestFloatyBoolOppositeReproducesUnparameterizedReflection(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		f := FloatyBool{Value: rng.Float32()}
		got := f.Opposite(f.Zero()).Value
		want := 1 - f.Value
		if diff := got - want; diff > 1e-5 || diff < -1e-5 {
			t.Fatalf("Opposite(Zero()) = %v, want %v", got, want)
		}
	}
}

func TestFloatyBoolAddMirrorsOverflow(t *testing.T) {
	f := FloatyBool{Value: 0.7}
	g := FloatyBool{Value: 0.7}
	got := f.Add(g).Value
	want := float32(2 - 1.4)
	if diff := got - want; diff > 1e-5 || diff < -1e-5 {
		t.Fatalf("Add() = %v, want %v", got, want)
	}
}

func TestFloatyBoolBoolThreshold(t *testing.T) {
	if !(FloatyBool{Value: 0.5}).Bool() {
		t.Fatal("0.5 should be true (>= threshold)")
	}
	if (FloatyBool{Value: 0.49999}).Bool() {
		t.Fatal("just under 0.5 should be false")
	}
}
