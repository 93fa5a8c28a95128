package oide

import "math/rand"

// Fixed wraps a value that the OIDE operators must never perturb: every
// operator is a no-op that returns self unchanged, except ApplyBounds,
// which still has to adopt a foreign genome's value (spec §4.1 "Fixed[T]
// carries a value outside the evolved parameter space"). Grounded on
// r_oide/src/atoms.rs's Fixed<T>.
type Fixed[T any] struct {
	Value T
}

// NewFixed wraps v.
func NewFixed[T any](v T) Fixed[T] { return Fixed[T]{Value: v} }

// Add is a no-op; Fixed values never evolve.
func (f Fixed[T]) Add(_ Fixed[T]) Fixed[T] { return f }

// Difference is a no-op.
func (f Fixed[T]) Difference(_ Fixed[T]) Fixed[T] { return f }

// Scale is a no-op.
func (f Fixed[T]) Scale(_ float32) Fixed[T] { return f }

// Opposite is a no-op.
func (f Fixed[T]) Opposite(_ Fixed[T]) Fixed[T] { return f }

// ApplyBounds adopts other's value: a Fixed cell's content still has to
// track whatever the source genome carried, even though OIDE never
// perturbs it.
func (f Fixed[T]) ApplyBounds(other Fixed[T]) Fixed[T] { return other }

// Random is a no-op.
func (f Fixed[T]) Random(_ *rand.Rand) Fixed[T] { return f }

// Zero is a no-op; Fixed has no reference point besides its own content.
func (f Fixed[T]) Zero() Fixed[T] { return f }

// ParameterCount is 0: Fixed contributes nothing to the evolved feature
// vector.
func (f Fixed[T]) ParameterCount() int { return 0 }

var _ Differentiable[Fixed[int]] = Fixed[int]{}
