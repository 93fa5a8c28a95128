package oide

import "math/rand"

// Pair lifts Differentiable over two heterogeneous atoms by applying each
// operator fieldwise, the Go-generics equivalent of the reference
// implementation's blanket impl over `(T, U)` (r_oide/src/atoms.rs) — the
// original spec proposed a derive macro for this; an F-bounded generic
// struct does the same job without codegen.
type Pair[A Differentiable[A], B Differentiable[B]] struct {
	First  A
	Second B
}

// NewPair builds a Pair from its two elements.
func NewPair[A Differentiable[A], B Differentiable[B]](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}

func (p Pair[A, B]) Add(other Pair[A, B]) Pair[A, B] {
	return Pair[A, B]{First: p.First.Add(other.First), Second: p.Second.Add(other.Second)}
}

func (p Pair[A, B]) Difference(other Pair[A, B]) Pair[A, B] {
	return Pair[A, B]{First: p.First.Difference(other.First), Second: p.Second.Difference(other.Second)}
}

func (p Pair[A, B]) Scale(factor float32) Pair[A, B] {
	return Pair[A, B]{First: p.First.Scale(factor), Second: p.Second.Scale(factor)}
}

func (p Pair[A, B]) Opposite(midpoint Pair[A, B]) Pair[A, B] {
	return Pair[A, B]{First: p.First.Opposite(midpoint.First), Second: p.Second.Opposite(midpoint.Second)}
}

func (p Pair[A, B]) ApplyBounds(other Pair[A, B]) Pair[A, B] {
	return Pair[A, B]{First: p.First.ApplyBounds(other.First), Second: p.Second.ApplyBounds(other.Second)}
}

func (p Pair[A, B]) Random(rng *rand.Rand) Pair[A, B] {
	return Pair[A, B]{First: p.First.Random(rng), Second: p.Second.Random(rng)}
}

func (p Pair[A, B]) Zero() Pair[A, B] {
	return Pair[A, B]{First: p.First.Zero(), Second: p.Second.Zero()}
}

func (p Pair[A, B]) ParameterCount() int {
	return p.First.ParameterCount() + p.Second.ParameterCount()
}

// Triple lifts Differentiable over three heterogeneous atoms, mirroring
// the reference implementation's blanket impl over `(T, U, V)`.
type Triple[A Differentiable[A], B Differentiable[B], C Differentiable[C]] struct {
	First  A
	Second B
	Third  C
}

// NewTriple builds a Triple from its three elements.
func NewTriple[A Differentiable[A], B Differentiable[B], C Differentiable[C]](a A, b B, c C) Triple[A, B, C] {
	return Triple[A, B, C]{First: a, Second: b, Third: c}
}

func (t Triple[A, B, C]) Add(other Triple[A, B, C]) Triple[A, B, C] {
	return Triple[A, B, C]{
		First:  t.First.Add(other.First),
		Second: t.Second.Add(other.Second),
		Third:  t.Third.Add(other.Third),
	}
}

func (t Triple[A, B, C]) Difference(other Triple[A, B, C]) Triple[A, B, C] {
	return Triple[A, B, C]{
		First:  t.First.Difference(other.First),
		Second: t.Second.Difference(other.Second),
		Third:  t.Third.Difference(other.Third),
	}
}

func (t Triple[A, B, C]) Scale(factor float32) Triple[A, B, C] {
	return Triple[A, B, C]{First: t.First.Scale(factor), Second: t.Second.Scale(factor), Third: t.Third.Scale(factor)}
}

func (t Triple[A, B, C]) Opposite(midpoint Triple[A, B, C]) Triple[A, B, C] {
	return Triple[A, B, C]{
		First:  t.First.Opposite(midpoint.First),
		Second: t.Second.Opposite(midpoint.Second),
		Third:  t.Third.Opposite(midpoint.Third),
	}
}

func (t Triple[A, B, C]) ApplyBounds(other Triple[A, B, C]) Triple[A, B, C] {
	return Triple[A, B, C]{
		First:  t.First.ApplyBounds(other.First),
		Second: t.Second.ApplyBounds(other.Second),
		Third:  t.Third.ApplyBounds(other.Third),
	}
}

func (t Triple[A, B, C]) Random(rng *rand.Rand) Triple[A, B, C] {
	return Triple[A, B, C]{First: t.First.Random(rng), Second: t.Second.Random(rng), Third: t.Third.Random(rng)}
}

func (t Triple[A, B, C]) Zero() Triple[A, B, C] {
	return Triple[A, B, C]{First: t.First.Zero(), Second: t.Second.Zero(), Third: t.Third.Zero()}
}

func (t Triple[A, B, C]) ParameterCount() int {
	return t.First.ParameterCount() + t.Second.ParameterCount() + t.Third.ParameterCount()
}

var _ Differentiable[Pair[BoundedFactor, BoundedFactor]] = Pair[BoundedFactor, BoundedFactor]{}
var _ Differentiable[Triple[BoundedFactor, BoundedFactor, BoundedFactor]] = Triple[BoundedFactor, BoundedFactor, BoundedFactor]{}
