package oide

import "math/rand"

// BoundedInt is the integer-valued twin of BoundedFactor: an index or
// count confined to [base, base+span], internally carried as a continuous
// offset so the same reflection arithmetic applies, rounded to the nearest
// integer on report (spec §4.1 "BoundedInt").
type BoundedInt struct {
	Base   int
	Span   int
	Offset float32
}

// NewBoundedInt builds a BoundedInt over [lower, upper] holding value.
func NewBoundedInt(lower, upper, value int) BoundedInt {
	return BoundedInt{Base: lower, Span: upper - lower, Offset: float32(value - lower)}
}

// Value returns the atom's reported integer value.
func (b BoundedInt) Value() int {
	o := b.Offset
	if o < 0 {
		o = -o
	}
	return b.Base + int(o+0.5)
}

func (b BoundedInt) rangeF() float32 { return float32(b.Span) }

// Add implements the same reflection rule as BoundedFactor.Add.
func (b BoundedInt) Add(other BoundedInt) BoundedInt {
	return BoundedInt{Base: b.Base, Span: b.Span, Offset: reflect(b.Offset+other.Offset, b.rangeF())}
}

// Difference implements the same reflection rule as BoundedFactor.Difference.
func (b BoundedInt) Difference(other BoundedInt) BoundedInt {
	return BoundedInt{Base: b.Base, Span: b.Span, Offset: reflect(b.Offset-other.Offset, b.rangeF())}
}

// Scale multiplies the offset by factor with no repair.
func (b BoundedInt) Scale(factor float32) BoundedInt {
	return BoundedInt{Base: b.Base, Span: b.Span, Offset: b.Offset * factor}
}

// Opposite reflects b through midpoint.
func (b BoundedInt) Opposite(midpoint BoundedInt) BoundedInt {
	return BoundedInt{Base: b.Base, Span: b.Span, Offset: reflect(2*midpoint.Offset-b.Offset, b.rangeF())}
}

// ApplyBounds clamps other's reported value into b's bound schema.
func (b BoundedInt) ApplyBounds(other BoundedInt) BoundedInt {
	v := float32(other.Value() - b.Base)
	if v < 0 {
		v = 0
	} else if v > b.rangeF() {
		v = b.rangeF()
	}
	return BoundedInt{Base: b.Base, Span: b.Span, Offset: v}
}

// Random draws offset uniformly in [-span, span].
func (b BoundedInt) Random(rng *rand.Rand) BoundedInt {
	var o float32
	if b.Span > 0 {
		o = (rng.Float32()*2 - 1) * b.rangeF()
	}
	return BoundedInt{Base: b.Base, Span: b.Span, Offset: o}
}

// Zero returns the atom at offset 0 (value == base).
func (b BoundedInt) Zero() BoundedInt {
	return BoundedInt{Base: b.Base, Span: b.Span, Offset: 0}
}

// ParameterCount is always 1.
func (b BoundedInt) ParameterCount() int { return 1 }

// VisitNamed flattens b to a named scalar.
func (b BoundedInt) VisitNamed(name string, v FeatureVisitor) {
	v.Collect(name, float32(b.Value()))
}

var _ Differentiable[BoundedInt] = BoundedInt{}
