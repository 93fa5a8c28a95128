package oide

import "math/rand"

// BoundedFactor is a real parameter confined to [base, base+range], stored
// as (base, range, offset) with the reported value being base + |offset|
// (spec §4.1). Grounded on r_oide/src/atoms.rs's BoundedFactor, generalized
// to the spec's explicit while-loop reflection repair.
type BoundedFactor struct {
	Base   float32
	Range  float32
	Offset float32
}

// NewBoundedFactor builds a BoundedFactor over [lower, upper] holding value.
func NewBoundedFactor(lower, upper, value float32) BoundedFactor {
	return BoundedFactor{Base: lower, Range: upper - lower, Offset: value - lower}
}

// Value returns the atom's reported value, base + |offset|.
func (b BoundedFactor) Value() float32 {
	o := b.Offset
	if o < 0 {
		o = -o
	}
	return b.Base + o
}

// Lower returns the atom's declared lower bound.
func (b BoundedFactor) Lower() float32 { return b.Base }

// Upper returns the atom's declared upper bound.
func (b BoundedFactor) Upper() float32 { return b.Base + b.Range }

// reflect repairs an offset back into [-range, range] by bouncing it off
// the bounds, per spec §4.1's literal while-loop description.
func reflect(offset, rng float32) float32 {
	for offset > rng {
		offset = 2*rng - offset
	}
	for offset < -rng {
		offset = 2*rng + offset
	}
	return offset
}

// Add implements spec §4.1's add: offsets sum, then reflect. Adding an
// atom to its opposite saturates at Range (the upper bound), per P2.
func (b BoundedFactor) Add(other BoundedFactor) BoundedFactor {
	return BoundedFactor{Base: b.Base, Range: b.Range, Offset: reflect(b.Offset+other.Offset, b.Range)}
}

// Difference implements spec §4.1's difference: offsets subtract, then
// reflect.
func (b BoundedFactor) Difference(other BoundedFactor) BoundedFactor {
	return BoundedFactor{Base: b.Base, Range: b.Range, Offset: reflect(b.Offset-other.Offset, b.Range)}
}

// Scale multiplies the offset by factor with no repair (spec §4.1:
// "downstream code must not scale by > 1 without a subsequent add that
// re-reflects").
func (b BoundedFactor) Scale(factor float32) BoundedFactor {
	return BoundedFactor{Base: b.Base, Range: b.Range, Offset: b.Offset * factor}
}

// Opposite reflects b through midpoint: offset = 2*midpoint.Offset -
// b.Offset, then repairs.
func (b BoundedFactor) Opposite(midpoint BoundedFactor) BoundedFactor {
	return BoundedFactor{Base: b.Base, Range: b.Range, Offset: reflect(2*midpoint.Offset-b.Offset, b.Range)}
}

// ApplyBounds returns an atom carrying b's bound schema with other's
// reported value clamped into [base, base+range].
func (b BoundedFactor) ApplyBounds(other BoundedFactor) BoundedFactor {
	v := other.Value() - b.Base
	if v < 0 {
		v = 0
	} else if v > b.Range {
		v = b.Range
	}
	return BoundedFactor{Base: b.Base, Range: b.Range, Offset: v}
}

// Random draws offset uniformly in [-range, range].
func (b BoundedFactor) Random(rng *rand.Rand) BoundedFactor {
	var o float32
	if b.Range > 0 {
		o = (rng.Float32()*2 - 1) * b.Range
	}
	return BoundedFactor{Base: b.Base, Range: b.Range, Offset: o}
}

// Zero returns the atom at offset 0 (value == base), the default midpoint
// for Opposite.
func (b BoundedFactor) Zero() BoundedFactor {
	return BoundedFactor{Base: b.Base, Range: b.Range, Offset: 0}
}

// ParameterCount is always 1 for a scalar atom.
func (b BoundedFactor) ParameterCount() int { return 1 }

// Visit flattens b to its reported value.
func (b BoundedFactor) Visit(v *ScalarVisitor) {
	v.Collect(b.Value())
}

// VisitNamed flattens b to a named scalar under name.
func (b BoundedFactor) VisitNamed(name string, v FeatureVisitor) {
	v.Collect(name, b.Value())
}

var _ Differentiable[BoundedFactor] = BoundedFactor{}
