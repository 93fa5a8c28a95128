package oide

import "math/rand"

// FloatyBool is a real in [0,1] interpreted as a bool via the ≥0.5
// threshold (spec §4.1). Grounded on r_oide/src/atoms.rs's FloatyBool,
// generalized to the spec's explicit midpoint argument for Opposite.
type FloatyBool struct {
	Value float32
}

// BoolThreshold is the cutoff FloatyBool.Bool uses.
const BoolThreshold = 0.5

// NewFloatyBool converts a bool to its FloatyBool representation.
func NewFloatyBool(b bool) FloatyBool {
	if b {
		return FloatyBool{Value: 1}
	}
	return FloatyBool{Value: 0}
}

// Bool reports the atom's boolean interpretation: value >= 0.5.
func (f FloatyBool) Bool() bool {
	return f.Value >= BoolThreshold
}

func mirrorUnit(v float32) float32 {
	for v < 0 || v > 1 {
		if v < 0 {
			v = -v
		}
		if v > 1 {
			v = 2 - v
		}
	}
	return v
}

// Add mirrors the sum back into [0,1] when it overflows 1 (spec: "result =
// 2−sum when sum>1").
func (f FloatyBool) Add(other FloatyBool) FloatyBool {
	sum := f.Value + other.Value
	if sum > 1 {
		sum = 2 - sum
	}
	return FloatyBool{Value: sum}
}

// Difference is the absolute difference of the two values.
func (f FloatyBool) Difference(other FloatyBool) FloatyBool {
	d := f.Value - other.Value
	if d < 0 {
		d = -d
	}
	return FloatyBool{Value: d}
}

// Scale multiplies the value by factor with no repair.
func (f FloatyBool) Scale(factor float32) FloatyBool {
	return FloatyBool{Value: f.Value * factor}
}

// Opposite reflects f through midpoint, mirroring back into [0,1].
// Opposite(Half) reproduces the reference implementation's unparameterized
// `1.0 - value` reflection.
func (f FloatyBool) Opposite(midpoint FloatyBool) FloatyBool {
	return FloatyBool{Value: mirrorUnit(2*midpoint.Value - f.Value)}
}

// ApplyBounds ignores self's value (FloatyBool has no bound schema beyond
// [0,1]) and returns other's value clamped into [0,1].
func (f FloatyBool) ApplyBounds(other FloatyBool) FloatyBool {
	v := other.Value
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	return FloatyBool{Value: v}
}

// Random draws a value uniformly in [0,1].
func (f FloatyBool) Random(rng *rand.Rand) FloatyBool {
	return FloatyBool{Value: rng.Float32()}
}

// Half is FloatyBool's natural reference point: the center of its domain,
// and the canonical default midpoint for Opposite.
var Half = FloatyBool{Value: 0.5}

// Zero returns FloatyBool's reference/template value. Unlike the bounded
// atoms (whose Zero sits at their lower bound), FloatyBool's domain has no
// separate base/offset frame, so its reference point is its self-symmetric
// center, 0.5 — this is what makes Opposite(Zero()) reproduce the original
// unparameterized `1 - value` reflection.
func (f FloatyBool) Zero() FloatyBool {
	return Half
}

// ParameterCount is always 1.
func (f FloatyBool) ParameterCount() int { return 1 }

// VisitNamed flattens f to a named scalar.
func (f FloatyBool) VisitNamed(name string, v FeatureVisitor) {
	v.Collect(name, f.Value)
}

var _ Differentiable[FloatyBool] = FloatyBool{}
