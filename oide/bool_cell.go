package oide

import "math/rand"

// BoolCell pairs a FloatyBool activation flag with a value, the building
// block BoundedIdxVec and BoundedFactorVec assemble into sparse index/
// factor sets (spec §4.1 "BoolCell[T]"). Grounded on r_oide/src/atoms.rs's
// BoolCell<T>, whose operator set is specialized per T (usize vs f32)
// rather than generic — Go can't attach methods to an instantiated generic
// type, so the same specialization is expressed here as free functions
// keyed on the element type.
type BoolCell[T any] struct {
	Active FloatyBool
	Value  T
}

// IsActive reports the cell's boolean interpretation.
func (c BoolCell[T]) IsActive() bool { return c.Active.Bool() }

// addIdxCell sums two index cells' activation flags and wraps their index
// sum modulo indexCount+1 (matching the reference implementation's
// `(other.value + self.value) % (index_count + 1)`).
func addIdxCell(a, b BoolCell[int], indexCount int) BoolCell[int] {
	return BoolCell[int]{
		Active: a.Active.Add(b.Active),
		Value:  (a.Value + b.Value) % (indexCount + 1),
	}
}

// diffIdxCell is the absolute difference of two index cells.
func diffIdxCell(a, b BoolCell[int]) BoolCell[int] {
	d := a.Value - b.Value
	if d < 0 {
		d = -d
	}
	return BoolCell[int]{Active: a.Active.Difference(b.Active), Value: d}
}

// scaleIdxCell scales an index cell's activation and rounds its scaled
// index.
func scaleIdxCell(c BoolCell[int], factor float32) BoolCell[int] {
	return BoolCell[int]{
		Active: c.Active.Scale(factor),
		Value:  int(float32(c.Value)*factor + 0.5),
	}
}

// oppositeIdxCell reflects an index cell's index around indexCount.
func oppositeIdxCell(c BoolCell[int], indexCount int) BoolCell[int] {
	return BoolCell[int]{Active: c.Active.Opposite(c.Active.Zero()), Value: indexCount - c.Value}
}

// randomIdxCell draws a fresh activation and index in [lower, upper].
func randomIdxCell(rng *rand.Rand, lower, upper int) BoolCell[int] {
	v := lower
	if upper > lower {
		v = lower + rng.Intn(upper-lower+1)
	}
	return BoolCell[int]{Active: FloatyBool{}.Random(rng), Value: v}
}

// addFactorCell sums two factor cells' activations and values, the value
// sum going through BoundedFactor's reflection repair.
func addFactorCell(a, b BoolCell[float32], lower, upper float32) BoolCell[float32] {
	va := NewBoundedFactor(lower, upper, a.Value)
	vb := NewBoundedFactor(lower, upper, b.Value)
	return BoolCell[float32]{Active: a.Active.Add(b.Active), Value: va.Add(vb).Value()}
}

// diffFactorCell is the reflected difference of two factor cells' values.
func diffFactorCell(a, b BoolCell[float32], lower, upper float32) BoolCell[float32] {
	va := NewBoundedFactor(lower, upper, a.Value)
	vb := NewBoundedFactor(lower, upper, b.Value)
	return BoolCell[float32]{Active: a.Active.Difference(b.Active), Value: va.Difference(vb).Value()}
}

// scaleFactorCell scales a factor cell's activation and value.
func scaleFactorCell(c BoolCell[float32], factor, lower, upper float32) BoolCell[float32] {
	v := NewBoundedFactor(lower, upper, c.Value)
	return BoolCell[float32]{Active: c.Active.Scale(factor), Value: v.Scale(factor).Value()}
}

// oppositeFactorCell reflects a factor cell's value within [lower, upper].
func oppositeFactorCell(c BoolCell[float32], lower, upper float32) BoolCell[float32] {
	v := NewBoundedFactor(lower, upper, c.Value)
	return BoolCell[float32]{Active: c.Active.Opposite(c.Active.Zero()), Value: v.Opposite(v.Zero()).Value()}
}

// randomFactorCell draws a fresh activation and value in [lower, upper].
func randomFactorCell(rng *rand.Rand, lower, upper float32) BoolCell[float32] {
	v := NewBoundedFactor(lower, upper, lower)
	return BoolCell[float32]{Active: FloatyBool{}.Random(rng), Value: v.Random(rng).Value()}
}
