package oide

import "math/rand"

// BoundedFactorVec is a fixed-size, sparsely-active vector of bounded real
// factors, used for things like an influence map's per-species weights
// (spec §4.1 "BoundedFactorVec"). Grounded on r_oide/src/atoms.rs's
// BoundedFactorVec.
type BoundedFactorVec struct {
	Cells      []BoolCell[float32]
	LowerBound float32
	UpperBound float32
}

// NewBoundedFactorVec builds a BoundedFactorVec of size cells, each
// initially inactive with value 0, over [lower, upper].
func NewBoundedFactorVec(lower, upper float32, size int) BoundedFactorVec {
	return BoundedFactorVec{Cells: make([]BoolCell[float32], size), LowerBound: lower, UpperBound: upper}
}

// ToFloat32Vec reports each cell's value if active, 0 otherwise.
func (v BoundedFactorVec) ToFloat32Vec() []float32 {
	out := make([]float32, len(v.Cells))
	for i, c := range v.Cells {
		if c.IsActive() {
			out[i] = c.Value
		}
	}
	return out
}

// FillTo grows v in place with inactive zero-valued cells until it holds
// at least size entries.
func (v *BoundedFactorVec) FillTo(size int) {
	for len(v.Cells) < size {
		v.Cells = append(v.Cells, BoolCell[float32]{})
	}
}

// Add sums each pair of cells elementwise.
func (v BoundedFactorVec) Add(other BoundedFactorVec) BoundedFactorVec {
	out := make([]BoolCell[float32], len(v.Cells))
	for i := range v.Cells {
		out[i] = addFactorCell(v.Cells[i], other.Cells[i], v.LowerBound, v.UpperBound)
	}
	return BoundedFactorVec{Cells: out, LowerBound: v.LowerBound, UpperBound: v.UpperBound}
}

// Difference is the elementwise reflected difference of the two vectors.
func (v BoundedFactorVec) Difference(other BoundedFactorVec) BoundedFactorVec {
	out := make([]BoolCell[float32], len(v.Cells))
	for i := range v.Cells {
		out[i] = diffFactorCell(v.Cells[i], other.Cells[i], v.LowerBound, v.UpperBound)
	}
	return BoundedFactorVec{Cells: out, LowerBound: v.LowerBound, UpperBound: v.UpperBound}
}

// Scale scales every cell by factor.
func (v BoundedFactorVec) Scale(factor float32) BoundedFactorVec {
	out := make([]BoolCell[float32], len(v.Cells))
	for i, c := range v.Cells {
		out[i] = scaleFactorCell(c, factor, v.LowerBound, v.UpperBound)
	}
	return BoundedFactorVec{Cells: out, LowerBound: v.LowerBound, UpperBound: v.UpperBound}
}

// Opposite reflects every cell's value within [LowerBound, UpperBound].
// midpoint is ignored, matching BoundedIdxVec's treatment: the reference
// implementation's per-cell reflection has no midpoint parameter.
func (v BoundedFactorVec) Opposite(_ BoundedFactorVec) BoundedFactorVec {
	out := make([]BoolCell[float32], len(v.Cells))
	for i, c := range v.Cells {
		out[i] = oppositeFactorCell(c, v.LowerBound, v.UpperBound)
	}
	return BoundedFactorVec{Cells: out, LowerBound: v.LowerBound, UpperBound: v.UpperBound}
}

// ApplyBounds adopts other's cells outright: a BoundedFactorVec carries no
// per-cell schema beyond the shared [LowerBound, UpperBound] pair already
// fixed at construction.
func (v BoundedFactorVec) ApplyBounds(other BoundedFactorVec) BoundedFactorVec {
	out := make([]BoolCell[float32], len(other.Cells))
	copy(out, other.Cells)
	return BoundedFactorVec{Cells: out, LowerBound: v.LowerBound, UpperBound: v.UpperBound}
}

// Random draws a fresh activation and value for every cell.
func (v BoundedFactorVec) Random(rng *rand.Rand) BoundedFactorVec {
	out := make([]BoolCell[float32], len(v.Cells))
	for i := range v.Cells {
		out[i] = randomFactorCell(rng, v.LowerBound, v.UpperBound)
	}
	return BoundedFactorVec{Cells: out, LowerBound: v.LowerBound, UpperBound: v.UpperBound}
}

// Zero returns a same-shaped vector with every cell inactive and at value
// 0, the default midpoint for Opposite.
func (v BoundedFactorVec) Zero() BoundedFactorVec {
	return BoundedFactorVec{Cells: make([]BoolCell[float32], len(v.Cells)), LowerBound: v.LowerBound, UpperBound: v.UpperBound}
}

// ParameterCount is two scalars (activation, value) per cell.
func (v BoundedFactorVec) ParameterCount() int { return 2 * len(v.Cells) }

// VisitNamed flattens v's cells as name.activeN / name.valueN pairs.
func (v BoundedFactorVec) VisitNamed(name string, fv FeatureVisitor) {
	fv.Push(name)
	for i, c := range v.Cells {
		fv.Collect(indexedName("active", i), boolToFloat(c.IsActive()))
		fv.Collect(indexedName("value", i), c.Value)
	}
	fv.Pop()
}

var _ Differentiable[BoundedFactorVec] = BoundedFactorVec{}
