package oide

import "math/rand"

// BoundedIdxVec is a fixed-size, sparsely-active vector of indices into a
// foreign list (e.g. a context rule's target species indices), each entry
// independently switchable on or off (spec §4.1 "BoundedIdxVec"). Grounded
// on r_oide/src/atoms.rs's BoundedIdxVec.
type BoundedIdxVec struct {
	Cells      []BoolCell[int]
	UpperBound int // inclusive; valid indices are [0, UpperBound]
}

// NewBoundedIdxVec builds a BoundedIdxVec of size cells, each initially
// inactive and pointing at index 0, addressing indexCount distinct values.
func NewBoundedIdxVec(indexCount, size int) BoundedIdxVec {
	cells := make([]BoolCell[int], size)
	return BoundedIdxVec{Cells: cells, UpperBound: indexCount - 1}
}

// ActivationVec reports which cells are currently active.
func (v BoundedIdxVec) ActivationVec() []bool {
	out := make([]bool, len(v.Cells))
	for i, c := range v.Cells {
		out[i] = c.IsActive()
	}
	return out
}

// FillTo grows v in place with inactive zero-valued cells until it holds
// at least size entries.
func (v *BoundedIdxVec) FillTo(size int) {
	for len(v.Cells) < size {
		v.Cells = append(v.Cells, BoolCell[int]{})
	}
}

// Add sums each pair of cells elementwise, wrapping indices modulo
// UpperBound+1.
func (v BoundedIdxVec) Add(other BoundedIdxVec) BoundedIdxVec {
	out := make([]BoolCell[int], len(v.Cells))
	for i := range v.Cells {
		out[i] = addIdxCell(v.Cells[i], other.Cells[i], v.UpperBound)
	}
	return BoundedIdxVec{Cells: out, UpperBound: v.UpperBound}
}

// Difference is the elementwise absolute difference of the two vectors.
func (v BoundedIdxVec) Difference(other BoundedIdxVec) BoundedIdxVec {
	out := make([]BoolCell[int], len(v.Cells))
	for i := range v.Cells {
		out[i] = diffIdxCell(v.Cells[i], other.Cells[i])
	}
	return BoundedIdxVec{Cells: out, UpperBound: v.UpperBound}
}

// Scale scales every cell by factor.
func (v BoundedIdxVec) Scale(factor float32) BoundedIdxVec {
	out := make([]BoolCell[int], len(v.Cells))
	for i, c := range v.Cells {
		out[i] = scaleIdxCell(c, factor)
	}
	return BoundedIdxVec{Cells: out, UpperBound: v.UpperBound}
}

// Opposite reflects every cell's index around UpperBound. midpoint is
// ignored: the reference implementation's index-space reflection has no
// natural midpoint parameterization, so Opposite keeps its original
// unparameterized form here.
func (v BoundedIdxVec) Opposite(_ BoundedIdxVec) BoundedIdxVec {
	out := make([]BoolCell[int], len(v.Cells))
	for i, c := range v.Cells {
		out[i] = oppositeIdxCell(c, v.UpperBound)
	}
	return BoundedIdxVec{Cells: out, UpperBound: v.UpperBound}
}

// ApplyBounds projects other's cells into v's index range by taking each
// index modulo UpperBound+1.
func (v BoundedIdxVec) ApplyBounds(other BoundedIdxVec) BoundedIdxVec {
	out := make([]BoolCell[int], len(other.Cells))
	for i, c := range other.Cells {
		out[i] = BoolCell[int]{Active: c.Active, Value: c.Value % (v.UpperBound + 1)}
	}
	return BoundedIdxVec{Cells: out, UpperBound: v.UpperBound}
}

// Random draws a fresh activation and index for every cell.
func (v BoundedIdxVec) Random(rng *rand.Rand) BoundedIdxVec {
	out := make([]BoolCell[int], len(v.Cells))
	for i := range v.Cells {
		out[i] = randomIdxCell(rng, 0, v.UpperBound)
	}
	return BoundedIdxVec{Cells: out, UpperBound: v.UpperBound}
}

// Zero returns a same-shaped vector with every cell inactive and at index
// 0, the default midpoint for Opposite.
func (v BoundedIdxVec) Zero() BoundedIdxVec {
	return BoundedIdxVec{Cells: make([]BoolCell[int], len(v.Cells)), UpperBound: v.UpperBound}
}

// ParameterCount is two scalars (activation, index) per cell.
func (v BoundedIdxVec) ParameterCount() int { return 2 * len(v.Cells) }

// VisitNamed flattens v's cells as name.activeN / name.valueN pairs.
func (v BoundedIdxVec) VisitNamed(name string, fv FeatureVisitor) {
	fv.Push(name)
	for i, c := range v.Cells {
		fv.Collect(indexedName("active", i), boolToFloat(c.IsActive()))
		fv.Collect(indexedName("value", i), float32(c.Value))
	}
	fv.Pop()
}

func boolToFloat(b bool) float32 {
	if b {
		return 1
	}
	return 0
}

var _ Differentiable[BoundedIdxVec] = BoundedIdxVec{}
