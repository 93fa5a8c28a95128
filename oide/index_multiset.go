package oide

import "math/rand"

// IndexMultiset encodes a multiset of target indices (a context rule's
// match multiset or replacement multiset, spec §4.1 "IndexMultiset") as a
// vector of floats: GetIndices truncates each entry's absolute value to a
// repeat count. Grounded on r_oide/src/atoms/multiset.rs.
type IndexMultiset []float32

// NewIndexMultiset returns an all-zero multiset of the given size.
func NewIndexMultiset(size int) IndexMultiset {
	return make(IndexMultiset, size)
}

// GetIndices expands the multiset into its repeated-index form: entry i's
// truncated absolute value is the number of times index i appears.
func (m IndexMultiset) GetIndices() []int {
	var out []int
	for i, v := range m {
		if v < 0 {
			v = -v
		}
		count := int(v)
		for k := 0; k < count; k++ {
			out = append(out, i)
		}
	}
	return out
}

// Add sums elementwise and takes the absolute value, keeping the result
// in [0, +inf).
func (m IndexMultiset) Add(other IndexMultiset) IndexMultiset {
	mustSameLenMultiset(m, other)
	out := make(IndexMultiset, len(m))
	for i := range m {
		s := m[i] + other[i]
		if s < 0 {
			s = -s
		}
		out[i] = s
	}
	return out
}

// Difference is the elementwise signed difference, unlike Add left
// unsigned (matches the reference implementation: add stays in [0,inf),
// difference stays signed).
func (m IndexMultiset) Difference(other IndexMultiset) IndexMultiset {
	mustSameLenMultiset(m, other)
	out := make(IndexMultiset, len(m))
	for i := range m {
		out[i] = m[i] - other[i]
	}
	return out
}

// Scale multiplies every entry by factor.
func (m IndexMultiset) Scale(factor float32) IndexMultiset {
	out := make(IndexMultiset, len(m))
	for i, v := range m {
		out[i] = v * factor
	}
	return out
}

// Opposite negates every entry. midpoint is ignored: the reference
// implementation's opposite is the unparameterized per-entry negation (an
// alternative magnitude-preserving normalization is commented out there,
// never enabled).
func (m IndexMultiset) Opposite(_ IndexMultiset) IndexMultiset {
	out := make(IndexMultiset, len(m))
	for i, v := range m {
		out[i] = -v
	}
	return out
}

// ApplyBounds adopts other outright: IndexMultiset carries no bound
// schema beyond its own length.
func (m IndexMultiset) ApplyBounds(other IndexMultiset) IndexMultiset {
	out := make(IndexMultiset, len(other))
	copy(out, other)
	return out
}

// Random draws each entry uniformly in [0, 1+1/len].
func (m IndexMultiset) Random(rng *rand.Rand) IndexMultiset {
	out := make(IndexMultiset, len(m))
	if len(m) == 0 {
		return out
	}
	p := 1 + 1/float32(len(m))
	for i := range m {
		out[i] = rng.Float32() * p
	}
	return out
}

// Zero returns an all-zero multiset of the same size, the default
// midpoint for Opposite.
func (m IndexMultiset) Zero() IndexMultiset {
	return make(IndexMultiset, len(m))
}

// ParameterCount is one scalar per entry.
func (m IndexMultiset) ParameterCount() int { return len(m) }

// VisitNamed flattens m as name.msetNN scalars, each entry's absolute
// value.
func (m IndexMultiset) VisitNamed(name string, fv FeatureVisitor) {
	fv.Push(name)
	for i, v := range m {
		if v < 0 {
			v = -v
		}
		fv.Collect(indexedName("mset", i), v)
	}
	fv.Pop()
}

func mustSameLenMultiset(a, b IndexMultiset) {
	if len(a) != len(b) {
		panic("oide: IndexMultiset operands have different lengths")
	}
}

var _ Differentiable[IndexMultiset] = IndexMultiset{}
