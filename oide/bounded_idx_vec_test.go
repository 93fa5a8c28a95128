package oide

import (
	"math/rand"
	"testing"
)

// Every operator on BoundedIdxVec must keep indices within [0, indexCount)
// (spec §8 "BoundedIdxVec safety"), mirroring the reference
// implementation's testidxvec::add fuzz test.
func TestBoundedIdxVecStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1237919273))
	const totalSize = 20

	anyOutOfRange := func(v BoundedIdxVec, indexCount int) bool {
		for _, c := range v.Cells {
			if c.Value >= indexCount || c.Value < 0 {
				return true
			}
		}
		return false
	}

	for indexCount := 1; indexCount < 20; indexCount++ {
		base := NewBoundedIdxVec(indexCount, totalSize)
		for i := 0; i < 200; i++ {
			v1 := base.Random(rng)
			v2 := v1.Random(rng)

			if anyOutOfRange(v1, indexCount) {
				t.Fatalf("v1 out of range at indexCount=%d", indexCount)
			}
			if anyOutOfRange(v2, indexCount) {
				t.Fatalf("v2 out of range at indexCount=%d", indexCount)
			}

			o1 := v1.Opposite(v1.Zero())
			if anyOutOfRange(o1, indexCount) {
				t.Fatalf("opposite(v1) out of range at indexCount=%d", indexCount)
			}

			o2 := v2.Opposite(v2.Zero())
			if anyOutOfRange(o2, indexCount) {
				t.Fatalf("opposite(v2) out of range at indexCount=%d", indexCount)
			}

			s1 := v1.Scale(0.5)
			if anyOutOfRange(s1, indexCount) {
				t.Fatalf("scale(v1) out of range at indexCount=%d", indexCount)
			}

			v3 := v1.Add(v2)
			if anyOutOfRange(v3, indexCount) {
				t.Fatalf("add(v1,v2) out of range at indexCount=%d", indexCount)
			}

			v4 := v1.Difference(v3)
			if anyOutOfRange(v4, indexCount) {
				t.Fatalf("difference(v1,v3) out of range at indexCount=%d", indexCount)
			}
		}
	}
}
