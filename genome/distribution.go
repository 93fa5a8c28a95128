package genome

import (
	"github.com/pthm-cable/swarmgrammar/actor"
	"github.com/pthm-cable/swarmgrammar/vecmath"
)

// DistributionKind discriminates the four initial-placement shapes (spec
// §3 "Distribution").
type DistributionKind uint8

const (
	DistributionSingle DistributionKind = iota
	DistributionSingularity
	DistributionGrid
	DistributionMulti
)

// CountSurrounding pairs a repeat count with what to place, used by
// Singularity distributions.
type CountSurrounding struct {
	Count       int
	Surrounding actor.SurroundingIndex
}

// Distribution describes how a genome seeds its initial population (spec
// §3 "Distribution"). Grounded on core/src/swarm/genome.rs's Distribution.
type Distribution struct {
	Kind DistributionKind

	Pos         vecmath.Vector3    // Single, Singularity
	Surrounding actor.SurroundingIndex // Single
	Counts      []CountSurrounding // Singularity

	GridCount   int     // Grid
	GridSpacing float32 // Grid

	Multi []Distribution // Multi
}
