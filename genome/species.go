package genome

import (
	"github.com/pthm-cable/swarmgrammar/actor"
	"github.com/pthm-cable/swarmgrammar/vecmath"
)

// Energy aggregates a species' four independent energy sub-policies (spec
// §3 "Energy policy"). Grounded on core/src/swarm/genome/energy.rs's
// Energy.
type Energy struct {
	OnMovement    MovementEnergy
	OnZero        ZeroEnergy
	OnReplication ReplicationEnergy
	ForOffspring  OffspringEnergy
}

// DefaultEnergy mirrors the reference implementation's per-field
// defaults: a constant movement cost of 1, die on zero energy, a constant
// replication cost of 1, and offspring inheriting their parent's energy
// unchanged.
func DefaultEnergy() Energy {
	return Energy{
		OnMovement:    MovementEnergy{Kind: MovementConstant, Value: 1},
		OnZero:        ZeroEnergy{Kind: ZeroDie},
		OnReplication: ReplicationEnergy{Kind: ReplicationConstant, Value: 1},
		ForOffspring:  OffspringEnergy{Kind: OffspringInherit, Value: 1},
	}
}

// ArtifactType is the per-species-like metadata attached to an artifact
// kind (spec §3 "Artifact").
type ArtifactType struct {
	ColorIndex int
}

// Species carries every behavioral, perceptual, and energetic factor a
// genome assigns to one kind of agent (spec §3 "Species"). Grounded on
// core/src/swarm/genome.rs's Species, extended with the terrain-response
// factors (Floor, Bias, Gradient, Normal, Slope) and motion factors
// (NormalSpeed, MaxAcceleration, Pacekeeping, ViewAngle) the expanded
// spec's data model adds over the simpler reference Species. Mass is the
// evolvable gravity multiplier spec §4.4's position update names directly
// ("mass · gravity"), carried over from core/src/swarm/genome.rs's own
// `mass: Factor`.
type Species struct {
	Index actor.SpeciesIndex

	Separation float32
	Alignment  float32
	Cohesion   float32
	Randomness float32
	Center     float32
	Mass       float32
	Floor      float32
	Bias       vecmath.Vector3
	Gradient   float32
	Normal     float32
	Slope      float32

	NormalSpeed     float32
	MaxSpeed        float32
	MaxAcceleration float32
	Pacekeeping     float32

	ViewDistance float32
	ViewAngle    float32
	SepDistance  float32

	AxisConstraint vecmath.Vector3
	Noclip         bool

	Energy Energy

	InfluencedBy map[actor.SurroundingIndex]float32
	Rules        []ContextRule
	ColorIndex   int
	HandDownSeed bool
}

// Influence returns the influence weight species assigns to neighbors of
// kind other, 0 if unspecified (spec §4.4 "weighted by
// species.influenced_by[other.species] (default 0)").
func (s *Species) Influence(other actor.SurroundingIndex) float32 {
	return s.InfluencedBy[other]
}
