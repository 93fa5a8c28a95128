package actor

import (
	"github.com/pthm-cable/swarmgrammar/uid"
	"github.com/pthm-cable/swarmgrammar/vecmath"
)

// Agent is a live member of a species: the unit the rule engine and
// kinematics step both operate on (spec §3 "Agent"). Grounded on
// core/src/swarm/actor.rs's Agent.
type Agent struct {
	ID           uid.UID
	Position     vecmath.Vector3
	Velocity     vecmath.Vector3
	Energy       float32
	SpeciesIndex SpeciesIndex
	SeedCenter   vecmath.Vector3
	Iteration    uint64
	// Last is the UID of the artifact this agent most recently produced,
	// used as Artifact.Pre when a rule chains artifact production.
	Last *uid.UID
}

// Artifact is a stationary marker a rule leaves behind: it never moves or
// participates in kinematics, but can be sensed as context by later rules
// (spec §3 "Artifact").
type Artifact struct {
	ID            uid.UID
	Position      vecmath.Vector3
	ArtifactIndex ArtifactIndex
	Energy        float32
	// Pre is the UID of the artifact this one succeeded in a chain, if any.
	Pre       *uid.UID
	Iteration uint64
}

// Buoy is a non-indexed terrain marker: buoys collectively represent the
// ground height field and never appear in a rule's context (spec §3
// "Buoy").
type Buoy struct {
	Position         vecmath.Vector3
	VerticalVelocity float32
	Baseline         float32
}
