// Package grammar ties genome, spatial, and actor together into the
// executable swarm grammar: the tick pipeline that runs rule replacement,
// kinematics, energy accounting, and terrain relaxation in the order
// spec §4.5 mandates. Grounded on core/src/swarm/grammar.rs's
// SwarmGrammar and its recalc_agent.
package grammar

import (
	"math"
	"math/rand"

	"github.com/pthm-cable/swarmgrammar/actor"
	"github.com/pthm-cable/swarmgrammar/genome"
	"github.com/pthm-cable/swarmgrammar/vecmath"
)

// gravityCoefficient scales the downward bias applied as an agent drifts
// above its seed height (spec §4.4: "a downward gravity-like bias whose
// magnitude grows with (position.y - seed_center.y)^2"). The exact
// coefficient is an Open Question the spec leaves to the implementer;
// chosen here to keep the bias a gentle correction rather than a hard
// snap back to seed height.
const gravityCoefficient = 0.001

// recalcAgent computes one agent's post-kinematics velocity and position
// from a frozen pre-tick snapshot of its neighbors (spec §4.4). rnd is
// this agent's pre-sampled random unit vector, drawn serially ahead of
// time to preserve determinism under parallel kinematics (spec §5,
// §9 "Random-number discipline").
func recalcAgent(a actor.Agent, species *genome.Species, neighbors []actor.Agent, rnd vecmath.Vector3) actor.Agent {
	var sepVec, aliVec, cohVec vecmath.Vector3
	var sepWeight float32

	for _, other := range neighbors {
		w := species.Influence(actor.AgentSurrounding(other.SpeciesIndex))
		if w == 0 {
			continue
		}
		dist := a.Position.Distance(other.Position)

		if dist < species.SepDistance {
			sepVec = sepVec.Add(other.Position.Scale(w))
			aw := w
			if aw < 0 {
				aw = -aw
			}
			sepWeight += aw
		}

		if dist < species.ViewDistance && withinViewAngle(a.Velocity, other.Position.Sub(a.Position), species.ViewAngle) {
			aliVec = aliVec.Add(other.Velocity.Scale(w))
			cohVec = cohVec.Add(other.Position.Scale(w))
		}
	}

	var sepNorm vecmath.Vector3
	if sepWeight != 0 {
		sepNorm = sepVec.Scale(1 / sepWeight).Sub(a.Position).Scale(-1)
	}
	aliNorm := aliVec
	cohNorm := cohVec.Sub(a.Position)
	cenNorm := a.SeedCenter.Sub(a.Position)

	dy := a.Position.Y - a.SeedCenter.Y
	gravity := vecmath.Vector3{Y: -gravityCoefficient * dy * dy}
	if dy < 0 {
		gravity.Y = -gravity.Y
	}

	accel := sepNorm.Scale(species.Separation * 0.01).
		Add(aliNorm.Scale(species.Alignment * 0.1)).
		Add(cohNorm.Scale(species.Cohesion * 0.01)).
		Add(cenNorm.Scale(species.Center * 0.01)).
		Add(rnd.Scale(species.Randomness * 0.1))

	newVel := a.Velocity.Add(accel).Mul(species.AxisConstraint)
	if mag := newVel.Magnitude(); mag > species.MaxSpeed && mag > 0 {
		newVel = newVel.NormalizeTo(species.MaxSpeed)
	}

	newPos := a.Position.Add(newVel).Add(gravity.Scale(species.Mass))
	if species.Noclip && newPos.Y < a.SeedCenter.Y {
		newPos.Y = a.SeedCenter.Y
	}

	a.Velocity = newVel
	a.Position = newPos
	return a
}

// withinViewAngle reports whether target lies within halfAngleDeg degrees
// of heading — spec §4.4's "the angle between this agent's velocity and
// (other.position - position) is <= 90 degrees" generalized to an
// arbitrary per-species view angle (the richer Species.ViewAngle field
// the expanded data model adds).
func withinViewAngle(heading, target vecmath.Vector3, halfAngleDeg float32) bool {
	if heading.IsZero() || target.IsZero() {
		return true
	}
	return heading.AngleTo(target) <= float32(halfAngleDeg)*float32(math.Pi)/180
}

// sampleRandomUnitVectors draws n unit vectors sequentially from rng, in
// agent-index order, so a later parallel kinematics pass can safely
// index into the result without perturbing draw order (spec §5, §9).
func sampleRandomUnitVectors(rng *rand.Rand, n int) []vecmath.Vector3 {
	out := make([]vecmath.Vector3, n)
	for i := range out {
		v := vecmath.Vector3{
			X: rng.Float32()*2 - 1,
			Y: rng.Float32()*2 - 1,
			Z: rng.Float32()*2 - 1,
		}
		if v.IsZero() {
			v = vecmath.Vector3{X: 1}
		}
		out[i] = v.Normalize()
	}
	return out
}
