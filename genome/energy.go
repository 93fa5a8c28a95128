// Package genome implements the swarm grammar's declarative rule system:
// species, context rules, replacement, energy policy, and initial
// distributions (spec §3 "Species"/"ContextRule"/"Replacement"/"Energy
// policy", §4.3 "Rule Engine"). Grounded on core/src/swarm/genome.rs,
// core/src/swarm/genome/energy.rs and core/src/swarm/genome/
// replacement.rs.
package genome

// MovementEnergyKind discriminates the on_movement sub-policy.
type MovementEnergyKind uint8

const (
	MovementConstant MovementEnergyKind = iota
	MovementDistance
	MovementNone
)

// MovementEnergy charges an agent for having moved this tick (spec §3
// "on_movement").
type MovementEnergy struct {
	Kind  MovementEnergyKind
	Value float32 // Constant: flat cost. Distance: per-unit-speed factor.
}

// Get returns the energy cost of having moved at the given speed.
func (m MovementEnergy) Get(speed float32) float32 {
	switch m.Kind {
	case MovementConstant:
		return m.Value
	case MovementDistance:
		return speed * m.Value
	default:
		return 0
	}
}

// ReplicationEnergyKind discriminates the on_replication sub-policy.
type ReplicationEnergyKind uint8

const (
	ReplicationConstant ReplicationEnergyKind = iota
	ReplicationCount
	ReplicationPropRel
	ReplicationPropConst
	ReplicationNone
)

// ReplicationEnergy computes the parent's remaining energy after spawning
// count offspring, each carrying energyPerOffspring (spec §3
// "on_replication").
type ReplicationEnergy struct {
	Kind  ReplicationEnergyKind
	Value float32
}

// Get returns the parent's post-replication energy.
func (r ReplicationEnergy) Get(current float32, count int, energyPerOffspring float32) float32 {
	switch r.Kind {
	case ReplicationConstant:
		return current - r.Value
	case ReplicationCount:
		return current - float32(count)*r.Value
	case ReplicationPropRel:
		return energyPerOffspring
	case ReplicationPropConst:
		v := current - r.Value - float32(count)*energyPerOffspring
		if v < 0 {
			v = 0
		}
		return v
	default:
		return current
	}
}

// OffspringEnergyKind discriminates the for_offspring sub-policy.
type OffspringEnergyKind uint8

const (
	OffspringConstant OffspringEnergyKind = iota
	OffspringInherit
	OffspringPropRel
	OffspringPropConst
)

// OffspringEnergy computes the energy handed to each newly created agent
// (spec §3 "for_offspring").
type OffspringEnergy struct {
	Kind  OffspringEnergyKind
	Value float32 // Constant: flat value. Inherit: fraction of parent's energy. PropRel/PropConst: offset.
	Cap   float32 // PropConst only: the per-offspring ceiling.
}

// Get returns the energy assigned to one offspring, given the parent's
// current energy, the total offspring count this replacement produces,
// and whether the parent itself persists (and so also draws a share).
func (o OffspringEnergy) Get(current float32, count int, parentPersists bool) float32 {
	switch o.Kind {
	case OffspringConstant:
		return o.Value
	case OffspringInherit:
		return current * o.Value
	case OffspringPropRel:
		n := count
		if parentPersists {
			n++
		}
		if n == 0 {
			return 0
		}
		return (current - o.Value) / float32(n)
	case OffspringPropConst:
		if count == 0 {
			return o.Cap
		}
		v := (current - o.Value) / float32(count)
		if v > o.Cap {
			return o.Cap
		}
		return v
	default:
		return current
	}
}

// ZeroEnergyKind discriminates the on_zero sub-policy.
type ZeroEnergyKind uint8

const (
	ZeroDie ZeroEnergyKind = iota
	ZeroLive
	ZeroReplace
)

// ZeroEnergy governs what happens to an agent whose energy has crossed
// zero (spec §3 "on_zero"): it dies, survives pinned at zero, or runs one
// last forced Replacement before dying.
type ZeroEnergy struct {
	Kind        ZeroEnergyKind
	Threshold   uint16 // Replace only: the forced energy value offspring receive.
	Replacement *Replacement
}

// IsAlive reports whether an agent with the given energy still counts as
// alive under this policy. Live agents are always alive regardless of
// energy; Die and Replace agents are alive only while energy > 0.
func (z ZeroEnergy) IsAlive(energy float32) bool {
	if z.Kind == ZeroLive {
		return true
	}
	return energy > 0
}
