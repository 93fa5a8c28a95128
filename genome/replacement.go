package genome

import (
	"math"

	"github.com/pthm-cable/swarmgrammar/actor"
	"github.com/pthm-cable/swarmgrammar/uid"
	"github.com/pthm-cable/swarmgrammar/vecmath"
)

// ReplacementKind discriminates the four replacement shapes (spec §3
// "Replacement").
type ReplacementKind uint8

const (
	ReplacementNone ReplacementKind = iota
	ReplacementSimple
	ReplacementMulti
	ReplacementSpread
)

// Replacement describes what a matched context rule (or a forced on_zero
// replacement) produces from a parent agent. Grounded on
// core/src/swarm/genome/replacement.rs's Replacement.
type Replacement struct {
	Kind ReplacementKind

	Simple []actor.SurroundingIndex // ReplacementSimple
	Multi  []Replacement            // ReplacementMulti

	SpreadSpecies   actor.SpeciesIndex // ReplacementSpread
	SpreadCount     int
	SpreadOffsetDeg float32
}

// ReplaceAgent expands self against parent, using genome to resolve the
// parent's species. It implements spec §4.3 step 4 (Simple/Multi/Spread
// expansion) plus the on_zero::Die short-circuit documented alongside it.
func (r Replacement) ReplaceAgent(parent *actor.Agent, g *SwarmGenome, uidGen *uid.Generator) ([]actor.Agent, []actor.Artifact) {
	species := &g.SpeciesMap[parent.SpeciesIndex]
	if parent.Energy < 0 && species.Energy.OnZero.Kind == ZeroDie {
		return nil, nil
	}
	return r.expand(parent, species, nil, uidGen)
}

// ReplaceAgentUnchecked runs Replacement with every offspring's energy
// forced to energyOverride, bypassing for_offspring — this is how
// on_zero::Replace spends its one last forced replacement (spec §3
// "on_zero: ... Replace(threshold, Replacement)").
func (r Replacement) ReplaceAgentUnchecked(parent *actor.Agent, species *Species, energyOverride float32, uidGen *uid.Generator) ([]actor.Agent, []actor.Artifact) {
	return r.expand(parent, species, &energyOverride, uidGen)
}

func (r Replacement) expand(parent *actor.Agent, species *Species, energyOverride *float32, uidGen *uid.Generator) ([]actor.Agent, []actor.Artifact) {
	var agents []actor.Agent
	var artifacts []actor.Artifact

	switch r.Kind {
	case ReplacementNone:
		// no-op

	case ReplacementSimple:
		for _, idx := range r.Simple {
			if idx.IsAgent() {
				agents = append(agents, species.generateAgent(parent, idx.Species, energyOverride, uidGen))
			} else {
				artifacts = append(artifacts, actor.Artifact{
					ArtifactIndex: idx.Artifact,
					ID:            uidGen.Next(),
					Position:      parent.Position,
					Pre:           parent.Last,
				})
			}
		}

	case ReplacementMulti:
		for _, sub := range r.Multi {
			ags, arts := sub.expand(parent, species, energyOverride, uidGen)
			agents = append(agents, ags...)
			artifacts = append(artifacts, arts...)
		}

	case ReplacementSpread:
		if r.SpreadCount <= 0 {
			break
		}
		step := 360.0 / float32(r.SpreadCount)
		vel := vecmath.RotateY(parent.Velocity, r.SpreadOffsetDeg)
		for i := 0; i < r.SpreadCount; i++ {
			newAgent := species.generateAgent(parent, r.SpreadSpecies, energyOverride, uidGen)
			newAgent.Velocity = vel
			agents = append(agents, newAgent)
			vel = vecmath.RotateY(vel, step)
		}
	}

	return agents, artifacts
}

// generateAgent clones parent into a new agent of newIndex's species,
// assigning it a fresh UID, applying hand_down_seed, and the offspring
// energy policy (spec §4.3 step 4's Simple/Spread description, §8 P7
// "every agent and artifact UID is unique for the run"). energyOverride,
// when non-nil, bypasses for_offspring — used by ReplaceAgentUnchecked.
func (s *Species) generateAgent(parent *actor.Agent, newIndex actor.SpeciesIndex, energyOverride *float32, uidGen *uid.Generator) actor.Agent {
	clone := *parent
	clone.ID = uidGen.Next()
	clone.SpeciesIndex = newIndex
	if energyOverride != nil {
		clone.Energy = *energyOverride
	} else {
		clone.Energy = s.Energy.ForOffspring.Get(parent.Energy, 1, true)
	}
	if s.HandDownSeed {
		clone.SeedCenter = parent.Position
	}
	clone.Last = nil
	return clone
}

// ApplicationStrategy gates whether the rule engine runs at all this tick:
// a shared countdown on the genome, not per-species (spec §3
// "ApplicationStrategy"). Grounded on core/src/swarm/genome/
// replacement.rs's ApplicationStrategy.
type ApplicationStrategy struct {
	Every  int
	Offset int
}

// Tick advances the countdown: decrements while positive, otherwise resets
// to Every. This exact order (check-then-reset) means should_replace is
// true for exactly one tick out of every Every+1.
func (a *ApplicationStrategy) Tick() {
	if a.Offset >= 1 {
		a.Offset--
	} else {
		a.Offset = a.Every
	}
}

// ShouldReplace reports whether the rule engine should run this tick.
func (a ApplicationStrategy) ShouldReplace() bool {
	return a.Offset == 0
}

func clampFloat32(v, lo, hi float32) float32 {
	return float32(math.Max(float64(lo), math.Min(float64(hi), float64(v))))
}
