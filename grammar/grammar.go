package grammar

import (
	"math/rand"

	"github.com/pthm-cable/swarmgrammar/actor"
	"github.com/pthm-cable/swarmgrammar/genome"
	"github.com/pthm-cable/swarmgrammar/spatial"
	"github.com/pthm-cable/swarmgrammar/uid"
)

// SwarmGrammar owns one running simulation: a genome, its live population,
// a spatial index rebuilt every tick, and the UID generator and RNG that
// must advance deterministically for a fixed seed to reproduce a fixed
// trajectory (spec §4.5, §5, §8 P5). Grounded on core/src/swarm/
// grammar.rs's SwarmGrammar.
type SwarmGrammar struct {
	Genome *genome.SwarmGenome
	World  *spatial.ChunkedWorld
	UIDGen *uid.Generator
	RNG    *rand.Rand

	Agents    []actor.Agent
	Artifacts []actor.Artifact
	Buoys     []actor.Buoy

	Iteration uint64
}

// New seeds a SwarmGrammar's initial population from g's start distribution
// (spec §4.3 step 4's sibling operation).
func New(g *genome.SwarmGenome, spacing float32, seed int64) *SwarmGrammar {
	uidGen := uid.NewGenerator()
	rng := rand.New(rand.NewSource(seed))
	agents, artifacts := g.GetStart(rng, uidGen)

	return &SwarmGrammar{
		Genome:    g,
		World:     spatial.New(spacing),
		UIDGen:    uidGen,
		RNG:       rng,
		Agents:    agents,
		Artifacts: artifacts,
		Buoys:     buildTerrain(g.Terrain),
	}
}

// Step advances the simulation by exactly one tick, in the 5-stage order
// spec §4.5 mandates: (1) tick the application strategy and, if it fired,
// run the rule engine and install its replacement agent set; (2) rebuild
// the spatial index over the (possibly new) agent set; (3) run kinematics,
// integrating position and charging on_movement energy; (4) apply on_zero
// to cull or force-replace agents that have run out of energy; (5) relax
// buoys against the new agent positions.
func (sg *SwarmGrammar) Step() {
	sg.Genome.Tick()
	if sg.Genome.Strategy.ShouldReplace() {
		sg.runRuleEngine()
	}

	sg.rebuildAgentIndex()
	sg.runKinematics()
	sg.applyOnZero()
	sg.relaxBuoys()

	sg.Iteration++
}

func (sg *SwarmGrammar) rebuildAgentIndex() {
	sg.World.DeleteAgents()
	for _, a := range sg.Agents {
		sg.World.InsertAgent(a)
	}
}

func (sg *SwarmGrammar) rebuildArtifactIndex() {
	sg.World.DeleteArtifacts()
	for _, a := range sg.Artifacts {
		sg.World.InsertArtifact(a)
	}
}

// runRuleEngine runs spec §4.3's full per-agent pipeline: gather context,
// filter to applicable rules, weighted-select one, expand its replacement,
// and decide whether the parent itself persists. Context for every rule a
// species carries is gathered in one query sized to the widest rule range,
// since ContextRule.IsApplicable re-filters by its own (possibly smaller)
// range internally.
func (sg *SwarmGrammar) runRuleEngine() {
	sg.rebuildAgentIndex()
	sg.rebuildArtifactIndex()

	var nextAgents []actor.Agent
	var newArtifacts []actor.Artifact

	for _, a := range sg.Agents {
		rules := sg.Genome.GetRules(a.SpeciesIndex)
		if len(rules) == 0 {
			nextAgents = append(nextAgents, a)
			continue
		}

		ctx := sg.World.GetContextWithinExcludingSelf(maxRange(rules), a.Position, a.ID)
		applicable := filterApplicable(rules, ctx)
		if len(applicable) == 0 {
			nextAgents = append(nextAgents, a)
			continue
		}

		rule := selectRule(sg.RNG, applicable)
		offspring, artifacts := rule.Replacement.ReplaceAgent(&a, sg.Genome, sg.UIDGen)

		if rule.Persist {
			if len(artifacts) > 0 {
				last := artifacts[len(artifacts)-1].ID
				a.Last = &last
			}
			nextAgents = append(nextAgents, a)
		}
		nextAgents = append(nextAgents, offspring...)
		newArtifacts = append(newArtifacts, artifacts...)
	}

	sg.Agents = nextAgents
	sg.Artifacts = append(sg.Artifacts, newArtifacts...)
}

// runKinematics computes every agent's new velocity and position from a
// frozen pre-tick snapshot, then charges on_movement energy for the
// distance travelled (spec §4.4, §4.5 step 3). Random draws are sampled
// serially ahead of the per-agent update to keep the result reproducible
// even if the update loop itself is parallelized (spec §5, §9).
func (sg *SwarmGrammar) runKinematics() {
	snapshot := make([]actor.Agent, len(sg.Agents))
	copy(snapshot, sg.Agents)

	rnds := sampleRandomUnitVectors(sg.RNG, len(snapshot))
	updated := make([]actor.Agent, len(snapshot))

	for i, a := range snapshot {
		species := sg.Genome.GetSpecies(&a)
		radius := species.ViewDistance
		if species.SepDistance > radius {
			radius = species.SepDistance
		}
		neighbors, _ := sg.World.GetActorsAtLeastWithin(radius, a.Position)

		next := recalcAgent(a, species, neighbors, rnds[i])
		speed := next.Position.Distance(a.Position)
		next.Energy -= species.Energy.OnMovement.Get(speed)
		next.Iteration++
		updated[i] = next
	}

	sg.Agents = updated
}

// applyOnZero drops or force-replaces every agent whose energy policy no
// longer counts it as alive (spec §4.5 step 4, spec §3 "on_zero").
func (sg *SwarmGrammar) applyOnZero() {
	var survivors []actor.Agent
	var forced []actor.Artifact

	for _, a := range sg.Agents {
		species := sg.Genome.GetSpecies(&a)
		if species.Energy.OnZero.IsAlive(a.Energy) {
			survivors = append(survivors, a)
			continue
		}

		if species.Energy.OnZero.Kind == genome.ZeroReplace && species.Energy.OnZero.Replacement != nil {
			offspring, artifacts := species.Energy.OnZero.Replacement.ReplaceAgentUnchecked(
				&a, species, float32(species.Energy.OnZero.Threshold), sg.UIDGen)
			survivors = append(survivors, offspring...)
			forced = append(forced, artifacts...)
		}
		// ZeroDie: the agent is simply dropped.
	}

	sg.Agents = survivors
	sg.Artifacts = append(sg.Artifacts, forced...)
}

// relaxBuoys updates every buoy's height against the new agent positions
// (spec §4.5 step 5, §4.4 "Buoy relaxation").
func (sg *SwarmGrammar) relaxBuoys() {
	for i, b := range sg.Buoys {
		sg.Buoys[i] = relaxBuoy(b, sg.Agents)
	}
}
