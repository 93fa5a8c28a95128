package grammar

import (
	"testing"

	"github.com/pthm-cable/swarmgrammar/actor"
	"github.com/pthm-cable/swarmgrammar/genome"
	"github.com/pthm-cable/swarmgrammar/uid"
	"github.com/pthm-cable/swarmgrammar/vecmath"
)

// lonelySpecies is a species with no neighbors to react to: pure energy
// decay under a constant on_movement cost, used by the degenerate-world
// scenario (spec §8 S1).
func lonelySpecies() genome.Species {
	return genome.Species{
		MaxSpeed:       1,
		AxisConstraint: vecmath.Vector3{X: 1, Y: 1, Z: 1},
		Energy: genome.Energy{
			OnMovement: genome.MovementEnergy{Kind: genome.MovementConstant, Value: 1},
			OnZero:     genome.ZeroEnergy{Kind: genome.ZeroDie},
		},
	}
}

func newGrammarWithAgents(species genome.Species, agents []actor.Agent) *SwarmGrammar {
	g := &genome.SwarmGenome{SpeciesMap: []genome.Species{species}}
	sg := New(g, 10, 1)
	sg.Agents = agents
	return sg
}

// TestDegenerateSingleAgentDrainsToZero is spec §8 S1: a single isolated
// agent with no rules and a constant movement cost of 1 reaches energy 0
// well within 10 ticks and never goes alive again.
func TestDegenerateSingleAgentDrainsToZero(t *testing.T) {
	species := lonelySpecies()
	sg := newGrammarWithAgents(species, []actor.Agent{{
		ID: 0, Position: vecmath.Vector3{}, Energy: 1, SpeciesIndex: 0,
	}})

	for i := 0; i < 10; i++ {
		sg.Step()
	}

	if len(sg.Agents) != 0 {
		t.Fatalf("expected the lone agent to have died by tick 10, got %d survivors", len(sg.Agents))
	}
}

// TestSingleRuleFiresProducesOneArtifactWithNoPredecessor is spec §8 S3.
func TestSingleRuleFiresProducesOneArtifactWithNoPredecessor(t *testing.T) {
	trailArtifact := actor.ArtifactIndex(0)
	species := genome.Species{
		MaxSpeed:       1,
		AxisConstraint: vecmath.Vector3{X: 1, Y: 1, Z: 1},
		Energy:         genome.DefaultEnergy(),
		Rules: []genome.ContextRule{{
			Weight:  1,
			Persist: true,
			Replacement: genome.Replacement{
				Kind:   genome.ReplacementSimple,
				Simple: []actor.SurroundingIndex{actor.ArtifactSurrounding(trailArtifact)},
			},
		}},
	}
	g := &genome.SwarmGenome{
		SpeciesMap:  []genome.Species{species},
		ArtifactMap: []genome.ArtifactType{{ColorIndex: 0}},
		Strategy:    genome.ApplicationStrategy{Every: 0, Offset: 0},
	}
	sg := New(g, 10, 1)
	sg.Agents = []actor.Agent{{ID: 0, Energy: 5, SpeciesIndex: 0}}

	sg.Step()

	if len(sg.Artifacts) != 1 {
		t.Fatalf("expected exactly one artifact, got %d", len(sg.Artifacts))
	}
	if sg.Artifacts[0].Pre != nil {
		t.Fatalf("expected the first artifact's Pre to be nil, got %v", *sg.Artifacts[0].Pre)
	}
}

// TestSpreadProducesFourCardinalVelocities is spec §8 S4: Spread with
// count=4, offset=0 produces offspring velocities (1,0,0), (0,0,-1),
// (-1,0,0), (0,0,1) in order, derived from rotating the parent's initial
// heading by 360/4 = 90 degrees each step.
func TestSpreadProducesFourCardinalVelocities(t *testing.T) {
	parent := actor.Agent{Velocity: vecmath.Vector3{X: 1}}
	r := genome.Replacement{
		Kind:            genome.ReplacementSpread,
		SpreadSpecies:   0,
		SpreadCount:     4,
		SpreadOffsetDeg: 0,
	}
	species := genome.Species{Energy: genome.DefaultEnergy()}
	g := &genome.SwarmGenome{SpeciesMap: []genome.Species{species}}

	offspring, _ := r.ReplaceAgent(&parent, g, uid.NewGenerator())
	if len(offspring) != 4 {
		t.Fatalf("expected 4 offspring, got %d", len(offspring))
	}

	want := []vecmath.Vector3{
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 0, Z: -1},
		{X: -1, Y: 0, Z: 0},
		{X: 0, Y: 0, Z: 1},
	}
	const eps = 1e-4
	for i, w := range want {
		got := offspring[i].Velocity
		if abs32(got.X-w.X) > eps || abs32(got.Y-w.Y) > eps || abs32(got.Z-w.Z) > eps {
			t.Fatalf("offspring %d velocity = %+v, want %+v", i, got, w)
		}
	}
}

func abs32(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}

// TestDeterministicUnderFixedSeed is spec §8 P5: two independently built
// simulations from the same genome and seed must produce byte-identical
// agent state after the same number of ticks.
func TestDeterministicUnderFixedSeed(t *testing.T) {
	species := genome.Species{
		MaxSpeed:       2,
		Separation:     1,
		Randomness:     1,
		SepDistance:    3,
		ViewDistance:   5,
		AxisConstraint: vecmath.Vector3{X: 1, Y: 1, Z: 1},
		Energy:         genome.DefaultEnergy(),
		InfluencedBy:   map[actor.SurroundingIndex]float32{actor.AgentSurrounding(0): 1},
	}
	g1 := &genome.SwarmGenome{SpeciesMap: []genome.Species{species}}
	g2 := &genome.SwarmGenome{SpeciesMap: []genome.Species{species}}

	seedAgents := func() []actor.Agent {
		return []actor.Agent{
			{ID: 0, Position: vecmath.Vector3{X: 0}, Energy: 100, SpeciesIndex: 0},
			{ID: 1, Position: vecmath.Vector3{X: 1}, Energy: 100, SpeciesIndex: 0},
			{ID: 2, Position: vecmath.Vector3{X: 2}, Energy: 100, SpeciesIndex: 0},
		}
	}

	sg1 := New(g1, 10, 323381111)
	sg1.Agents = seedAgents()
	sg2 := New(g2, 10, 323381111)
	sg2.Agents = seedAgents()

	for i := 0; i < 50; i++ {
		sg1.Step()
		sg2.Step()
	}

	if len(sg1.Agents) != len(sg2.Agents) {
		t.Fatalf("agent counts diverged: %d vs %d", len(sg1.Agents), len(sg2.Agents))
	}
	for i := range sg1.Agents {
		if sg1.Agents[i].Position != sg2.Agents[i].Position {
			t.Fatalf("agent %d position diverged: %+v vs %+v", i, sg1.Agents[i].Position, sg2.Agents[i].Position)
		}
	}
}

// TestUIDsStayUnique is spec §8 P7: no two agents alive in the same tick
// share a UID, and a UID that has left the agent vector is never handed
// out again. A persisting parent keeps its UID from tick to tick.
func TestUIDsStayUnique(t *testing.T) {
	species := genome.Species{
		MaxSpeed:       1,
		AxisConstraint: vecmath.Vector3{X: 1, Y: 1, Z: 1},
		Energy:         genome.DefaultEnergy(),
		Rules: []genome.ContextRule{{
			Weight:  1,
			Persist: true,
			Replacement: genome.Replacement{
				Kind:          genome.ReplacementSpread,
				SpreadSpecies: 0,
				SpreadCount:   2,
			},
		}},
	}
	g := &genome.SwarmGenome{SpeciesMap: []genome.Species{species}, Strategy: genome.ApplicationStrategy{Every: 0}}
	sg := New(g, 10, 2)
	sg.Agents = []actor.Agent{{ID: sg.UIDGen.Next(), Energy: 100, SpeciesIndex: 0}}

	seen := map[uid.UID]bool{}
	prev := map[uid.UID]bool{}
	for i := 0; i < 5; i++ {
		sg.Step()
		cur := map[uid.UID]bool{}
		for _, a := range sg.Agents {
			if cur[a.ID] || (seen[a.ID] && !prev[a.ID]) {
				t.Fatalf("duplicate UID %v at tick %d", a.ID, i)
			}
			cur[a.ID] = true
			seen[a.ID] = true
		}
		prev = cur
	}
}
