package genome

import (
	"math/rand"

	"github.com/pthm-cable/swarmgrammar/actor"
	"github.com/pthm-cable/swarmgrammar/uid"
	"github.com/pthm-cable/swarmgrammar/vecmath"
)

// SwarmGenome is a fully validated, numerically-indexed rule set: the
// output of converting a DummySwarmGenome's string identifiers into
// SpeciesIndex/ArtifactIndex references (spec §3, §7 "a genome fails to
// validate"). Grounded on core/src/swarm/genome.rs's SwarmGenome.
type SwarmGenome struct {
	SpeciesMap  []Species
	ArtifactMap []ArtifactType
	StartDist   Distribution
	Strategy    ApplicationStrategy
	Terrain     Terrain
}

// GetRules returns the context rules declared for the species at index.
func (g *SwarmGenome) GetRules(index actor.SpeciesIndex) []ContextRule {
	return g.SpeciesMap[index].Rules
}

// GetSpecies returns the species backing agent.
func (g *SwarmGenome) GetSpecies(agent *actor.Agent) *Species {
	return &g.SpeciesMap[agent.SpeciesIndex]
}

// GetArtifactType returns the artifact type backing artifact.
func (g *SwarmGenome) GetArtifactType(artifact *actor.Artifact) *ArtifactType {
	return &g.ArtifactMap[artifact.ArtifactIndex]
}

// Tick advances the genome's shared ApplicationStrategy countdown (spec
// §3 "ApplicationStrategy").
func (g *SwarmGenome) Tick() {
	g.Strategy.Tick()
}

// GetStart realizes the genome's StartDist into an initial population
// (spec §4.3 step 4's sibling operation: initial placement rather than
// rule-driven replacement).
func (g *SwarmGenome) GetStart(rng *rand.Rand, uidGen *uid.Generator) ([]actor.Agent, []actor.Artifact) {
	return g.distribute(&g.StartDist, rng, uidGen)
}

func (g *SwarmGenome) distribute(d *Distribution, rng *rand.Rand, uidGen *uid.Generator) ([]actor.Agent, []actor.Artifact) {
	var agents []actor.Agent
	var artifacts []actor.Artifact

	switch d.Kind {
	case DistributionSingle:
		a, art := placeOne(d.Surrounding, d.Pos, uidGen.Next())
		appendOne(&agents, &artifacts, a, art)

	case DistributionSingularity:
		for _, cs := range d.Counts {
			for i := 0; i < cs.Count; i++ {
				a, art := placeOne(cs.Surrounding, d.Pos, uidGen.Next())
				appendOne(&agents, &artifacts, a, art)
			}
		}

	case DistributionGrid:
		gridSize := float32(d.GridCount-1) * d.GridSpacing
		half := gridSize / 2
		for x := 0; x < d.GridCount; x++ {
			for z := 0; z < d.GridCount; z++ {
				pos := vecmath.Vector3{
					X: -half + float32(x)*d.GridSpacing,
					Y: 0,
					Z: -half + float32(z)*d.GridSpacing,
				}
				a, art := placeOne(d.Surrounding, pos, uidGen.Next())
				appendOne(&agents, &artifacts, a, art)
			}
		}

	case DistributionMulti:
		for _, sub := range d.Multi {
			ags, arts := g.distribute(&sub, rng, uidGen)
			agents = append(agents, ags...)
			artifacts = append(artifacts, arts...)
		}
	}

	return agents, artifacts
}

func placeOne(surr actor.SurroundingIndex, pos vecmath.Vector3, id uid.UID) (*actor.Agent, *actor.Artifact) {
	if surr.IsAgent() {
		return &actor.Agent{
			ID:           id,
			Position:     pos,
			Velocity:     vecmath.Zero,
			Energy:       10,
			SpeciesIndex: surr.Species,
			SeedCenter:   pos,
		}, nil
	}
	return nil, &actor.Artifact{ID: id, Position: pos, ArtifactIndex: surr.Artifact}
}

func appendOne(agents *[]actor.Agent, artifacts *[]actor.Artifact, a *actor.Agent, art *actor.Artifact) {
	if a != nil {
		*agents = append(*agents, *a)
	}
	if art != nil {
		*artifacts = append(*artifacts, *art)
	}
}
