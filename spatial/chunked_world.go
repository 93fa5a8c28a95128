// Package spatial implements the 2D-chunked spatial index a swarm
// grammar step uses to find each agent's neighbors (spec §4.2 "Spatial
// Index (ChunkedWorld)"). Grounded on core/src/swarm/world.rs's
// ChunkedWorld.
package spatial

import (
	"math"

	"github.com/pthm-cable/swarmgrammar/actor"
	"github.com/pthm-cable/swarmgrammar/genome"
	"github.com/pthm-cable/swarmgrammar/uid"
	"github.com/pthm-cable/swarmgrammar/vecmath"
)

// Cell is a chunk coordinate keyed on floor(pos.x/spacing),
// floor(pos.z/spacing) — the x–z plane, per spec §4.2's explicit note
// that "the z-axis is used for the second coordinate". The reference
// implementation's ChunkedWorld keys on (x, y) instead, a bug spec.md
// calls out and this implementation deliberately does not reproduce (see
// DESIGN.md).
type Cell struct {
	X, Z int16
}

// ChunkedWorld is a hash map from chunk coordinate to the actors
// currently occupying it, rebuilt every tick for agents and maintained
// incrementally for artifacts and buoys (spec §4.2).
type ChunkedWorld struct {
	Spacing float32

	agents    map[Cell][]actor.Agent
	artifacts map[Cell][]actor.Artifact
	buoys     map[Cell][]actor.Buoy
}

// New returns an empty ChunkedWorld with the given chunk spacing (default
// 10 units per spec §4.2).
func New(spacing float32) *ChunkedWorld {
	return &ChunkedWorld{
		Spacing:   spacing,
		agents:    map[Cell][]actor.Agent{},
		artifacts: map[Cell][]actor.Artifact{},
		buoys:     map[Cell][]actor.Buoy{},
	}
}

func (w *ChunkedWorld) cellOf(pos vecmath.Vector3) Cell {
	x, z := pos.XZ()
	return Cell{
		X: int16(math.Floor(float64(x / w.Spacing))),
		Z: int16(math.Floor(float64(z / w.Spacing))),
	}
}

// InsertAgent places agent into its cell.
func (w *ChunkedWorld) InsertAgent(agent actor.Agent) {
	c := w.cellOf(agent.Position)
	w.agents[c] = append(w.agents[c], agent)
}

// InsertArtifact places artifact into its cell.
func (w *ChunkedWorld) InsertArtifact(artifact actor.Artifact) {
	c := w.cellOf(artifact.Position)
	w.artifacts[c] = append(w.artifacts[c], artifact)
}

// InsertBuoy places buoy into its cell.
func (w *ChunkedWorld) InsertBuoy(buoy actor.Buoy) {
	c := w.cellOf(buoy.Position)
	w.buoys[c] = append(w.buoys[c], buoy)
}

// DeleteAgents clears every agent cell, ready for the next tick's rebuild.
func (w *ChunkedWorld) DeleteAgents() {
	w.agents = map[Cell][]actor.Agent{}
}

// DeleteArtifacts clears every artifact cell.
func (w *ChunkedWorld) DeleteArtifacts() {
	w.artifacts = map[Cell][]actor.Artifact{}
}

// DeleteBuoys clears every buoy cell.
func (w *ChunkedWorld) DeleteBuoys() {
	w.buoys = map[Cell][]actor.Buoy{}
}

func chunkRadius(rangeVal, spacing float32) int {
	return int(math.Ceil(float64(rangeVal / spacing)))
}

// GetActorsAtLeastWithin enumerates every agent and artifact in any cell
// within ceil(rangeVal/spacing) cells of centerXZ's cell, in either axis
// (spec §4.2). Callers must post-filter by exact 3D distance — this is a
// coarse cell-radius prefilter, not an exact range query.
func (w *ChunkedWorld) GetActorsAtLeastWithin(rangeVal float32, centerXZ vecmath.Vector3) ([]actor.Agent, []actor.Artifact) {
	center := w.cellOf(centerXZ)
	radius := chunkRadius(rangeVal, w.Spacing)

	var agents []actor.Agent
	var artifacts []actor.Artifact

	for dx := -radius; dx <= radius; dx++ {
		for dz := -radius; dz <= radius; dz++ {
			c := Cell{X: center.X + int16(dx), Z: center.Z + int16(dz)}
			agents = append(agents, w.agents[c]...)
			artifacts = append(artifacts, w.artifacts[c]...)
		}
	}

	return agents, artifacts
}

// GetContextWithin returns (dist, SurroundingIndex) pairs for every agent
// and artifact within exact 3D distance range of centre (spec §4.2,
// consumed by the rule engine per spec §4.3 step 1).
func (w *ChunkedWorld) GetContextWithin(rangeVal float32, centre vecmath.Vector3) []genome.DistSurrounding {
	agents, artifacts := w.GetActorsAtLeastWithin(rangeVal, centre)

	out := make([]genome.DistSurrounding, 0, len(agents)+len(artifacts))
	for _, a := range agents {
		d := a.Position.Distance(centre)
		if d < rangeVal {
			out = append(out, genome.DistSurrounding{Dist: d, Surrounding: actor.AgentSurrounding(a.SpeciesIndex)})
		}
	}
	for _, a := range artifacts {
		d := a.Position.Distance(centre)
		if d < rangeVal {
			out = append(out, genome.DistSurrounding{Dist: d, Surrounding: actor.ArtifactSurrounding(a.ArtifactIndex)})
		}
	}
	return out
}

// GetContextWithinExcludingSelf behaves like GetContextWithin but omits the
// agent identified by selfID from the result, so a rule's context never
// counts the querying agent as its own neighbor (spec §4.3 step 1: "an
// agent's own position is never a member of its own context").
func (w *ChunkedWorld) GetContextWithinExcludingSelf(rangeVal float32, centre vecmath.Vector3, selfID uid.UID) []genome.DistSurrounding {
	agents, artifacts := w.GetActorsAtLeastWithin(rangeVal, centre)

	out := make([]genome.DistSurrounding, 0, len(agents)+len(artifacts))
	for _, a := range agents {
		if a.ID == selfID {
			continue
		}
		d := a.Position.Distance(centre)
		if d < rangeVal {
			out = append(out, genome.DistSurrounding{Dist: d, Surrounding: actor.AgentSurrounding(a.SpeciesIndex)})
		}
	}
	for _, a := range artifacts {
		d := a.Position.Distance(centre)
		if d < rangeVal {
			out = append(out, genome.DistSurrounding{Dist: d, Surrounding: actor.ArtifactSurrounding(a.ArtifactIndex)})
		}
	}
	return out
}

// Buoys returns every buoy currently indexed, for terrain relaxation.
func (w *ChunkedWorld) Buoys() []actor.Buoy {
	var out []actor.Buoy
	for _, cell := range w.buoys {
		out = append(out, cell...)
	}
	return out
}
