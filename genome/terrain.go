package genome

import "github.com/pthm-cable/swarmgrammar/actor"

// Terrain describes the buoy lattice a genome seeds its simulation with
// (spec §3 "Terrain"): a Size × Size grid of buoys spaced Spacing apart,
// plus the per-species/per-artifact influence weights an evolved genome
// carries alongside the lattice dimensions. Grounded on
// core/src/swarm/genome/dummies.rs's TerrainConfig (size, influenced_by)
// and core/src/swarm/oide_genome.rs's terrain_size/terrain_spacing/
// terrain_influences.
type Terrain struct {
	Size         int
	Spacing      float32
	InfluencedBy map[actor.SurroundingIndex]float32
}
