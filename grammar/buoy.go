package grammar

import (
	"math"

	"github.com/pthm-cable/swarmgrammar/actor"
	"github.com/pthm-cable/swarmgrammar/genome"
	"github.com/pthm-cable/swarmgrammar/vecmath"
)

// buoyInfluenceRadius is the horizontal distance within which an agent
// contributes to a buoy's height relaxation (spec §4.4 "Buoy relaxation").
const buoyInfluenceRadius = 25.5

// relaxBuoy nudges buoy's height toward the weighted average height of
// nearby agents, plus a small restoring pull toward the surface (spec
// §4.4): weight = ((25.5-dist)/25.5)^2 for agents within 25.5 horizontal
// units, the weight sum starts at 0.5 (the buoy's own inertia), and the
// buoy moves half the resulting delta per tick.
func relaxBuoy(buoy actor.Buoy, agents []actor.Agent) actor.Buoy {
	sumW := float32(0.5)
	var delta float32
	if buoy.Position.Y < 0 {
		delta = 0.1
	} else {
		delta = -0.1
	}

	for _, a := range agents {
		dx := a.Position.X - buoy.Position.X
		dz := a.Position.Z - buoy.Position.Z
		dist := float32(math.Sqrt(float64(dx*dx + dz*dz)))
		if dist >= buoyInfluenceRadius {
			continue
		}
		w := (buoyInfluenceRadius - dist) / buoyInfluenceRadius
		w *= w
		sumW += w
		delta += (a.Position.Y - buoy.Position.Y) * w
	}

	buoy.Position.Y += 0.5 * delta / sumW
	return buoy
}

// buildTerrain seeds the starting buoy lattice a genome's Terrain
// describes (spec §3 "Terrain"): a Size x Size grid spaced Spacing apart,
// centered on the origin the same way DistributionGrid centers its agent
// grid. InfluencedBy is carried genome data, not consumed here: the
// reference relaxation (core/src/swarm/world.rs's update_terrain) never
// reads it either, only the agent-proximity weighting relaxBuoy already
// implements.
func buildTerrain(t genome.Terrain) []actor.Buoy {
	if t.Size <= 0 {
		return nil
	}

	gridSize := float32(t.Size-1) * t.Spacing
	half := gridSize / 2

	buoys := make([]actor.Buoy, 0, t.Size*t.Size)
	for x := 0; x < t.Size; x++ {
		for z := 0; z < t.Size; z++ {
			buoys = append(buoys, actor.Buoy{
				Position: vecmath.Vector3{
					X: -half + float32(x)*t.Spacing,
					Y: 0,
					Z: -half + float32(z)*t.Spacing,
				},
			})
		}
	}
	return buoys
}
