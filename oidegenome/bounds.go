// Package oidegenome bridges the declarative genome package to the oide
// bounded-parameter algebra: OIDESwarmGenome is the evolvable twin of
// SwarmGenome that a population of candidate genomes is combined through
// the oide operators and bounds-projected as (spec §3 "OIDESwarmGenome",
// §4.6); no crossover operator is defined.
// Grounded on core/src/swarm/oide_genome.rs and core/src/evo/genome.rs.
package oidegenome

import "github.com/pthm-cable/swarmgrammar/genome"

// SpeciesBounds declares the [lower, upper] schema every continuous
// Species field is evolved within. A population shares one SpeciesBounds
// across all its genomes so operator arithmetic between two individuals
// always compares apples to apples (spec §4.1 "a population shares one declared
// bound schema").
type SpeciesBounds struct {
	Separation, Alignment, Cohesion, Randomness, Center float32Range
	Mass                                                 float32Range
	Floor, Gradient, Normal, Slope                      float32Range
	NormalSpeed, MaxSpeed, MaxAcceleration, Pacekeeping  float32Range
	ViewDistance, ViewAngle, SepDistance                 float32Range
	Bias, AxisConstraint                                 vectorRange
}

type float32Range struct{ Lower, Upper float32 }

type vectorRange struct{ Lower, Upper float32 }

// DefaultSpeciesBounds returns a conservative bound schema usable as a
// population's starting point. Separation's [0, 2] matches spec §8 S6's
// worked bound-projection example exactly; the remaining ranges follow
// the same order-of-magnitude convention the reference simulation's
// default dummy genomes use.
func DefaultSpeciesBounds() SpeciesBounds {
	return SpeciesBounds{
		Separation: float32Range{0, 2},
		Alignment:  float32Range{0, 2},
		Cohesion:   float32Range{0, 2},
		Randomness: float32Range{0, 2},
		Center:     float32Range{0, 2},
		Mass:       float32Range{0, 5},

		Floor:    float32Range{-50, 50},
		Gradient: float32Range{0, 2},
		Normal:   float32Range{0, 2},
		Slope:    float32Range{0, 2},

		NormalSpeed:     float32Range{0, 5},
		MaxSpeed:        float32Range{0, 10},
		MaxAcceleration: float32Range{0, 5},
		Pacekeeping:     float32Range{0, 2},

		ViewDistance: float32Range{0, 50},
		ViewAngle:    float32Range{0, 180},
		SepDistance:  float32Range{0, 20},

		Bias:           vectorRange{-5, 5},
		AxisConstraint: vectorRange{0, 1},
	}
}

// BoundsOf recovers the bound schema an already-projected OIDESwarmGenome
// was built under, reading it back off the first species' atoms (every
// atom in a genome declares its own [lower, upper] range, so this never
// needs the original SpeciesBounds value to have been kept around). Used
// by tooling that loads an existing .oide.json purely to reuse its bound
// schema for a new conversion (spec §6 "raw2oide"/"grammar2oide"/
// "genome2oide" taking an existing genome as their bound source).
func BoundsOf(o *OIDESwarmGenome) SpeciesBounds {
	if len(o.SpeciesMap) == 0 {
		return DefaultSpeciesBounds()
	}
	s := o.SpeciesMap[0]
	return SpeciesBounds{
		Separation: rangeOf(s.Separation), Alignment: rangeOf(s.Alignment),
		Cohesion: rangeOf(s.Cohesion), Randomness: rangeOf(s.Randomness), Center: rangeOf(s.Center),
		Mass: rangeOf(s.Mass),

		Floor: rangeOf(s.Floor), Gradient: rangeOf(s.Gradient), Normal: rangeOf(s.Normal), Slope: rangeOf(s.Slope),

		NormalSpeed: rangeOf(s.NormalSpeed), MaxSpeed: rangeOf(s.MaxSpeed),
		MaxAcceleration: rangeOf(s.MaxAcceleration), Pacekeeping: rangeOf(s.Pacekeeping),

		ViewDistance: rangeOf(s.ViewDistance), ViewAngle: rangeOf(s.ViewAngle), SepDistance: rangeOf(s.SepDistance),

		Bias:           vectorRange{s.Bias.First.Lower(), s.Bias.First.Upper()},
		AxisConstraint: vectorRange{s.AxisConstraint.First.Lower(), s.AxisConstraint.First.Upper()},
	}
}

func rangeOf(b interface{ Lower() float32; Upper() float32 }) float32Range {
	return float32Range{b.Lower(), b.Upper()}
}

// TemplateGenome builds a fresh OIDESwarmGenome of speciesCount
// zero-valued species projected into bounds, the template shape spec §6
// "generate_zero" names: every atom loads its bound schema's lower-bound
// value via the same ApplyBounds-on-load path a deserialized genome takes.
func TemplateGenome(speciesCount int, bounds SpeciesBounds) *OIDESwarmGenome {
	g := &genome.SwarmGenome{SpeciesMap: make([]genome.Species, speciesCount)}
	return ToOIDEGenome(g, bounds)
}
