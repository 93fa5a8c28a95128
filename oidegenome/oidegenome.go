package oidegenome

import (
	"fmt"
	"math/rand"

	"github.com/pthm-cable/swarmgrammar/actor"
	"github.com/pthm-cable/swarmgrammar/genome"
	"github.com/pthm-cable/swarmgrammar/oide"
	"github.com/pthm-cable/swarmgrammar/vecmath"
)

// vec3 is the evolvable twin of a Vector3: three independently-bounded
// factors. The reference simulation never evolves direction vectors
// component-wise with different bounds per axis, but the expanded bound
// schema here keeps Bias and AxisConstraint inside the same algebra as
// every scalar factor rather than carving out a special case.
type vec3 = oide.Triple[oide.BoundedFactor, oide.BoundedFactor, oide.BoundedFactor]

// boundedFactor loads value into a [lower, upper] schema via ApplyBounds
// rather than the raw constructor, so an out-of-range value is clamped on
// load exactly as spec §7 describes deserialization ("ParameterOutOfBounds
// on deserialize is not an error: apply_bounds clamps silently") and as
// spec §8 S6 works out numerically (separation=3.7 under [0,2] loads as
// 2.0).
func boundedFactor(lower, upper, value float32) oide.BoundedFactor {
	schema := oide.NewBoundedFactor(lower, upper, lower)
	return schema.ApplyBounds(oide.NewBoundedFactor(lower, upper, value))
}

func newVec3(r vectorRange, v vecmath.Vector3) vec3 {
	return oide.NewTriple(
		boundedFactor(r.Lower, r.Upper, v.X),
		boundedFactor(r.Lower, r.Upper, v.Y),
		boundedFactor(r.Lower, r.Upper, v.Z),
	)
}

func vec3Value(v vec3) vecmath.Vector3 {
	return vecmath.Vector3{X: v.First.Value(), Y: v.Second.Value(), Z: v.Third.Value()}
}

// OIDEContextRule is ContextRule's evolvable twin: Range, Weight, and
// Persist are bounded/evolvable; Context and Replacement are structural
// (they name species and artifacts by index, not a quantity) and so are
// carried unevolved via Fixed (spec §4.1 "Fixed[T] carries a value
// outside the evolved parameter space").
type OIDEContextRule struct {
	Context     oide.Fixed[[]actor.SurroundingIndex]
	Range       oide.BoundedFactor
	Weight      oide.BoundedFactor
	Persist     oide.FloatyBool
	Replacement oide.Fixed[genome.Replacement]
}

func toOIDERule(r genome.ContextRule, rangeBound, weightBound float32Range) OIDEContextRule {
	return OIDEContextRule{
		Context:     oide.NewFixed(r.Context),
		Range:       boundedFactor(rangeBound.Lower, rangeBound.Upper, r.Range),
		Weight:      boundedFactor(weightBound.Lower, weightBound.Upper, r.Weight),
		Persist:     oide.NewFloatyBool(r.Persist),
		Replacement: oide.NewFixed(r.Replacement),
	}
}

func fromOIDERule(r OIDEContextRule) genome.ContextRule {
	return genome.ContextRule{
		Context:     r.Context.Value,
		Range:       r.Range.Value(),
		Weight:      r.Weight.Value(),
		Persist:     r.Persist.Bool(),
		Replacement: r.Replacement.Value,
	}
}

// OIDESpecies is Species's evolvable twin (spec §3 "OIDESwarmGenome").
// Continuous behavioral factors are BoundedFactor; Noclip and
// HandDownSeed are FloatyBool flags; energy policy, InfluencedBy, and
// ColorIndex are carried via Fixed, because their legal values are
// discrete identifiers or policy selectors rather than points on a
// continuous scale; Index is copied through every operator unchanged.
type OIDESpecies struct {
	Index actor.SpeciesIndex

	Separation oide.BoundedFactor
	Alignment  oide.BoundedFactor
	Cohesion   oide.BoundedFactor
	Randomness oide.BoundedFactor
	Center     oide.BoundedFactor
	Mass       oide.BoundedFactor
	Floor      oide.BoundedFactor
	Bias       vec3
	Gradient   oide.BoundedFactor
	Normal     oide.BoundedFactor
	Slope      oide.BoundedFactor

	NormalSpeed     oide.BoundedFactor
	MaxSpeed        oide.BoundedFactor
	MaxAcceleration oide.BoundedFactor
	Pacekeeping     oide.BoundedFactor

	ViewDistance oide.BoundedFactor
	ViewAngle    oide.BoundedFactor
	SepDistance  oide.BoundedFactor

	AxisConstraint vec3
	Noclip         oide.FloatyBool

	Energy       oide.Fixed[genome.Energy]
	InfluencedBy oide.Fixed[map[actor.SurroundingIndex]float32]
	Rules        oide.Sequence[OIDEContextRule]
	ColorIndex   oide.Fixed[int]
	HandDownSeed oide.FloatyBool
}

// ToOIDE projects s into bounds, the evolvable bound schema a whole
// population shares.
func ToOIDE(s genome.Species, bounds SpeciesBounds) OIDESpecies {
	rules := make(oide.Sequence[OIDEContextRule], len(s.Rules))
	for i, r := range s.Rules {
		rules[i] = toOIDERule(r, float32Range{0, bounds.ViewDistance.Upper}, float32Range{0, 10})
	}

	return OIDESpecies{
		Index:      s.Index,
		Separation: boundedFactor(bounds.Separation.Lower, bounds.Separation.Upper, s.Separation),
		Alignment:  boundedFactor(bounds.Alignment.Lower, bounds.Alignment.Upper, s.Alignment),
		Cohesion:   boundedFactor(bounds.Cohesion.Lower, bounds.Cohesion.Upper, s.Cohesion),
		Randomness: boundedFactor(bounds.Randomness.Lower, bounds.Randomness.Upper, s.Randomness),
		Center:     boundedFactor(bounds.Center.Lower, bounds.Center.Upper, s.Center),
		Mass:       boundedFactor(bounds.Mass.Lower, bounds.Mass.Upper, s.Mass),
		Floor:      boundedFactor(bounds.Floor.Lower, bounds.Floor.Upper, s.Floor),
		Bias:       newVec3(bounds.Bias, s.Bias),
		Gradient:   boundedFactor(bounds.Gradient.Lower, bounds.Gradient.Upper, s.Gradient),
		Normal:     boundedFactor(bounds.Normal.Lower, bounds.Normal.Upper, s.Normal),
		Slope:      boundedFactor(bounds.Slope.Lower, bounds.Slope.Upper, s.Slope),

		NormalSpeed:     boundedFactor(bounds.NormalSpeed.Lower, bounds.NormalSpeed.Upper, s.NormalSpeed),
		MaxSpeed:        boundedFactor(bounds.MaxSpeed.Lower, bounds.MaxSpeed.Upper, s.MaxSpeed),
		MaxAcceleration: boundedFactor(bounds.MaxAcceleration.Lower, bounds.MaxAcceleration.Upper, s.MaxAcceleration),
		Pacekeeping:     boundedFactor(bounds.Pacekeeping.Lower, bounds.Pacekeeping.Upper, s.Pacekeeping),

		ViewDistance: boundedFactor(bounds.ViewDistance.Lower, bounds.ViewDistance.Upper, s.ViewDistance),
		ViewAngle:    boundedFactor(bounds.ViewAngle.Lower, bounds.ViewAngle.Upper, s.ViewAngle),
		SepDistance:  boundedFactor(bounds.SepDistance.Lower, bounds.SepDistance.Upper, s.SepDistance),

		AxisConstraint: newVec3(bounds.AxisConstraint, s.AxisConstraint),
		Noclip:         oide.NewFloatyBool(s.Noclip),

		Energy:       oide.NewFixed(s.Energy),
		InfluencedBy: oide.NewFixed(s.InfluencedBy),
		Rules:        rules,
		ColorIndex:   oide.NewFixed(s.ColorIndex),
		HandDownSeed: oide.NewFloatyBool(s.HandDownSeed),
	}
}

// FromOIDE reads o's reported values back into a plain Species (spec §4.6
// "apply_bounds forces externally-sourced genomes into the current
// population's schema before evaluation"; this is the inverse read, used
// once a candidate has already been bounds-projected).
func FromOIDE(o OIDESpecies) genome.Species {
	rules := make([]genome.ContextRule, len(o.Rules))
	for i, r := range o.Rules {
		rules[i] = fromOIDERule(r)
	}

	return genome.Species{
		Index:      o.Index,
		Separation: o.Separation.Value(),
		Alignment:  o.Alignment.Value(),
		Cohesion:   o.Cohesion.Value(),
		Randomness: o.Randomness.Value(),
		Center:     o.Center.Value(),
		Mass:       o.Mass.Value(),
		Floor:      o.Floor.Value(),
		Bias:       vec3Value(o.Bias),
		Gradient:   o.Gradient.Value(),
		Normal:     o.Normal.Value(),
		Slope:      o.Slope.Value(),

		NormalSpeed:     o.NormalSpeed.Value(),
		MaxSpeed:        o.MaxSpeed.Value(),
		MaxAcceleration: o.MaxAcceleration.Value(),
		Pacekeeping:     o.Pacekeeping.Value(),

		ViewDistance: o.ViewDistance.Value(),
		ViewAngle:    o.ViewAngle.Value(),
		SepDistance:  o.SepDistance.Value(),

		AxisConstraint: vec3Value(o.AxisConstraint),
		Noclip:         o.Noclip.Bool(),

		Energy:       o.Energy.Value,
		InfluencedBy: o.InfluencedBy.Value,
		Rules:        rules,
		ColorIndex:   o.ColorIndex.Value,
		HandDownSeed: o.HandDownSeed.Bool(),
	}
}

// OIDESwarmGenome is SwarmGenome's evolvable twin: a Sequence of
// OIDESpecies is genuinely evolved through the oide operators (no
// crossover operator is defined), everything else is Fixed structural
// metadata (spec §3
// "OIDESwarmGenome").
type OIDESwarmGenome struct {
	SpeciesMap  oide.Sequence[OIDESpecies]
	ArtifactMap oide.Fixed[[]genome.ArtifactType]
	StartDist   oide.Fixed[genome.Distribution]
	Strategy    oide.Fixed[genome.ApplicationStrategy]
	Terrain     oide.Fixed[genome.Terrain]
}

// ToOIDEGenome projects every species in g into bounds.
func ToOIDEGenome(g *genome.SwarmGenome, bounds SpeciesBounds) *OIDESwarmGenome {
	species := make(oide.Sequence[OIDESpecies], len(g.SpeciesMap))
	for i, s := range g.SpeciesMap {
		species[i] = ToOIDE(s, bounds)
	}
	return &OIDESwarmGenome{
		SpeciesMap:  species,
		ArtifactMap: oide.NewFixed(g.ArtifactMap),
		StartDist:   oide.NewFixed(g.StartDist),
		Strategy:    oide.NewFixed(g.Strategy),
		Terrain:     oide.NewFixed(g.Terrain),
	}
}

// FromOIDEGenome reads o's reported values back into a plain SwarmGenome.
//
// on_zero::Replace conversion loses nothing here, unlike the lossy case
// spec §9 describes: OIDESpecies.Energy is carried Fixed, so the Replacement
// attached to a ZeroReplace policy survives unevolved regardless of its
// Kind — Simple, Multi, and Spread all round-trip losslessly here, unlike
// the reference implementation's TryFrom<OIDESwarmGenome>, which only
// handles the Simple branch and silently drops Multi/Spread. This
// function never drops a Replacement kind; ToOIDEGenome/FromOIDEGenome
// round-trip every ZeroEnergy variant exactly (see DESIGN.md).
func FromOIDEGenome(o *OIDESwarmGenome) *genome.SwarmGenome {
	species := make([]genome.Species, len(o.SpeciesMap))
	for i, s := range o.SpeciesMap {
		species[i] = FromOIDE(s)
	}
	return &genome.SwarmGenome{
		SpeciesMap:  species,
		ArtifactMap: o.ArtifactMap.Value,
		StartDist:   o.StartDist.Value,
		Strategy:    o.Strategy.Value,
		Terrain:     o.Terrain.Value,
	}
}

// ApplyBounds projects candidate into self's bound schema, species by
// species (spec §4.6: "apply_bounds forces externally-sourced genomes
// into current schema before evaluation"). Returns an error if the two
// genomes don't share the same species count — a structural mismatch
// ApplyBounds cannot silently repair.
func (o *OIDESwarmGenome) ApplyBounds(candidate *OIDESwarmGenome) (*OIDESwarmGenome, error) {
	if len(o.SpeciesMap) != len(candidate.SpeciesMap) {
		return nil, fmt.Errorf("apply_bounds: schema has %d species, candidate has %d", len(o.SpeciesMap), len(candidate.SpeciesMap))
	}
	projected := &OIDESwarmGenome{
		SpeciesMap:  o.SpeciesMap.ApplyBounds(candidate.SpeciesMap),
		ArtifactMap: o.ArtifactMap.ApplyBounds(candidate.ArtifactMap),
		StartDist:   o.StartDist.ApplyBounds(candidate.StartDist),
		Strategy:    o.Strategy.ApplyBounds(candidate.Strategy),
		Terrain:     o.Terrain.ApplyBounds(candidate.Terrain),
	}
	return projected, nil
}

// Random draws a uniformly random genome within o's bound schema (spec
// §4.1 Random, used by population.New to draw each fresh population
// member).
func (o *OIDESwarmGenome) Random(rng *rand.Rand) *OIDESwarmGenome {
	return &OIDESwarmGenome{
		SpeciesMap:  o.SpeciesMap.Random(rng),
		ArtifactMap: o.ArtifactMap,
		StartDist:   o.StartDist,
		Strategy:    o.Strategy,
		Terrain:     o.Terrain,
	}
}

// ParameterCount is the total number of evolved scalars across every
// species (spec §8 P4).
func (o *OIDESwarmGenome) ParameterCount() int {
	return o.SpeciesMap.ParameterCount()
}

// Add, Difference, Scale, Opposite, and Zero lift the same operators
// SpeciesMap carries up to whole-genome granularity, the arithmetic the
// OIDE population loop operates on directly (spec §4.6). Structural
// fields (ArtifactMap, StartDist, Strategy) are carried from the receiver
// unchanged — they're shared across a population's shared schema, not
// per-individual state.
func (o *OIDESwarmGenome) Add(other *OIDESwarmGenome) *OIDESwarmGenome {
	return &OIDESwarmGenome{
		SpeciesMap:  o.SpeciesMap.Add(other.SpeciesMap),
		ArtifactMap: o.ArtifactMap,
		StartDist:   o.StartDist,
		Strategy:    o.Strategy,
		Terrain:     o.Terrain,
	}
}

func (o *OIDESwarmGenome) Difference(other *OIDESwarmGenome) *OIDESwarmGenome {
	return &OIDESwarmGenome{
		SpeciesMap:  o.SpeciesMap.Difference(other.SpeciesMap),
		ArtifactMap: o.ArtifactMap,
		StartDist:   o.StartDist,
		Strategy:    o.Strategy,
		Terrain:     o.Terrain,
	}
}

func (o *OIDESwarmGenome) Scale(factor float32) *OIDESwarmGenome {
	return &OIDESwarmGenome{
		SpeciesMap:  o.SpeciesMap.Scale(factor),
		ArtifactMap: o.ArtifactMap,
		StartDist:   o.StartDist,
		Strategy:    o.Strategy,
		Terrain:     o.Terrain,
	}
}

func (o *OIDESwarmGenome) Opposite(midpoint *OIDESwarmGenome) *OIDESwarmGenome {
	return &OIDESwarmGenome{
		SpeciesMap:  o.SpeciesMap.Opposite(midpoint.SpeciesMap),
		ArtifactMap: o.ArtifactMap,
		StartDist:   o.StartDist,
		Strategy:    o.Strategy,
		Terrain:     o.Terrain,
	}
}

func (o *OIDESwarmGenome) Zero() *OIDESwarmGenome {
	return &OIDESwarmGenome{
		SpeciesMap:  o.SpeciesMap.Zero(),
		ArtifactMap: o.ArtifactMap,
		StartDist:   o.StartDist,
		Strategy:    o.Strategy,
		Terrain:     o.Terrain,
	}
}
