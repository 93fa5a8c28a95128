package oidegenome

import (
	"math/rand"

	"github.com/pthm-cable/swarmgrammar/oide"
)

// Add, Difference, Scale, Opposite, ApplyBounds, Random, Zero, and
// ParameterCount on OIDEContextRule and OIDESpecies apply each field's own
// operator fieldwise — the same blanket-lift pattern Pair/Triple use, but
// spelled out here because Go generics can't derive a struct-field lift
// automatically (spec §4.1's reference implementation gets this via a
// derive macro; Go gets it by writing the eight methods once per type).

func (r OIDEContextRule) Add(other OIDEContextRule) OIDEContextRule {
	return OIDEContextRule{
		Context:     r.Context.Add(other.Context),
		Range:       r.Range.Add(other.Range),
		Weight:      r.Weight.Add(other.Weight),
		Persist:     r.Persist.Add(other.Persist),
		Replacement: r.Replacement.Add(other.Replacement),
	}
}

func (r OIDEContextRule) Difference(other OIDEContextRule) OIDEContextRule {
	return OIDEContextRule{
		Context:     r.Context.Difference(other.Context),
		Range:       r.Range.Difference(other.Range),
		Weight:      r.Weight.Difference(other.Weight),
		Persist:     r.Persist.Difference(other.Persist),
		Replacement: r.Replacement.Difference(other.Replacement),
	}
}

func (r OIDEContextRule) Scale(factor float32) OIDEContextRule {
	return OIDEContextRule{
		Context:     r.Context.Scale(factor),
		Range:       r.Range.Scale(factor),
		Weight:      r.Weight.Scale(factor),
		Persist:     r.Persist.Scale(factor),
		Replacement: r.Replacement.Scale(factor),
	}
}

func (r OIDEContextRule) Opposite(midpoint OIDEContextRule) OIDEContextRule {
	return OIDEContextRule{
		Context:     r.Context.Opposite(midpoint.Context),
		Range:       r.Range.Opposite(midpoint.Range),
		Weight:      r.Weight.Opposite(midpoint.Weight),
		Persist:     r.Persist.Opposite(midpoint.Persist),
		Replacement: r.Replacement.Opposite(midpoint.Replacement),
	}
}

func (r OIDEContextRule) ApplyBounds(other OIDEContextRule) OIDEContextRule {
	return OIDEContextRule{
		Context:     r.Context.ApplyBounds(other.Context),
		Range:       r.Range.ApplyBounds(other.Range),
		Weight:      r.Weight.ApplyBounds(other.Weight),
		Persist:     r.Persist.ApplyBounds(other.Persist),
		Replacement: r.Replacement.ApplyBounds(other.Replacement),
	}
}

func (r OIDEContextRule) Random(rng *rand.Rand) OIDEContextRule {
	return OIDEContextRule{
		Context:     r.Context.Random(rng),
		Range:       r.Range.Random(rng),
		Weight:      r.Weight.Random(rng),
		Persist:     r.Persist.Random(rng),
		Replacement: r.Replacement.Random(rng),
	}
}

func (r OIDEContextRule) Zero() OIDEContextRule {
	return OIDEContextRule{
		Context:     r.Context.Zero(),
		Range:       r.Range.Zero(),
		Weight:      r.Weight.Zero(),
		Persist:     r.Persist.Zero(),
		Replacement: r.Replacement.Zero(),
	}
}

func (r OIDEContextRule) ParameterCount() int {
	return r.Context.ParameterCount() + r.Range.ParameterCount() + r.Weight.ParameterCount() +
		r.Persist.ParameterCount() + r.Replacement.ParameterCount()
}

func (s OIDESpecies) Add(other OIDESpecies) OIDESpecies {
	return OIDESpecies{
		Index:           s.Index,
		Separation:      s.Separation.Add(other.Separation),
		Alignment:       s.Alignment.Add(other.Alignment),
		Cohesion:        s.Cohesion.Add(other.Cohesion),
		Randomness:      s.Randomness.Add(other.Randomness),
		Center:          s.Center.Add(other.Center),
		Mass:            s.Mass.Add(other.Mass),
		Floor:           s.Floor.Add(other.Floor),
		Bias:            s.Bias.Add(other.Bias),
		Gradient:        s.Gradient.Add(other.Gradient),
		Normal:          s.Normal.Add(other.Normal),
		Slope:           s.Slope.Add(other.Slope),
		NormalSpeed:     s.NormalSpeed.Add(other.NormalSpeed),
		MaxSpeed:        s.MaxSpeed.Add(other.MaxSpeed),
		MaxAcceleration: s.MaxAcceleration.Add(other.MaxAcceleration),
		Pacekeeping:     s.Pacekeeping.Add(other.Pacekeeping),
		ViewDistance:    s.ViewDistance.Add(other.ViewDistance),
		ViewAngle:       s.ViewAngle.Add(other.ViewAngle),
		SepDistance:     s.SepDistance.Add(other.SepDistance),
		AxisConstraint:  s.AxisConstraint.Add(other.AxisConstraint),
		Noclip:          s.Noclip.Add(other.Noclip),
		Energy:          s.Energy.Add(other.Energy),
		InfluencedBy:    s.InfluencedBy.Add(other.InfluencedBy),
		Rules:           s.Rules.Add(other.Rules),
		ColorIndex:      s.ColorIndex.Add(other.ColorIndex),
		HandDownSeed:    s.HandDownSeed.Add(other.HandDownSeed),
	}
}

func (s OIDESpecies) Difference(other OIDESpecies) OIDESpecies {
	return OIDESpecies{
		Index:           s.Index,
		Separation:      s.Separation.Difference(other.Separation),
		Alignment:       s.Alignment.Difference(other.Alignment),
		Cohesion:        s.Cohesion.Difference(other.Cohesion),
		Randomness:      s.Randomness.Difference(other.Randomness),
		Center:          s.Center.Difference(other.Center),
		Mass:            s.Mass.Difference(other.Mass),
		Floor:           s.Floor.Difference(other.Floor),
		Bias:            s.Bias.Difference(other.Bias),
		Gradient:        s.Gradient.Difference(other.Gradient),
		Normal:          s.Normal.Difference(other.Normal),
		Slope:           s.Slope.Difference(other.Slope),
		NormalSpeed:     s.NormalSpeed.Difference(other.NormalSpeed),
		MaxSpeed:        s.MaxSpeed.Difference(other.MaxSpeed),
		MaxAcceleration: s.MaxAcceleration.Difference(other.MaxAcceleration),
		Pacekeeping:     s.Pacekeeping.Difference(other.Pacekeeping),
		ViewDistance:    s.ViewDistance.Difference(other.ViewDistance),
		ViewAngle:       s.ViewAngle.Difference(other.ViewAngle),
		SepDistance:     s.SepDistance.Difference(other.SepDistance),
		AxisConstraint:  s.AxisConstraint.Difference(other.AxisConstraint),
		Noclip:          s.Noclip.Difference(other.Noclip),
		Energy:          s.Energy.Difference(other.Energy),
		InfluencedBy:    s.InfluencedBy.Difference(other.InfluencedBy),
		Rules:           s.Rules.Difference(other.Rules),
		ColorIndex:      s.ColorIndex.Difference(other.ColorIndex),
		HandDownSeed:    s.HandDownSeed.Difference(other.HandDownSeed),
	}
}

func (s OIDESpecies) Scale(factor float32) OIDESpecies {
	return OIDESpecies{
		Index:           s.Index,
		Separation:      s.Separation.Scale(factor),
		Alignment:       s.Alignment.Scale(factor),
		Cohesion:        s.Cohesion.Scale(factor),
		Randomness:      s.Randomness.Scale(factor),
		Center:          s.Center.Scale(factor),
		Mass:            s.Mass.Scale(factor),
		Floor:           s.Floor.Scale(factor),
		Bias:            s.Bias.Scale(factor),
		Gradient:        s.Gradient.Scale(factor),
		Normal:          s.Normal.Scale(factor),
		Slope:           s.Slope.Scale(factor),
		NormalSpeed:     s.NormalSpeed.Scale(factor),
		MaxSpeed:        s.MaxSpeed.Scale(factor),
		MaxAcceleration: s.MaxAcceleration.Scale(factor),
		Pacekeeping:     s.Pacekeeping.Scale(factor),
		ViewDistance:    s.ViewDistance.Scale(factor),
		ViewAngle:       s.ViewAngle.Scale(factor),
		SepDistance:     s.SepDistance.Scale(factor),
		AxisConstraint:  s.AxisConstraint.Scale(factor),
		Noclip:          s.Noclip.Scale(factor),
		Energy:          s.Energy.Scale(factor),
		InfluencedBy:    s.InfluencedBy.Scale(factor),
		Rules:           s.Rules.Scale(factor),
		ColorIndex:      s.ColorIndex.Scale(factor),
		HandDownSeed:    s.HandDownSeed.Scale(factor),
	}
}

func (s OIDESpecies) Opposite(midpoint OIDESpecies) OIDESpecies {
	return OIDESpecies{
		Index:           s.Index,
		Separation:      s.Separation.Opposite(midpoint.Separation),
		Alignment:       s.Alignment.Opposite(midpoint.Alignment),
		Cohesion:        s.Cohesion.Opposite(midpoint.Cohesion),
		Randomness:      s.Randomness.Opposite(midpoint.Randomness),
		Center:          s.Center.Opposite(midpoint.Center),
		Mass:            s.Mass.Opposite(midpoint.Mass),
		Floor:           s.Floor.Opposite(midpoint.Floor),
		Bias:            s.Bias.Opposite(midpoint.Bias),
		Gradient:        s.Gradient.Opposite(midpoint.Gradient),
		Normal:          s.Normal.Opposite(midpoint.Normal),
		Slope:           s.Slope.Opposite(midpoint.Slope),
		NormalSpeed:     s.NormalSpeed.Opposite(midpoint.NormalSpeed),
		MaxSpeed:        s.MaxSpeed.Opposite(midpoint.MaxSpeed),
		MaxAcceleration: s.MaxAcceleration.Opposite(midpoint.MaxAcceleration),
		Pacekeeping:     s.Pacekeeping.Opposite(midpoint.Pacekeeping),
		ViewDistance:    s.ViewDistance.Opposite(midpoint.ViewDistance),
		ViewAngle:       s.ViewAngle.Opposite(midpoint.ViewAngle),
		SepDistance:     s.SepDistance.Opposite(midpoint.SepDistance),
		AxisConstraint:  s.AxisConstraint.Opposite(midpoint.AxisConstraint),
		Noclip:          s.Noclip.Opposite(midpoint.Noclip),
		Energy:          s.Energy.Opposite(midpoint.Energy),
		InfluencedBy:    s.InfluencedBy.Opposite(midpoint.InfluencedBy),
		Rules:           s.Rules.Opposite(midpoint.Rules),
		ColorIndex:      s.ColorIndex.Opposite(midpoint.ColorIndex),
		HandDownSeed:    s.HandDownSeed.Opposite(midpoint.HandDownSeed),
	}
}

func (s OIDESpecies) ApplyBounds(other OIDESpecies) OIDESpecies {
	return OIDESpecies{
		Index:           other.Index,
		Separation:      s.Separation.ApplyBounds(other.Separation),
		Alignment:       s.Alignment.ApplyBounds(other.Alignment),
		Cohesion:        s.Cohesion.ApplyBounds(other.Cohesion),
		Randomness:      s.Randomness.ApplyBounds(other.Randomness),
		Center:          s.Center.ApplyBounds(other.Center),
		Mass:            s.Mass.ApplyBounds(other.Mass),
		Floor:           s.Floor.ApplyBounds(other.Floor),
		Bias:            s.Bias.ApplyBounds(other.Bias),
		Gradient:        s.Gradient.ApplyBounds(other.Gradient),
		Normal:          s.Normal.ApplyBounds(other.Normal),
		Slope:           s.Slope.ApplyBounds(other.Slope),
		NormalSpeed:     s.NormalSpeed.ApplyBounds(other.NormalSpeed),
		MaxSpeed:        s.MaxSpeed.ApplyBounds(other.MaxSpeed),
		MaxAcceleration: s.MaxAcceleration.ApplyBounds(other.MaxAcceleration),
		Pacekeeping:     s.Pacekeeping.ApplyBounds(other.Pacekeeping),
		ViewDistance:    s.ViewDistance.ApplyBounds(other.ViewDistance),
		ViewAngle:       s.ViewAngle.ApplyBounds(other.ViewAngle),
		SepDistance:     s.SepDistance.ApplyBounds(other.SepDistance),
		AxisConstraint:  s.AxisConstraint.ApplyBounds(other.AxisConstraint),
		Noclip:          s.Noclip.ApplyBounds(other.Noclip),
		Energy:          s.Energy.ApplyBounds(other.Energy),
		InfluencedBy:    s.InfluencedBy.ApplyBounds(other.InfluencedBy),
		Rules:           s.Rules.ApplyBounds(other.Rules),
		ColorIndex:      s.ColorIndex.ApplyBounds(other.ColorIndex),
		HandDownSeed:    s.HandDownSeed.ApplyBounds(other.HandDownSeed),
	}
}

func (s OIDESpecies) Random(rng *rand.Rand) OIDESpecies {
	return OIDESpecies{
		Index:           s.Index,
		Separation:      s.Separation.Random(rng),
		Alignment:       s.Alignment.Random(rng),
		Cohesion:        s.Cohesion.Random(rng),
		Randomness:      s.Randomness.Random(rng),
		Center:          s.Center.Random(rng),
		Mass:            s.Mass.Random(rng),
		Floor:           s.Floor.Random(rng),
		Bias:            s.Bias.Random(rng),
		Gradient:        s.Gradient.Random(rng),
		Normal:          s.Normal.Random(rng),
		Slope:           s.Slope.Random(rng),
		NormalSpeed:     s.NormalSpeed.Random(rng),
		MaxSpeed:        s.MaxSpeed.Random(rng),
		MaxAcceleration: s.MaxAcceleration.Random(rng),
		Pacekeeping:     s.Pacekeeping.Random(rng),
		ViewDistance:    s.ViewDistance.Random(rng),
		ViewAngle:       s.ViewAngle.Random(rng),
		SepDistance:     s.SepDistance.Random(rng),
		AxisConstraint:  s.AxisConstraint.Random(rng),
		Noclip:          s.Noclip.Random(rng),
		Energy:          s.Energy.Random(rng),
		InfluencedBy:    s.InfluencedBy.Random(rng),
		Rules:           s.Rules.Random(rng),
		ColorIndex:      s.ColorIndex.Random(rng),
		HandDownSeed:    s.HandDownSeed.Random(rng),
	}
}

func (s OIDESpecies) Zero() OIDESpecies {
	return OIDESpecies{
		Index:           s.Index,
		Separation:      s.Separation.Zero(),
		Alignment:       s.Alignment.Zero(),
		Cohesion:        s.Cohesion.Zero(),
		Randomness:      s.Randomness.Zero(),
		Center:          s.Center.Zero(),
		Mass:            s.Mass.Zero(),
		Floor:           s.Floor.Zero(),
		Bias:            s.Bias.Zero(),
		Gradient:        s.Gradient.Zero(),
		Normal:          s.Normal.Zero(),
		Slope:           s.Slope.Zero(),
		NormalSpeed:     s.NormalSpeed.Zero(),
		MaxSpeed:        s.MaxSpeed.Zero(),
		MaxAcceleration: s.MaxAcceleration.Zero(),
		Pacekeeping:     s.Pacekeeping.Zero(),
		ViewDistance:    s.ViewDistance.Zero(),
		ViewAngle:       s.ViewAngle.Zero(),
		SepDistance:     s.SepDistance.Zero(),
		AxisConstraint:  s.AxisConstraint.Zero(),
		Noclip:          s.Noclip.Zero(),
		Energy:          s.Energy.Zero(),
		InfluencedBy:    s.InfluencedBy.Zero(),
		Rules:           s.Rules.Zero(),
		ColorIndex:      s.ColorIndex.Zero(),
		HandDownSeed:    s.HandDownSeed.Zero(),
	}
}

func (s OIDESpecies) ParameterCount() int {
	return s.Separation.ParameterCount() + s.Alignment.ParameterCount() + s.Cohesion.ParameterCount() +
		s.Randomness.ParameterCount() + s.Center.ParameterCount() + s.Mass.ParameterCount() + s.Floor.ParameterCount() +
		s.Bias.ParameterCount() + s.Gradient.ParameterCount() + s.Normal.ParameterCount() +
		s.Slope.ParameterCount() + s.NormalSpeed.ParameterCount() + s.MaxSpeed.ParameterCount() +
		s.MaxAcceleration.ParameterCount() + s.Pacekeeping.ParameterCount() + s.ViewDistance.ParameterCount() +
		s.ViewAngle.ParameterCount() + s.SepDistance.ParameterCount() + s.AxisConstraint.ParameterCount() +
		s.Noclip.ParameterCount() + s.Energy.ParameterCount() + s.InfluencedBy.ParameterCount() +
		s.Rules.ParameterCount() + s.ColorIndex.ParameterCount() + s.HandDownSeed.ParameterCount()
}

var _ oide.Differentiable[OIDEContextRule] = OIDEContextRule{}
var _ oide.Differentiable[OIDESpecies] = OIDESpecies{}
