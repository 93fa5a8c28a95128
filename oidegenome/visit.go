package oidegenome

import (
	"strconv"

	"github.com/pthm-cable/swarmgrammar/oide"
)

// VisitNamed walks r's evolved scalars under a pushed "ruleNN" group
// (spec §4.1's feature-visitor traversal, supplemented per original_source/
// r_oide/src/atoms.rs and derive_diff/src/lib.rs). Context and Replacement
// are Fixed and contribute no leaves.
func (r OIDEContextRule) VisitNamed(fv oide.FeatureVisitor) {
	r.Range.VisitNamed("range", fv)
	r.Weight.VisitNamed("weight", fv)
	r.Persist.VisitNamed("persist", fv)
}

func visitVec3(name string, v vec3, fv oide.FeatureVisitor) {
	v.First.VisitNamed(name+".x", fv)
	v.Second.VisitNamed(name+".y", fv)
	v.Third.VisitNamed(name+".z", fv)
}

// VisitNamed walks every evolved field of s, pushing "speciesNN" so a
// whole genome's flattened feature names disambiguate across species
// (spec §6 "pca_analysis", the CLI's CSV feature export).
func (s OIDESpecies) VisitNamed(fv oide.FeatureVisitor) {
	s.Separation.VisitNamed("separation", fv)
	s.Alignment.VisitNamed("alignment", fv)
	s.Cohesion.VisitNamed("cohesion", fv)
	s.Randomness.VisitNamed("randomness", fv)
	s.Center.VisitNamed("center", fv)
	s.Mass.VisitNamed("mass", fv)
	s.Floor.VisitNamed("floor", fv)
	visitVec3("bias", s.Bias, fv)
	s.Gradient.VisitNamed("gradient", fv)
	s.Normal.VisitNamed("normal", fv)
	s.Slope.VisitNamed("slope", fv)

	s.NormalSpeed.VisitNamed("normal_speed", fv)
	s.MaxSpeed.VisitNamed("max_speed", fv)
	s.MaxAcceleration.VisitNamed("max_acceleration", fv)
	s.Pacekeeping.VisitNamed("pacekeeping", fv)

	s.ViewDistance.VisitNamed("view_distance", fv)
	s.ViewAngle.VisitNamed("view_angle", fv)
	s.SepDistance.VisitNamed("sep_distance", fv)

	visitVec3("axis_constraint", s.AxisConstraint, fv)
	s.Noclip.VisitNamed("noclip", fv)
	s.HandDownSeed.VisitNamed("hand_down_seed", fv)

	for i, r := range s.Rules {
		fv.Push(indexedGroup("rule", i))
		r.VisitNamed(fv)
		fv.Pop()
	}
}

// VisitNamed walks every species in o, each under its own pushed group,
// producing the fully-qualified feature names the pca_analysis CLI
// operation consumes (through telemetry.WritePopulationFeatureCSV).
func (o *OIDESwarmGenome) VisitNamed(fv oide.FeatureVisitor) {
	for i, s := range o.SpeciesMap {
		fv.Push(indexedGroup("species", i))
		s.VisitNamed(fv)
		fv.Pop()
	}
}

func indexedGroup(prefix string, i int) string {
	return prefix + strconv.Itoa(i)
}
