package oidegenome

import (
	"testing"

	"github.com/pthm-cable/swarmgrammar/actor"
	"github.com/pthm-cable/swarmgrammar/genome"
	"github.com/pthm-cable/swarmgrammar/oide"
	"github.com/pthm-cable/swarmgrammar/vecmath"
)

// TestBoundProjectionClampsOutOfRangeValue is spec §8 S6: a separation of
// 3.7 loaded under a [0, 2] bound schema reports 2.0 exactly, and its
// distance from the upper bound is 0.0 both before and after opposite
// (opposite around the schema's zero leaves an already-saturated value at
// the same upper-bound distance, per P2).
func TestBoundProjectionClampsOutOfRangeValue(t *testing.T) {
	bounds := DefaultSpeciesBounds()
	s := genome.Species{Separation: 3.7}
	o := ToOIDE(s, bounds)

	if got := o.Separation.Value(); got != 2 {
		t.Fatalf("separation = %v, want 2 (clamped to upper bound)", got)
	}

	opp := o.Separation.Opposite(o.Separation.Zero())
	if dist := opp.Upper() - opp.Value(); dist != 0 {
		t.Fatalf("distance from upper bound after opposite = %v, want 0", dist)
	}
}

// TestRoundTripIsLosslessForEveryZeroEnergyKind is spec §9's documented
// fix: ToOIDEGenome/FromOIDEGenome must round-trip ZeroEnergy::Replace
// with a Multi or Spread replacement exactly, unlike the reference
// implementation's lossy TryFrom.
func TestRoundTripIsLosslessForEveryZeroEnergyKind(t *testing.T) {
	spread := genome.Replacement{Kind: genome.ReplacementSpread, SpreadSpecies: 0, SpreadCount: 6, SpreadOffsetDeg: 15}

	g := &genome.SwarmGenome{
		SpeciesMap: []genome.Species{{
			Separation:     1,
			MaxSpeed:       3,
			AxisConstraint: vecmath.Vector3{X: 1, Y: 1, Z: 1},
			Energy: genome.Energy{
				OnZero: genome.ZeroEnergy{Kind: genome.ZeroReplace, Threshold: 5, Replacement: &spread},
			},
			Rules: []genome.ContextRule{{
				Context: []actor.SurroundingIndex{actor.AgentSurrounding(0)},
				Range:   4,
				Weight:  2,
				Persist: true,
				Replacement: genome.Replacement{
					Kind:   genome.ReplacementSimple,
					Simple: []actor.SurroundingIndex{actor.AgentSurrounding(0)},
				},
			}},
		}},
		ArtifactMap: []genome.ArtifactType{{ColorIndex: 2}},
	}

	bounds := DefaultSpeciesBounds()
	oideGenome := ToOIDEGenome(g, bounds)
	roundTripped := FromOIDEGenome(oideGenome)

	if len(roundTripped.SpeciesMap) != 1 {
		t.Fatalf("expected 1 species, got %d", len(roundTripped.SpeciesMap))
	}
	rep := roundTripped.SpeciesMap[0].Energy.OnZero.Replacement
	if rep == nil || rep.Kind != genome.ReplacementSpread || rep.SpreadCount != 6 {
		t.Fatalf("on_zero Replacement did not round-trip: %+v", rep)
	}
	if len(roundTripped.SpeciesMap[0].Rules) != 1 || roundTripped.SpeciesMap[0].Rules[0].Range != 4 {
		t.Fatalf("rule did not round-trip: %+v", roundTripped.SpeciesMap[0].Rules)
	}
}

// TestParameterCountIsAdditiveAcrossSpecies is spec §8 P4.
func TestParameterCountIsAdditiveAcrossSpecies(t *testing.T) {
	g := &genome.SwarmGenome{
		SpeciesMap: []genome.Species{{}, {}},
	}
	bounds := DefaultSpeciesBounds()
	oideGenome := ToOIDEGenome(g, bounds)

	single := ToOIDE(genome.Species{}, bounds).ParameterCount()
	if oideGenome.ParameterCount() != 2*single {
		t.Fatalf("parameter count = %d, want %d (2x single species)", oideGenome.ParameterCount(), 2*single)
	}
}

// TestVisitNamedYieldsOneNameAndValuePerParameter checks the feature
// visitor traversal (supplemented from original_source's push/collect/pop
// protocol) produces exactly ParameterCount() named leaves.
func TestVisitNamedYieldsOneNameAndValuePerParameter(t *testing.T) {
	g := &genome.SwarmGenome{
		SpeciesMap: []genome.Species{{
			Separation: 1,
			Rules: []genome.ContextRule{
				{Range: 2, Weight: 3, Persist: true},
			},
		}},
	}
	bounds := DefaultSpeciesBounds()
	oideGenome := ToOIDEGenome(g, bounds)

	var nv oide.NamingVisitor
	oideGenome.VisitNamed(&nv)

	if len(nv.Names) != oideGenome.ParameterCount() {
		t.Fatalf("got %d named leaves, want %d (ParameterCount)", len(nv.Names), oideGenome.ParameterCount())
	}
	if len(nv.Names) != len(nv.Values) {
		t.Fatalf("names/values length mismatch: %d vs %d", len(nv.Names), len(nv.Values))
	}

	found := false
	for _, name := range nv.Names {
		if name == "species0.separation" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a %q feature name, got %v", "species0.separation", nv.Names)
	}
}

// TestApplyBoundsRejectsSpeciesCountMismatch.
func TestApplyBoundsRejectsSpeciesCountMismatch(t *testing.T) {
	bounds := DefaultSpeciesBounds()
	schema := ToOIDEGenome(&genome.SwarmGenome{SpeciesMap: []genome.Species{{}}}, bounds)
	candidate := ToOIDEGenome(&genome.SwarmGenome{SpeciesMap: []genome.Species{{}, {}}}, bounds)

	if _, err := schema.ApplyBounds(candidate); err == nil {
		t.Fatal("expected an error for mismatched species counts")
	}
}
