package genome

import "testing"

func minimalDummy() DummySwarmGenome {
	return DummySwarmGenome{
		SpeciesMap: map[string]DummySpecies{
			"prey": {MaxSpeed: 5, Energy: DummyEnergy{OnZero: DummyZeroEnergy{Kind: ZeroDie}}},
		},
		ArtifactMap: map[string]DummyArtifact{
			"trail": {ColorIndex: 1},
		},
		StartDist: DummyDistribution{Kind: DistributionSingle, Surrounding: "prey"},
		Strategy:  DummyApplicationStrategy{Every: 4},
	}
}

func TestValidateResolvesIdentifiers(t *testing.T) {
	d := minimalDummy()
	g, err := d.Validate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(g.SpeciesMap) != 1 || len(g.ArtifactMap) != 1 {
		t.Fatalf("unexpected table sizes: species=%d artifacts=%d", len(g.SpeciesMap), len(g.ArtifactMap))
	}
	if g.Strategy.Offset != 4 {
		t.Fatalf("expected offset to default to every (4), got %d", g.Strategy.Offset)
	}
}

func TestValidateRejectsUnknownIdentifier(t *testing.T) {
	d := minimalDummy()
	d.SpeciesMap["prey"] = DummySpecies{
		InfluencedBy: map[string]float32{"ghost": 1},
	}
	if _, err := d.Validate(); err == nil {
		t.Fatal("expected error for unknown identifier \"ghost\"")
	}
}

func TestValidateRejectsSpreadTargetingArtifact(t *testing.T) {
	d := minimalDummy()
	spec := d.SpeciesMap["prey"]
	spec.Rules = []DummyContextRule{{
		Persist: true,
		Replacement: DummyReplacement{
			Kind:          ReplacementSpread,
			SpreadSpecies: "trail",
			SpreadCount:   3,
		},
	}}
	d.SpeciesMap["prey"] = spec

	if _, err := d.Validate(); err == nil {
		t.Fatal("expected error for Spread targeting an artifact")
	}
}
