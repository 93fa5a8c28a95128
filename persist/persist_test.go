package persist

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/swarmgrammar/genome"
	"github.com/pthm-cable/swarmgrammar/grammar"
	"github.com/pthm-cable/swarmgrammar/oidegenome"
)

func sampleGenome() *genome.SwarmGenome {
	return &genome.SwarmGenome{
		SpeciesMap:  []genome.Species{{Separation: 2, MaxSpeed: 5}},
		ArtifactMap: []genome.ArtifactType{{ColorIndex: 1}},
		StartDist:   genome.Distribution{Kind: genome.DistributionSingle},
	}
}

func TestSaveAndLoadGrammarRoundTrips(t *testing.T) {
	sg := grammar.New(sampleGenome(), 10.0, 42)

	path := filepath.Join(t.TempDir(), "run.grammar.json")
	if err := SaveGrammar(path, sg, 42); err != nil {
		t.Fatalf("SaveGrammar: %v", err)
	}

	loaded, err := LoadGrammar(path)
	if err != nil {
		t.Fatalf("LoadGrammar: %v", err)
	}
	if len(loaded.Genome.SpeciesMap) != len(sg.Genome.SpeciesMap) {
		t.Fatalf("species count = %d, want %d", len(loaded.Genome.SpeciesMap), len(sg.Genome.SpeciesMap))
	}
	if loaded.Iteration != sg.Iteration {
		t.Fatalf("iteration = %d, want %d", loaded.Iteration, sg.Iteration)
	}
}

func TestLoadGrammarRejectsMissingGenome(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.grammar.json")
	if err := os.WriteFile(path, []byte(`{}`), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	_, err := LoadGrammar(path)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected a *ValidationError, got %v", err)
	}
}

func TestSaveAndLoadGenomeRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.genome.json")
	want := sampleGenome()
	if err := SaveGenome(path, want); err != nil {
		t.Fatalf("SaveGenome: %v", err)
	}
	got, err := LoadGenome(path)
	if err != nil {
		t.Fatalf("LoadGenome: %v", err)
	}
	if got.SpeciesMap[0].Separation != want.SpeciesMap[0].Separation {
		t.Fatalf("Separation = %v, want %v", got.SpeciesMap[0].Separation, want.SpeciesMap[0].Separation)
	}
}

func TestSaveAndLoadOIDEGenomeRoundTrips(t *testing.T) {
	bounds := oidegenome.DefaultSpeciesBounds()
	want := oidegenome.ToOIDEGenome(sampleGenome(), bounds)

	path := filepath.Join(t.TempDir(), "x.oide.json")
	if err := SaveOIDEGenome(path, want); err != nil {
		t.Fatalf("SaveOIDEGenome: %v", err)
	}
	got, err := LoadOIDEGenome(path)
	if err != nil {
		t.Fatalf("LoadOIDEGenome: %v", err)
	}
	if got.ParameterCount() != want.ParameterCount() {
		t.Fatalf("ParameterCount = %d, want %d", got.ParameterCount(), want.ParameterCount())
	}
}

func TestLoadDummyGenomeValidatesSuccessfully(t *testing.T) {
	dummy := genome.DummySwarmGenome{
		SpeciesMap: map[string]genome.DummySpecies{
			"boid": {Separation: 1.5, Rules: nil},
		},
		StartDist: genome.DummyDistribution{Kind: genome.DistributionSingle, Surrounding: "boid"},
	}

	data, err := yaml.Marshal(&dummy)
	if err != nil {
		t.Fatalf("yaml.Marshal: %v", err)
	}
	path := filepath.Join(t.TempDir(), "boid.yaml")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	g, err := LoadDummyGenome(path)
	if err != nil {
		t.Fatalf("LoadDummyGenome: %v", err)
	}
	if len(g.SpeciesMap) != 1 || g.SpeciesMap[0].Separation != 1.5 {
		t.Fatalf("unexpected genome: %+v", g.SpeciesMap)
	}
}

func TestLoadDummyGenomeReportsUnknownIdentifier(t *testing.T) {
	dummy := genome.DummySwarmGenome{
		SpeciesMap: map[string]genome.DummySpecies{
			"boid": {
				InfluencedBy: map[string]float32{"ghost": 1},
			},
		},
		StartDist: genome.DummyDistribution{Kind: genome.DistributionSingle, Surrounding: "boid"},
	}

	data, err := yaml.Marshal(&dummy)
	if err != nil {
		t.Fatalf("yaml.Marshal: %v", err)
	}
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	_, err = LoadDummyGenome(path)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected a *ValidationError for unknown identifier %q, got %v", "ghost", err)
	}
}

func TestLoadGenomeReportsIOErrorForMissingFile(t *testing.T) {
	_, err := LoadGenome(filepath.Join(t.TempDir(), "missing.genome.json"))
	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("expected a *IOError, got %v", err)
	}
}
