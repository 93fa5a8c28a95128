package telemetry

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/pthm-cable/swarmgrammar/genome"
	"github.com/pthm-cable/swarmgrammar/oidegenome"
)

func TestWritePopulationFeatureCSVWritesOneRowPerGenomePlusMean(t *testing.T) {
	bounds := oidegenome.DefaultSpeciesBounds()
	schema := oidegenome.ToOIDEGenome(&genome.SwarmGenome{SpeciesMap: []genome.Species{{}}}, bounds)

	rng := rand.New(rand.NewSource(1))
	population := []*oidegenome.OIDESwarmGenome{schema.Random(rng), schema.Random(rng), schema.Random(rng)}

	dir := t.TempDir()
	path := filepath.Join(dir, "features.csv")
	if err := WritePopulationFeatureCSV(path, population); err != nil {
		t.Fatalf("WritePopulationFeatureCSV: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected non-empty CSV output")
	}
}

func TestWritePopulationFeatureCSVRejectsEmptyPopulation(t *testing.T) {
	if err := WritePopulationFeatureCSV(filepath.Join(t.TempDir(), "features.csv"), nil); err == nil {
		t.Fatal("expected an error for an empty population")
	}
}

func TestOutputManagerNilIsANoOp(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil {
		t.Fatalf("NewOutputManager: %v", err)
	}
	if om != nil {
		t.Fatal("expected nil OutputManager for empty dir")
	}
	if err := om.WriteGeneration(GenerationStats{}); err != nil {
		t.Fatalf("WriteGeneration on nil manager: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatalf("Close on nil manager: %v", err)
	}
}
