package population

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/pthm-cable/swarmgrammar/genome"
	"github.com/pthm-cable/swarmgrammar/oidegenome"
)

// microSchema builds a single-species, single-parameter genome whose
// Separation field is the only thing under evolution, bounded to [0,
// 100] — the OIDE micro-problem spec §8 S5 uses to check convergence
// without needing a live simulation as the evaluator.
func microSchema() *oidegenome.OIDESwarmGenome {
	bounds := oidegenome.DefaultSpeciesBounds()
	bounds.Separation.Lower, bounds.Separation.Upper = 0, 100
	g := &genome.SwarmGenome{SpeciesMap: []genome.Species{{}}}
	return oidegenome.ToOIDEGenome(g, bounds)
}

// evaluateAbsPlus20 scores a candidate by |separation + 20|, the toy
// objective spec §8 S5 minimizes.
func evaluateAbsPlus20(_ context.Context, g *oidegenome.OIDESwarmGenome) (float64, error) {
	raw := oidegenome.FromOIDEGenome(g)
	v := float64(raw.SpeciesMap[0].Separation)
	return math.Abs(v + 20), nil
}

// TestBestFitnessIsMonotonicallyNonIncreasing is spec §8 S5: a population
// of 10 candidates drawn uniform over [0, 100], run for 15 generations
// with F=0.5, must never regress on its best-seen fitness.
func TestBestFitnessIsMonotonicallyNonIncreasing(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	schema := microSchema()

	pop, err := New(schema, 10, 0.5, rng)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, bestFitness, err := pop.Best(context.Background(), evaluateAbsPlus20)
	if err != nil {
		t.Fatalf("Best: %v", err)
	}

	for gen := 0; gen < 15; gen++ {
		if err := pop.Step(context.Background(), evaluateAbsPlus20, DefaultSelect); err != nil {
			t.Fatalf("Step %d: %v", gen, err)
		}
		_, fitness, err := pop.Best(context.Background(), evaluateAbsPlus20)
		if err != nil {
			t.Fatalf("Best after step %d: %v", gen, err)
		}
		if fitness > bestFitness {
			t.Fatalf("generation %d: best fitness regressed from %v to %v", gen, bestFitness, fitness)
		}
		bestFitness = fitness
	}
}

// TestNewRejectsTooSmallPopulation is DE/rand/1's structural requirement:
// two distinct donors besides the target demand at least 3 individuals.
func TestNewRejectsTooSmallPopulation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if _, err := New(microSchema(), 2, 0.5, rng); err == nil {
		t.Fatal("expected an error for population size below 3")
	}
}

// TestPickDistinctNeverReturnsExcludedOrDuplicateIndex guards the
// rejection-sampling helper DE/rand/1 depends on for well-formed
// donors.
func TestPickDistinctNeverReturnsExcludedOrDuplicateIndex(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	schema := microSchema()
	pop, err := New(schema, 5, 0.5, rng)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for trial := 0; trial < 50; trial++ {
		exclude := trial % len(pop.Genomes)
		a, b := pop.pickDistinct(exclude)
		if a == pop.Genomes[exclude] || b == pop.Genomes[exclude] {
			t.Fatalf("pickDistinct returned the excluded genome for exclude=%d", exclude)
		}
		if a == b {
			t.Fatalf("pickDistinct returned the same genome twice for exclude=%d", exclude)
		}
	}
}

// TestDefaultSelectPicksLowestFitness.
func TestDefaultSelectPicksLowestFitness(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	schema := microSchema()
	current := schema.Random(rng)
	trial := schema.Random(rng)
	opposition := schema.Random(rng)

	got := DefaultSelect(0, current, trial, opposition, [3]float64{5, 1, 9})
	if got != trial {
		t.Fatal("expected the trial candidate (lowest fitness) to survive")
	}

	got = DefaultSelect(0, current, trial, opposition, [3]float64{1, 5, 9})
	if got != current {
		t.Fatal("expected the current candidate (lowest fitness) to survive")
	}
}
