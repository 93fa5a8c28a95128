// Package population implements the OIDE (Opposition-based Iterative
// Differential Evolution) search loop that evolves a population of
// OIDESwarmGenome candidates against an external fitness evaluator (spec
// §4.6 "OIDE Population Loop"). Grounded on core/src/evo/oide.rs and
// core/src/evo/population.rs.
package population

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/pthm-cable/swarmgrammar/oidegenome"
)

// Evaluator scores a candidate genome; lower is better (spec §8 S5
// minimizes |x+20|). ctx carries the timeout hint spec §5 describes
// ("the evaluator accepts a timeout-hint; no other parallelism is
// permitted in this loop") — an evaluator backed by a live simulation run
// should respect ctx's deadline and return early with an error on
// expiry.
type Evaluator func(ctx context.Context, g *oidegenome.OIDESwarmGenome) (float64, error)

// SelectFunc decides which of a target slot's three candidates — the
// current occupant, the DE/rand/1 trial, and its opposition — survives
// into the next generation (spec §4.6 "an external select callback
// receives the three and the slot index"). fitness is indexed
// [current, trial, opposition].
type SelectFunc func(slot int, current, trial, opposition *oidegenome.OIDESwarmGenome, fitness [3]float64) *oidegenome.OIDESwarmGenome

// DefaultSelect is plain greedy minimization: whichever of the three has
// the lowest fitness survives. Ties favor the current occupant, then the
// trial, matching the order fitness is listed in.
func DefaultSelect(_ int, current, trial, opposition *oidegenome.OIDESwarmGenome, fitness [3]float64) *oidegenome.OIDESwarmGenome {
	best, bestFitness := current, fitness[0]
	if fitness[1] < bestFitness {
		best, bestFitness = trial, fitness[1]
	}
	if fitness[2] < bestFitness {
		best = opposition
	}
	return best
}

// Population is one generation of candidate genomes sharing a bound
// schema (spec §4.1 "a population shares one declared bound schema").
type Population struct {
	Genomes []*oidegenome.OIDESwarmGenome
	F       float32
	RNG     *rand.Rand
}

// New builds a population of size random genomes drawn from schema's
// bound space (spec §6's "generate_zero" CLI operation generalized to a
// whole starting population). size must be at least 3: DE/rand/1 needs
// two distinct donors besides the target.
func New(schema *oidegenome.OIDESwarmGenome, size int, f float32, rng *rand.Rand) (*Population, error) {
	if size < 3 {
		return nil, fmt.Errorf("population: size must be at least 3 for DE/rand/1, got %d", size)
	}
	genomes := make([]*oidegenome.OIDESwarmGenome, size)
	for i := range genomes {
		genomes[i] = schema.Random(rng)
	}
	return &Population{Genomes: genomes, F: f, RNG: rng}, nil
}

// Step advances the population by one generation (spec §4.6): for each
// target x_i, draw two distinct others x_a, x_b from P\{x_i}, form the
// DE/rand/1 trial v = x_i + F*(x_a-x_b) and its opposition v_opp = x_i +
// opposite(F*(x_a-x_b)) — opposite is applied to the bare difference term
// itself, not to x_i plus that term — evaluate all three, and call
// select to decide slot i's survivor.
func (p *Population) Step(ctx context.Context, evaluate Evaluator, selectFn SelectFunc) error {
	if selectFn == nil {
		selectFn = DefaultSelect
	}

	next := make([]*oidegenome.OIDESwarmGenome, len(p.Genomes))
	for i, xi := range p.Genomes {
		a, b := p.pickDistinct(i)

		diff := a.Difference(b).Scale(p.F)
		trial := xi.Add(diff)

		oppositeDiff := diff.Opposite(diff.Zero())
		opposition := xi.Add(oppositeDiff)

		fx, err := evaluate(ctx, xi)
		if err != nil {
			return fmt.Errorf("population: evaluating slot %d (current): %w", i, err)
		}
		ft, err := evaluate(ctx, trial)
		if err != nil {
			return fmt.Errorf("population: evaluating slot %d (trial): %w", i, err)
		}
		fo, err := evaluate(ctx, opposition)
		if err != nil {
			return fmt.Errorf("population: evaluating slot %d (opposition): %w", i, err)
		}

		next[i] = selectFn(i, xi, trial, opposition, [3]float64{fx, ft, fo})
	}

	p.Genomes = next
	return nil
}

// pickDistinct draws two indices distinct from each other and from
// exclude, via rejection sampling. Safe because New refuses populations
// smaller than 3.
func (p *Population) pickDistinct(exclude int) (*oidegenome.OIDESwarmGenome, *oidegenome.OIDESwarmGenome) {
	n := len(p.Genomes)
	ia := exclude
	for ia == exclude {
		ia = p.RNG.Intn(n)
	}
	ib := exclude
	for ib == exclude || ib == ia {
		ib = p.RNG.Intn(n)
	}
	return p.Genomes[ia], p.Genomes[ib]
}

// Best returns the index and fitness of the fittest (lowest-scoring)
// genome under evaluate.
func (p *Population) Best(ctx context.Context, evaluate Evaluator) (int, float64, error) {
	bestIdx := -1
	var bestFitness float64
	for i, g := range p.Genomes {
		f, err := evaluate(ctx, g)
		if err != nil {
			return -1, 0, fmt.Errorf("population: evaluating slot %d: %w", i, err)
		}
		if bestIdx == -1 || f < bestFitness {
			bestIdx, bestFitness = i, f
		}
	}
	return bestIdx, bestFitness, nil
}
