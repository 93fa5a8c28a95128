// Command swarmctl is the demonstration CLI surface for the genome tooling
// collaborators (spec §6 "CLI surface"): conversions between the three
// persisted genome shapes, schema/diagnostic utilities, and a CMA-ES
// baseline comparison for the OIDE population loop. Grounded on
// pthm-soup/cmd/optimize/main.go's flag-based single-binary CLI, generalized
// to dispatch on a subcommand name the way swarmcli/src/main.rs does.
package main

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math"
	"math/rand"
	"os"

	"gonum.org/v1/gonum/optimize"

	"github.com/pthm-cable/swarmgrammar/config"
	"github.com/pthm-cable/swarmgrammar/grammar"
	"github.com/pthm-cable/swarmgrammar/oide"
	"github.com/pthm-cable/swarmgrammar/oidegenome"
	"github.com/pthm-cable/swarmgrammar/persist"
	"github.com/pthm-cable/swarmgrammar/population"
	"github.com/pthm-cable/swarmgrammar/telemetry"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cmd, args := os.Args[1], os.Args[2:]
	var err error
	switch cmd {
	case "oide2raw":
		err = runOIDE2Raw(args)
	case "raw2oide":
		err = runRaw2OIDE(args)
	case "grammar2oide":
		err = runGrammar2OIDE(args)
	case "genome2oide":
		err = runGenome2OIDE(args)
	case "rebound_oide":
		err = runReboundOIDE(args)
	case "generate_zero":
		err = runGenerateZero(args)
	case "parametercount":
		err = runParameterCount(args)
	case "hash":
		err = runHash(args)
	case "op_analysis":
		err = runOpAnalysis(args)
	case "pca_analysis":
		err = runPCAAnalysis(args)
	case "baseline":
		err = runBaseline(args)
	case "run":
		err = runSimulation(args)
	case "optimize":
		err = runOptimize(args)
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		log.Fatalf("swarmctl %s: %v", cmd, err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `swarmctl <command> [flags]

commands:
  oide2raw        -in x.oide.json -out x.genome.json
  raw2oide        -in x.genome.json -bounds x.oide.json -out x.oide.json
  grammar2oide    -in x.grammar.json -bounds x.oide.json -out x.oide.json
  genome2oide     -dummy x.yaml -bounds x.oide.json -out x.oide.json
  rebound_oide    -in x.oide.json -out x.oide.json
  generate_zero   -species N -out x.oide.json
  parametercount  -in x.oide.json
  hash            -in x.oide.json
  op_analysis     -a a.oide.json -b b.oide.json -steps N -out dir/
  pca_analysis    -in a.oide.json,b.oide.json,... -out features.csv
  baseline        -schema x.oide.json -max-evals N -out dir/
  run             -genome x.genome.json -config cfg.yaml -out run.grammar.json
  optimize        -schema x.oide.json -config cfg.yaml -out dir/`)
}

func runOIDE2Raw(args []string) error {
	fs := flag.NewFlagSet("oide2raw", flag.ExitOnError)
	in := fs.String("in", "", "input .oide.json")
	out := fs.String("out", "", "output .genome.json")
	fs.Parse(args)

	o, err := persist.LoadOIDEGenome(*in)
	if err != nil {
		return err
	}
	return persist.SaveGenome(*out, oidegenome.FromOIDEGenome(o))
}

func runRaw2OIDE(args []string) error {
	fs := flag.NewFlagSet("raw2oide", flag.ExitOnError)
	in := fs.String("in", "", "input .genome.json")
	boundsPath := fs.String("bounds", "", "an existing .oide.json supplying the bound schema")
	out := fs.String("out", "", "output .oide.json")
	fs.Parse(args)

	g, err := persist.LoadGenome(*in)
	if err != nil {
		return err
	}
	bounds, err := loadBounds(*boundsPath)
	if err != nil {
		return err
	}
	return persist.SaveOIDEGenome(*out, oidegenome.ToOIDEGenome(g, bounds))
}

func runGrammar2OIDE(args []string) error {
	fs := flag.NewFlagSet("grammar2oide", flag.ExitOnError)
	in := fs.String("in", "", "input .grammar.json")
	boundsPath := fs.String("bounds", "", "an existing .oide.json supplying the bound schema")
	out := fs.String("out", "", "output .oide.json")
	fs.Parse(args)

	sg, err := persist.LoadGrammar(*in)
	if err != nil {
		return err
	}
	bounds, err := loadBounds(*boundsPath)
	if err != nil {
		return err
	}
	return persist.SaveOIDEGenome(*out, oidegenome.ToOIDEGenome(sg.Genome, bounds))
}

func runGenome2OIDE(args []string) error {
	fs := flag.NewFlagSet("genome2oide", flag.ExitOnError)
	dummy := fs.String("dummy", "", "input human-authored YAML genome")
	boundsPath := fs.String("bounds", "", "an existing .oide.json supplying the bound schema")
	out := fs.String("out", "", "output .oide.json")
	fs.Parse(args)

	g, err := persist.LoadDummyGenome(*dummy)
	if err != nil {
		return err
	}
	bounds, err := loadBounds(*boundsPath)
	if err != nil {
		return err
	}
	return persist.SaveOIDEGenome(*out, oidegenome.ToOIDEGenome(g, bounds))
}

// runReboundOIDE clamps every atom of o into the [lower, upper] range that
// atom already carries (o.ApplyBounds(o)); it does not construct a new
// bound schema. As in spec §8 S6, a stray out-of-range value reports its
// clamped value, not an error.
func runReboundOIDE(args []string) error {
	fs := flag.NewFlagSet("rebound_oide", flag.ExitOnError)
	in := fs.String("in", "", "input .oide.json")
	out := fs.String("out", "", "output .oide.json, clamped into its own bounds")
	fs.Parse(args)

	o, err := persist.LoadOIDEGenome(*in)
	if err != nil {
		return err
	}
	clamped, err := o.ApplyBounds(o)
	if err != nil {
		return fmt.Errorf("rebounding: %w", err)
	}
	return persist.SaveOIDEGenome(*out, clamped)
}

func runGenerateZero(args []string) error {
	fs := flag.NewFlagSet("generate_zero", flag.ExitOnError)
	species := fs.Int("species", 1, "number of species in the template")
	out := fs.String("out", "", "output .oide.json template")
	fs.Parse(args)

	bounds := oidegenome.DefaultSpeciesBounds()
	schema := oidegenome.TemplateGenome(*species, bounds)
	return persist.SaveOIDEGenome(*out, schema)
}

func runParameterCount(args []string) error {
	fs := flag.NewFlagSet("parametercount", flag.ExitOnError)
	in := fs.String("in", "", "input .oide.json")
	fs.Parse(args)

	o, err := persist.LoadOIDEGenome(*in)
	if err != nil {
		return err
	}
	fmt.Println(o.ParameterCount())
	return nil
}

// runHash reports a stable content hash of a genome's JSON encoding (spec
// §6 "hash"), used by tooling to detect whether two persisted genomes
// describe the same candidate without a full structural diff.
func runHash(args []string) error {
	fs := flag.NewFlagSet("hash", flag.ExitOnError)
	in := fs.String("in", "", "input .oide.json")
	fs.Parse(args)

	o, err := persist.LoadOIDEGenome(*in)
	if err != nil {
		return err
	}
	data, err := json.Marshal(o)
	if err != nil {
		return err
	}
	sum := sha256.Sum256(data)
	fmt.Println(hex.EncodeToString(sum[:]))
	return nil
}

// runOpAnalysis linearly interpolates from a (t=0) to b (t=1) in steps
// equal increments and writes the steps+1 resulting genomes, both
// endpoints included, each as its own .oide.json,
// the operator-analysis shape spec §6 "op_analysis" names.
func runOpAnalysis(args []string) error {
	fs := flag.NewFlagSet("op_analysis", flag.ExitOnError)
	aPath := fs.String("a", "", "first .oide.json endpoint")
	bPath := fs.String("b", "", "second .oide.json endpoint")
	steps := fs.Int("steps", 5, "number of interpolation steps")
	outDir := fs.String("out", "", "output directory")
	fs.Parse(args)

	a, err := persist.LoadOIDEGenome(*aPath)
	if err != nil {
		return err
	}
	b, err := persist.LoadOIDEGenome(*bPath)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(*outDir, 0755); err != nil {
		return err
	}

	diff := b.Difference(a)
	for i := 0; i <= *steps; i++ {
		t := float32(i) / float32(*steps)
		step := a.Add(diff.Scale(t))
		path := fmt.Sprintf("%s/step-%02d.oide.json", *outDir, i)
		if err := persist.SaveOIDEGenome(path, step); err != nil {
			return err
		}
	}
	return nil
}

func runPCAAnalysis(args []string) error {
	fs := flag.NewFlagSet("pca_analysis", flag.ExitOnError)
	in := fs.String("in", "", "comma-separated list of .oide.json files")
	out := fs.String("out", "", "output feature CSV")
	fs.Parse(args)

	paths := splitCommaList(*in)
	population := make([]*oidegenome.OIDESwarmGenome, len(paths))
	for i, p := range paths {
		g, err := persist.LoadOIDEGenome(p)
		if err != nil {
			return err
		}
		population[i] = g
	}
	return telemetry.WritePopulationFeatureCSV(*out, population)
}

// runBaseline runs gonum/optimize's CmaEsChol against the first species'
// Separation scalar under schema's bound range, as a reference point to
// compare the OIDE population loop's convergence against on the same
// single-scalar problem population_test.go exercises (spec §8 S5 "OIDE
// micro-problem"; spec §6's CLI surface is a demonstration collaborator,
// not part of the core, and never participates in population.Step
// itself). Grounded on pthm-soup/cmd/optimize/main.go's CMA-ES wiring.
func runBaseline(args []string) error {
	fs := flag.NewFlagSet("baseline", flag.ExitOnError)
	schemaPath := fs.String("schema", "", "an .oide.json supplying the Separation bound range")
	maxEvals := fs.Int("max-evals", 200, "maximum number of evaluations")
	outDir := fs.String("out", "", "output directory")
	fs.Parse(args)

	schema, err := persist.LoadOIDEGenome(*schemaPath)
	if err != nil {
		return err
	}
	if len(schema.SpeciesMap) == 0 {
		return fmt.Errorf("schema has no species")
	}
	if err := os.MkdirAll(*outDir, 0755); err != nil {
		return err
	}

	sep := schema.SpeciesMap[0].Separation
	lower, upper := float64(sep.Lower()), float64(sep.Upper())

	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			v := clampFloat(x[0], lower, upper)
			return math.Abs(v + 20)
		},
	}
	settings := &optimize.Settings{FuncEvaluations: *maxEvals}
	method := &optimize.CmaEsChol{InitStepSize: 0.3, Population: 4}

	result, err := optimize.Minimize(problem, []float64{(lower + upper) / 2}, settings, method)
	if err != nil {
		log.Printf("baseline optimization ended: %v", err)
	}

	best := clampFloat(result.X[0], lower, upper)
	fmt.Printf("baseline best Separation=%.6f fitness=%.6f\n", best, math.Abs(best+20))

	bestGenome := *schema
	bestGenome.SpeciesMap = append([]oidegenome.OIDESpecies(nil), schema.SpeciesMap...)
	bestGenome.SpeciesMap[0].Separation = oide.NewBoundedFactor(float32(lower), float32(upper), float32(best))
	return persist.SaveOIDEGenome(outDir+"/baseline_best.oide.json", &bestGenome)
}

func clampFloat(v, lower, upper float64) float64 {
	if v < lower {
		return lower
	}
	if v > upper {
		return upper
	}
	return v
}

func loadBounds(path string) (oidegenome.SpeciesBounds, error) {
	if path == "" {
		return oidegenome.DefaultSpeciesBounds(), nil
	}
	o, err := persist.LoadOIDEGenome(path)
	if err != nil {
		return oidegenome.SpeciesBounds{}, err
	}
	return oidegenome.BoundsOf(o), nil
}

// runSimulation drives one SwarmGrammar run for config.Run.Ticks ticks and
// saves the final state, the "simulation driver" the ambient stack's
// Configuration/Logging sections describe: config supplies spacing/seed/
// tick budget, and progress is reported through log/slog rather than
// printed directly (spec §4.4/§4.5).
func runSimulation(args []string) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	genomePath := fs.String("genome", "", "input .genome.json")
	configPath := fs.String("config", "", "optional config YAML overriding the embedded defaults")
	out := fs.String("out", "", "output .grammar.json")
	fs.Parse(args)

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	g, err := persist.LoadGenome(*genomePath)
	if err != nil {
		return err
	}

	logger := slog.Default()
	sg := grammar.New(g, cfg.World.Spacing, cfg.Run.Seed)
	for i := 0; i < cfg.Run.Ticks; i++ {
		sg.Step()
	}
	logger.Info("simulation complete",
		"ticks", cfg.Run.Ticks, "agents", len(sg.Agents), "artifacts", len(sg.Artifacts))

	return persist.SaveGrammar(*out, sg, cfg.Run.Seed)
}

// runOptimize drives the full OIDE population loop against a real
// simulation-based fitness (survivor count after cfg.Run.Ticks, spec
// §4.5's on_zero culling is the only source of attrition), the concrete
// instance of "the population loop's run configuration" the ambient
// stack's Configuration section names. Progress is reported per
// generation through telemetry.ComputeGenerationStats/LogProgress and
// persisted via telemetry.OutputManager.
func runOptimize(args []string) error {
	fs := flag.NewFlagSet("optimize", flag.ExitOnError)
	schemaPath := fs.String("schema", "", "an .oide.json supplying the bound schema and species count")
	configPath := fs.String("config", "", "optional config YAML overriding the embedded defaults")
	outDir := fs.String("out", "", "output directory")
	fs.Parse(args)

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(*outDir, 0755); err != nil {
		return err
	}

	schema, err := persist.LoadOIDEGenome(*schemaPath)
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(cfg.Run.Seed))
	pop, err := population.New(schema, cfg.OIDE.PopulationSize, cfg.OIDE.F, rng)
	if err != nil {
		return err
	}

	out, err := telemetry.NewOutputManager(*outDir)
	if err != nil {
		return err
	}
	defer out.Close()

	logger := slog.Default()
	evaluate := survivorCountEvaluator(cfg)

	ctx := context.Background()
	for gen := 0; gen < cfg.OIDE.Generations; gen++ {
		if err := pop.Step(ctx, evaluate, population.DefaultSelect); err != nil {
			return fmt.Errorf("generation %d: %w", gen, err)
		}

		fitness := make([]float64, len(pop.Genomes))
		for i, genome := range pop.Genomes {
			f, err := evaluate(ctx, genome)
			if err != nil {
				return fmt.Errorf("generation %d: scoring slot %d: %w", gen, i, err)
			}
			fitness[i] = f
		}

		stats := telemetry.ComputeGenerationStats(gen, fitness, schema.ParameterCount())
		telemetry.LogProgress(logger, stats)
		if err := out.WriteGeneration(stats); err != nil {
			return err
		}
	}

	bestIdx, bestFitness, err := pop.Best(ctx, evaluate)
	if err != nil {
		return err
	}
	logger.Info("optimize complete", "best_fitness", bestFitness)
	return persist.SaveOIDEGenome(out.Dir()+"/best.oide.json", pop.Genomes[bestIdx])
}

// survivorCountEvaluator scores a genome by running a full simulation and
// counting agents lost to on_zero culling: fewer survivors is worse, so
// the evaluator reports a minimized loss (population size minus
// survivors) to match population.Evaluator's "lower is better" convention.
func survivorCountEvaluator(cfg *config.Config) population.Evaluator {
	return func(_ context.Context, g *oidegenome.OIDESwarmGenome) (float64, error) {
		raw := oidegenome.FromOIDEGenome(g)
		sg := grammar.New(raw, cfg.World.Spacing, cfg.Run.Seed)
		initial := len(sg.Agents)
		for i := 0; i < cfg.Run.Ticks; i++ {
			sg.Step()
		}
		return float64(initial - len(sg.Agents)), nil
	}
}

func splitCommaList(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == ',' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	out = append(out, s[start:])
	return out
}
