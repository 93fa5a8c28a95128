// Package telemetry reports per-generation OIDE population statistics and
// exports a population's flattened feature vectors as CSV, the ambient
// observability stack the expanded spec's "Configuration"/"Logging"
// section calls for (spec §6 "pca_analysis"). Grounded on
// pthm-soup/telemetry/{stats,output}.go's WindowStats/OutputManager
// pattern, generalized from ecosystem window stats to population
// generation stats.
package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// GenerationStats summarizes one OIDE population generation's fitness
// distribution (spec §4.6's loop produces one of these per Step call).
type GenerationStats struct {
	Generation int     `csv:"generation"`
	Best       float64 `csv:"best"`
	Mean       float64 `csv:"mean"`
	StdDev     float64 `csv:"stddev"`
	Worst      float64 `csv:"worst"`
	ParamCount int     `csv:"param_count"`
}

// ComputeGenerationStats reduces a generation's per-genome fitness values
// (lower is better, per population.Evaluator's convention) to summary
// statistics via gonum/stat, matching the teacher's
// ComputeEnergyStats-style reduction but over a full distribution rather
// than fixed percentiles.
func ComputeGenerationStats(generation int, fitness []float64, paramCount int) GenerationStats {
	if len(fitness) == 0 {
		return GenerationStats{Generation: generation, ParamCount: paramCount}
	}

	sorted := append([]float64(nil), fitness...)
	sort.Float64s(sorted)

	mean, stddev := stat.MeanStdDev(sorted, nil)

	return GenerationStats{
		Generation: generation,
		Best:       sorted[0],
		Mean:       mean,
		StdDev:     stddev,
		Worst:      sorted[len(sorted)-1],
		ParamCount: paramCount,
	}
}

// LogProgress writes a single human-readable progress line through logger
// (defaulting to slog.Default() if nil), mirroring the expanded spec's
// "one Logger threaded through the population loop" requirement rather
// than a package-global logger.
func LogProgress(logger *slog.Logger, stats GenerationStats) {
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("generation complete",
		"generation", stats.Generation,
		"best", stats.Best,
		"mean", stats.Mean,
		"stddev", stats.StdDev,
		"worst", stats.Worst,
	)
}
