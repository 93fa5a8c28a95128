package telemetry

import (
	"math"
	"testing"
)

func TestComputeGenerationStats(t *testing.T) {
	stats := ComputeGenerationStats(3, []float64{5, 1, 3, 9}, 42)

	if stats.Best != 1 {
		t.Errorf("Best = %v, want 1", stats.Best)
	}
	if stats.Worst != 9 {
		t.Errorf("Worst = %v, want 9", stats.Worst)
	}
	if math.Abs(stats.Mean-4.5) > 1e-9 {
		t.Errorf("Mean = %v, want 4.5", stats.Mean)
	}
	if stats.ParamCount != 42 {
		t.Errorf("ParamCount = %v, want 42", stats.ParamCount)
	}
}

func TestComputeGenerationStatsEmptyFitness(t *testing.T) {
	stats := ComputeGenerationStats(0, nil, 10)
	if stats.Best != 0 || stats.Worst != 0 || stats.Mean != 0 {
		t.Errorf("expected zero-value stats for empty fitness, got %+v", stats)
	}
}
