package telemetry

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/floats"

	"github.com/pthm-cable/swarmgrammar/oide"
	"github.com/pthm-cable/swarmgrammar/oidegenome"
)

// OutputManager handles structured OIDE-run output: a generations.csv of
// per-generation fitness summaries and an on-demand genome-feature CSV
// export (spec §6's pca_analysis). Grounded on
// pthm-soup/telemetry/output.go's OutputManager.
type OutputManager struct {
	dir                string
	generationsFile    *os.File
	generationsWritten bool
}

// NewOutputManager creates an output manager rooted at dir. Returns nil
// if dir is empty (output disabled), matching the teacher's
// "nil receiver methods are no-ops" convention so callers never need a
// nil check of their own.
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("telemetry: creating output directory: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, "generations.csv"))
	if err != nil {
		return nil, fmt.Errorf("telemetry: creating generations.csv: %w", err)
	}

	return &OutputManager{dir: dir, generationsFile: f}, nil
}

// WriteGeneration appends one generation's summary to generations.csv.
func (om *OutputManager) WriteGeneration(stats GenerationStats) error {
	if om == nil {
		return nil
	}
	records := []GenerationStats{stats}
	if !om.generationsWritten {
		if err := gocsv.Marshal(records, om.generationsFile); err != nil {
			return fmt.Errorf("telemetry: writing generations.csv: %w", err)
		}
		om.generationsWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, om.generationsFile); err != nil {
		return fmt.Errorf("telemetry: writing generations.csv: %w", err)
	}
	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes the output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}
	return om.generationsFile.Close()
}

// WritePopulationFeatureCSV flattens every genome in population via the
// feature-visitor traversal and writes one row per genome plus a trailing
// "mean" summary row, the "pca_analysis" shape spec §6 describes: one
// column per named feature, consumed externally by an actual PCA tool.
// The header is taken from the first genome; every genome in a population
// shares the same bound schema and species count (spec §4.1), so their
// feature names always agree.
func WritePopulationFeatureCSV(path string, population []*oidegenome.OIDESwarmGenome) error {
	if len(population) == 0 {
		return fmt.Errorf("telemetry: cannot export feature CSV for an empty population")
	}

	var header []string
	rows := make([][]float64, len(population))
	for i, g := range population {
		var nv oide.NamingVisitor
		g.VisitNamed(&nv)
		if header == nil {
			header = nv.Names
		}
		row := make([]float64, len(nv.Values))
		for j, v := range nv.Values {
			row[j] = float64(v)
		}
		rows[i] = row
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("telemetry: creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(append([]string{"genome"}, header...)); err != nil {
		return fmt.Errorf("telemetry: writing header: %w", err)
	}

	means := make([]float64, len(header))
	for i, row := range rows {
		floats.Add(means, row)
		if err := writeFeatureRow(w, strconv.Itoa(i), row); err != nil {
			return err
		}
	}
	floats.Scale(1/float64(len(rows)), means)
	if err := writeFeatureRow(w, "mean", means); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func writeFeatureRow(w *csv.Writer, label string, row []float64) error {
	cells := make([]string, 0, len(row)+1)
	cells = append(cells, label)
	for _, v := range row {
		cells = append(cells, strconv.FormatFloat(v, 'f', 6, 64))
	}
	return w.Write(cells)
}
