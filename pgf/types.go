package pgf

import chart "github.com/wcharczuk/go-chart/v2"

// Figure is a row-major subplot grid of rendered charts. The exporter
// reads the charts and never mutates them; lifecycle stays with the
// caller. Zero Rows/Cols default to a single row seating every chart.
type Figure struct {
	Rows, Cols int
	Charts     []*chart.Chart
}

// NewFigure arranges charts into a rows×cols subplot grid.
func NewFigure(rows, cols int, charts ...*chart.Chart) *Figure {
	return &Figure{Rows: rows, Cols: cols, Charts: charts}
}

// Single wraps one chart as a 1×1 figure.
func Single(c *chart.Chart) *Figure {
	return &Figure{Rows: 1, Cols: 1, Charts: []*chart.Chart{c}}
}

// geometry resolves the effective grid, defaulting to one row.
func (f *Figure) geometry() (rows, cols int) {
	rows, cols = f.Rows, f.Cols
	if rows == 0 && cols == 0 {
		rows, cols = 1, len(f.Charts)
	}

	return rows, cols
}

// SkippedSeries records one artifact the exporter could not represent.
type SkippedSeries struct {
	Subplot int    // index into Figure.Charts
	Series  string // series name, may be empty
	Reason  string
}

// Report summarizes an export: what was drawn and what was skipped.
type Report struct {
	Subplots int
	Series   int    // plotted series across all subplots
	Colors   int    // \definecolor entries emitted
	Path     string // file written by Export, empty under Render
	Skipped  []SkippedSeries
}
