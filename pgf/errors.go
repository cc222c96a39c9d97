package pgf

import "errors"

var (
	// ErrNilFigure indicates a nil *Figure was passed to the exporter.
	ErrNilFigure = errors.New("pgf: figure is nil")
	// ErrEmptyFigure indicates the figure holds no charts.
	ErrEmptyFigure = errors.New("pgf: figure must contain at least one chart")
	// ErrNilChart indicates one of the figure's subplot slots is nil.
	ErrNilChart = errors.New("pgf: figure contains a nil chart")
	// ErrBadGeometry indicates Rows×Cols cannot seat every chart.
	ErrBadGeometry = errors.New("pgf: subplot grid smaller than chart count")
	// ErrUnsupportedSeries accompanies partial output: one or more series
	// could not be represented as drawing primitives and were skipped.
	// The skip report names each one.
	ErrUnsupportedSeries = errors.New("pgf: unsupported series skipped")
)
