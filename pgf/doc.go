// Package pgf rewrites rendered go-chart figures as pgfplots/TikZ source,
// the vector figure format LaTeX typesets natively.
//
// 🚀 What it does
//
//	Export walks a Figure — a subplot grid of *chart.Chart values, read
//	read-only — and emits one .tikz file of drawing commands: an axis
//	environment for a single chart, a groupplot for several, one
//	\addplot per data series, axis labels, limits and legends.
//
//	  fig := pgf.NewFigure(1, 2, &left, &right)
//	  rep, err := pgf.Export(fig, "lambda_sweep", pgf.WithColors())
//
// ✨ Style retention
//
//   - WithColors copies each series' RGB stroke color into a
//     \definecolor preamble entry; without it every plot is drawn in one
//     neutral default color.
//   - WithLineStyles maps stroke dash arrays onto pgf line styles
//     (solid, dotted, dashed, dashdotted, only marks).
//   - Markers are kept by default (mark=* for dotted series);
//     WithoutMarkers suppresses them.
//
// Series that expose no numeric values (anything not implementing
// chart.ValuesProvider, e.g. annotation overlays) cannot be represented
// as drawing primitives. They are skipped, recorded in Report.Skipped,
// and the export finishes: the call returns partial output plus an error
// wrapping ErrUnsupportedSeries.
//
// The emitted fragment relies on the LaTeX packages pgfplots (with the
// groupplots library) and xcolor, and expects \figurewidth and
// \figureheight lengths to be defined by the including document.
package pgf
