package pgf

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/texforge/texforge/grid"
)

// optIndent matches the pgfplots option indentation used throughout the
// emitted document.
const optIndent = "    "

// header is the first line of every emitted file.
const header = "%% Generated by texforge.\n"

// Render walks fig and writes the complete TikZ document to w.
//
// Validation failures (nil figure, nil chart, empty figure, undersized
// subplot grid) return a nil Report before any byte is written. Series
// without numeric values are skipped and recorded; when any were skipped
// the full document is still written and the returned error wraps
// ErrUnsupportedSeries.
func Render(w io.Writer, fig *Figure, opts ...Option) (*Report, error) {
	if fig == nil {
		return nil, ErrNilFigure
	}
	if len(fig.Charts) == 0 {
		return nil, ErrEmptyFigure
	}
	for _, c := range fig.Charts {
		if c == nil {
			return nil, ErrNilChart
		}
	}
	rows, cols := fig.geometry()
	if rows*cols < len(fig.Charts) {
		return nil, ErrBadGeometry
	}
	o := gatherOptions(opts...)

	rep := &Report{Subplots: len(fig.Charts)}
	colors := newColorTable()
	group := len(fig.Charts) > 1

	// Color definitions must precede the plots that reference them, so
	// the body is assembled first and the preamble written afterwards.
	var body bytes.Buffer
	if group {
		fmt.Fprintf(&body, "\\begin{groupplot}[group style={group size=%d by %d},\n", cols, rows)
		writeGlobalOptions(&body, o)
		body.WriteString(optIndent + "]\n")
	} else {
		body.WriteString("\\begin{axis}[\n")
		writeGlobalOptions(&body, o)
	}

	for i, c := range fig.Charts {
		if group {
			body.WriteString("\\nextgroupplot[\n")
		}
		writeAxisOptions(&body, c, o)
		writeLegend(&body, c)

		plotted := 0
		for _, s := range c.Series {
			vp, supported := s.(chart.ValuesProvider)
			if !supported {
				rep.Skipped = append(rep.Skipped, SkippedSeries{
					Subplot: i,
					Series:  s.GetName(),
					Reason:  "series exposes no numeric values",
				})

				continue
			}
			writeSeries(&body, vp, s.GetStyle(), s.GetName(), plotted, o, colors)
			plotted++
			rep.Series++
		}
	}

	if group {
		body.WriteString("\\end{groupplot}\n")
	} else {
		body.WriteString("\\end{axis}\n")
	}

	var out bytes.Buffer
	out.WriteString(header)
	out.WriteString("\\begin{tikzpicture}\n")
	for _, def := range colors.definitions() {
		out.WriteString(def + "\n")
	}
	out.Write(body.Bytes())
	out.WriteString("\\end{tikzpicture}\n")

	if _, err := w.Write(out.Bytes()); err != nil {
		return rep, err
	}
	rep.Colors = len(colors.order)
	if n := len(rep.Skipped); n > 0 {
		return rep, fmt.Errorf("%d of %d series skipped: %w", n, rep.Series+n, ErrUnsupportedSeries)
	}

	return rep, nil
}

// Export renders fig and writes exactly one file named after name,
// appending ".tikz" unless name already ends in .tikz, .pgf or .tex.
// On skip-and-continue the partial file is still written and the error
// wraps ErrUnsupportedSeries; Report.Path names the written file.
func Export(fig *Figure, name string, opts ...Option) (*Report, error) {
	var buf bytes.Buffer
	rep, err := Render(&buf, fig, opts...)
	if rep == nil {
		return nil, err
	}

	path := ensureExt(name)
	if werr := os.WriteFile(path, buf.Bytes(), 0o644); werr != nil {
		return rep, werr
	}
	rep.Path = path

	return rep, err
}

// writeGlobalOptions emits the options shared by every subplot.
func writeGlobalOptions(b *bytes.Buffer, o options) {
	b.WriteString(optIndent + "width=\\figurewidth,height=\\figureheight,\n")
	b.WriteString(optIndent + "at={(0\\figurewidth,0\\figureheight)},\n")
	// let nan/inf samples break the line instead of aborting the typeset
	b.WriteString(optIndent + "unbounded coords=jump,\n")
	if o.figureOptions != "" {
		b.WriteString(optIndent + o.figureOptions + ",\n")
	}
}

// writeAxisOptions emits per-subplot options (title, labels, limits) and
// closes the option bracket.
func writeAxisOptions(b *bytes.Buffer, c *chart.Chart, o options) {
	if c.Title != "" {
		fmt.Fprintf(b, "%stitle = {%s},\n", optIndent, c.Title)
	}
	ext := dataExtents(c)
	if c.XAxis.Name != "" {
		fmt.Fprintf(b, "%sxlabel = {%s},\n", optIndent, c.XAxis.Name)
	}
	if min, max, ok := axisRange(c.XAxis.Range, ext.xmin, ext.xmax); ok {
		fmt.Fprintf(b, "%sxmin=%s, xmax=%s,\n", optIndent, grid.Cell(min), grid.Cell(max))
	}
	if c.YAxis.Name != "" {
		fmt.Fprintf(b, "%sylabel = {%s},\n", optIndent, c.YAxis.Name)
	}
	if min, max, ok := axisRange(c.YAxis.Range, ext.ymin, ext.ymax); ok {
		fmt.Fprintf(b, "%symin=%s, ymax=%s,\n", optIndent, grid.Cell(min), grid.Cell(max))
	}
	if extra := o.subplotOptions[c.Title]; extra != "" {
		b.WriteString(optIndent + extra + ",\n")
	}
	b.WriteString(optIndent + "]\n")
}

// writeLegend emits a \legend line when any representable series is named.
func writeLegend(b *bytes.Buffer, c *chart.Chart) {
	var names []string
	named := false
	for _, s := range c.Series {
		if _, supported := s.(chart.ValuesProvider); !supported {
			continue
		}
		names = append(names, s.GetName())
		if s.GetName() != "" {
			named = true
		}
	}
	if named {
		fmt.Fprintf(b, "\\legend{%s}\n", strings.Join(names, ","))
	}
}

// writeSeries emits one \addplot with its style attributes and data block.
func writeSeries(b *bytes.Buffer, vp chart.ValuesProvider, st chart.Style, name string, idx int, o options, colors *colorTable) {
	var parts []string
	if o.retainLineStyle {
		parts = append(parts, lineStyle(st))
	}
	parts = append(parts, plotColor(st, o, colors))
	if o.retainMarkers {
		parts = append(parts, markStyle(st))
	}
	if extra := o.seriesOptions[name]; extra != "" {
		parts = append(parts, extra)
	}
	fmt.Fprintf(b, "\\addplot +[%s]\n", strings.Join(parts, ","))

	if o.coordinates {
		b.WriteString("coordinates{%\n")
		for k := 0; k < vp.Len(); k++ {
			x, y := vp.GetValues(k)
			fmt.Fprintf(b, "  (%s,%s)\n", grid.Cell(x), grid.Cell(y))
		}
	} else {
		b.WriteString("table{%\n")
		for k := 0; k < vp.Len(); k++ {
			x, y := vp.GetValues(k)
			fmt.Fprintf(b, "  %s %s\n", grid.Cell(x), grid.Cell(y))
		}
	}
	b.WriteString("};\n")

	if o.labelPrefix != "" {
		fmt.Fprintf(b, "\\label{pgfplot:%s%d}\n", o.labelPrefix, idx)
	}
}

// plotColor resolves the color attribute of one plot: the interned chart
// color under retention, the neutral default otherwise.
func plotColor(st chart.Style, o options, colors *colorTable) string {
	if !o.retainColor {
		return DefaultColor
	}
	c, ok := seriesColor(st)
	if !ok {
		return DefaultColor
	}

	return colors.name(c)
}

// extents is the finite bounding box of a chart's representable data.
type extents struct {
	xmin, xmax, ymin, ymax float64
}

// dataExtents scans every representable series for finite coordinate
// bounds. Missing data leaves the Inf sentinels in place; axisRange
// treats an inverted interval as absent.
func dataExtents(c *chart.Chart) extents {
	ext := extents{
		xmin: math.Inf(1), xmax: math.Inf(-1),
		ymin: math.Inf(1), ymax: math.Inf(-1),
	}
	for _, s := range c.Series {
		vp, supported := s.(chart.ValuesProvider)
		if !supported {
			continue
		}
		for k := 0; k < vp.Len(); k++ {
			x, y := vp.GetValues(k)
			if isFinite(x) {
				ext.xmin = math.Min(ext.xmin, x)
				ext.xmax = math.Max(ext.xmax, x)
			}
			if isFinite(y) {
				ext.ymin = math.Min(ext.ymin, y)
				ext.ymax = math.Max(ext.ymax, y)
			}
		}
	}

	return ext
}

// axisRange resolves one axis interval: an explicit chart range wins,
// data bounds otherwise. ok is false when neither exists.
func axisRange(rng chart.Range, dataMin, dataMax float64) (min, max float64, ok bool) {
	if rng != nil && !rng.IsZero() {
		return rng.GetMin(), rng.GetMax(), true
	}
	if dataMin > dataMax {
		return 0, 0, false
	}

	return dataMin, dataMax, true
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ensureExt appends ".tikz" unless name carries an accepted extension.
func ensureExt(name string) string {
	for _, ext := range []string{".tikz", ".pgf", ".tex"} {
		if strings.HasSuffix(name, ext) {
			return name
		}
	}

	return name + ".tikz"
}
