package pgf

import (
	"fmt"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Pgf line-style names a stroke dash pattern can map onto.
const (
	styleSolid      = "solid"
	styleDotted     = "dotted"
	styleDashed     = "dashed"
	styleDashDotted = "dashdotted"
	styleOnlyMarks  = "only marks"
)

// dottedMaxSegment separates dotted from dashed patterns: dash segments
// this short read as dots.
const dottedMaxSegment = 2.0

// lineStyle classifies a chart stroke into a pgf line style.
// A zero stroke width with visible dots is a marker-only series.
func lineStyle(st chart.Style) string {
	if st.StrokeWidth == 0 && st.DotWidth > 0 {
		return styleOnlyMarks
	}
	dash := st.StrokeDashArray
	switch {
	case len(dash) == 0:
		return styleSolid
	case len(dash) >= 4:
		return styleDashDotted
	case dash[0] <= dottedMaxSegment:
		return styleDotted
	default:
		return styleDashed
	}
}

// markStyle maps a chart dot setting onto a pgf mark attribute.
// Markerless series explicitly disable marks so cycle lists cannot
// reintroduce them.
func markStyle(st chart.Style) string {
	if st.DotWidth > 0 {
		return "mark=*"
	}

	return "no marks"
}

// seriesColor picks the visible color of a series: stroke first, dots as
// fallback. ok is false when the series carries no color at all.
func seriesColor(st chart.Style) (c drawing.Color, ok bool) {
	if !st.StrokeColor.IsZero() {
		return st.StrokeColor, true
	}
	if !st.DotColor.IsZero() {
		return st.DotColor, true
	}

	return drawing.Color{}, false
}

// colorTable interns colors in encounter order and names them color0,
// color1, … matching the emitted \definecolor preamble.
type colorTable struct {
	names map[drawing.Color]string
	order []drawing.Color
}

func newColorTable() *colorTable {
	return &colorTable{names: make(map[drawing.Color]string)}
}

// name returns the stable pgf color name for c, interning it on first use.
func (t *colorTable) name(c drawing.Color) string {
	if n, seen := t.names[c]; seen {
		return n
	}
	n := fmt.Sprintf("color%d", len(t.order))
	t.names[c] = n
	t.order = append(t.order, c)

	return n
}

// definitions renders the \definecolor preamble lines in intern order.
func (t *colorTable) definitions() []string {
	defs := make([]string, 0, len(t.order))
	for _, c := range t.order {
		defs = append(defs, fmt.Sprintf("\\definecolor{%s}{RGB}{%d,%d,%d}", t.names[c], c.R, c.G, c.B))
	}

	return defs
}
