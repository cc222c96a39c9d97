package pgf_test

import (
	"io"
	"testing"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/texforge/texforge/pgf"
)

// benchmarkRender renders a figure of subplots charts with points samples
// each and discards the output.
func benchmarkRender(b *testing.B, subplots, points int, opts ...pgf.Option) {
	charts := make([]*chart.Chart, subplots)
	for i := range charts {
		xs := make([]float64, points)
		ys := make([]float64, points)
		for k := 0; k < points; k++ {
			xs[k] = float64(k)
			ys[k] = float64(k % 17)
		}
		charts[i] = &chart.Chart{Series: []chart.Series{chart.ContinuousSeries{
			Name:    "series",
			XValues: xs,
			YValues: ys,
			Style:   chart.Style{StrokeWidth: 1},
		}}}
	}
	fig := pgf.NewFigure(1, subplots, charts...)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pgf.Render(io.Discard, fig, opts...); err != nil {
			b.Fatalf("Render failed: %v", err)
		}
	}
}

// BenchmarkRender_SingleSmall renders one subplot with 100 samples.
func BenchmarkRender_SingleSmall(b *testing.B) {
	benchmarkRender(b, 1, 100)
}

// BenchmarkRender_GroupMedium renders four subplots with 1000 samples each.
func BenchmarkRender_GroupMedium(b *testing.B) {
	benchmarkRender(b, 4, 1000)
}

// BenchmarkRender_GroupMediumStyled adds color and line-style retention.
func BenchmarkRender_GroupMediumStyled(b *testing.B) {
	benchmarkRender(b, 4, 1000, pgf.WithColors(), pgf.WithLineStyles())
}
