package pgf

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultRetainColor substitutes one neutral color for every plot.
	DefaultRetainColor = false

	// DefaultRetainLineStyle draws every plot with the pgfplots default
	// line style rather than the chart's dash pattern.
	DefaultRetainLineStyle = false

	// DefaultRetainMarkers keeps chart markers; most papers want the
	// marks a plot was proofed with.
	DefaultRetainMarkers = true

	// DefaultFigureOptions is appended to every axis environment.
	DefaultFigureOptions = "grid"

	// DefaultColor is the neutral color substituted when color
	// retention is off or a series carries no color at all.
	DefaultColor = "black"
)

// Option mutates the exporter configuration. Safe to apply repeatedly.
type Option func(*options)

type options struct {
	retainColor     bool
	retainLineStyle bool
	retainMarkers   bool
	coordinates     bool // coordinate blocks instead of table blocks
	figureOptions   string
	subplotOptions  map[string]string // keyed by chart title
	seriesOptions   map[string]string // keyed by series name
	labelPrefix     string
}

// WithColors copies each series' RGB color into the emitted style
// attributes via \definecolor preamble entries.
func WithColors() Option {
	return func(o *options) { o.retainColor = true }
}

// WithLineStyles maps each series' stroke dash pattern onto the matching
// pgf line style instead of the default solid stroke.
func WithLineStyles() Option {
	return func(o *options) { o.retainLineStyle = true }
}

// WithoutMarkers drops marker attributes from every plot.
func WithoutMarkers() Option {
	return func(o *options) { o.retainMarkers = false }
}

// WithCoordinates emits coordinates{(x,y) ...} data blocks instead of
// table{x y ...} blocks, for documents where pgfplots table input
// misbehaves.
func WithCoordinates() Option {
	return func(o *options) { o.coordinates = true }
}

// WithFigureOptions replaces the extra axis options appended to every
// subplot (default "grid"). An empty string emits none.
func WithFigureOptions(s string) Option {
	return func(o *options) { o.figureOptions = s }
}

// WithSubplotOptions appends raw pgfplots options to individual subplots,
// keyed by chart title.
func WithSubplotOptions(m map[string]string) Option {
	return func(o *options) { o.subplotOptions = m }
}

// WithSeriesOptions appends raw pgfplots options to individual plots,
// keyed by series name.
func WithSeriesOptions(m map[string]string) Option {
	return func(o *options) { o.seriesOptions = m }
}

// WithLabels emits \label{pgfplot:<prefix><n>} after each plot so the
// document can \ref individual lines.
func WithLabels(prefix string) Option {
	return func(o *options) { o.labelPrefix = prefix }
}

func gatherOptions(opts ...Option) options {
	o := options{
		retainColor:     DefaultRetainColor,
		retainLineStyle: DefaultRetainLineStyle,
		retainMarkers:   DefaultRetainMarkers,
		figureOptions:   DefaultFigureOptions,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
