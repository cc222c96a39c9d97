package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEnvironment wraps grids in bmatrix unless overridden.
	DefaultEnvironment = Bracket

	// DefaultDecimals is the fractional digit count used once fixed-point
	// rendering is requested via WithDecimals or WithCellWidth.
	DefaultDecimals = 0

	// defaultWidthPad is added to the decimal count to derive a cell width
	// when the caller requested fixed-point cells without an explicit width.
	defaultWidthPad = 3
)

// Internal panic messages (no magic strings).
const (
	panicDecimalsNegative = "matrix: WithDecimals: decimals must be >= 0"
	panicWidthTooSmall    = "matrix: WithCellWidth: width must be >= 1"
	panicEnvironmentRange = "matrix: WithEnvironment: unknown environment"
)

// Option mutates the formatter configuration. Safe to apply repeatedly.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*options)

// options stores the effective configuration after applying Option setters.
// Unexported to prevent external mutation; public entry points accept
// ...Option and resolve them via gatherOptions.
type options struct {
	env      Environment
	fixed    bool // fixed-point cells instead of minimal as-is rendering
	decimals int
	width    int // 0 ⇒ derive as decimals+defaultWidthPad
}

// WithEnvironment selects the matrix environment wrapping the grid.
// Panics when env is outside the enumerated set.
func WithEnvironment(env Environment) Option {
	if env < Plain || env > DoublePipe {
		panic(panicEnvironmentRange)
	}

	return func(o *options) { o.env = env }
}

// WithDecimals switches cells to fixed-point rendering with d fractional
// digits. Unless WithCellWidth is also given, the cell width defaults to
// d+3 so single-digit magnitudes stay aligned. Panics when d < 0.
func WithDecimals(d int) Option {
	if d < 0 {
		panic(panicDecimalsNegative)
	}

	return func(o *options) {
		o.fixed = true
		o.decimals = d
	}
}

// WithCellWidth right-aligns every fixed-point cell to width w runs.
// Implies fixed-point rendering. Panics when w < 1.
func WithCellWidth(w int) Option {
	if w < 1 {
		panic(panicWidthTooSmall)
	}

	return func(o *options) {
		o.fixed = true
		o.width = w
	}
}

// gatherOptions applies setters over defaults and resolves the derived
// cell width.
func gatherOptions(opts ...Option) options {
	o := options{env: DefaultEnvironment, decimals: DefaultDecimals}
	for _, opt := range opts {
		opt(&o)
	}
	if o.fixed && o.width == 0 {
		o.width = o.decimals + defaultWidthPad
	}

	return o
}
