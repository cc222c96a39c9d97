package tabular

import "fmt"

// ColumnStyle selects the siunitx column declaration used for every data
// column. Formatting directives live in the preamble; cells stay as-is.
type ColumnStyle int

const (
	// ColumnFixed declares S[table-auto-round,table-omit-exponent,
	// fixed-exponent=E] columns: siunitx rounds and pins the exponent.
	ColumnFixed ColumnStyle = iota
	// ColumnAuto declares bare S columns and leaves all numeric
	// presentation to the document's siunitx setup.
	ColumnAuto
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultColumnStyle pins exponents, the behavior documented by most
	// measurement tables.
	DefaultColumnStyle = ColumnFixed

	// DefaultExponent is the fixed exponent declared under ColumnFixed.
	DefaultExponent = 0
)

const panicColumnStyleRange = "tabular: WithColumnStyle: unknown column style"

// Option mutates the formatter configuration. Constructors panic only on
// nonsensical values (programmer error).
type Option func(*options)

type options struct {
	style       ColumnStyle
	exponent    int
	rowHeadings []string
}

// WithColumnStyle selects the per-column siunitx declaration.
// Panics when style is outside the enumerated set.
func WithColumnStyle(style ColumnStyle) Option {
	if style < ColumnFixed || style > ColumnAuto {
		panic(panicColumnStyleRange)
	}

	return func(o *options) { o.style = style }
}

// WithExponent pins the fixed exponent declared for every data column.
// Only observed under ColumnFixed.
func WithExponent(e int) Option {
	return func(o *options) { o.exponent = e }
}

// WithRowHeadings prepends an X label column; rh supplies one label per
// data row and is validated against the grid's row count at format time.
func WithRowHeadings(rh []string) Option {
	return func(o *options) { o.rowHeadings = rh }
}

// columnSpec returns the declaration emitted once per data column.
func (o options) columnSpec() string {
	if o.style == ColumnAuto {
		return "S"
	}

	return fmt.Sprintf("S[table-auto-round,table-omit-exponent,fixed-exponent=%d]", o.exponent)
}

func gatherOptions(opts ...Option) options {
	o := options{style: DefaultColumnStyle, exponent: DefaultExponent}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
