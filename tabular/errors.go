package tabular

import "errors"

var (
	// ErrHeadingCount indicates the heading list length differs from the
	// grid's column count.
	ErrHeadingCount = errors.New("tabular: heading count must equal column count")
	// ErrRowHeadingCount indicates the row-heading list length differs
	// from the grid's row count.
	ErrRowHeadingCount = errors.New("tabular: row-heading count must equal row count")
)
