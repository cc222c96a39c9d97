package grid

import (
	"fmt"
	"math"
	"strconv"
)

// Grid is a row-major rectangular block of numeric values.
// It is plain caller-owned data; no formatter retains or mutates it.
type Grid [][]float64

// Dims returns the row and column counts of g after validating shape.
// Returns ErrEmptyGrid if g has no rows or no columns,
// ErrNonRectangular if any row length differs from the first.
// Complexity: O(rows).
func Dims(g Grid) (rows, cols int, err error) {
	if len(g) == 0 || len(g[0]) == 0 {
		return 0, 0, ErrEmptyGrid
	}
	rows, cols = len(g), len(g[0])
	for _, row := range g {
		if len(row) != cols {
			return 0, 0, ErrNonRectangular
		}
	}

	return rows, cols, nil
}

// Validate reports whether g is a valid non-empty rectangular grid.
// It is Dims without the dimensions, for callers that only gate on shape.
func Validate(g Grid) error {
	_, _, err := Dims(g)

	return err
}

// Cell renders v in its minimal decimal form: integers without a decimal
// point, everything else with the fewest digits that round-trip.
// Non-finite values render as nan / inf / -inf so downstream tooling
// (pgfplots "unbounded coords=jump") recognizes them.
func Cell(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	return strconv.FormatFloat(v, 'g', -1, 64)
}

// FixedCell renders v right-aligned in width runs with decimals fractional
// digits, the aligned-column style used inside matrix environments.
func FixedCell(v float64, width, decimals int) string {
	return fmt.Sprintf("%*.*f", width, decimals, v)
}
