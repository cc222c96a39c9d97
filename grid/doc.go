// Package grid defines the rectangular numeric data model shared by the
// texforge formatters, together with its validation and cell rendering.
//
// A Grid is a row-major [][]float64. Formatters require it to be non-empty
// and rectangular; Validate reports violations as sentinel errors before
// any output is produced:
//
//   - ErrEmptyGrid: the grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//
// Cell turns a value into its minimal LaTeX-safe decimal form ("as-is"
// emission); FixedCell renders with a fixed width and decimal count for
// aligned matrix columns.
package grid
