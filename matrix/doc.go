// Package matrix renders a rectangular numeric grid as a LaTeX matrix
// environment string.
//
// 🚀 What it does
//
//	Format wraps a grid.Grid in one of the standard matrix environments,
//	joining cells with " & " and terminating rows with "\\":
//
//	  s, err := matrix.Format(grid.Grid{{1, 0}, {0, 1}})
//	  // \begin{bmatrix}
//	  // 1 & 0\\
//	  // 0 & 1\\
//	  // \end{bmatrix}
//
// ⚙️ Configuration
//
//   - WithEnvironment selects the bracket style: Plain (matrix), Paren
//     (pmatrix), Bracket (bmatrix, the default), Brace (Bmatrix), Pipe
//     (vmatrix), DoublePipe (Vmatrix).
//   - WithDecimals / WithCellWidth switch cells from minimal as-is
//     rendering to fixed-point columns aligned to a common width.
//
// Validation is fail-fast: an empty or non-rectangular grid returns
// grid.ErrEmptyGrid / grid.ErrNonRectangular and no output.
//
// Render writes to an io.Writer; Save writes a single file, appending
// ".tex" unless the name already ends in .tex, .tab or .dat.
package matrix
