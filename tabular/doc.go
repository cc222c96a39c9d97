// Package tabular renders a rectangular numeric grid as a siunitx-powered
// LaTeX tabularx environment.
//
// 🚀 What it does
//
//	Format emits a \begin{tabularx}{\linewidth}{...} block with one
//	siunitx S column per data column, booktabs rules, an optional
//	uppercased heading row and one line per data row:
//
//	  s, err := tabular.Format(grid.Grid{{1, 2, 3}, {4, 5, 6}}, []string{"A", "B", "c"})
//	  // \begin{tabularx}{\linewidth}{S[...]S[...]S[...]} \toprule
//	  // {A} & {B} & {C}\\ \midrule
//	  // 1 & 2 & 3\\
//	  // 4 & 5 & 6\\
//	  // \bottomrule
//	  // \end{tabularx}
//
// Cells are emitted as-is; rounding and exponent handling are declared
// once per column in the preamble, where siunitx applies them at typeset
// time. ColumnFixed (the default) declares
// S[table-auto-round,table-omit-exponent,fixed-exponent=E] with E set by
// WithExponent; ColumnAuto declares a bare S column.
//
// WithRowHeadings prepends an X label column fed from a per-row string
// slice. Heading and row-heading lengths are validated against the grid
// before any output: ErrHeadingCount / ErrRowHeadingCount.
//
// The emitted fragment relies on the LaTeX packages tabularx, booktabs
// and siunitx.
package tabular
