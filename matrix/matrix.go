package matrix

import (
	"io"
	"os"
	"strings"

	"github.com/texforge/texforge/grid"
)

// Structural tokens of the emitted environment.
const (
	cellSep  = " & "
	rowSep   = "\\\\\n"
	beginFmt = "\\begin{"
	endFmt   = "\\end{"
)

// Format renders g as a LaTeX matrix environment string.
//
// Cells are joined by " & " and each row is terminated by "\\". By default
// cells use minimal as-is rendering; WithDecimals/WithCellWidth switch to
// aligned fixed-point columns.
//
// Returns grid.ErrEmptyGrid or grid.ErrNonRectangular before any output
// when g is malformed.
//
// Example:
//
//	s, err := matrix.Format(grid.Grid{{1, 0}, {0, 1}}, matrix.WithEnvironment(matrix.Paren))
func Format(g grid.Grid, opts ...Option) (string, error) {
	if err := grid.Validate(g); err != nil {
		return "", err
	}
	o := gatherOptions(opts...)

	var b strings.Builder
	b.WriteString(beginFmt + o.env.String() + "}\n")
	for _, row := range g {
		for j, v := range row {
			if j > 0 {
				b.WriteString(cellSep)
			}
			if o.fixed {
				b.WriteString(grid.FixedCell(v, o.width, o.decimals))
			} else {
				b.WriteString(grid.Cell(v))
			}
		}
		b.WriteString(rowSep)
	}
	b.WriteString(endFmt + o.env.String() + "}\n")

	return b.String(), nil
}

// Render formats g and writes the result to w. The grid is validated
// before any byte is written.
func Render(w io.Writer, g grid.Grid, opts ...Option) error {
	s, err := Format(g, opts...)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)

	return err
}

// Save formats g and writes the result to a single file at path.
// Unless path already ends in .tex, .tab or .dat, ".tex" is appended.
func Save(path string, g grid.Grid, opts ...Option) error {
	s, err := Format(g, opts...)
	if err != nil {
		return err
	}

	return os.WriteFile(ensureExt(path, ".tex"), []byte(s), 0o644)
}

// ensureExt appends def unless path carries one of the accepted
// typeset-fragment extensions already.
func ensureExt(path, def string) string {
	for _, ext := range []string{".tex", ".tab", ".dat"} {
		if strings.HasSuffix(path, ext) {
			return path
		}
	}

	return path + def
}
