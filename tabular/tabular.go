package tabular

import (
	"io"
	"os"
	"strings"

	"github.com/texforge/texforge/grid"
)

const cellSep = " & "

// Format renders g as a tabularx environment string.
//
// headings may be nil; when supplied its length must equal the grid's
// column count and the header row carries each heading braced and
// uppercased, followed by a \midrule. Data rows emit each cell as-is
// (numeric presentation is a column-level siunitx concern, see Option).
//
// Validation happens before any output: grid shape errors from the grid
// package, ErrHeadingCount and ErrRowHeadingCount for length mismatches.
func Format(g grid.Grid, headings []string, opts ...Option) (string, error) {
	rows, cols, err := grid.Dims(g)
	if err != nil {
		return "", err
	}
	if headings != nil && len(headings) != cols {
		return "", ErrHeadingCount
	}
	o := gatherOptions(opts...)
	if o.rowHeadings != nil && len(o.rowHeadings) != rows {
		return "", ErrRowHeadingCount
	}

	var b strings.Builder
	b.WriteString("\\begin{tabularx}{\\linewidth}{")
	if o.rowHeadings != nil {
		b.WriteString("X")
	}
	spec := o.columnSpec()
	for j := 0; j < cols; j++ {
		b.WriteString(spec)
	}
	b.WriteString("} \\toprule\n")

	if headings != nil {
		if o.rowHeadings != nil {
			b.WriteString(cellSep)
		}
		for j, h := range headings {
			if j > 0 {
				b.WriteString(cellSep)
			}
			b.WriteString("{" + strings.ToUpper(h) + "}")
		}
		b.WriteString("\\\\ \\midrule\n")
	}

	for i, row := range g {
		if o.rowHeadings != nil {
			b.WriteString(o.rowHeadings[i] + cellSep)
		}
		for j, v := range row {
			if j > 0 {
				b.WriteString(cellSep)
			}
			b.WriteString(grid.Cell(v))
		}
		b.WriteString("\\\\\n")
	}

	b.WriteString("\\bottomrule\n\\end{tabularx}\n")

	return b.String(), nil
}

// Render formats g and writes the result to w. The input is validated
// before any byte is written.
func Render(w io.Writer, g grid.Grid, headings []string, opts ...Option) error {
	s, err := Format(g, headings, opts...)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)

	return err
}

// Save formats g and writes the result to a single file at path.
// Unless path already ends in .tex, .tab or .dat, ".tab" is appended.
func Save(path string, g grid.Grid, headings []string, opts ...Option) error {
	s, err := Format(g, headings, opts...)
	if err != nil {
		return err
	}

	return os.WriteFile(ensureExt(path, ".tab"), []byte(s), 0o644)
}

func ensureExt(path, def string) string {
	for _, ext := range []string{".tex", ".tab", ".dat"} {
		if strings.HasSuffix(path, ext) {
			return path
		}
	}

	return path + def
}
