package matrix_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/texforge/texforge/grid"
	"github.com/texforge/texforge/matrix"
)

// identity is the 2×2 grid used by the shape-oriented tests.
var identity = grid.Grid{{1, 0}, {0, 1}}

// TestFormat_IdentityBracket verifies the bmatrix rendering of the 2×2
// identity: two rows "1 & 0" and "0 & 1", each terminated by the row
// separator.
func TestFormat_IdentityBracket(t *testing.T) {
	s, err := matrix.Format(identity, matrix.WithEnvironment(matrix.Bracket))
	require.NoError(t, err, "identity grid must format")

	want := "\\begin{bmatrix}\n1 & 0\\\\\n0 & 1\\\\\n\\end{bmatrix}\n"
	assert.Equal(t, want, s, "bmatrix identity rendering")
}

// TestFormat_DefaultEnvironment ensures the default wraps in bmatrix.
func TestFormat_DefaultEnvironment(t *testing.T) {
	s, err := matrix.Format(identity)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(s, "\\begin{bmatrix}"), "default environment is bmatrix")
}

// TestFormat_AllEnvironments checks every enumerated bracket style maps
// to its LaTeX environment name.
func TestFormat_AllEnvironments(t *testing.T) {
	cases := map[matrix.Environment]string{
		matrix.Plain:      "matrix",
		matrix.Paren:      "pmatrix",
		matrix.Bracket:    "bmatrix",
		matrix.Brace:      "Bmatrix",
		matrix.Pipe:       "vmatrix",
		matrix.DoublePipe: "Vmatrix",
	}
	for env, name := range cases {
		s, err := matrix.Format(identity, matrix.WithEnvironment(env))
		require.NoError(t, err)
		assert.Contains(t, s, "\\begin{"+name+"}", "environment name for %v", env)
		assert.Contains(t, s, "\\end{"+name+"}", "closing name for %v", env)
	}
}

// TestFormat_ShapeProperties verifies the structural property: output row
// count equals grid row count, and each output row has one cell per column.
func TestFormat_ShapeProperties(t *testing.T) {
	g := grid.Grid{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}, {10, 11, 12}}

	s, err := matrix.Format(g)
	require.NoError(t, err)

	rows := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	body := rows[1 : len(rows)-1] // strip \begin / \end lines
	require.Len(t, body, len(g), "one output row per grid row")
	for i, line := range body {
		cells := strings.Split(strings.TrimSuffix(line, "\\\\"), " & ")
		assert.Len(t, cells, len(g[i]), "one cell per column in row %d", i)
	}
}

// TestFormat_RoundTrip re-parses the emitted body and recovers the
// original values (format stability).
func TestFormat_RoundTrip(t *testing.T) {
	g := grid.Grid{{1.5, -2}, {0.25, 42}}

	s, err := matrix.Format(g)
	require.NoError(t, err)

	got := parseBody(t, s)
	assert.Equal(t, g, got, "re-parsed values must equal the input grid")
}

// TestFormat_FixedCells verifies the fixed-point option: width 5 with two
// decimals right-aligns every cell.
func TestFormat_FixedCells(t *testing.T) {
	g := grid.Grid{{1, -2.5}}

	s, err := matrix.Format(g, matrix.WithDecimals(2), matrix.WithCellWidth(5))
	require.NoError(t, err)
	assert.Contains(t, s, " 1.00 & -2.50\\\\", "fixed-point aligned cells")
}

// TestFormat_EmptyGrid ensures empty input fails with grid.ErrEmptyGrid
// and produces no output.
func TestFormat_EmptyGrid(t *testing.T) {
	s, err := matrix.Format(nil)
	assert.ErrorIs(t, err, grid.ErrEmptyGrid, "nil grid must error")
	assert.Empty(t, s, "no partial output on validation failure")
}

// TestFormat_Jagged ensures a non-rectangular grid fails with
// grid.ErrNonRectangular and produces no output.
func TestFormat_Jagged(t *testing.T) {
	s, err := matrix.Format(grid.Grid{{1, 2}, {3}})
	assert.ErrorIs(t, err, grid.ErrNonRectangular, "jagged grid must error")
	assert.Empty(t, s, "no partial output on validation failure")
}

// TestRender_WriterReceivesFormat checks Render writes exactly what
// Format returns.
func TestRender_WriterReceivesFormat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, matrix.Render(&buf, identity))

	want, err := matrix.Format(identity)
	require.NoError(t, err)
	assert.Equal(t, want, buf.String())
}

// TestSave_AppendsExtension verifies Save writes one file and appends
// ".tex" when the name has no accepted extension.
func TestSave_AppendsExtension(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, matrix.Save(filepath.Join(dir, "eye"), identity))

	data, err := os.ReadFile(filepath.Join(dir, "eye.tex"))
	require.NoError(t, err, "file must exist under the defaulted name")
	want, _ := matrix.Format(identity)
	assert.Equal(t, want, string(data))
}

// TestSave_KeepsKnownExtension verifies .tab names are kept verbatim.
func TestSave_KeepsKnownExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "eye.tab")

	require.NoError(t, matrix.Save(path, identity))

	_, err := os.Stat(path)
	assert.NoError(t, err, "existing extension must be kept")
}

// parseBody splits an emitted matrix environment back into numeric rows.
func parseBody(t *testing.T, s string) grid.Grid {
	t.Helper()

	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	var g grid.Grid
	for _, line := range lines[1 : len(lines)-1] {
		var row []float64
		for _, cell := range strings.Split(strings.TrimSuffix(line, "\\\\"), " & ") {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			require.NoError(t, err, "cell %q must parse", cell)
			row = append(row, v)
		}
		g = append(g, row)
	}

	return g
}
