package matrix

// Environment selects the LaTeX matrix environment wrapping the grid.
//
//   - Plain      — matrix   (no delimiters)
//   - Paren      — pmatrix  ( … )
//   - Bracket    — bmatrix  [ … ]
//   - Brace      — Bmatrix  { … }
//   - Pipe       — vmatrix  | … |   (determinant bars)
//   - DoublePipe — Vmatrix  ‖ … ‖  (norm bars)
type Environment int

const (
	// Plain renders the undelimited "matrix" environment.
	Plain Environment = iota
	// Paren renders "pmatrix", parenthesis delimiters.
	Paren
	// Bracket renders "bmatrix", square-bracket delimiters.
	Bracket
	// Brace renders "Bmatrix", curly-brace delimiters.
	Brace
	// Pipe renders "vmatrix", single vertical bars.
	Pipe
	// DoublePipe renders "Vmatrix", double vertical bars.
	DoublePipe
)

// String returns the LaTeX environment name. Unknown values fall back to
// the default environment name.
func (e Environment) String() string {
	switch e {
	case Plain:
		return "matrix"
	case Paren:
		return "pmatrix"
	case Bracket:
		return "bmatrix"
	case Brace:
		return "Bmatrix"
	case Pipe:
		return "vmatrix"
	case DoublePipe:
		return "Vmatrix"
	}

	return Bracket.String()
}
