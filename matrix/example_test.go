package matrix_test

import (
	"fmt"

	"github.com/texforge/texforge/grid"
	"github.com/texforge/texforge/matrix"
)

// ExampleFormat renders the 2×2 identity in the default bmatrix
// environment — the fragment drops straight into a math display.
func ExampleFormat() {
	s, err := matrix.Format(grid.Grid{{1, 0}, {0, 1}})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Print(s)
	// Output:
	// \begin{bmatrix}
	// 1 & 0\\
	// 0 & 1\\
	// \end{bmatrix}
}

// ExampleFormat_paren renders a covariance-style matrix with parenthesis
// delimiters and two fixed decimals per cell.
func ExampleFormat_paren() {
	g := grid.Grid{{1.5, 0.25}, {0.25, 2}}

	s, err := matrix.Format(g,
		matrix.WithEnvironment(matrix.Paren),
		matrix.WithDecimals(2),
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Print(s)
	// Output:
	// \begin{pmatrix}
	//  1.50 &  0.25\\
	//  0.25 &  2.00\\
	// \end{pmatrix}
}
