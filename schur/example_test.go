package schur_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/jc211/windrake/schur"
)

// ExampleReal_Decompose reduces a diagonal matrix, whose Schur form is
// itself: three real eigenvalues, three 1×1 blocks.
func ExampleReal_Decompose() {
	a := mat.NewDense(3, 3, []float64{-1, 0, 0, 0, -2, 0, 0, 0, -3})

	dec, err := schur.Real{}.Decompose(a)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	blocks := dec.Blocks(1e-10)
	fmt.Println("blocks:", len(blocks))
	for _, e := range dec.Eigenvalues() {
		fmt.Printf("λ = %.0f\n", real(e))
	}
	// Output:
	// blocks: 3
	// λ = -1
	// λ = -2
	// λ = -3
}
