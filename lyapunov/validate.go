// Package lyapunov: shape validation.
// The validator runs before any numerical work and has no side effects.
// Q symmetry is deliberately NOT verified here (caller contract, documented
// on Solve): the solver reads only the upper triangle of Q, so a
// non-symmetric Q degrades to its symmetrized reading rather than producing
// an inconsistent system.

package lyapunov

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// validateShapes checks that a and q are both square and of identical
// dimension n ≥ 1, returning n.
// Complexity: O(1) — dimensions only, no element access.
func validateShapes(a, q mat.Matrix) (int, error) {
	ar, ac := a.Dims()
	if ar != ac {
		return 0, fmt.Errorf("A is %d×%d, must be square: %w", ar, ac, ErrInvalidArgument)
	}
	qr, qc := q.Dims()
	if qr != qc {
		return 0, fmt.Errorf("Q is %d×%d, must be square: %w", qr, qc, ErrInvalidArgument)
	}
	if ar != qr {
		return 0, fmt.Errorf("A is %d×%d but Q is %d×%d, dimensions must match: %w",
			ar, ac, qr, qc, ErrInvalidArgument)
	}
	if ar == 0 {
		return 0, fmt.Errorf("A and Q are empty: %w", ErrInvalidArgument)
	}

	return ar, nil
}
