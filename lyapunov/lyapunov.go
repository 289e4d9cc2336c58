package lyapunov

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Solve returns the unique symmetric solution X of the real continuous
// Lyapunov equation
//
//	AᵀX + XA = −Q
//
// given a real square A and a real symmetric Q of the same dimension.
// A nil opts selects DefaultOptions. Caller matrices are never mutated;
// the returned X is freshly allocated and symmetric by construction.
//
// Orchestration (all-or-nothing; nil result on any error):
//
//	Stage 1 (Validate): shape checks, before any numerical work.
//	Stage 2 (Reduce):   A = U·T·Uᵀ via the configured Decomposer;
//	                    1×1 and 2×2 inputs skip the reduction and go
//	                    straight to the closed-form kernels.
//	Stage 3 (Transform): Q' = Uᵀ·Q·U.
//	Stage 4 (BlockSolve): Tᵀ·X' + X'·T = −Q' by block back-substitution.
//	Stage 5 (Restore):  X = U·X'·Uᵀ.
//
// Errors:
//   - ErrInvalidArgument  — A or Q not square, dimensions mismatched,
//     empty inputs, or Tolerance outside (0, 1).
//   - ErrNumericalFailure — the Schur reduction did not converge.
//   - ErrSingularSystem   — some eigenvalue pair of A sums to ≈0
//     (λᵢ ≈ 0 included); the solution is not unique.
//
// Complexity: O(n³) time, O(n²) memory per call; no shared state, safe
// for concurrent calls on independent inputs.
func Solve(a, q mat.Matrix, opts *Options) (*mat.Dense, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	n, err := validateShapes(a, q)
	if err != nil {
		return nil, err
	}

	// Kernel-sized inputs need no reduction.
	switch n {
	case 1:
		t := a.At(0, 0)
		x, err := solve1By1(t, q.At(0, 0), o.Tolerance*math.Max(1, math.Abs(t)))
		if err != nil {
			return nil, err
		}

		return mat.NewDense(1, 1, []float64{x}), nil
	case 2:
		return solve2By2Dense(a, q, o.Tolerance)
	}

	dec, err := o.decomposer().Decompose(a)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNumericalFailure, err)
	}

	var qp mat.Dense
	qp.Product(dec.U.T(), q, dec.U)

	xp, err := solveReduced(dec.T, &qp, dec.Blocks(o.Tolerance), o.Tolerance)
	if err != nil {
		return nil, err
	}

	var x mat.Dense
	x.Product(dec.U, xp, dec.U.T())

	return &x, nil
}

// RealContinuousLyapunovEquation solves AᵀX + XA = −Q with default
// options. It is a thin alias of Solve carrying the equation's textbook
// name for discoverability.
func RealContinuousLyapunovEquation(a, q mat.Matrix) (*mat.Dense, error) {
	return Solve(a, q, nil)
}
