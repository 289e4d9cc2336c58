// Package lyapunov: closed-form diagonal kernels.
// The two kernels solve the innermost subproblems of the block
// back-substitution: a 1×1 and a 2×2 continuous Lyapunov equation. Both are
// exported for direct numerical testing; the reduced solver calls the scalar
// cores directly.

package lyapunov

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Solve1By1 solves the scalar continuous Lyapunov equation
//
//	aᵀx + xa = −q  ⇒  2ax = −q  ⇒  x = −q / (2a)
//
// for 1×1 inputs. Fails with ErrSingularSystem when |2a| is below the
// default tolerance: a ≈ 0 means the sole eigenvalue pairs with itself to
// zero, violating the uniqueness condition.
// Complexity: O(1).
func Solve1By1(a, q mat.Matrix) (*mat.Dense, error) {
	if err := validateKernelShapes(a, q, 1); err != nil {
		return nil, err
	}
	t := a.At(0, 0)
	x, err := solve1By1(t, q.At(0, 0), DefaultTolerance*math.Max(1, math.Abs(t)))
	if err != nil {
		return nil, err
	}

	return mat.NewDense(1, 1, []float64{x}), nil
}

// Solve2By2 solves the 2×2 continuous Lyapunov equation AᵀX + XA = −Q for
// symmetric X. Only the upper triangle of Q is read (Q[1][0] may hold any
// value, including NaN). Fails with ErrSingularSystem when the eigenvalues
// of A violate the uniqueness condition: λ₁+λ₂ ≈ 0 or λᵢ ≈ 0, detected as
// tr(A)·det(A) ≈ 0 without forming the eigenvalues.
// Complexity: O(1).
func Solve2By2(a, q mat.Matrix) (*mat.Dense, error) {
	if err := validateKernelShapes(a, q, 2); err != nil {
		return nil, err
	}

	return solve2By2Dense(a, q, DefaultTolerance)
}

// validateKernelShapes checks that a and q are both exactly n×n.
func validateKernelShapes(a, q mat.Matrix, n int) error {
	if ar, ac := a.Dims(); ar != n || ac != n {
		return fmt.Errorf("A is %d×%d, kernel requires %d×%d: %w", ar, ac, n, n, ErrInvalidArgument)
	}
	if qr, qc := q.Dims(); qr != n || qc != n {
		return fmt.Errorf("Q is %d×%d, kernel requires %d×%d: %w", qr, qc, n, n, ErrInvalidArgument)
	}

	return nil
}

// solve1By1 is the scalar core: 2tx = −q, guarded by thresh (an already
// scaled absolute bound on |2t|).
func solve1By1(t, q, thresh float64) (float64, error) {
	d := 2 * t
	if math.Abs(d) < thresh {
		return 0, fmt.Errorf("diagonal entry %g is numerically zero: %w", t, ErrSingularSystem)
	}

	return -q / d, nil
}

// solve2By2 is the 2×2 core. The diagonal block is T = [a b; c d], the
// right-hand side is the symmetric Q = [q1 q2; q2 q3], and the symmetric
// unknown X = [x1 x2; x2 x3] has three independent entries. Expanding
// TᵀX + XT = −Q component-wise yields the 3×3 system
//
//	⎡2a    2c    0 ⎤ ⎡x1⎤   ⎡−q1⎤
//	⎢ b   a+d    c ⎥ ⎢x2⎥ = ⎢−q2⎥
//	⎣ 0    2b   2d ⎦ ⎣x3⎦   ⎣−q3⎦
//
// whose determinant is 4·tr(T)·det(T) = 8α(α²+β²) for eigenvalues α±βi:
// it vanishes exactly when the block's eigenvalue pair sums to zero
// (α = 0) or an eigenvalue is zero (real-pair blocks). The uniqueness
// check therefore tests |tr(T)·det(T)| against tol·scale³, cubing the
// characteristic magnitude to stay dimensionally consistent.
func solve2By2(a, b, c, d, q1, q2, q3, tol, scale float64) (x1, x2, x3 float64, err error) {
	if tr, det := a+d, a*d-b*c; math.Abs(tr*det) < tol*scale*scale*scale {
		return 0, 0, 0, fmt.Errorf("2×2 block has tr·det = %g: %w", tr*det, ErrSingularSystem)
	}

	m := []float64{
		2 * a, 2 * c, 0,
		b, a + d, c,
		0, 2 * b, 2 * d,
	}
	r := []float64{-q1, -q2, -q3}
	// The pivot guard is a backstop; the tr·det test above already maps
	// singularity onto the uniqueness condition.
	if err = solveLinear(3, m, r, tol*scale); err != nil {
		return 0, 0, 0, err
	}

	return r[0], r[1], r[2], nil
}

// solve2By2Dense adapts the scalar core to dense 2×2 operands, reading
// only the upper triangle of q and assembling the symmetric solution.
func solve2By2Dense(a, q mat.Matrix, tol float64) (*mat.Dense, error) {
	scale := 1.0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			scale = math.Max(scale, math.Abs(a.At(i, j)))
		}
	}
	x1, x2, x3, err := solve2By2(
		a.At(0, 0), a.At(0, 1), a.At(1, 0), a.At(1, 1),
		q.At(0, 0), q.At(0, 1), q.At(1, 1),
		tol, scale)
	if err != nil {
		return nil, err
	}

	return mat.NewDense(2, 2, []float64{x1, x2, x2, x3}), nil
}
