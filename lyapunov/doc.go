// Package lyapunov solves the real continuous Lyapunov matrix equation
//
//	AᵀX + XA = −Q
//
// for the unique symmetric X, given a real square A and a real symmetric Q.
//
// 🚀 Why this equation?
//
//	It is the backbone of Lyapunov stability analysis: for a stable
//	linear system ẋ = Ax, the solution X of AᵀX + XA = −Q with Q ≻ 0
//	is the quadratic Lyapunov certificate V(x) = xᵀXx.  The same solve
//	produces controllability and observability Gramians.
//
// Algorithm outline (Bartels–Stewart style):
//
//  1. Validate: A and Q square, identical dimension n (Q symmetry is a
//     caller contract, only its upper triangle is trusted).
//  2. Reduce: A = U·T·Uᵀ via schur.Real, T quasi-upper-triangular with
//     1×1/2×2 diagonal blocks; transform Q' = Uᵀ·Q·U.
//  3. Block back-substitution on Tᵀ·X' + X'·T = −Q', peeling the leading
//     diagonal block at each step:
//     – 1×1 block t: closed form x = −q / (2t).
//     – 2×2 block: the symmetric unknown has 3 independent entries
//     (x11, x12, x22); expand the block equation component-wise into a
//     3×3 linear system and solve it in closed form.
//     – off-diagonal strip: forward-substitute trailing blocks through
//     small Sylvester systems Tⱼⱼᵀ·W + W·Tᵦᵦ = −R (Kronecker form,
//     at most 4×4); the mirror blocks are filled by symmetry.
//     – fold the solved strip back into the trailing right-hand side.
//  4. Transform back: X = U·X'·Uᵀ.
//
// Uniqueness: a unique solution exists iff no two eigenvalues of A sum
// to zero (λᵢ + λⱼ ≠ 0 for all i, j, including i = j, so λᵢ = 0 also
// disqualifies). Violations surface lazily, block by block, as
// ErrSingularSystem: a near-zero 1×1 pivot, a near-zero real part of a
// conjugate pair, or a near-singular strip system. The first violation
// aborts the solve; no partial result is returned.
//
// Complexity:
//
//   - Time:   O(n³) reduction + O(n³) back-substitution
//   - Memory: O(n²); each call owns its working matrices, concurrent
//     calls on independent inputs are safe
//
// Errors:
//   - ErrInvalidArgument  — non-square or mismatched shapes, bad options.
//   - ErrNumericalFailure — the Schur reduction did not converge.
//   - ErrSingularSystem   — the spectral uniqueness condition is violated.
//
// Example usage:
//
//	X, err := lyapunov.Solve(A, Q, nil)
//	if err != nil {
//	    // errors.Is against the three sentinels above
//	}
//
// The 1×1 and 2×2 diagonal kernels are exported as Solve1By1 and
// Solve2By2 for direct numerical testing.
package lyapunov
