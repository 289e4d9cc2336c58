// Package lyapunov: block back-substitution on the reduced equation.
// With A = U·T·Uᵀ and Q' = Uᵀ·Q·U, the transformed equation is
// Tᵀ·X' + X'·T = −Q'. Because T is quasi-upper-triangular, peeling the
// leading diagonal block decouples it from the rest: the block solves in
// closed form, the off-diagonal strip follows by forward substitution over
// the trailing blocks, and the strip's contribution folds into the trailing
// right-hand side, shrinking the problem by one block per step.

package lyapunov

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/jc211/windrake/schur"
)

// solveReduced solves Tᵀ·X' + X'·T = −Q' over the ordered block partition.
//
// Partitioning T = [Tᵦᵦ u; 0 T̄] at the leading block Tᵦᵦ (size p ∈ {1,2})
// splits the equation into three pieces, resolved in order:
//
//  1. Diagonal:   Tᵦᵦᵀ·Xᵦᵦ + Xᵦᵦ·Tᵦᵦ = −Qᵦᵦ           (closed-form kernel)
//  2. Strip:      T̄ᵀ·W + W·Tᵦᵦ = −(Q₂₁ + uᵀ·Xᵦᵦ)      (forward substitution:
//     block row j of the strip needs only strip rows above it, so each
//     trailing block reduces to a Sylvester system Tⱼⱼᵀ·Wⱼ + Wⱼ·Tᵦᵦ = −Rⱼ
//     of size ≤ 4, solved in Kronecker form; Xᵦⱼ = Wⱼᵀ by symmetry)
//  3. Fold:       Q₂₂ ← Q₂₂ + uᵀ·X₁₂ + X₂₁·u           (the trailing
//     equation becomes a pure Lyapunov problem again)
//
// q is a working copy owned by the caller and is mutated by step 3.
// The singularity guards in steps 1–2 realize the lazy uniqueness check:
// a Sylvester system between blocks j and b is singular exactly when some
// λⱼ + λᵦ ≈ 0, which covers every cross-block eigenvalue pairing.
//
// Complexity: O(n³) time (dominated by step 3), O(n²) memory.
func solveReduced(t, q *mat.Dense, blocks []schur.Block, tol float64) (*mat.Dense, error) {
	n, _ := t.Dims()
	scale := math.Max(1, mat.Norm(t, math.Inf(1)))
	x := mat.NewDense(n, n, nil)

	for bi, b := range blocks {
		s, p := b.Start, b.Size

		// Step 1: leading diagonal block.
		if p == 1 {
			xv, err := solve1By1(t.At(s, s), q.At(s, s), tol*scale)
			if err != nil {
				return nil, err
			}
			x.Set(s, s, xv)
		} else {
			x1, x2, x3, err := solve2By2(
				t.At(s, s), t.At(s, s+1), t.At(s+1, s), t.At(s+1, s+1),
				q.At(s, s), q.At(s, s+1), q.At(s+1, s+1),
				tol, scale)
			if err != nil {
				return nil, err
			}
			x.Set(s, s, x1)
			x.Set(s, s+1, x2)
			x.Set(s+1, s, x2)
			x.Set(s+1, s+1, x3)
		}

		r := s + p
		if r >= n {
			break
		}

		// Step 2: off-diagonal strip, top trailing block downward.
		for _, tb := range blocks[bi+1:] {
			if err := solveStripBlock(t, q, x, s, p, tb, tol*scale); err != nil {
				return nil, err
			}
		}

		// Step 3: fold the solved strip into the trailing right-hand side.
		// uᵀ·X₁₂ + X₂₁·u is symmetric (X₁₂ = X₂₁ᵀ), so Q stays symmetric.
		for i := r; i < n; i++ {
			for j := r; j < n; j++ {
				sum := 0.0
				for k := 0; k < p; k++ {
					sum += t.At(s+k, i)*x.At(s+k, j) + x.At(i, s+k)*t.At(s+k, j)
				}
				q.Set(i, j, q.At(i, j)+sum)
			}
		}
	}

	return x, nil
}

// solveStripBlock resolves one off-diagonal block of the strip below the
// leading diagonal block at [s, s+p): the unknown W = X'[js:js+jp, s:s+p]
// satisfies the small Sylvester equation
//
//	Tⱼⱼᵀ·W + W·Tᵦᵦ = −R,  Rⱼᵢ,ᵨᵢ = Q'[js+ji, s+pi] + Σ T[g, js+ji]·X'[g, s+pi]
//
// where g runs over the diagonal block rows and all strip rows already
// substituted (a single contiguous range [s, js)). The system is solved in
// Kronecker form, (I⊗Tⱼⱼᵀ + Tᵦᵦᵀ⊗I)·vec(W) = vec(−R), at most 4×4.
// The mirror block X'[s:s+p, js:js+jp] = Wᵀ enforces symmetry by
// construction rather than by re-derivation.
func solveStripBlock(t, q, x *mat.Dense, s, p int, tb schur.Block, thresh float64) error {
	js, jp := tb.Start, tb.Size
	m := jp * p // unknowns, column-major vec: index pi*jp + ji

	rhs := make([]float64, m)
	for pi := 0; pi < p; pi++ {
		for ji := 0; ji < jp; ji++ {
			sum := q.At(js+ji, s+pi)
			for g := s; g < js; g++ {
				sum += t.At(g, js+ji) * x.At(g, s+pi)
			}
			rhs[pi*jp+ji] = -sum
		}
	}

	// I⊗Tⱼⱼᵀ: p identical jp×jp diagonal blocks.
	mm := make([]float64, m*m)
	for pi := 0; pi < p; pi++ {
		for ri := 0; ri < jp; ri++ {
			for ci := 0; ci < jp; ci++ {
				mm[(pi*jp+ri)*m+(pi*jp+ci)] += t.At(js+ci, js+ri)
			}
		}
	}
	// Tᵦᵦᵀ⊗I: scalar Tᵦᵦ[c, r] smeared along a jp-diagonal.
	for ri := 0; ri < p; ri++ {
		for ci := 0; ci < p; ci++ {
			v := t.At(s+ci, s+ri)
			for i := 0; i < jp; i++ {
				mm[(ri*jp+i)*m+(ci*jp+i)] += v
			}
		}
	}

	if err := solveLinear(m, mm, rhs, thresh); err != nil {
		return err
	}

	for pi := 0; pi < p; pi++ {
		for ji := 0; ji < jp; ji++ {
			v := rhs[pi*jp+ji]
			x.Set(js+ji, s+pi, v)
			x.Set(s+pi, js+ji, v)
		}
	}

	return nil
}

// solveLinear solves the n×n row-major system a·x = b in place by Gaussian
// elimination with partial pivoting; the solution overwrites b. A pivot
// below thresh reports ErrSingularSystem: in the Sylvester systems above,
// the pivots collapse exactly when an eigenvalue pair sum approaches zero.
// n ≤ 4 throughout this package; the dense cubic cost is constant.
func solveLinear(n int, a, b []float64, thresh float64) error {
	for k := 0; k < n; k++ {
		piv := k
		for i := k + 1; i < n; i++ {
			if math.Abs(a[i*n+k]) > math.Abs(a[piv*n+k]) {
				piv = i
			}
		}
		if math.Abs(a[piv*n+k]) < thresh {
			return fmt.Errorf("pivot %g below tolerance %g: %w", a[piv*n+k], thresh, ErrSingularSystem)
		}
		if piv != k {
			for j := k; j < n; j++ {
				a[k*n+j], a[piv*n+j] = a[piv*n+j], a[k*n+j]
			}
			b[k], b[piv] = b[piv], b[k]
		}
		for i := k + 1; i < n; i++ {
			f := a[i*n+k] / a[k*n+k]
			if f == 0 {
				continue
			}
			for j := k + 1; j < n; j++ {
				a[i*n+j] -= f * a[k*n+j]
			}
			a[i*n+k] = 0
			b[i] -= f * b[k]
		}
	}

	for i := n - 1; i >= 0; i-- {
		s := b[i]
		for j := i + 1; j < n; j++ {
			s -= a[i*n+j] * b[j]
		}
		b[i] = s / a[i*n+i]
	}

	return nil
}
