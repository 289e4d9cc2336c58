package schur

import (
	"math"

	"gonum.org/v1/gonum/lapack"
	lapackgonum "gonum.org/v1/gonum/lapack/gonum"
	"gonum.org/v1/gonum/mat"
)

// Block is a half-open diagonal index range [Start, Start+Size) of the
// quasi-triangular factor T. Size is 1 for a real eigenvalue and 2 for a
// complex-conjugate pair stored as a real 2×2 bump.
type Block struct {
	Start int // first diagonal index covered by the block
	Size  int // 1 or 2
}

// Decomposition is the result of a real Schur reduction A = U·T·Uᵀ.
// T is quasi-upper-triangular, U is orthogonal. Both are owned by the
// Decomposition and never aliased to caller storage.
type Decomposition struct {
	T *mat.Dense // quasi-upper-triangular factor, n×n
	U *mat.Dense // orthogonal factor, n×n

	wr, wi []float64 // eigenvalues as reported by the QR iteration
}

// Decomposer is the capability consumed by downstream solvers.
// Implementations must return T and U such that T = Uᵀ·A·U with U
// orthogonal, or an error; they must not mutate a.
type Decomposer interface {
	Decompose(a mat.Matrix) (*Decomposition, error)
}

// Real computes the real Schur decomposition via gonum's native LAPACK
// port. The zero value is ready to use; Real is stateless and safe for
// concurrent use.
//
// Pipeline (all row-major, all O(n³)):
//
//	Stage 1 (Dgehrd): reduce A to upper Hessenberg form H = Q₁ᵀ·A·Q₁.
//	Stage 2 (Dorghr): accumulate the orthogonal factor Q₁ from the
//	                  stored Householder reflectors.
//	Stage 3 (Dhseqr): shifted QR iteration H = Q₂·T·Q₂ᵀ, accumulating
//	                  U = Q₁·Q₂ in place.
//
// Errors:
//   - ErrNotSquare, ErrEmptyMatrix — shape violations, checked first.
//   - ErrNotConverged — Dhseqr reported unconverged eigenvalues.
type Real struct{}

// Decompose reduces a to real Schur form. The input is copied, never
// mutated. Complexity: O(n³) time, O(n²) memory.
func (Real) Decompose(a mat.Matrix) (*Decomposition, error) {
	n, c := a.Dims()
	if n == 0 {
		return nil, ErrEmptyMatrix
	}
	if n != c {
		return nil, ErrNotSquare
	}

	// Row-major working copy of A; becomes H, then T.
	h := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			h[i*n+j] = a.At(i, j)
		}
	}

	impl := lapackgonum.Implementation{}
	tau := make([]float64, max(n-1, 0))

	// Hessenberg reduction, workspace-queried then executed.
	work := make([]float64, 1)
	impl.Dgehrd(n, 0, n-1, h, n, tau, work, -1)
	work = make([]float64, int(work[0]))
	impl.Dgehrd(n, 0, n-1, h, n, tau, work, len(work))

	// Accumulate Q₁ from the reflectors stored below the sub-diagonal.
	u := make([]float64, n*n)
	copy(u, h)
	impl.Dorghr(n, 0, n-1, u, n, tau, work[:1], -1)
	if lwork := int(work[0]); lwork > len(work) {
		work = make([]float64, lwork)
	}
	impl.Dorghr(n, 0, n-1, u, n, tau, work, len(work))

	// Dhseqr references only the Hessenberg part of h; clear the
	// reflector storage so the returned T carries true zeros.
	for i := 2; i < n; i++ {
		for j := 0; j < i-1; j++ {
			h[i*n+j] = 0
		}
	}

	wr := make([]float64, n)
	wi := make([]float64, n)
	impl.Dhseqr(lapack.EigenvaluesAndSchur, lapack.SchurOrig,
		n, 0, n-1, h, n, wr, wi, u, n, work[:1], -1)
	if lwork := int(work[0]); lwork > len(work) {
		work = make([]float64, lwork)
	}
	unconverged := impl.Dhseqr(lapack.EigenvaluesAndSchur, lapack.SchurOrig,
		n, 0, n-1, h, n, wr, wi, u, n, work, len(work))
	if unconverged > 0 {
		return nil, ErrNotConverged
	}

	return &Decomposition{
		T:  mat.NewDense(n, n, h),
		U:  mat.NewDense(n, n, u),
		wr: wr,
		wi: wi,
	}, nil
}

// Blocks scans the sub-diagonal of T and returns the ordered diagonal
// block partition, top-left to bottom-right.
//
// A sub-diagonal entry is negligible when |T[i+1,i]| ≤ tol·max(1, ‖T‖∞);
// a negligible entry closes a 1×1 block, a significant one opens a 2×2
// block (complex-conjugate pair). The QR iteration deflates converged
// real eigenvalues to exact sub-diagonal zeros, so the classification is
// insensitive to the exact tol for well-separated spectra; near-degenerate
// sub-diagonals trade false-2×2 risk against false-1×1 risk through tol.
//
// Complexity: O(n) scan.
func (d *Decomposition) Blocks(tol float64) []Block {
	n, _ := d.T.Dims()
	thresh := tol * math.Max(1, mat.Norm(d.T, math.Inf(1)))

	blocks := make([]Block, 0, n)
	for i := 0; i < n; {
		if i+1 < n && math.Abs(d.T.At(i+1, i)) > thresh {
			blocks = append(blocks, Block{Start: i, Size: 2})
			i += 2
			continue
		}
		blocks = append(blocks, Block{Start: i, Size: 1})
		i++
	}

	return blocks
}

// Eigenvalues returns the spectrum of the decomposed matrix, in the
// order the diagonal blocks appear in T. Conjugate pairs are adjacent.
// Complexity: O(n).
func (d *Decomposition) Eigenvalues() []complex128 {
	eig := make([]complex128, len(d.wr))
	for i := range d.wr {
		eig[i] = complex(d.wr[i], d.wi[i])
	}

	return eig
}
