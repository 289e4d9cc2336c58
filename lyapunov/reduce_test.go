package lyapunov_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/jc211/windrake/lyapunov"
	"github.com/jc211/windrake/schur"
)

// stubDecomposer hands the block solver a fixed, hand-constructed (T, U)
// pair, making its behavior independent of the production reduction's
// floating-point details.
type stubDecomposer struct {
	dec *schur.Decomposition
	err error
}

func (s stubDecomposer) Decompose(mat.Matrix) (*schur.Decomposition, error) {
	return s.dec, s.err
}

// identity returns I_n as a dense matrix.
func identity(n int) *mat.Dense {
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}

	return m
}

// TestSolve_StubIdentityBasis drives the block solver with U = I and a
// hand-built quasi-triangular T (2×2 complex-pair block above a 1×1
// block, with coupling entries). With U = I the facade's transforms are
// no-ops, so the verified residual is exactly the reduced solver's work.
func TestSolve_StubIdentityBasis(t *testing.T) {
	tm := mat.NewDense(3, 3, []float64{
		-0.5, 1.0, 0.3,
		-1.0, -0.5, 0.2,
		0, 0, -2.0,
	})
	q := mat.NewDense(3, 3, []float64{2, 0.1, 0.4, 0.1, 1, -0.2, 0.4, -0.2, 3})

	opts := lyapunov.DefaultOptions()
	opts.Decomposer = stubDecomposer{dec: &schur.Decomposition{T: tm, U: identity(3)}}

	x, err := lyapunov.Solve(tm, q, &opts)
	require.NoError(t, err)

	assertMatEqual(t, x.T(), x, 5*kTol)

	var lhs, xa, negQ mat.Dense
	lhs.Mul(tm.T(), x)
	xa.Mul(x, tm)
	lhs.Add(&lhs, &xa)
	negQ.Scale(-1, q)
	assertMatEqual(t, &negQ, &lhs, 5*kTol*mat.Norm(q, 2))
}

// TestSolve_StubPermutedBasis uses a permutation matrix as U, checking
// that the facade's basis transforms compose correctly around the block
// solver: A = U·T·Uᵀ, and the residual is verified against A itself.
func TestSolve_StubPermutedBasis(t *testing.T) {
	tm := mat.NewDense(3, 3, []float64{
		-1, 0.7, -0.4,
		0, -2, 0.9,
		0, 0, -3,
	})
	// Cyclic permutation (0→1→2→0); orthogonal, UᵀU = I.
	u := mat.NewDense(3, 3, []float64{0, 0, 1, 1, 0, 0, 0, 1, 0})

	var a mat.Dense
	a.Product(u, tm, u.T())
	q := mat.NewDense(3, 3, []float64{1, 0, 0, 0, 2, 0, 0, 0, 3})

	opts := lyapunov.DefaultOptions()
	opts.Decomposer = stubDecomposer{dec: &schur.Decomposition{T: tm, U: u}}

	x, err := lyapunov.Solve(&a, q, &opts)
	require.NoError(t, err)

	var lhs, xa, negQ mat.Dense
	lhs.Mul(a.T(), x)
	xa.Mul(x, &a)
	lhs.Add(&lhs, &xa)
	negQ.Scale(-1, q)
	assertMatEqual(t, &negQ, &lhs, 5*kTol*mat.Norm(q, 2))
}

// TestSolve_DecomposerFailure verifies that a failed reduction surfaces
// as ErrNumericalFailure with the cause preserved in the chain.
func TestSolve_DecomposerFailure(t *testing.T) {
	a := mat.NewDense(3, 3, []float64{-1, 0, 0, 0, -2, 0, 0, 0, -3})
	q := identity(3)

	opts := lyapunov.DefaultOptions()
	opts.Decomposer = stubDecomposer{err: schur.ErrNotConverged}

	_, err := lyapunov.Solve(a, q, &opts)
	assert.ErrorIs(t, err, lyapunov.ErrNumericalFailure)
	assert.ErrorIs(t, err, schur.ErrNotConverged, "cause must stay in the chain")
}

// TestSolve_StubSingularStrip builds a T whose first two 1×1 blocks carry
// eigenvalues −1 and 1, which sum to zero across blocks: the off-diagonal
// strip solve, not a diagonal kernel, must report the uniqueness violation.
func TestSolve_StubSingularStrip(t *testing.T) {
	tm := mat.NewDense(3, 3, []float64{-1, 0.5, 0, 0, 1, 0, 0, 0, -2})

	opts := lyapunov.DefaultOptions()
	opts.Decomposer = stubDecomposer{dec: &schur.Decomposition{T: tm, U: identity(3)}}

	_, err := lyapunov.Solve(tm, identity(3), &opts)
	assert.ErrorIs(t, err, lyapunov.ErrSingularSystem)
}
