// Package schur reduces a real square matrix to real Schur form and
// classifies its quasi-triangular block structure.
//
// 🚀 What is the real Schur form?
//
//	Every real square matrix A admits an orthogonal similarity
//	A = U·T·Uᵀ where U is orthogonal (UᵀU = I) and T is
//	quasi-upper-triangular: upper triangular except for 2×2 bumps on
//	the diagonal.  Each 1×1 diagonal block carries a real eigenvalue;
//	each 2×2 block carries a complex-conjugate pair a±bi without ever
//	leaving real arithmetic.
//
// ✨ What the package provides:
//   - Decomposer — a capability interface {Decompose(A) → (T, U)} so
//     downstream solvers can be tested against hand-constructed
//     decompositions, independent of floating-point behavior
//   - Real — the production Decomposer, built on gonum's native LAPACK
//     port (Dgehrd → Dorghr → Dhseqr)
//   - Decomposition.Blocks — the ordered 1×1/2×2 diagonal partition,
//     classified by scanning the sub-diagonal of T against a relative
//     tolerance
//   - Decomposition.Eigenvalues — the spectrum of A, read off the
//     diagonal blocks at no extra cost
//
// ⚙️ Usage:
//
//	dec, err := schur.Real{}.Decompose(a)
//	if err != nil {
//	    // ErrNotSquare, ErrEmptyMatrix or ErrNotConverged
//	}
//	blocks := dec.Blocks(1e-10)
//
// Performance:
//
//   - Time:   O(n³) (Hessenberg reduction + shifted QR iteration)
//   - Memory: O(n²)
//
// See lyapunov for the block solver that consumes this partition.
package schur
