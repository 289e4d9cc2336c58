// Package windrake solves the real continuous Lyapunov matrix equation
// AᵀX + XA = −Q, the workhorse of stability analysis for linear
// dynamical systems.
//
// 🚀 What is windrake?
//
//	A small, deterministic numerical library that brings together:
//		• schur/    — real Schur reduction A = U·T·Uᵀ with 1×1/2×2 block
//		  classification, built on gonum's native LAPACK port
//		• lyapunov/ — a Bartels–Stewart style block solver: closed-form
//		  1×1 and 2×2 diagonal kernels, small-Sylvester back-substitution
//		  for off-diagonal blocks, and the Solve facade
//
// ✨ Why choose windrake?
//
//   - Explicit errors – invalid shapes, non-convergence and spectral
//     non-uniqueness each surface as a distinct sentinel error
//   - No hidden state – every solve is a pure function of its inputs;
//     concurrent solves on independent inputs need no locking
//   - Pure Go – gonum's LAPACK routines, no cgo
//   - Tunable – the classification/singularity tolerance is an explicit
//     option, not a buried constant
//
// Quick example:
//
//	A := mat.NewDense(2, 2, []float64{-1, 0, 0, -2})
//	Q := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
//	X, err := lyapunov.Solve(A, Q, nil)
//
// X then satisfies AᵀX + XA = −Q and is symmetric by construction.
//
// Dive into lyapunov/doc.go for the algorithm walkthrough and the
// uniqueness condition (no two eigenvalues of A may sum to zero).
//
//	go get github.com/jc211/windrake
package windrake
