// Package schur: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the schur
// package. All entry points MUST return these sentinels and tests MUST check
// them via errors.Is. No routine panics on user-triggered error conditions.

package schur

import "errors"

var (
	// ErrNotSquare signals that the input matrix is not square.
	// Decompose validates shape before any numerical work.
	ErrNotSquare = errors.New("schur: matrix is not square")

	// ErrEmptyMatrix signals a 0×0 input; the decomposition is defined
	// only for n ≥ 1.
	ErrEmptyMatrix = errors.New("schur: matrix is empty")

	// ErrNotConverged indicates that the QR iteration failed to reduce
	// one or more eigenvalues within the iteration budget. The input is
	// returned untouched; retrying with identical inputs cannot succeed.
	ErrNotConverged = errors.New("schur: QR iteration did not converge")
)
