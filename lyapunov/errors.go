// Package lyapunov: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// lyapunov package. All entry points MUST return these sentinels and tests
// MUST check them via errors.Is. Context is added by wrapping with
// fmt.Errorf("ctx: %w", ErrX) at the outer boundary — callers still match
// with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// shape/option violations -> reduction failure -> singularity.

package lyapunov

import "errors"

var (
	// ErrInvalidArgument is returned when A or Q is not square, their
	// dimensions differ, either is empty, or the options are malformed.
	// Detected before any numerical work; never recovered.
	ErrInvalidArgument = errors.New("lyapunov: invalid argument")

	// ErrNumericalFailure is returned when the Schur reduction of A does
	// not converge. Surfaced as-is and never retried: the reduction is
	// deterministic, identical inputs cannot suddenly succeed.
	ErrNumericalFailure = errors.New("lyapunov: schur reduction failed")

	// ErrSingularSystem is returned when the spectral uniqueness condition
	// is violated: some eigenvalue pair of A sums to ≈0 (λᵢ ≈ 0 counts,
	// pairing with itself). Detected lazily during block back-substitution;
	// the first violation aborts the solve, no partial result is returned.
	ErrSingularSystem = errors.New("lyapunov: solution is not unique (eigenvalue pair sums to zero)")
)
