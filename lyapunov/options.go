// Package lyapunov: solver configuration.
// A single relative tolerance governs every numerical decision the solver
// makes: 1×1-vs-2×2 block classification in the reduction, and every
// singularity check in the diagonal kernels and strip solves. Keeping one
// knob keeps the two failure modes (false 2×2 classification vs false
// singularity) on the same scale.

package lyapunov

import (
	"fmt"

	"github.com/jc211/windrake/schur"
)

// DefaultTolerance is the relative tolerance applied when Options is nil.
// Each check scales it by the magnitude of the quantity being tested
// (max(1, ‖T‖) and its powers), so it behaves as a relative bound near
// unit scale and as an absolute floor below it. The value is calibrated
// so that an eigenvalue within 1e-11 of zero, or an eigenvalue pair
// summing to 5e-11, is rejected at unit matrix scale.
const DefaultTolerance = 1e-10

// Options configures a Lyapunov solve.
//
// Tolerance  – relative tolerance for block classification and singularity
//
//	detection. Must lie in (0, 1). Smaller values accept spectra
//	closer to the uniqueness boundary at the cost of amplified
//	rounding in the back-substitution.
//
// Decomposer – the real-Schur capability used to reduce A. Nil selects
//
//	schur.Real{}. Tests inject stub decomposers here to drive
//	the block solver with hand-constructed (T, U) pairs.
type Options struct {
	Tolerance  float64
	Decomposer schur.Decomposer
}

// DefaultOptions returns the canonical solver configuration.
func DefaultOptions() Options {
	return Options{Tolerance: DefaultTolerance}
}

// validate rejects malformed options before any numerical work.
func (o Options) validate() error {
	if o.Tolerance <= 0 || o.Tolerance >= 1 {
		return fmt.Errorf("tolerance %g must be in (0, 1): %w", o.Tolerance, ErrInvalidArgument)
	}

	return nil
}

// decomposer resolves the configured Schur capability.
func (o Options) decomposer() schur.Decomposer {
	if o.Decomposer != nil {
		return o.Decomposer
	}

	return schur.Real{}
}
