// Package walker: sentinel error set. Callers match via errors.Is.
package walker

import "errors"

var (
	// ErrBadRestart is returned for a restart probability outside (0,1).
	ErrBadRestart = errors.New("walker: restart probability must be in (0,1)")

	// ErrBadSteps is returned for a step count below one.
	ErrBadSteps = errors.New("walker: steps must be >= 1")

	// ErrNilMatrix is returned when either edge matrix is nil.
	ErrNilMatrix = errors.New("walker: nil edge matrix")

	// ErrEigenFailed is returned when the dominant-eigenvector path does
	// not converge; power iteration is the fallback-free alternative at
	// larger sizes, so this only surfaces on small degenerate inputs.
	ErrEigenFailed = errors.New("walker: eigen decomposition failed")
)
