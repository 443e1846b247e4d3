// Package cosine: sentinel error set. Callers match via errors.Is.
package cosine

import "errors"

var (
	// ErrBadSteps is returned when the resample/permutation count is
	// below one; a zero-trial statistic would divide by zero.
	ErrBadSteps = errors.New("cosine: steps must be >= 1")

	// ErrBadConfidence is returned for a confidence level outside (0,1).
	ErrBadConfidence = errors.New("cosine: confidence level must be in (0,1)")

	// ErrNilMatrix is returned when either edge matrix is nil.
	ErrNilMatrix = errors.New("cosine: nil edge matrix")
)
