// Package commands: sentinel error set for CLI configuration defects.
package commands

import "errors"

var (
	// ErrUnknownMethod is returned for a --method outside the known set.
	ErrUnknownMethod = errors.New("commands: unknown method")

	// ErrBadNaNPolicy is returned for a --nanPolicy outside {zero, propagate}.
	ErrBadNaNPolicy = errors.New("commands: unknown NaN policy")

	// ErrBadRestart is returned for --walkerRestart outside (0,1).
	ErrBadRestart = errors.New("commands: walkerRestart must be in (0,1)")

	// ErrBadSteps is returned for --steps below one.
	ErrBadSteps = errors.New("commands: steps must be >= 1")
)
