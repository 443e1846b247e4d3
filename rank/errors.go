// Package rank: sentinel error set. Callers match via errors.Is.
package rank

import "errors"

var (
	// ErrUnknownEntity is returned when a ground-truth name is absent
	// from the data input.
	ErrUnknownEntity = errors.New("rank: unknown truth entity")

	// ErrEmptyTruth is returned for a truth file with no names.
	ErrEmptyTruth = errors.New("rank: empty truth set")

	// ErrLengthMismatch is returned when per-pair score vectors differ
	// in length.
	ErrLengthMismatch = errors.New("rank: score vectors differ in length")
)
