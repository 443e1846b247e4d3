// Package vertexsim: sentinel error set. Reference errors are fatal per
// the ingestion contract; callers match via errors.Is.
package vertexsim

import "errors"

var (
	// ErrUnknownLevel is returned when a vertex row references a level
	// name absent from the data input.
	ErrUnknownLevel = errors.New("vertexsim: unknown level")

	// ErrUnknownEntity is returned when a vertex row references an
	// entity absent from the named level's data.
	ErrUnknownEntity = errors.New("vertexsim: unknown entity")

	// ErrSameLevel is returned when a vertex row pairs a level with
	// itself; vertex similarities are inter-level by definition.
	ErrSameLevel = errors.New("vertexsim: vertex similarity within one level")
)
