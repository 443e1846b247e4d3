// Package ids: sentinel error set. All registry operations return these
// sentinels; callers match via errors.Is.
package ids

import "errors"

var (
	// ErrFrozen is returned by Intern after Freeze has been called.
	// The registry is immutable for the compute stages of a run.
	ErrFrozen = errors.New("ids: registry is frozen")

	// ErrUnknownIndex is returned by Lookup for an index outside the
	// populated range [0, Len).
	ErrUnknownIndex = errors.New("ids: unknown index")

	// ErrEmptyName is returned by Intern for the empty string; entity
	// names come from CSV cells and an empty cell is an input defect.
	ErrEmptyName = errors.New("ids: empty entity name")
)
