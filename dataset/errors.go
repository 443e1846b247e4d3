// Package dataset: sentinel error set for ingestion. Callers match via
// errors.Is; line context is attached with %w wrapping at the CSV
// boundary only.
package dataset

import "errors"

var (
	// ErrHeader is returned when a CSV header does not match the
	// documented column set, in order.
	ErrHeader = errors.New("dataset: unexpected CSV header")

	// ErrColumns is returned for a record with the wrong column count.
	ErrColumns = errors.New("dataset: wrong number of columns")

	// ErrBadNumber is returned when an intensity or similarity cell
	// does not parse as a real number.
	ErrBadNumber = errors.New("dataset: cell is not a number")

	// ErrDuplicateRow is returned when the same (level, replicate,
	// entity) triple appears more than once in the data input.
	ErrDuplicateRow = errors.New("dataset: duplicate (level, replicate, entity) row")

	// ErrNoRows is returned when the data input holds a header only.
	ErrNoRows = errors.New("dataset: no measurement rows")
)
