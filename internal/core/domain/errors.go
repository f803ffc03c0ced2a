package domain

import "errors"

// Domain errors represent unit table failures.
// These are distinct from I/O errors, which are returned as-is.
var (
	// ErrInvalidTable indicates a unit table is malformed or incomplete.
	ErrInvalidTable = errors.New("invalid unit table")

	// ErrUnknownMeasure indicates a table names a measure the library
	// has no tag for.
	ErrUnknownMeasure = errors.New("unknown measure")

	// ErrDuplicateUnit indicates two units share a name or a label.
	ErrDuplicateUnit = errors.New("duplicate unit")

	// ErrInvalidUnit indicates a single unit entry is unusable.
	ErrInvalidUnit = errors.New("invalid unit")
)
