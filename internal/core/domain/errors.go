package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors. Note that the parser core
// is total and returns no errors; these surface only at the CLI, config,
// and watch boundaries.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")
)
