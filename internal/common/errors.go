package common

import "errors"

// Business logic errors
var (
	// General errors
	ErrNotFound = errors.New("resource not found")

	// Listing errors
	ErrUnknownKind = errors.New("unknown record kind")

	// Validation errors
	ErrInvalidInput = errors.New("invalid input")
)
