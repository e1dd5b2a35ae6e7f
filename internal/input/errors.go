package input

import "errors"

// Validation errors. The messages are shown to the operator verbatim.
var (
	ErrInvalidInput = errors.New("Invalid input")
	ErrEmpty        = errors.New("Array is empty")
	ErrTooLarge     = errors.New("Array is too large (max 100 elements)")
)
