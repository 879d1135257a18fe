package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// Arithmetic Errors.

	// ErrDivisionByZero indicates a non-absorbed value was divided by zero.
	// Only a complete number whose real and imaginary parts are both zero
	// can be divided by zero; everything else fails with this error.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrUnsupportedOperand indicates an operator received an operand it
	// cannot combine with, such as a complete number times a complete number.
	ErrUnsupportedOperand = errors.New("unsupported operand")
)
