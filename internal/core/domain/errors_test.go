package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrAlreadyExists", ErrAlreadyExists},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrNotImplemented", ErrNotImplemented},
		{"ErrDivisionByZero", ErrDivisionByZero},
		{"ErrUnsupportedOperand", ErrUnsupportedOperand},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestErrDivisionByZero(t *testing.T) {
	assert.Equal(t, "division by zero", ErrDivisionByZero.Error())
	assert.False(t, errors.Is(ErrDivisionByZero, ErrUnsupportedOperand))
}

func TestErrUnsupportedOperand(t *testing.T) {
	assert.Equal(t, "unsupported operand", ErrUnsupportedOperand.Error())
	assert.False(t, errors.Is(ErrUnsupportedOperand, ErrDivisionByZero))
}

// TestErrors_Uniqueness tests that all errors are distinct
func TestErrors_Uniqueness(t *testing.T) {
	allErrors := []error{
		ErrNotFound,
		ErrAlreadyExists,
		ErrInvalidInput,
		ErrNotImplemented,
		ErrDivisionByZero,
		ErrUnsupportedOperand,
	}

	for i, err1 := range allErrors {
		for j, err2 := range allErrors {
			if i != j {
				assert.False(t, errors.Is(err1, err2),
					"Error %v should not match error %v", err1, err2)
			}
		}
	}
}

// TestErrors_WithWrapping tests error wrapping behavior
func TestErrors_WithWrapping(t *testing.T) {
	wrapped := fmt.Errorf("dividing quantity: %w", ErrDivisionByZero)

	assert.True(t, errors.Is(wrapped, ErrDivisionByZero))
	assert.Contains(t, wrapped.Error(), "division by zero")
}
