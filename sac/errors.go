package sac

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat reports bytes that are not a recognizable SAC record.
	ErrFormat = errors.New("sac: format error")
	// ErrEndianMismatch reports a foreign-endian record while byte swapping
	// is disabled.
	ErrEndianMismatch = errors.New("sac: endian mismatch")
	// ErrInvalidRange reports a time window outside the trace bounds.
	ErrInvalidRange = errors.New("sac: invalid range")
	// ErrValidation reports a bad parameter passed to an operation.
	ErrValidation = errors.New("sac: validation error")
)

// Validationf returns an error wrapping ErrValidation.
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrValidation}, args...)...)
}

// InvalidRangef returns an error wrapping ErrInvalidRange.
func InvalidRangef(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidRange}, args...)...)
}

func formatf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrFormat}, args...)...)
}
