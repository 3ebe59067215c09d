package errors

import (
	"errors"
	"fmt"
)

// Common error types for categorization and handling

var (
	// ErrInvalidInput indicates invalid user input
	ErrInvalidInput = errors.New("invalid input")

	// ErrSourceLookup indicates a knowledge source lookup failed
	ErrSourceLookup = errors.New("source lookup failed")

	// ErrRaceTimeout indicates the answer race hit its deadline with no result
	ErrRaceTimeout = errors.New("answer race timed out")

	// ErrMisconfigured indicates required startup configuration is missing
	ErrMisconfigured = errors.New("misconfigured assistant")
)

// WrapError wraps an error with context message and stack
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// WrapErrorf wraps an error with formatted context message
func WrapErrorf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsInvalidInput checks if error is an invalid input error
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsSourceLookup checks if error is a source lookup error
func IsSourceLookup(err error) bool {
	return errors.Is(err, ErrSourceLookup)
}

// IsMisconfigured checks if error is a startup configuration error
func IsMisconfigured(err error) bool {
	return errors.Is(err, ErrMisconfigured)
}
