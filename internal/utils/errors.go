package utils

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError represents a client-side validation failure.
// It blocks submission; no request is sent.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError reports whether err is, or wraps, a validation failure.
func IsValidationError(err error) bool {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return true
	}
	var me *MultiError
	if errors.As(err, &me) {
		for _, e := range me.Errors {
			if !IsValidationError(e) {
				return false
			}
		}
		return me.HasErrors()
	}
	return false
}

// MultiError represents multiple errors
type MultiError struct {
	Errors []error `json:"errors"`
}

// Error joins every message on its own line, the way form errors are shown.
func (e *MultiError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msgs := make([]string, 0, len(e.Errors))
	for _, err := range e.Errors {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "\n")
}

// Unwrap exposes the collected errors to errors.Is / errors.As.
func (e *MultiError) Unwrap() []error {
	return e.Errors
}

// Add adds an error to the multi-error
func (e *MultiError) Add(err error) {
	if err != nil {
		e.Errors = append(e.Errors, err)
	}
}

// HasErrors returns true if there are any errors
func (e *MultiError) HasErrors() bool {
	return len(e.Errors) > 0
}

// ErrOrNil returns nil when nothing was collected.
func (e *MultiError) ErrOrNil() error {
	if !e.HasErrors() {
		return nil
	}
	return e
}

// NewMultiError creates a new multi-error
func NewMultiError() *MultiError {
	return &MultiError{
		Errors: make([]error, 0),
	}
}

// Wrapf annotates err, keeping it matchable.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}
