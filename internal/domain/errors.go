package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")

	// ErrPrecondition marks an operation invoked against an entity whose
	// current state does not satisfy the operation's preconditions
	// (wrong pipeline status, missing draft). Recoverable by the caller.
	ErrPrecondition = errors.New("precondition failed")

	// ErrInvalidTransition marks a status change not allowed by the
	// pipeline transition table. Never coerced silently.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInvalidSchedule marks a schedule request with a past or
	// malformed timestamp.
	ErrInvalidSchedule = errors.New("invalid schedule")

	// ErrNotConnected is returned when a social credential is absent.
	ErrNotConnected = errors.New("social account not connected")

	// ErrTokenExpired is returned when a stored social credential has
	// expired and no refresh path succeeded.
	ErrTokenExpired = errors.New("social credential expired")

	// ErrLocked marks a topic locked by another editor.
	ErrLocked = errors.New("topic locked")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
