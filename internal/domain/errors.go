package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound       = errors.New("not found")
	ErrAlreadyExists  = errors.New("already exists")
	ErrValidation     = errors.New("validation error")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrGraphIntegrity = errors.New("comment graph integrity")
	ErrStorage        = errors.New("storage failure")
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

// AuthFailure names the reason a bearer credential was rejected.
type AuthFailure string

const (
	AuthMissing          AuthFailure = "missing"
	AuthMalformed        AuthFailure = "malformed"
	AuthInvalidSignature AuthFailure = "invalid-signature"
	AuthExpired          AuthFailure = "expired"
)

// AuthError is returned when a bearer credential cannot be verified.
// The reason is for logs only; callers see a generic "unauthorized".
type AuthError struct {
	Reason AuthFailure
	Err    error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("auth: %s: %v", e.Reason, e.Err)
	}
	return "auth: " + string(e.Reason)
}

func (e *AuthError) Unwrap() error { return ErrUnauthorized }

// GraphErrorKind classifies comment graph integrity faults.
type GraphErrorKind string

const GraphCycle GraphErrorKind = "cycle"

// GraphError reports a structural fault found while walking a reply graph.
type GraphError struct {
	Kind      GraphErrorKind
	CommentID uuid.UUID
}

func (e *GraphError) Error() string {
	return fmt.Sprintf("comment graph: %s at comment %s", e.Kind, e.CommentID)
}

func (e *GraphError) Unwrap() error { return ErrGraphIntegrity }
