package models

import (
	"fmt"
	"strings"
)

// ValidationError carries every violation found in a request so clients can
// fix all of them in one resubmission.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Violations, "; ")
}

func NewValidationError(violations ...string) *ValidationError {
	return &ValidationError{Violations: violations}
}

// NotFoundError signals that a referenced entity does not exist.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

// DuplicateError signals a uniqueness violation, e.g. saving the same tour
// twice for one user.
type DuplicateError struct {
	Resource string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s already exists", e.Resource)
}

// MalformedIDError signals an id that does not match the store's id shape.
type MalformedIDError struct {
	Field string
	Value string
}

func (e *MalformedIDError) Error() string {
	return fmt.Sprintf("invalid %s format: %q", e.Field, e.Value)
}
