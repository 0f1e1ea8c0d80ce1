// Package domain defines domain-level errors for the scheduling feature.
package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Error categories surfaced by the storage layer.
// Every failure returned by a repository matches exactly one of them with errors.Is,
// except infrastructure failures (lost connection, cancelled context) which are returned as-is.
var (
	// ErrValidation indicates a missing or invalid field, including enum values out of range.
	ErrValidation = errors.New("validation failed")

	// ErrUniquenessViolation indicates a duplicate value in a unique column,
	// for example a patient email that is already registered.
	ErrUniquenessViolation = errors.New("uniqueness violation")

	// ErrReferentialIntegrity indicates that a referenced row does not exist.
	ErrReferentialIntegrity = errors.New("referential integrity violation")

	// ErrNotFound indicates that no row matched the given identifier.
	ErrNotFound = errors.New("not found")
)

// Service-level errors. They describe cross-entity rules the schema cannot express.
var (
	// ErrClinicMismatch is returned when an appointment's doctor or patient
	// belongs to a different clinic than the appointment itself.
	ErrClinicMismatch = fmt.Errorf("%w: doctor and patient must belong to the appointment clinic", ErrValidation)

	// ErrAccessDenied is returned when a user holds no membership for a clinic.
	ErrAccessDenied = errors.New("access to clinic denied")
)

// ValidationError lists the fields of one entity that failed validation.
// It matches ErrValidation with errors.Is.
type ValidationError struct {
	Entity string
	// Fields maps the storage name of each failing field to the rule it broke.
	Fields map[string]string
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(entity, field, rule string) *ValidationError {
	return &ValidationError{Entity: entity, Fields: map[string]string{field: rule}}
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, e.Fields[name]))
	}
	return fmt.Sprintf("invalid %s: %s", e.Entity, strings.Join(parts, ", "))
}

// Unwrap lets errors.Is(err, ErrValidation) succeed.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
