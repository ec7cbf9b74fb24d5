package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity is not found within the
	// caller's tenant scope.
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to create a duplicate entity.
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrInvalidInput is returned when input validation fails.
	ErrInvalidInput = errors.New("invalid input")

	// ErrFileLocked is returned when a file is locked by another user and
	// the lock has not expired.
	ErrFileLocked = errors.New("file locked by another user")

	// ErrConflict is returned when a modify patch's baseline hash no longer
	// matches the current file content.
	ErrConflict = errors.New("baseline content changed since proposal")

	// ErrInvalidTransition is returned for a changeset transition the state
	// machine does not allow.
	ErrInvalidTransition = errors.New("changeset transition not allowed")

	// ErrPolicyLocked is returned when mutating a locked policy profile
	// without administrative privilege.
	ErrPolicyLocked = errors.New("policy profile is locked")

	// ErrNotPermitted is returned when a cross-tenant operation is attempted
	// without the administrative capability.
	ErrNotPermitted = errors.New("operation requires administrative privilege")

	// ErrRunTerminal is returned when mutating a run that already reached a
	// terminal state.
	ErrRunTerminal = errors.New("run is immutable once terminal")
)

// ValidationError wraps field-specific validation errors.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError checks if an error is a validation error.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
