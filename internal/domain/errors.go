package domain

import "fmt"

// ValidationError indicates that a request or value object failed validation.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidationError creates a ValidationError with the given message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// NotFoundError indicates that a named resource could not be resolved.
type NotFoundError struct {
	Resource string
	Name     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("could not find %s: %s", e.Resource, e.Name)
}

// NewNotFoundError creates a NotFoundError for the given resource and name.
func NewNotFoundError(resource, name string) *NotFoundError {
	return &NotFoundError{Resource: resource, Name: name}
}

// UnavailableError indicates an upstream dependency did not produce a usable result.
type UnavailableError struct {
	Message string
}

func (e *UnavailableError) Error() string { return e.Message }

// NewUnavailableError creates an UnavailableError with the given message.
func NewUnavailableError(message string) *UnavailableError {
	return &UnavailableError{Message: message}
}
