package models

import "fmt"

// ValidationError carries a field to message map and maps to HTTP 400
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError creates a ValidationError with a single field entry
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

// NotFoundError maps to HTTP 404
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

// UnauthorizedError maps to HTTP 401, or 403 when Forbidden is set
type UnauthorizedError struct {
	Reason    string
	Forbidden bool
}

func (e *UnauthorizedError) Error() string {
	return e.Reason
}

// ErrorMessageResponse returns the error message response struct
type ErrorMessageResponse struct {
	Response MessageError
}

// MessageError contains the inner details for the error message response
type MessageError struct {
	Message string
	Error   string
}
