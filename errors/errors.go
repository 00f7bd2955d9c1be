package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrType represents the type of error
type ErrType string

const (
	ErrTypeUnsupportedFormat ErrType = "UNSUPPORTED_FORMAT"
	ErrTypeParsing           ErrType = "PARSING"
	ErrTypeStorage           ErrType = "STORAGE"
	ErrTypeValidation        ErrType = "VALIDATION"
	ErrTypeNotFound          ErrType = "NOT_FOUND"
)

// AppError represents a library-specific error
type AppError struct {
	Type    ErrType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap allows errors.Is and errors.As to work with AppError
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// New creates a new application error
func New(errType ErrType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// IsType reports whether err is (or wraps) an AppError of the given type.
func IsType(err error, errType ErrType) bool {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type == errType
	}
	return false
}

// Helper functions for common error types

// NewUnsupportedFormatError creates an error for a file suffix no parser handles
func NewUnsupportedFormatError(path string) *AppError {
	return New(ErrTypeUnsupportedFormat, fmt.Sprintf("unsupported file format: %s", path), nil)
}

// NewParsingError creates a parsing-related error
func NewParsingError(message string, cause error) *AppError {
	return New(ErrTypeParsing, message, cause)
}

// NewStorageError creates a storage-related error
func NewStorageError(message string, cause error) *AppError {
	return New(ErrTypeStorage, message, cause)
}

// NewValidationError creates a validation error
func NewValidationError(message string) *AppError {
	return New(ErrTypeValidation, message, nil)
}

// NewNotFoundError creates a not found error
func NewNotFoundError(resource string) *AppError {
	return New(ErrTypeNotFound, fmt.Sprintf("%s not found", resource), nil)
}
