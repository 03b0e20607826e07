// Package errors defines the error classes reported by asset-kit commands.
//
// Every failure that reaches the command line is an *AppError carrying one of
// the ErrorType values below. Size-budget overruns are not errors; they are
// reported as warnings on a successful result.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorType represents different categories of errors
type ErrorType string

// Error categories checked with IsType.
const (
	ErrorTypeNotFound        ErrorType = "not_found"
	ErrorTypeDecode          ErrorType = "decode"
	ErrorTypeInvalidArgument ErrorType = "invalid_argument"
	ErrorTypeEncode          ErrorType = "encode"
	ErrorTypeConfig          ErrorType = "config"
)

// AppError represents a structured application error
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Cause   error     `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewNotFoundError creates an error for a missing input file
func NewNotFoundError(message string, cause error) *AppError {
	return &AppError{Type: ErrorTypeNotFound, Message: message, Cause: cause}
}

// NewDecodeError creates an error for a corrupt or unsupported image
func NewDecodeError(message string, cause error) *AppError {
	return &AppError{Type: ErrorTypeDecode, Message: message, Cause: cause}
}

// NewInvalidArgumentError creates an error for a bad parameter value
func NewInvalidArgumentError(message string, cause error) *AppError {
	return &AppError{Type: ErrorTypeInvalidArgument, Message: message, Cause: cause}
}

// InvalidArgumentf formats an invalid-argument error without a cause
func InvalidArgumentf(format string, args ...interface{}) *AppError {
	return NewInvalidArgumentError(fmt.Sprintf(format, args...), nil)
}

// NewEncodeError creates an error for a failed image write
func NewEncodeError(message string, cause error) *AppError {
	return &AppError{Type: ErrorTypeEncode, Message: message, Cause: cause}
}

// NewConfigError creates an error for an unreadable or malformed asset config
func NewConfigError(message string, cause error) *AppError {
	return &AppError{Type: ErrorTypeConfig, Message: message, Cause: cause}
}

// IsType reports whether err, or any error it wraps, is an *AppError of the given type.
func IsType(err error, errorType ErrorType) bool {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type == errorType
	}
	return false
}
