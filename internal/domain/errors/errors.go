package errors

import (
	"net/http"

	"roost/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Invalid-input errors; rejected before any I/O is attempted
	ErrInvalidInput = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INPUT",
		"invalid request input",
		"",
	)

	ErrInvalidSortKey = NewBaseError(
		http.StatusBadRequest,
		"INVALID_SORT_KEY",
		"unknown sort key",
		"",
	)

	ErrOutOfRegion = NewBaseError(
		http.StatusBadRequest,
		"OUT_OF_REGION",
		"coordinates are outside the service region",
		"",
	)

	// Not-found errors
	ErrLocationNotFound = NewBaseError(
		http.StatusNotFound,
		"LOCATION_NOT_FOUND",
		"location not found",
		"",
	)

	ErrRouteNotFound = NewBaseError(
		http.StatusNotFound,
		"ROUTE_NOT_FOUND",
		"route not found",
		"",
	)

	// Remote source errors; recoverable, local state stays intact
	ErrRemoteUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"REMOTE_UNAVAILABLE",
		"remote source is unavailable",
		"",
	)

	ErrDirectionsUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"DIRECTIONS_UNAVAILABLE",
		"directions provider is unavailable",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal error",
		"",
	)
)

// StorageError represents a local persistence failure, implementing the
// AppError interface. It is fatal to the operation that triggered it but
// never to the process.
type StorageError struct {
	err     error
	details string
}

// NewStorageError creates a storage-related error
func NewStorageError(err error, details string) AppError {
	return &StorageError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *StorageError) Error() string {
	return errors.Wrap(e.err, "storage operation failed").Error()
}

// Unwrap exposes the underlying persistence error.
func (e *StorageError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *StorageError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *StorageError) ErrorCode() string {
	return "STORAGE_FAILURE"
}

// Message returns the user-friendly error message
func (e *StorageError) Message() string {
	return "local storage failure"
}

// Details returns detailed error information
func (e *StorageError) Details() string {
	return e.details
}
