// Package errors defines the application error taxonomy. Every failure a
// usecase can surface is an AppError carrying an HTTP status, a stable
// business code and a user-facing message; infrastructure causes stay
// attached for logging but are never shown to end users.
package errors

import (
	"net/http"

	"referidos/internal/errors"
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
	// Partner-related errors
	ErrSocioNotFound = NewBaseError(
		http.StatusNotFound,
		"SOCIO_NOT_FOUND",
		"No se encontró el socio",
		"",
	)

	// ErrInvalidCredentials deliberately does not distinguish wrong code,
	// wrong PIN or inactive partner, to avoid leaking which partners exist.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Código o PIN incorrecto",
		"",
	)

	ErrSocioNotEligible = NewBaseError(
		http.StatusForbidden,
		"SOCIO_NOT_ELIGIBLE",
		"El código de socio no es válido o no está activo",
		"",
	)

	// Coupon-related errors
	ErrCuponNotFound = NewBaseError(
		http.StatusNotFound,
		"CUPON_NOT_FOUND",
		"No se encontró el cupón",
		"",
	)

	// Artist-related errors
	ErrArtistaNotFound = NewBaseError(
		http.StatusNotFound,
		"ARTISTA_NOT_FOUND",
		"No se encontró el artista",
		"",
	)

	ErrArtistaInactive = NewBaseError(
		http.StatusBadRequest,
		"ARTISTA_INACTIVE",
		"El artista seleccionado no está activo",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Los datos ingresados no son válidos",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Error interno del sistema, inténtalo nuevamente",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Acceso denegado",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"No se encontró el recurso",
		"",
	)

	// ErrConflict covers uniqueness violations surviving the pre-check,
	// e.g. a partner code collision detected at persistence time.
	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Conflicto de recursos, vuelve a intentarlo",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the original cause for errors.Is/As inspection.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Error al acceder a los datos"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
