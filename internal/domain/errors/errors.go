package errors

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
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
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches any BaseError carrying the same error code, so derived copies
// produced by WithMessage or WithDetails still satisfy errors.Is.
func (e *BaseError) Is(target error) bool {
	var other *BaseError
	if !errors.As(target, &other) {
		return false
	}

	return other.errorCode == e.errorCode
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

// WithMessage replaces the user-facing message, keeping the code.
func (e *BaseError) WithMessage(message string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   message,
		details:   e.details,
	}
}

// WithMessagef is WithMessage with a format specifier.
func (e *BaseError) WithMessagef(format string, args ...any) *BaseError {
	return e.WithMessage(fmt.Sprintf(format, args...))
}

// Predefined error types
var (
	// Complaint-related errors
	ErrComplaintNotFound = NewBaseError(
		http.StatusNotFound,
		"COMPLAINT_NOT_FOUND",
		"complaint not found",
		"",
	)

	ErrInvalidTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_STATUS_TRANSITION",
		"invalid status transition",
		"",
	)

	ErrComplaintNotPending = NewBaseError(
		http.StatusConflict,
		"COMPLAINT_NOT_PENDING",
		"complaint can only be changed while pending",
		"",
	)

	ErrTooManyPhotos = NewBaseError(
		http.StatusBadRequest,
		"TOO_MANY_PHOTOS",
		"too many photos",
		"",
	)

	// Technician-related errors
	ErrTechnicianNotFound = NewBaseError(
		http.StatusNotFound,
		"TECHNICIAN_NOT_FOUND",
		"technician not found",
		"",
	)

	// Billing-related errors
	ErrBillingNotFound = NewBaseError(
		http.StatusNotFound,
		"BILLING_NOT_FOUND",
		"billing record not found",
		"",
	)

	ErrBillingAlreadyExists = NewBaseError(
		http.StatusConflict,
		"BILLING_ALREADY_EXISTS",
		"a billing record already exists for this complaint",
		"",
	)

	ErrComplaintIDConflict = NewBaseError(
		http.StatusConflict,
		"COMPLAINT_ID_CONFLICT",
		"complaint identifier is already in use, please retry",
		"",
	)

	ErrComplaintNotAssigned = NewBaseError(
		http.StatusConflict,
		"COMPLAINT_NOT_ASSIGNED",
		"complaint has not been assigned",
		"",
	)

	// Storage-related errors
	ErrPhotoUploadFailed = NewBaseError(
		http.StatusBadGateway,
		"PHOTO_UPLOAD_FAILED",
		"photo upload failed",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"authentication required",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"access denied",
		"",
	)
)

// NewValidationError returns a validation error whose message names the offending field.
func NewValidationError(format string, args ...any) *BaseError {
	return ErrValidationFailed.WithMessagef(format, args...)
}

// NewInvalidTransitionError reports an illegal move between two statuses.
func NewInvalidTransitionError(current, requested string) *BaseError {
	return ErrInvalidTransition.WithMessagef("cannot move complaint from %q to %q", current, requested)
}

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

// Unwrap exposes the driver error.
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
	return "database operation failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
