package errors

import (
	"fmt"
	"net/http"

	"sitesnap/internal/errors"
)

// AppError defines the interface for errors surfaced to the seller UI.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing message
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

// Is matches on error code so that WithDetails copies still satisfy errors.Is
// against the predefined values.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
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

// Message returns the user-facing message
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
	// Session errors: the UI answers these with a login prompt.
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Please log in to continue",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"",
	)

	// Validation errors are raised before anything is submitted.
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Some required fields are missing or invalid",
		"",
	)

	ErrSellerRequired = NewBaseError(
		http.StatusPreconditionRequired,
		"SELLER_REQUIRED",
		"Please complete seller details first",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"The requested item could not be found",
		"",
	)

	// Operations that only make sense against the offline store.
	ErrUnsupported = NewBaseError(
		http.StatusNotImplemented,
		"UNSUPPORTED_OPERATION",
		"This operation is not available while connected to the live store",
		"",
	)

	ErrNetwork = NewBaseError(
		http.StatusBadGateway,
		"NETWORK_ERROR",
		"Could not reach the server. Please check your connection and try again",
		"",
	)

	ErrServiceUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"SERVICE_UNAVAILABLE",
		"The server is temporarily unavailable. Please try again shortly",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Something went wrong",
		"",
	)
)

// genericServerMessage is shown when the backend gives no message of its own.
const genericServerMessage = "Request failed. Please try again"

// APIError is a non-2xx answer from the backend, carrying the server-provided
// message when the body had one.
type APIError struct {
	Status        int
	ServerMessage string
	Method        string
	Path          string
}

// NewAPIError creates an APIError
func NewAPIError(status int, serverMessage, method, path string) *APIError {
	return &APIError{
		Status:        status,
		ServerMessage: serverMessage,
		Method:        method,
		Path:          path,
	}
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.Status, e.Message())
}

// HTTPCode returns the backend status code
func (e *APIError) HTTPCode() int {
	return e.Status
}

// ErrorCode returns the business error code
func (e *APIError) ErrorCode() string {
	switch {
	case e.Status == http.StatusUnauthorized:
		return ErrUnauthenticated.ErrorCode()
	case e.Status == http.StatusNotFound:
		return ErrNotFound.ErrorCode()
	case e.Status >= http.StatusInternalServerError:
		return "SERVER_ERROR"
	default:
		return "REQUEST_FAILED"
	}
}

// Message returns the server message or a generic fallback
func (e *APIError) Message() string {
	if e.ServerMessage != "" {
		return e.ServerMessage
	}

	return genericServerMessage
}

// Details returns the failed request line
func (e *APIError) Details() string {
	return e.Method + " " + e.Path
}

// Is lets callers test an APIError against the session and not-found sentinels.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthenticated:
		return e.Status == http.StatusUnauthorized
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	}

	return false
}

// UserMessage extracts what the UI should display for err.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	if appErr, ok := errors.Find[AppError](err); ok {
		return appErr.Message()
	}

	return genericServerMessage
}
