package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors. Every failure raised by the calendar packages wraps one of
// the first four so callers can classify it with errors.Is.
var (
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrOverflow            = errors.New("value out of range")
	ErrResourceExhausted   = errors.New("resource exhausted")
	ErrEnvironmentRejected = errors.New("timezone rejected by host")

	ErrNotFound   = errors.New("resource not found")
	ErrBadRequest = errors.New("bad request")
	ErrInternal   = errors.New("internal server error")
)

// Diagnostic codes reported next to failures.
const (
	CodeInvalidArgument     = "invalid-argument"
	CodeOverflow            = "overflow"
	CodeResourceExhausted   = "resource-exhaustion"
	CodeEnvironmentRejected = "environment-rejection"
	CodeNotFound            = "not-found"
	CodeInternal            = "internal"
)

// AppError wraps errors with HTTP status and user-friendly message
type AppError struct {
	Err        error  // Original error (for logging and errors.Is)
	Message    string // User-friendly message
	StatusCode int    // HTTP status code
	Field      string // Optional field name for argument errors
}

func (e *AppError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Constructor functions

func InvalidArgument(field, message string) *AppError {
	return &AppError{
		Err:        ErrInvalidArgument,
		Message:    message,
		StatusCode: http.StatusBadRequest,
		Field:      field,
	}
}

func Overflow(message string) *AppError {
	return &AppError{
		Err:        ErrOverflow,
		Message:    message,
		StatusCode: http.StatusUnprocessableEntity,
	}
}

func ResourceExhausted(message string) *AppError {
	return &AppError{
		Err:        ErrResourceExhausted,
		Message:    message,
		StatusCode: http.StatusServiceUnavailable,
	}
}

func EnvironmentRejected(zone string) *AppError {
	return &AppError{
		Err:        ErrEnvironmentRejected,
		Message:    fmt.Sprintf("timezone %q rejected by host", zone),
		StatusCode: http.StatusBadRequest,
		Field:      "wallclock",
	}
}

func NotFound(resource string) *AppError {
	return &AppError{
		Err:        ErrNotFound,
		Message:    fmt.Sprintf("%s not found", resource),
		StatusCode: http.StatusNotFound,
	}
}

func BadRequest(message string) *AppError {
	return &AppError{
		Err:        ErrBadRequest,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

func Internal(err error) *AppError {
	return &AppError{
		Err:        err,
		Message:    "an internal error occurred",
		StatusCode: http.StatusInternalServerError,
	}
}

func Wrap(err error, message string) *AppError {
	return &AppError{
		Err:        err,
		Message:    message,
		StatusCode: GetStatusCode(err),
	}
}

// GetStatusCode extracts HTTP status from error, defaults to 500
func GetStatusCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.StatusCode != 0 {
		return appErr.StatusCode
	}

	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidArgument), errors.Is(err, ErrEnvironmentRejected), errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, ErrOverflow):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrResourceExhausted):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// GetMessage extracts user message from error
func GetMessage(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Error()
	}
	return err.Error()
}

// Code returns the diagnostic code of err. Environment rejection is checked
// before invalid argument since a rejected local wall-clock carries both.
func Code(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEnvironmentRejected):
		return CodeEnvironmentRejected
	case errors.Is(err, ErrInvalidArgument), errors.Is(err, ErrBadRequest):
		return CodeInvalidArgument
	case errors.Is(err, ErrOverflow):
		return CodeOverflow
	case errors.Is(err, ErrResourceExhausted):
		return CodeResourceExhausted
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	default:
		return CodeInternal
	}
}

// AsInvalidArgument reclassifies err as an invalid argument while keeping
// its original kind reachable through errors.Is.
func AsInvalidArgument(err error) *AppError {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) && errors.Is(err, ErrInvalidArgument) {
		return appErr
	}
	return &AppError{
		Err:        errors.Join(ErrInvalidArgument, err),
		Message:    GetMessage(err),
		StatusCode: http.StatusBadRequest,
	}
}
