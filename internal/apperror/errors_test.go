package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name: "without field",
			appErr: &AppError{
				Message: "year out of range",
			},
			expected: "year out of range",
		},
		{
			name: "with field",
			appErr: &AppError{
				Message: "must be between 1 and 7",
				Field:   "weekday",
			},
			expected: "weekday: must be between 1 and 7",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	t.Parallel()

	originalErr := errors.New("original error")
	appErr := &AppError{
		Err:     originalErr,
		Message: "wrapped error",
	}

	assert.Equal(t, originalErr, appErr.Unwrap())
	assert.True(t, errors.Is(appErr, originalErr))
}

func TestConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *AppError
		sentinel error
		status   int
		code     string
	}{
		{"invalid argument", InvalidArgument("month", "must be between 1 and 12"), ErrInvalidArgument, http.StatusBadRequest, CodeInvalidArgument},
		{"overflow", Overflow("year out of range"), ErrOverflow, http.StatusUnprocessableEntity, CodeOverflow},
		{"resource exhausted", ResourceExhausted("registry full"), ErrResourceExhausted, http.StatusServiceUnavailable, CodeResourceExhausted},
		{"environment rejected", EnvironmentRejected("Mars/Olympus"), ErrEnvironmentRejected, http.StatusBadRequest, CodeEnvironmentRejected},
		{"not found", NotFound("route"), ErrNotFound, http.StatusNotFound, CodeNotFound},
		{"bad request", BadRequest("invalid JSON"), ErrBadRequest, http.StatusBadRequest, CodeInvalidArgument},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.ErrorIs(t, tt.err, tt.sentinel)
			assert.Equal(t, tt.status, tt.err.StatusCode)
			assert.Equal(t, tt.status, GetStatusCode(tt.err))
			assert.Equal(t, tt.code, Code(tt.err))
		})
	}
}

func TestEnvironmentRejected_Message(t *testing.T) {
	t.Parallel()

	err := EnvironmentRejected("Mars/Olympus")

	assert.Equal(t, "wallclock", err.Field)
	assert.Equal(t, `wallclock: timezone "Mars/Olympus" rejected by host`, err.Error())
}

func TestInternal(t *testing.T) {
	t.Parallel()

	originalErr := errors.New("host exploded")
	err := Internal(originalErr)

	assert.Equal(t, "an internal error occurred", err.Message)
	assert.Equal(t, http.StatusInternalServerError, err.StatusCode)
	assert.ErrorIs(t, err, originalErr)
	assert.Equal(t, CodeInternal, Code(err))
}

func TestWrap_KeepsStatusOfCause(t *testing.T) {
	t.Parallel()

	err := Wrap(Overflow("too far"), "cannot add years")

	assert.Equal(t, "cannot add years", err.Message)
	assert.Equal(t, http.StatusUnprocessableEntity, err.StatusCode)
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestGetStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"wrapped sentinel invalid", fmt.Errorf("parse: %w", ErrInvalidArgument), http.StatusBadRequest},
		{"wrapped sentinel overflow", fmt.Errorf("add: %w", ErrOverflow), http.StatusUnprocessableEntity},
		{"wrapped sentinel exhausted", fmt.Errorf("intern: %w", ErrResourceExhausted), http.StatusServiceUnavailable},
		{"rejection", fmt.Errorf("set local: %w", ErrEnvironmentRejected), http.StatusBadRequest},
		{"not found", ErrNotFound, http.StatusNotFound},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, GetStatusCode(tt.err))
		})
	}
}

func TestCode_RejectionWinsOverInvalidArgument(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("%w: %w", ErrInvalidArgument, ErrEnvironmentRejected)

	assert.Equal(t, CodeEnvironmentRejected, Code(err))
	assert.Equal(t, "", Code(nil))
}

func TestGetMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "month: must be between 1 and 12", GetMessage(InvalidArgument("month", "must be between 1 and 12")))
	assert.Equal(t, "plain error", GetMessage(errors.New("plain error")))
}

func TestAsInvalidArgument(t *testing.T) {
	t.Parallel()

	err := AsInvalidArgument(Overflow("year 2147483648 out of range"))

	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.ErrorIs(t, err, ErrOverflow)
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.Equal(t, "year 2147483648 out of range", err.Message)
	assert.Nil(t, AsInvalidArgument(nil))
}
