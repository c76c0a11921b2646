package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/wealthpath/calendar/internal/apperror"
	"github.com/wealthpath/calendar/internal/logger"
)

// ErrorResponse represents a JSON error response body.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
	Field string `json:"field,omitempty"`
}

// respondJSON writes a JSON response with the given status code.
// It sets the Content-Type header to application/json.
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// respondError writes a JSON error response with the given status code and message.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondAppError writes a JSON error response for err. Status and code
// come from the error kind; internal failures are logged and hidden.
func respondAppError(w http.ResponseWriter, r *http.Request, err error) {
	status := apperror.GetStatusCode(err)
	resp := ErrorResponse{
		Error: apperror.GetMessage(err),
		Code:  apperror.Code(err),
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) && appErr.Field != "" {
		resp.Error = appErr.Message
		resp.Field = appErr.Field
	}

	if status >= http.StatusInternalServerError {
		logger.FromContext(r.Context()).Error("request failed",
			"error", err.Error(),
			"path", r.URL.Path,
		)
		resp.Error = "an internal error occurred"
		resp.Field = ""
	}
	respondJSON(w, status, resp)
}

// decodeJSON reads the request body into v, rejecting unknown fields.
func decodeJSON(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return apperror.InvalidArgument("body", "invalid request body")
	}
	return nil
}

// parseIntParam parses a path or query value, reporting failures against
// name.
func parseIntParam(name, value string) (int, error) {
	if value == "" {
		return 0, apperror.InvalidArgument(name, name+" parameter is required")
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, apperror.InvalidArgument(name, "invalid "+name+" parameter: must be a number")
	}
	return n, nil
}
