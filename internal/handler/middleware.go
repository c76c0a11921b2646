package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/wealthpath/calendar/internal/logger"
)

// RequestIDHeader carries the request identifier in both directions.
const RequestIDHeader = "X-Request-ID"

// RequestIDMiddleware stores the caller's X-Request-ID, or a fresh UUID, in
// the request context for logging and echoes it in the response.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(logger.WithRequestID(r.Context(), id)))
	})
}

// WallClockMiddleware tags the request logger with the wallclock query
// parameter when present.
func WallClockMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if wc := r.URL.Query().Get("wallclock"); wc != "" {
			r = r.WithContext(logger.WithWallClock(r.Context(), wc))
		}
		next.ServeHTTP(w, r)
	})
}
