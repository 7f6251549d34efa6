// internal/app/features/errors/errors.go

// Package errors renders API error responses and logs internal faults.
//
// Every handler-level fault is translated here into one of the taxonomy
// statuses; nothing propagates unhandled and store-internal error text is
// never written to a client. Responses are always {"error": "..."} JSON.
package errors

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

type errorBody struct {
	Error string `json:"error"`
}

func render(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{Error: msg})
}

// Unauthorized writes a 401 for a missing, invalid, or expired token.
func Unauthorized(w http.ResponseWriter) {
	render(w, http.StatusUnauthorized, "unauthorized")
}

// Forbidden writes a 403 for an authenticated caller acting outside their
// own resources (for example a path id that is not the caller's id).
func Forbidden(w http.ResponseWriter, msg string) {
	if msg == "" {
		msg = "forbidden"
	}
	render(w, http.StatusForbidden, msg)
}

// NotFound writes a 404 when no matching owned resource exists.
func NotFound(w http.ResponseWriter, msg string) {
	if msg == "" {
		msg = "not found"
	}
	render(w, http.StatusNotFound, msg)
}

// InvalidArgument writes a 400 for malformed input (bad id, negative
// counter, unparseable body).
func InvalidArgument(w http.ResponseWriter, msg string) {
	if msg == "" {
		msg = "invalid argument"
	}
	render(w, http.StatusBadRequest, msg)
}

// Exhausted writes a 409 when a need has no openings left to decrement.
func Exhausted(w http.ResponseWriter, msg string) {
	if msg == "" {
		msg = "no openings remaining"
	}
	render(w, http.StatusConflict, msg)
}

// TooManyRequests writes a 429 when the caller has exceeded a rate limit.
func TooManyRequests(w http.ResponseWriter, msg string) {
	if msg == "" {
		msg = "too many requests"
	}
	render(w, http.StatusTooManyRequests, msg)
}

// ErrorLogger logs internal faults server-side and writes the generic 500
// body. Handlers get one at construction so the cause lands in the logs
// while the client sees nothing store-internal.
type ErrorLogger struct {
	log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger backed by the given zap logger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{log: logger}
}

// Internal logs the fault with request context and writes a 500 with a
// generic message.
func (e *ErrorLogger) Internal(w http.ResponseWriter, r *http.Request, op string, err error) {
	e.log.Error("internal error",
		zap.String("op", op),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	render(w, http.StatusInternalServerError, "internal server error")
}
