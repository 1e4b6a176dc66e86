package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/taskline/taskline/internal/redact"
)

// ErrorResponse is the error envelope returned by every failing
// endpoint. Info carries optional field-level details for validation
// failures.
type ErrorResponse struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Info    map[string]string `json:"info,omitempty"`
	TraceID string            `json:"trace_id,omitempty"`
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithError writes the standard error envelope with the given
// status code and message. The TraceID is taken from the request
// context when available.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	RespondWithValidationError(w, r, status, message, nil)
}

// RespondWithValidationError writes the error envelope carrying
// field-level detail in its info map.
func RespondWithValidationError(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	message string,
	info map[string]string,
) {
	traceID := GetTraceID(r.Context())

	slog.Debug("sending error response",
		"status_code", status,
		"message", message,
		"trace_id", traceID,
		"path", r.URL.Path,
		"method", r.Method)

	RespondWithJSON(w, r, status, ErrorResponse{
		Code:    status,
		Message: message,
		Info:    info,
		TraceID: traceID,
	})
}

// RespondWithErrorAndLog writes the sanitized error envelope to the
// client and logs the full error with redaction. 5xx responses log at
// ERROR level, everything else at DEBUG; raw error strings never reach
// the client.
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	userMessage string,
	err error,
) {
	traceID := GetTraceID(r.Context())

	logAttrs := []slog.Attr{
		slog.String("trace_id", traceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("user_message", userMessage),
	}
	if err != nil {
		logAttrs = append(logAttrs,
			slog.String("error", redact.Error(err)),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	logLevel := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}
	slog.LogAttrs(r.Context(), logLevel, "API error response", logAttrs...)

	RespondWithJSON(w, r, status, ErrorResponse{
		Code:    status,
		Message: userMessage,
		TraceID: traceID,
	})
}
