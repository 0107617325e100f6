package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
)

// ErrorResponse defines the standard error response structure.
type ErrorResponse struct {
	Error   string   `json:"error"`
	Fields  []string `json:"fields,omitempty"` // Unique fields behind a conflict, when known
	Code    int      `json:"-"`                // Not serialized to JSON, used for logging
	TraceID string   `json:"trace_id,omitempty"`
}

// ListMeta is the pagination block of a list/search response envelope.
type ListMeta struct {
	Total      int64 `json:"total"`
	Skip       int   `json:"skip"`
	Take       int   `json:"take"`
	Page       int   `json:"page"`
	TotalPages int64 `json:"totalPages"`
}

// ListEnvelope wraps a page of rows together with its pagination metadata.
type ListEnvelope struct {
	Data any      `json:"data"`
	Meta ListMeta `json:"meta"`
}

// MessageResponse is the envelope for operations that return no record,
// such as delete.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewListEnvelope derives the pagination metadata for a page of rows.
// The page number is recomputed from the window (skip/take + 1) and
// totalPages is ceil(total/take); take is always positive by the time a
// window reaches this point.
func NewListEnvelope(data any, total int64, page PageParams) ListEnvelope {
	return ListEnvelope{
		Data: data,
		Meta: ListMeta{
			Total:      total,
			Skip:       page.Skip,
			Take:       page.Take,
			Page:       page.Skip/page.Take + 1,
			TotalPages: (total + int64(page.Take) - 1) / int64(page.Take),
		},
	}
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithError writes a JSON error response with the given status code
// and message. It also sets the TraceID from the request context if available.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	traceID := GetTraceID(r.Context())

	errorResponse := ErrorResponse{
		Error:   message,
		Code:    status,
		TraceID: traceID,
	}

	slog.Debug("sending error response",
		"status_code", status,
		"message", message,
		"trace_id", traceID,
		"path", r.URL.Path,
		"method", r.Method)

	RespondWithJSON(w, r, status, errorResponse)
}

// RespondWithConflict writes a 409 response naming the unique fields whose
// values collided, when the storage layer could identify them.
func RespondWithConflict(w http.ResponseWriter, r *http.Request, fields []string) {
	message := "duplicate value for unique field"
	if len(fields) > 0 {
		message = fmt.Sprintf("duplicate value for unique field(s): %s", strings.Join(fields, ", "))
	}

	RespondWithJSON(w, r, http.StatusConflict, ErrorResponse{
		Error:   message,
		Fields:  fields,
		Code:    http.StatusConflict,
		TraceID: GetTraceID(r.Context()),
	})
}

// RespondWithErrorAndLog writes a JSON error response and also logs the
// detailed error. The full error goes to the log; only the sanitized
// message reaches the client.
//
// Log level strategy: 5xx at ERROR, 4xx at DEBUG.
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	userMessage string,
	err error,
) {
	traceID := GetTraceID(r.Context())

	errorResponse := ErrorResponse{
		Error:   userMessage,
		Code:    status,
		TraceID: traceID,
	}

	logAttrs := []slog.Attr{
		slog.String("trace_id", traceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("user_message", userMessage),
	}

	if err != nil {
		logAttrs = append(logAttrs, slog.String("error", err.Error()))
		logAttrs = append(logAttrs, slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	logLevel := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}

	slog.LogAttrs(r.Context(), logLevel, "API error response", logAttrs...)

	RespondWithJSON(w, r, status, errorResponse)
}
