// Package respond provides utilities for sending HTTP responses in JSON format.
// It includes error handling with sanitization to prevent leaking sensitive information.
package respond

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"pressroom/internal/domain/entity"
	"pressroom/internal/observability/logging"
)

// Client-facing error messages.
const (
	MsgValidationFailed   = "validation failed"
	MsgInvalidRequestBody = "invalid request body"
	MsgInternalError      = "internal server error"
)

// ErrorBody is the JSON shape of every error response.
// Fields is only present on validation failures.
type ErrorBody struct {
	Error  string       `json:"error"`
	Fields []FieldError `json:"fields,omitempty"`
}

// FieldError describes one field that failed validation.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// Log the error but cannot send error response as headers already sent
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Error writes a JSON error response carrying msg.
func Error(w http.ResponseWriter, code int, msg string) {
	JSON(w, code, ErrorBody{Error: msg})
}

// ValidationFailed writes a 422 response listing every offending field.
func ValidationFailed(w http.ResponseWriter, errs entity.ValidationErrors) {
	fields := make([]FieldError, 0, len(errs))
	for _, fe := range errs {
		fields = append(fields, FieldError{Field: fe.Field, Rule: fe.Rule, Message: fe.Message})
	}
	JSON(w, http.StatusUnprocessableEntity, ErrorBody{Error: MsgValidationFailed, Fields: fields})
}

// SafeError writes err as a JSON error response without leaking internals.
// Validation errors are expanded into their field list. Any 5xx is replaced
// by a generic message and the sanitised cause is logged with the
// request-scoped logger from ctx.
func SafeError(ctx context.Context, w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}

	var verrs entity.ValidationErrors
	if errors.As(err, &verrs) {
		ValidationFailed(w, verrs)
		return
	}

	if code >= http.StatusInternalServerError {
		logging.FromContext(ctx).Error("internal server error",
			slog.String("status", http.StatusText(code)),
			slog.Int("code", code),
			slog.String("error", SanitizeError(err)))
		Error(w, code, MsgInternalError)
		return
	}

	Error(w, code, err.Error())
}
