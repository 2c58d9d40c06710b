// internal/app/system/httperr/writer.go
package httperr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// failureBody is the uniform error envelope. No partial payloads: when a
// request fails, this is the entire response.
type failureBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Writer turns errors into JSON responses and owns the logging policy:
// internal faults are logged with an incident reference that is echoed to
// the caller; expected outcomes are not logged as errors.
type Writer struct {
	log *zap.Logger
}

// NewWriter constructs a Writer around the app logger.
func NewWriter(logger *zap.Logger) *Writer {
	return &Writer{log: logger}
}

// WriteError maps err onto the wire contract.
func (wr *Writer) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	kind := KindOf(err)

	msg := "request failed"
	var e *Error
	if errors.As(err, &e) && e.Message != "" {
		msg = e.Message
	}

	if kind == Internal {
		incident := uuid.NewString()
		wr.log.Error("internal error",
			zap.String("incident", incident),
			zap.String("path", r.URL.Path),
			zap.Error(err))
		msg = "an internal error occurred (ref: " + incident + ")"
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(StatusOf(kind))
	_ = json.NewEncoder(w).Encode(failureBody{Success: false, Message: msg})
}

// WriteJSON writes a success payload. Kept beside WriteError so handlers
// produce both halves of the wire contract through one package.
func (wr *Writer) WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		wr.log.Error("JSON encode failed", zap.Error(err))
	}
}
