// internal/app/system/httperr/httperr.go

// Package httperr defines the service's error taxonomy and the single
// place where errors become HTTP responses.
//
// Every failure a handler surfaces is one of six kinds. All kinds map to
// {"success": false, "message": ...}; only Internal is logged as a fault,
// the rest are expected control-flow outcomes.
package httperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error for status mapping and logging.
type Kind int

const (
	// Internal is the zero value: anything unclassified is a server fault.
	Internal Kind = iota
	// UnauthorizedScope: a recruiter without an approved company binding
	// asked for analytics. A normal user-facing state, not a fault.
	UnauthorizedScope
	// Forbidden: the caller's role cannot perform the operation.
	Forbidden
	// InvalidArgument: unknown range key, malformed ID, bad payload.
	InvalidArgument
	// InvalidState: a workflow transition from a non-source state —
	// usually a lost race or a stale admin screen.
	InvalidState
	// Conflict: the operation would duplicate existing state
	// (e.g. a second pending recruiter request).
	Conflict
)

// Error carries a kind and a caller-safe message. The wrapped cause, when
// present, is for server-side logs only and never reaches the response.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// New builds an Error of the given kind.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap classifies an underlying error. The message is what the caller
// sees; err is kept for logging.
func Wrap(kind Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

// KindOf extracts the kind from err, defaulting to Internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

// StatusOf maps a kind to its HTTP status.
func StatusOf(kind Kind) int {
	switch kind {
	case UnauthorizedScope:
		return http.StatusForbidden
	case Forbidden:
		return http.StatusForbidden
	case InvalidArgument:
		return http.StatusBadRequest
	case InvalidState:
		return http.StatusConflict
	case Conflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
