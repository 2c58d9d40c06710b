package httperr_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hirelens/hirelens/internal/app/system/httperr"
	"go.uber.org/zap"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		kind httperr.Kind
		want int
	}{
		{httperr.UnauthorizedScope, http.StatusForbidden},
		{httperr.Forbidden, http.StatusForbidden},
		{httperr.InvalidArgument, http.StatusBadRequest},
		{httperr.InvalidState, http.StatusConflict},
		{httperr.Conflict, http.StatusConflict},
		{httperr.Internal, http.StatusInternalServerError},
	}
	for _, tc := range tests {
		if got := httperr.StatusOf(tc.kind); got != tc.want {
			t.Errorf("StatusOf(%v): got %d, want %d", tc.kind, got, tc.want)
		}
	}
}

func TestKindOf(t *testing.T) {
	if got := httperr.KindOf(httperr.New(httperr.Conflict, "dup")); got != httperr.Conflict {
		t.Errorf("KindOf: got %v, want Conflict", got)
	}

	// Wrapped through fmt.Errorf the kind still surfaces.
	wrapped := fmt.Errorf("outer: %w", httperr.New(httperr.InvalidState, "already decided"))
	if got := httperr.KindOf(wrapped); got != httperr.InvalidState {
		t.Errorf("KindOf(wrapped): got %v, want InvalidState", got)
	}

	// Unclassified errors are internal faults.
	if got := httperr.KindOf(errors.New("boom")); got != httperr.Internal {
		t.Errorf("KindOf(plain): got %v, want Internal", got)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := httperr.Wrap(httperr.Internal, cause, "store read failed")

	if !errors.Is(err, cause) {
		t.Error("wrapped cause lost")
	}
	if !strings.Contains(err.Error(), "connection reset") {
		t.Errorf("Error(): got %q, want cause included", err.Error())
	}
}

func decodeFailure(t *testing.T, rec *httptest.ResponseRecorder) (bool, string) {
	t.Helper()
	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	return body.Success, body.Message
}

func TestWriteError_ExpectedKind(t *testing.T) {
	wr := httperr.NewWriter(zap.NewNop())
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/analytics/recruiter", nil)

	wr.WriteError(rec, req, httperr.New(httperr.UnauthorizedScope, "recruiter access has not been approved yet"))

	if rec.Code != http.StatusForbidden {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusForbidden)
	}
	success, msg := decodeFailure(t, rec)
	if success {
		t.Error("success: got true, want false")
	}
	if msg != "recruiter access has not been approved yet" {
		t.Errorf("message: got %q", msg)
	}
}

func TestWriteError_InternalHidesCause(t *testing.T) {
	wr := httperr.NewWriter(zap.NewNop())
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/analytics/recruiter", nil)

	wr.WriteError(rec, req, httperr.Wrap(httperr.Internal, errors.New("mongo: socket closed"), "review window scan failed"))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	_, msg := decodeFailure(t, rec)
	if strings.Contains(msg, "socket closed") || strings.Contains(msg, "scan failed") {
		t.Errorf("message leaks internals: %q", msg)
	}
	if !strings.Contains(msg, "ref: ") {
		t.Errorf("message missing incident ref: %q", msg)
	}
}

func TestWriteJSON(t *testing.T) {
	wr := httperr.NewWriter(zap.NewNop())
	rec := httptest.NewRecorder()

	wr.WriteJSON(rec, http.StatusCreated, map[string]any{"success": true})

	if rec.Code != http.StatusCreated {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusCreated)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("Content-Type: got %q", ct)
	}
}
