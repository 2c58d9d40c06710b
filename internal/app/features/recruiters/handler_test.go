package recruiters_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	recruitersfeature "github.com/hirelens/hirelens/internal/app/features/recruiters"
	companystore "github.com/hirelens/hirelens/internal/app/store/companies"
	recruiterstore "github.com/hirelens/hirelens/internal/app/store/recruiters"
	userstore "github.com/hirelens/hirelens/internal/app/store/users"
	"github.com/hirelens/hirelens/internal/app/system/httperr"
	"github.com/hirelens/hirelens/internal/app/system/indexes"
	"github.com/hirelens/hirelens/internal/domain/models"
	"github.com/hirelens/hirelens/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func setupHandler(t *testing.T) (*recruitersfeature.Handler, *recruiterstore.Store, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	if err := indexes.EnsureAll(context.Background(), db); err != nil {
		t.Fatalf("EnsureAll: %v", err)
	}
	logger := zap.NewNop()
	bindings := recruiterstore.New(db)
	h := recruitersfeature.NewHandler(bindings, companystore.New(db), userstore.New(db), httperr.NewWriter(logger), logger)
	return h, bindings, testutil.NewFixtures(t, db)
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) (bool, map[string]any) {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	success, _ := body["success"].(bool)
	return success, body
}

func TestServeSubmit(t *testing.T) {
	h, bindings, _ := setupHandler(t)

	recruiter := testutil.RecruiterUser()
	body := `{"companyName":"Acme Corp","companyEmail":"recruiting@acme.com","roleTitle":"Recruiter"}`
	req := testutil.NewJSONRequest("POST", "/recruiters/requests", body, recruiter)
	rec := httptest.NewRecorder()
	h.ServeSubmit(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want 201 (%s)", rec.Code, rec.Body.String())
	}
	success, _ := decodeEnvelope(t, rec)
	if !success {
		t.Error("success: got false")
	}

	userID, _ := primitive.ObjectIDFromHex(recruiter.ID)
	pending, err := bindings.FindPendingForUser(context.Background(), userID)
	if err != nil {
		t.Fatalf("FindPendingForUser: %v", err)
	}
	if pending.CompanyName != "Acme Corp" {
		t.Errorf("companyName: got %q", pending.CompanyName)
	}
}

func TestServeSubmit_SecondPendingConflicts(t *testing.T) {
	h, _, _ := setupHandler(t)

	recruiter := testutil.RecruiterUser()
	body := `{"companyName":"Acme Corp","companyEmail":"recruiting@acme.com"}`

	rec := httptest.NewRecorder()
	h.ServeSubmit(rec, testutil.NewJSONRequest("POST", "/recruiters/requests", body, recruiter))
	if rec.Code != http.StatusCreated {
		t.Fatalf("first submit: got %d (%s)", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	h.ServeSubmit(rec, testutil.NewJSONRequest("POST", "/recruiters/requests", body, recruiter))
	if rec.Code != http.StatusConflict {
		t.Errorf("second submit: got %d, want 409", rec.Code)
	}
}

func TestServeSubmit_MissingFields(t *testing.T) {
	h, _, _ := setupHandler(t)

	req := testutil.NewJSONRequest("POST", "/recruiters/requests", `{"roleTitle":"Recruiter"}`, testutil.RecruiterUser())
	rec := httptest.NewRecorder()
	h.ServeSubmit(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rec.Code)
	}
}

func TestServeApprove(t *testing.T) {
	h, bindings, fx := setupHandler(t)
	ctx := context.Background()

	company := fx.CreateCompany(ctx, "Acme Corp")
	userID := primitive.NewObjectID()
	if _, err := bindings.Submit(ctx, userID, "Acme Corp", "recruiting@acme.com", "Recruiter"); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	body := `{"companyId":"` + company.ID.Hex() + `"}`
	req := testutil.NewJSONRequest("POST", "/recruiters/approve/"+userID.Hex(), body, testutil.AdminUser())
	req = testutil.WithChiURLParam(req, "userID", userID.Hex())
	rec := httptest.NewRecorder()
	h.ServeApprove(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200 (%s)", rec.Code, rec.Body.String())
	}

	approved, err := bindings.FindApprovedForUser(ctx, userID)
	if err != nil {
		t.Fatalf("FindApprovedForUser: %v", err)
	}
	if approved.CompanyID == nil || *approved.CompanyID != company.ID {
		t.Errorf("companyID: got %v, want %s", approved.CompanyID, company.ID.Hex())
	}
}

func TestServeApprove_UnknownCompany(t *testing.T) {
	h, bindings, _ := setupHandler(t)
	ctx := context.Background()

	userID := primitive.NewObjectID()
	if _, err := bindings.Submit(ctx, userID, "Acme Corp", "recruiting@acme.com", "Recruiter"); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	body := `{"companyId":"` + primitive.NewObjectID().Hex() + `"}`
	req := testutil.NewJSONRequest("POST", "/recruiters/approve/"+userID.Hex(), body, testutil.AdminUser())
	req = testutil.WithChiURLParam(req, "userID", userID.Hex())
	rec := httptest.NewRecorder()
	h.ServeApprove(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rec.Code)
	}
}

func TestServeReject_ThenApproveIsInvalidState(t *testing.T) {
	h, bindings, fx := setupHandler(t)
	ctx := context.Background()

	company := fx.CreateCompany(ctx, "Acme Corp")
	userID := primitive.NewObjectID()
	if _, err := bindings.Submit(ctx, userID, "Acme Corp", "recruiting@acme.com", "Recruiter"); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	req := testutil.NewJSONRequest("POST", "/recruiters/reject/"+userID.Hex(), `{"adminNote":"unverifiable employment"}`, testutil.AdminUser())
	req = testutil.WithChiURLParam(req, "userID", userID.Hex())
	rec := httptest.NewRecorder()
	h.ServeReject(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("reject: got %d (%s)", rec.Code, rec.Body.String())
	}

	latest, err := bindings.FindLatestForUser(ctx, userID)
	if err != nil {
		t.Fatalf("FindLatestForUser: %v", err)
	}
	if latest.Status != models.BindingRejected {
		t.Errorf("status: got %q, want rejected", latest.Status)
	}
	if latest.AdminNote != "unverifiable employment" {
		t.Errorf("adminNote: got %q", latest.AdminNote)
	}

	// Deciding again must fail: the request is no longer pending.
	body := `{"companyId":"` + company.ID.Hex() + `"}`
	req = testutil.NewJSONRequest("POST", "/recruiters/approve/"+userID.Hex(), body, testutil.AdminUser())
	req = testutil.WithChiURLParam(req, "userID", userID.Hex())
	rec = httptest.NewRecorder()
	h.ServeApprove(rec, req)

	if rec.Code != http.StatusConflict {
		t.Errorf("second decision: got %d, want 409", rec.Code)
	}
}

func TestServeApprove_NoRequest(t *testing.T) {
	h, _, fx := setupHandler(t)
	company := fx.CreateCompany(context.Background(), "Acme Corp")

	userID := primitive.NewObjectID()
	body := `{"companyId":"` + company.ID.Hex() + `"}`
	req := testutil.NewJSONRequest("POST", "/recruiters/approve/"+userID.Hex(), body, testutil.AdminUser())
	req = testutil.WithChiURLParam(req, "userID", userID.Hex())
	rec := httptest.NewRecorder()
	h.ServeApprove(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rec.Code)
	}
}

func TestServeMe(t *testing.T) {
	h, bindings, _ := setupHandler(t)
	ctx := context.Background()

	recruiter := testutil.RecruiterUser()
	userID, _ := primitive.ObjectIDFromHex(recruiter.ID)

	// No request yet: success with a null request.
	req := testutil.NewAuthenticatedRequest("GET", "/recruiters/me", recruiter)
	rec := httptest.NewRecorder()
	h.ServeMe(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	success, body := decodeEnvelope(t, rec)
	if !success || body["request"] != nil {
		t.Errorf("empty state: got %v", body)
	}

	if _, err := bindings.Submit(ctx, userID, "Acme Corp", "recruiting@acme.com", "Recruiter"); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	rec = httptest.NewRecorder()
	h.ServeMe(rec, testutil.NewAuthenticatedRequest("GET", "/recruiters/me", recruiter))
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	_, body = decodeEnvelope(t, rec)
	request, _ := body["request"].(map[string]any)
	if request == nil || request["status"] != models.BindingPending {
		t.Errorf("request: got %v, want pending", body["request"])
	}
}

func TestServeList_FiltersByStatus(t *testing.T) {
	h, bindings, _ := setupHandler(t)
	ctx := context.Background()

	userA := primitive.NewObjectID()
	userB := primitive.NewObjectID()
	if _, err := bindings.Submit(ctx, userA, "Acme Corp", "a@acme.com", "Recruiter"); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	b, err := bindings.Submit(ctx, userB, "Globex", "b@globex.com", "Sourcer")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if _, err := bindings.Reject(ctx, b.ID, primitive.NewObjectID(), ""); err != nil {
		t.Fatalf("Reject: %v", err)
	}

	req := testutil.NewAuthenticatedRequest("GET", "/recruiters/requests?status=pending", testutil.AdminUser())
	rec := httptest.NewRecorder()
	h.ServeList(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	_, body := decodeEnvelope(t, rec)
	requests, _ := body["requests"].([]any)
	if len(requests) != 1 {
		t.Errorf("pending requests: got %d, want 1", len(requests))
	}

	// Unknown status is rejected, not silently defaulted.
	req = testutil.NewAuthenticatedRequest("GET", "/recruiters/requests?status=bogus", testutil.AdminUser())
	rec = httptest.NewRecorder()
	h.ServeList(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bogus status: got %d, want 400", rec.Code)
	}
}
