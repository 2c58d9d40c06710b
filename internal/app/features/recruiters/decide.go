// internal/app/features/recruiters/decide.go
package recruiters

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	recruiterstore "github.com/hirelens/hirelens/internal/app/store/recruiters"
	"github.com/hirelens/hirelens/internal/app/system/authz"
	"github.com/hirelens/hirelens/internal/app/system/htmlsanitize"
	"github.com/hirelens/hirelens/internal/app/system/httperr"
	"github.com/hirelens/hirelens/internal/app/system/timeouts"
	"github.com/hirelens/hirelens/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type approveRequest struct {
	CompanyID string `json:"companyId"`
}

type rejectRequest struct {
	AdminNote string `json:"adminNote"`
}

// ServeApprove handles POST /recruiters/approve/{userID}. The admin names
// the company the recruiter will represent; the pending request for that
// user flips to approved and analytics unlock on the recruiter's next
// request.
func (h *Handler) ServeApprove(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "approve recruiter request")
	defer cancel()

	_, _, adminID, ok := authz.UserCtx(r)
	if !ok || !authz.IsAdmin(r) {
		h.Resp.WriteError(w, r, httperr.New(httperr.Forbidden, "admin role required"))
		return
	}

	var req approveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Resp.WriteError(w, r, httperr.New(httperr.InvalidArgument, "invalid request body"))
		return
	}
	companyID, err := primitive.ObjectIDFromHex(strings.TrimSpace(req.CompanyID))
	if err != nil {
		h.Resp.WriteError(w, r, httperr.New(httperr.InvalidArgument, "companyId must be a valid id"))
		return
	}
	if _, err := h.Companies.GetByID(ctx, companyID); err != nil {
		h.Resp.WriteError(w, r, httperr.New(httperr.InvalidArgument, "companyId does not match a known company"))
		return
	}

	pending, err := h.pendingForParam(ctx, w, r)
	if err != nil {
		return
	}

	decided, err := h.Bindings.Approve(ctx, pending.ID, companyID, adminID)
	if err != nil {
		h.writeDecisionError(w, r, err)
		return
	}

	h.Log.Info("recruiter request approved",
		zap.String("binding_id", decided.ID.Hex()),
		zap.String("company_id", companyID.Hex()),
		zap.String("decided_by", adminID.Hex()))
	h.Resp.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"request": toView(*decided),
	})
}

// ServeReject handles POST /recruiters/reject/{userID} with an optional
// admin note explaining the decision.
func (h *Handler) ServeReject(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "reject recruiter request")
	defer cancel()

	_, _, adminID, ok := authz.UserCtx(r)
	if !ok || !authz.IsAdmin(r) {
		h.Resp.WriteError(w, r, httperr.New(httperr.Forbidden, "admin role required"))
		return
	}

	var req rejectRequest
	if r.Body != nil {
		// Note is optional; an empty body is fine.
		_ = json.NewDecoder(r.Body).Decode(&req)
	}
	note := htmlsanitize.PlainText(strings.TrimSpace(req.AdminNote))

	pending, err := h.pendingForParam(ctx, w, r)
	if err != nil {
		return
	}

	decided, err := h.Bindings.Reject(ctx, pending.ID, adminID, note)
	if err != nil {
		h.writeDecisionError(w, r, err)
		return
	}

	h.Log.Info("recruiter request rejected",
		zap.String("binding_id", decided.ID.Hex()),
		zap.String("decided_by", adminID.Hex()))
	h.Resp.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"request": toView(*decided),
	})
}

// pendingForParam resolves the {userID} route param to that user's
// pending binding. On failure it writes the response itself and returns
// a non-nil error so callers just bail.
func (h *Handler) pendingForParam(ctx context.Context, w http.ResponseWriter, r *http.Request) (*models.RecruiterBinding, error) {
	userID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "userID"))
	if err != nil {
		e := httperr.New(httperr.InvalidArgument, "userID must be a valid id")
		h.Resp.WriteError(w, r, e)
		return nil, e
	}

	pending, err := h.Bindings.FindPendingForUser(ctx, userID)
	if err == recruiterstore.ErrNotFound {
		// Distinguish "already decided" from "never requested".
		if _, lerr := h.Bindings.FindLatestForUser(ctx, userID); lerr == nil {
			e := httperr.New(httperr.InvalidState, "recruiter request has already been decided")
			h.Resp.WriteError(w, r, e)
			return nil, e
		}
		e := httperr.New(httperr.InvalidArgument, "no recruiter request exists for this user")
		h.Resp.WriteError(w, r, e)
		return nil, e
	}
	if err != nil {
		e := httperr.Wrap(httperr.Internal, err, "pending request lookup failed")
		h.Resp.WriteError(w, r, e)
		return nil, e
	}
	return pending, nil
}

// writeDecisionError maps store decision failures onto the error taxonomy.
func (h *Handler) writeDecisionError(w http.ResponseWriter, r *http.Request, err error) {
	switch err {
	case recruiterstore.ErrNotPending:
		// Lost a race with another admin between lookup and update.
		h.Resp.WriteError(w, r, httperr.New(httperr.InvalidState, "recruiter request has already been decided"))
	case recruiterstore.ErrNotFound:
		h.Resp.WriteError(w, r, httperr.New(httperr.InvalidArgument, "recruiter request not found"))
	default:
		h.Resp.WriteError(w, r, httperr.Wrap(httperr.Internal, err, "recruiter decision failed"))
	}
}
