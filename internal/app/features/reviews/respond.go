// internal/app/features/reviews/respond.go
package reviews

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	recruiterstore "github.com/hirelens/hirelens/internal/app/store/recruiters"
	reviewstore "github.com/hirelens/hirelens/internal/app/store/reviews"
	"github.com/hirelens/hirelens/internal/app/system/authz"
	"github.com/hirelens/hirelens/internal/app/system/httperr"
	"github.com/hirelens/hirelens/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ServeRespond handles POST /reviews/{reviewID}/respond. Marks the review
// as responded to, which feeds the response-rate metric. Only a recruiter
// approved for the review's company may do this.
func (h *Handler) ServeRespond(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "mark review responded")
	defer cancel()

	role, _, userID, ok := authz.UserCtx(r)
	if !ok || role != "recruiter" {
		h.Resp.WriteError(w, r, httperr.New(httperr.Forbidden, "recruiter role required"))
		return
	}

	reviewID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "reviewID"))
	if err != nil {
		h.Resp.WriteError(w, r, httperr.New(httperr.InvalidArgument, "reviewID must be a valid id"))
		return
	}

	rv, err := h.Reviews.GetByID(ctx, reviewID)
	if err == reviewstore.ErrNotFound {
		h.Resp.WriteError(w, r, httperr.New(httperr.InvalidArgument, "review not found"))
		return
	}
	if err != nil {
		h.Resp.WriteError(w, r, httperr.Wrap(httperr.Internal, err, "review lookup failed"))
		return
	}

	binding, err := h.Bindings.FindApprovedForUser(ctx, userID)
	if err == recruiterstore.ErrNotFound {
		h.Resp.WriteError(w, r, httperr.New(httperr.UnauthorizedScope, "recruiter access has not been approved yet"))
		return
	}
	if err != nil {
		h.Resp.WriteError(w, r, httperr.Wrap(httperr.Internal, err, "binding lookup failed"))
		return
	}
	if binding.CompanyID == nil || *binding.CompanyID != rv.CompanyID {
		h.Resp.WriteError(w, r, httperr.New(httperr.UnauthorizedScope, "review belongs to a different company"))
		return
	}

	if err := h.Reviews.MarkResponded(ctx, reviewID); err != nil {
		h.Resp.WriteError(w, r, httperr.Wrap(httperr.Internal, err, "mark responded failed"))
		return
	}

	h.Log.Info("review marked responded",
		zap.String("review_id", reviewID.Hex()),
		zap.String("recruiter_id", userID.Hex()))
	h.Resp.WriteJSON(w, http.StatusOK, map[string]any{"success": true})
}
