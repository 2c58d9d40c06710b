// internal/app/features/reviews/create.go
package reviews

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	reviewstore "github.com/hirelens/hirelens/internal/app/store/reviews"
	"github.com/hirelens/hirelens/internal/app/system/authz"
	"github.com/hirelens/hirelens/internal/app/system/htmlsanitize"
	"github.com/hirelens/hirelens/internal/app/system/httperr"
	"github.com/hirelens/hirelens/internal/app/system/timeouts"
	"github.com/hirelens/hirelens/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type createRequest struct {
	CompanyID     string `json:"companyId"`
	OverallRating *int   `json:"overallRating"`
	Comment       string `json:"comment"`
}

// ServeCreate handles POST /reviews. Rating is optional (text-only
// reviews exist) but must be 1..5 when present; the comment is run
// through the HTML sanitizer before it is stored.
func (h *Handler) ServeCreate(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "create review")
	defer cancel()

	_, _, authorID, ok := authz.UserCtx(r)
	if !ok {
		h.Resp.WriteError(w, r, httperr.New(httperr.Forbidden, "authentication required"))
		return
	}

	var req createRequest
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

	rv := models.Review{
		CompanyID:     companyID,
		AuthorID:      authorID,
		OverallRating: req.OverallRating,
		Comment:       htmlsanitize.Sanitize(strings.TrimSpace(req.Comment)),
		CreatedAt:     time.Now().UTC(),
	}
	stored, err := h.Reviews.Insert(ctx, rv)
	if err == reviewstore.ErrBadRating {
		h.Resp.WriteError(w, r, httperr.New(httperr.InvalidArgument, "overallRating must be between 1 and 5"))
		return
	}
	if err != nil {
		h.Resp.WriteError(w, r, httperr.Wrap(httperr.Internal, err, "store review failed"))
		return
	}

	h.Log.Info("review created",
		zap.String("review_id", stored.ID.Hex()),
		zap.String("company_id", companyID.Hex()))
	h.Resp.WriteJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"review":  toView(stored),
	})
}
