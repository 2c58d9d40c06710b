// internal/app/features/reviews/list.go
package reviews

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/go-chi/chi/v5"
	"github.com/hirelens/hirelens/internal/app/system/httperr"
	"github.com/hirelens/hirelens/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// ServeListForCompany handles GET /companies/{companyID}/reviews: the
// public newest-first review feed for one company.
func (h *Handler) ServeListForCompany(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list company reviews")
	defer cancel()

	companyID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "companyID"))
	if err != nil {
		h.Resp.WriteError(w, r, httperr.New(httperr.InvalidArgument, "companyID must be a valid id"))
		return
	}

	limit := int64(defaultListLimit)
	if raw := query.Get(r, "limit"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n < 1 {
			h.Resp.WriteError(w, r, httperr.New(httperr.InvalidArgument, "limit must be a positive integer"))
			return
		}
		if n > maxListLimit {
			n = maxListLimit
		}
		limit = n
	}

	rows, err := h.Reviews.ListRecentForCompany(ctx, companyID, limit)
	if err != nil {
		h.Resp.WriteError(w, r, httperr.Wrap(httperr.Internal, err, "list company reviews failed"))
		return
	}

	h.Resp.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"reviews": toViews(rows),
	})
}
