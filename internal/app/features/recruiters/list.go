// internal/app/features/recruiters/list.go
package recruiters

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/hirelens/hirelens/internal/app/system/httperr"
	"github.com/hirelens/hirelens/internal/app/system/normalize"
	"github.com/hirelens/hirelens/internal/app/system/timeouts"
	"github.com/hirelens/hirelens/internal/domain/models"
)

// ServeList handles GET /recruiters/requests?status={pending|approved|rejected}.
// Admin triage queue; defaults to pending since that is the work list.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list recruiter requests")
	defer cancel()

	status := normalize.Status(query.Get(r, "status"))
	if status == "" {
		status = models.BindingPending
	}
	if !models.IsValidBindingStatus(status) {
		h.Resp.WriteError(w, r, httperr.New(httperr.InvalidArgument, "status must be pending, approved, or rejected"))
		return
	}

	rows, err := h.Bindings.ListByStatus(ctx, status)
	if err != nil {
		h.Resp.WriteError(w, r, httperr.Wrap(httperr.Internal, err, "list recruiter requests failed"))
		return
	}

	views := toViews(rows)
	for i, b := range rows {
		// Best-effort name join for the triage screen; a missing user
		// record just leaves the name blank.
		if u, err := h.Users.GetByID(ctx, b.UserID); err == nil {
			views[i].ApplicantName = u.FullName
		}
	}

	h.Resp.WriteJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"status":   status,
		"requests": views,
	})
}
