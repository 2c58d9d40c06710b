// internal/app/features/recruiters/me.go
package recruiters

import (
	"net/http"

	recruiterstore "github.com/hirelens/hirelens/internal/app/store/recruiters"
	"github.com/hirelens/hirelens/internal/app/system/authz"
	"github.com/hirelens/hirelens/internal/app/system/httperr"
	"github.com/hirelens/hirelens/internal/app/system/timeouts"
)

// ServeMe handles GET /recruiters/me: the caller's newest request, so the
// dashboard can show "pending", "approved for X", or "rejected: note".
func (h *Handler) ServeMe(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "recruiter status lookup")
	defer cancel()

	_, _, userID, ok := authz.UserCtx(r)
	if !ok {
		h.Resp.WriteError(w, r, httperr.New(httperr.Forbidden, "authentication required"))
		return
	}

	b, err := h.Bindings.FindLatestForUser(ctx, userID)
	if err == recruiterstore.ErrNotFound {
		h.Resp.WriteJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"request": nil,
		})
		return
	}
	if err != nil {
		h.Resp.WriteError(w, r, httperr.Wrap(httperr.Internal, err, "recruiter status lookup failed"))
		return
	}

	h.Resp.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"request": toView(*b),
	})
}
