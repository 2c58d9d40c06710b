// internal/app/features/recruiters/submit.go
package recruiters

import (
	"encoding/json"
	"net/http"
	"strings"

	recruiterstore "github.com/hirelens/hirelens/internal/app/store/recruiters"
	"github.com/hirelens/hirelens/internal/app/system/authz"
	"github.com/hirelens/hirelens/internal/app/system/htmlsanitize"
	"github.com/hirelens/hirelens/internal/app/system/httperr"
	"github.com/hirelens/hirelens/internal/app/system/timeouts"
	"go.uber.org/zap"
)

type submitRequest struct {
	CompanyName  string `json:"companyName"`
	CompanyEmail string `json:"companyEmail"`
	RoleTitle    string `json:"roleTitle"`
}

// ServeSubmit handles POST /recruiters/requests. The caller asks for
// recruiter access to a company; the request lands pending and waits for
// an admin decision. One pending request per user at a time; a decided
// request does not block a new submission.
func (h *Handler) ServeSubmit(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "submit recruiter request")
	defer cancel()

	_, _, userID, ok := authz.UserCtx(r)
	if !ok {
		h.Resp.WriteError(w, r, httperr.New(httperr.Forbidden, "authentication required"))
		return
	}

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Resp.WriteError(w, r, httperr.New(httperr.InvalidArgument, "invalid request body"))
		return
	}

	req.CompanyName = htmlsanitize.PlainText(strings.TrimSpace(req.CompanyName))
	req.RoleTitle = htmlsanitize.PlainText(strings.TrimSpace(req.RoleTitle))
	req.CompanyEmail = strings.TrimSpace(req.CompanyEmail)
	if req.CompanyName == "" || req.CompanyEmail == "" {
		h.Resp.WriteError(w, r, httperr.New(httperr.InvalidArgument, "companyName and companyEmail are required"))
		return
	}

	b, err := h.Bindings.Submit(ctx, userID, req.CompanyName, req.CompanyEmail, req.RoleTitle)
	if err == recruiterstore.ErrPendingExists {
		h.Resp.WriteError(w, r, httperr.New(httperr.Conflict, "a pending recruiter request already exists"))
		return
	}
	if err != nil {
		h.Resp.WriteError(w, r, httperr.Wrap(httperr.Internal, err, "submit recruiter request failed"))
		return
	}

	h.Log.Info("recruiter request submitted",
		zap.String("binding_id", b.ID.Hex()),
		zap.String("user_id", userID.Hex()))
	h.Resp.WriteJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"request": toView(b),
	})
}
