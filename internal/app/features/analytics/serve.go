// internal/app/features/analytics/serve.go
package analytics

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/hirelens/hirelens/internal/app/policy/analyticspolicy"
	"github.com/hirelens/hirelens/internal/app/store/recruiters"
	"github.com/hirelens/hirelens/internal/app/system/authz"
	"github.com/hirelens/hirelens/internal/app/system/httperr"
	"github.com/hirelens/hirelens/internal/app/system/normalize"
	"github.com/hirelens/hirelens/internal/app/system/timeouts"
	"github.com/hirelens/hirelens/internal/domain/models"
	"go.uber.org/zap"
)

// ServeRecruiterAnalytics handles
// GET /analytics/recruiter?range={7d|30d|90d|180d|365d}&companyId={hex}
//
// Order matters: scope resolution runs before any review access so a
// caller can never leak another company's data, and the window is planned
// from one clock reading so the response is deterministic for a fixed
// data set. Failures discard the whole computation; there are no partial
// metrics.
func (h *Handler) ServeRecruiterAnalytics(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long(), h.Log, "analytics window scan")
	defer cancel()

	role, _, userID, ok := authz.UserCtx(r)
	if !ok {
		h.Resp.WriteError(w, r, httperr.New(httperr.Forbidden, "authentication required"))
		return
	}

	// Recruiters are scoped by their current approved binding, fetched
	// fresh so an approval moments ago already counts.
	var approved *models.RecruiterBinding
	if role == "recruiter" {
		b, err := h.Bindings.FindApprovedForUser(ctx, userID)
		switch {
		case err == recruiters.ErrNotFound:
			// No approved binding; the resolver will turn this into the
			// user-facing unauthorized-scope outcome.
		case err != nil:
			h.Resp.WriteError(w, r, httperr.Wrap(httperr.Internal, err, "binding lookup failed"))
			return
		default:
			approved = b
		}
	}

	scope, err := analyticspolicy.Resolve(role, approved, query.Get(r, "companyId"))
	if err != nil {
		h.Resp.WriteError(w, r, err)
		return
	}

	window, err := PlanWindow(normalize.RangeKey(query.Get(r, "range")), h.Now())
	if err != nil {
		h.Resp.WriteError(w, r, err)
		return
	}

	var metrics Metrics
	if scope.Empty {
		// Valid degenerate admin case: zero result, no data access.
		metrics = ZeroMetrics(window)
	} else {
		rows, err := h.Reviews.ListForCompanyInRange(ctx, scope.CompanyID, window.Start, window.End)
		if err != nil {
			h.Resp.WriteError(w, r, httperr.Wrap(httperr.Internal, err, "review window scan failed"))
			return
		}
		metrics = BuildMetrics(rows, window, h.RecentLimit)
	}

	result := BuildResult(scope, window, metrics, h.Now())
	h.Log.Debug("analytics served",
		zap.String("role", role),
		zap.String("range", window.RangeKey),
		zap.Int("total", metrics.TotalReviews))
	h.Resp.WriteJSON(w, http.StatusOK, result)
}
