// internal/app/features/analytics/routes.go
package analytics

import (
	"github.com/go-chi/chi/v5"
	"github.com/hirelens/hirelens/internal/app/system/auth"
)

// Routes returns the router for analytics endpoints. Role gating beyond
// "authenticated" happens in the scope resolver so that candidates get
// the same structured forbidden response as any other policy failure.
func Routes(h *Handler, m *auth.Manager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(m.RequireIdentity)
		pr.Get("/recruiter", h.ServeRecruiterAnalytics)
	})

	return r
}
