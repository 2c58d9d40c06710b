// internal/app/features/recruiters/routes.go
package recruiters

import (
	"github.com/go-chi/chi/v5"
	"github.com/hirelens/hirelens/internal/app/system/auth"
)

// Routes wires the recruiter workflow endpoints.
func Routes(h *Handler, m *auth.Manager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(m.RequireRole("recruiter"))
		pr.Post("/requests", h.ServeSubmit)
		pr.Get("/me", h.ServeMe)
	})

	r.Group(func(ar chi.Router) {
		ar.Use(m.RequireRole("admin"))
		ar.Get("/requests", h.ServeList)
		ar.Post("/approve/{userID}", h.ServeApprove)
		ar.Post("/reject/{userID}", h.ServeReject)
	})

	return r
}
