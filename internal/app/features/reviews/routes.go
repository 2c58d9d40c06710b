// internal/app/features/reviews/routes.go
package reviews

import (
	"github.com/go-chi/chi/v5"
	"github.com/hirelens/hirelens/internal/app/system/auth"
)

// Routes wires the review endpoints.
func Routes(h *Handler, m *auth.Manager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(cr chi.Router) {
		cr.Use(m.RequireRole("candidate"))
		cr.Post("/", h.ServeCreate)
	})

	r.Group(func(rr chi.Router) {
		rr.Use(m.RequireRole("recruiter"))
		rr.Post("/{reviewID}/respond", h.ServeRespond)
	})

	return r
}
