// internal/app/features/companies/routes.go
package companies

import (
	"github.com/go-chi/chi/v5"
	"github.com/hirelens/hirelens/internal/app/features/reviews"
	"github.com/hirelens/hirelens/internal/app/system/auth"
)

// Routes wires the company directory. The per-company review feed lives
// under this prefix, so the reviews handler is mounted here too.
func Routes(h *Handler, rh *reviews.Handler, m *auth.Manager) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeList)
	r.Get("/{companyID}", h.ServeGet)
	r.Get("/{companyID}/reviews", rh.ServeListForCompany)

	r.Group(func(ar chi.Router) {
		ar.Use(m.RequireRole("admin"))
		ar.Post("/", h.ServeCreate)
	})

	return r
}
