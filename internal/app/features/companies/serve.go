// internal/app/features/companies/serve.go
package companies

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	companystore "github.com/hirelens/hirelens/internal/app/store/companies"
	"github.com/hirelens/hirelens/internal/app/system/htmlsanitize"
	"github.com/hirelens/hirelens/internal/app/system/httperr"
	"github.com/hirelens/hirelens/internal/app/system/timeouts"
	"github.com/hirelens/hirelens/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type createRequest struct {
	Name     string `json:"name"`
	Website  string `json:"website"`
	Industry string `json:"industry"`
}

// ServeCreate handles POST /companies (admin only).
func (h *Handler) ServeCreate(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "create company")
	defer cancel()

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Resp.WriteError(w, r, httperr.New(httperr.InvalidArgument, "invalid request body"))
		return
	}
	req.Name = htmlsanitize.PlainText(strings.TrimSpace(req.Name))
	if req.Name == "" {
		h.Resp.WriteError(w, r, httperr.New(httperr.InvalidArgument, "name is required"))
		return
	}

	co, err := h.Companies.Create(ctx, models.Company{
		Name:     req.Name,
		Website:  strings.TrimSpace(req.Website),
		Industry: htmlsanitize.PlainText(strings.TrimSpace(req.Industry)),
	})
	if err == companystore.ErrDuplicateName {
		h.Resp.WriteError(w, r, httperr.New(httperr.Conflict, "a company with this name already exists"))
		return
	}
	if err != nil {
		h.Resp.WriteError(w, r, httperr.Wrap(httperr.Internal, err, "create company failed"))
		return
	}

	h.Log.Info("company created", zap.String("company_id", co.ID.Hex()), zap.String("name", co.Name))
	h.Resp.WriteJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"company": toView(co),
	})
}

// ServeList handles GET /companies: active companies in name order.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list companies")
	defer cancel()

	rows, err := h.Companies.List(ctx, 0)
	if err != nil {
		h.Resp.WriteError(w, r, httperr.Wrap(httperr.Internal, err, "list companies failed"))
		return
	}

	views := make([]companyView, len(rows))
	for i, co := range rows {
		views[i] = toView(co)
	}
	h.Resp.WriteJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"companies": views,
	})
}

// ServeGet handles GET /companies/{companyID}.
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "get company")
	defer cancel()

	companyID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "companyID"))
	if err != nil {
		h.Resp.WriteError(w, r, httperr.New(httperr.InvalidArgument, "companyID must be a valid id"))
		return
	}

	co, err := h.Companies.GetByID(ctx, companyID)
	if err == mongo.ErrNoDocuments {
		h.Resp.WriteError(w, r, httperr.New(httperr.InvalidArgument, "company not found"))
		return
	}
	if err != nil {
		h.Resp.WriteError(w, r, httperr.Wrap(httperr.Internal, err, "get company failed"))
		return
	}

	h.Resp.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"company": toView(*co),
	})
}

func toView(co models.Company) companyView {
	return companyView{
		ID:       co.ID.Hex(),
		Name:     co.Name,
		Website:  co.Website,
		Industry: co.Industry,
		Status:   co.Status,
	}
}
