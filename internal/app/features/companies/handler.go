// internal/app/features/companies/handler.go

// Package companies exposes the company directory: a public listing plus
// admin-only creation. Companies are the anchor recruiter bindings and
// reviews hang off.
package companies

import (
	"github.com/hirelens/hirelens/internal/app/store/companies"
	"github.com/hirelens/hirelens/internal/app/system/httperr"
	"go.uber.org/zap"
)

type Handler struct {
	Companies *companies.Store
	Resp      *httperr.Writer
	Log       *zap.Logger
}

func NewHandler(companyStore *companies.Store, resp *httperr.Writer, logger *zap.Logger) *Handler {
	return &Handler{
		Companies: companyStore,
		Resp:      resp,
		Log:       logger,
	}
}

type companyView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Website  string `json:"website,omitempty"`
	Industry string `json:"industry,omitempty"`
	Status   string `json:"status"`
}
