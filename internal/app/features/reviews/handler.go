// internal/app/features/reviews/handler.go

// Package reviews lets candidates post company reviews and recruiters
// mark them as responded to. Reviews are the raw material the analytics
// engine aggregates.
package reviews

import (
	"github.com/hirelens/hirelens/internal/app/store/companies"
	"github.com/hirelens/hirelens/internal/app/store/recruiters"
	"github.com/hirelens/hirelens/internal/app/store/reviews"
	"github.com/hirelens/hirelens/internal/app/system/httperr"
	"go.uber.org/zap"
)

type Handler struct {
	Reviews   *reviews.Store
	Companies *companies.Store
	Bindings  *recruiters.Store
	Resp      *httperr.Writer
	Log       *zap.Logger
}

func NewHandler(reviewStore *reviews.Store, companyStore *companies.Store, bindings *recruiters.Store, resp *httperr.Writer, logger *zap.Logger) *Handler {
	return &Handler{
		Reviews:   reviewStore,
		Companies: companyStore,
		Bindings:  bindings,
		Resp:      resp,
		Log:       logger,
	}
}

type reviewView struct {
	ID                 string `json:"id"`
	CompanyID          string `json:"companyId"`
	OverallRating      *int   `json:"overallRating"`
	Comment            string `json:"comment"`
	RecruiterResponded bool   `json:"recruiterResponded"`
	CreatedAt          string `json:"createdAt"`
}
