// internal/app/features/recruiters/handler.go

// Package recruiters exposes the recruiter access workflow: a recruiter
// submits a request to act for a company, and an admin approves or
// rejects it. Approval is what unlocks the analytics dashboard.
package recruiters

import (
	"github.com/hirelens/hirelens/internal/app/store/companies"
	"github.com/hirelens/hirelens/internal/app/store/recruiters"
	userstore "github.com/hirelens/hirelens/internal/app/store/users"
	"github.com/hirelens/hirelens/internal/app/system/httperr"
	"go.uber.org/zap"
)

type Handler struct {
	Bindings  *recruiters.Store
	Companies *companies.Store
	Users     *userstore.Store
	Resp      *httperr.Writer
	Log       *zap.Logger
}

func NewHandler(bindings *recruiters.Store, companyStore *companies.Store, users *userstore.Store, resp *httperr.Writer, logger *zap.Logger) *Handler {
	return &Handler{
		Bindings:  bindings,
		Companies: companyStore,
		Users:     users,
		Resp:      resp,
		Log:       logger,
	}
}

// bindingView is the JSON shape for a binding across all endpoints.
// ApplicantName is only populated on the admin queue, where the store
// join happens.
type bindingView struct {
	ID            string  `json:"id"`
	UserID        string  `json:"userId"`
	ApplicantName string  `json:"applicantName,omitempty"`
	CompanyName   string  `json:"companyName"`
	CompanyEmail  string  `json:"companyEmail"`
	RoleTitle     string  `json:"roleTitle"`
	Status        string  `json:"status"`
	CompanyID     string  `json:"companyId,omitempty"`
	AdminNote     string  `json:"adminNote,omitempty"`
	RequestedAt   string  `json:"requestedAt"`
	DecidedAt     *string `json:"decidedAt,omitempty"`
}
