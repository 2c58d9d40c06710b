// internal/app/features/recruiters/view.go
package recruiters

import (
	"time"

	"github.com/hirelens/hirelens/internal/domain/models"
)

func toView(b models.RecruiterBinding) bindingView {
	v := bindingView{
		ID:           b.ID.Hex(),
		UserID:       b.UserID.Hex(),
		CompanyName:  b.CompanyName,
		CompanyEmail: b.CompanyEmail,
		RoleTitle:    b.RoleTitle,
		Status:       b.Status,
		AdminNote:    b.AdminNote,
		RequestedAt:  b.RequestedAt.UTC().Format(time.RFC3339),
	}
	if b.CompanyID != nil {
		v.CompanyID = b.CompanyID.Hex()
	}
	if b.DecidedAt != nil {
		decided := b.DecidedAt.UTC().Format(time.RFC3339)
		v.DecidedAt = &decided
	}
	return v
}

func toViews(bs []models.RecruiterBinding) []bindingView {
	out := make([]bindingView, len(bs))
	for i, b := range bs {
		out[i] = toView(b)
	}
	return out
}
