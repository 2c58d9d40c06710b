// internal/app/features/reviews/view.go
package reviews

import (
	"time"

	"github.com/hirelens/hirelens/internal/domain/models"
)

func toView(rv models.Review) reviewView {
	return reviewView{
		ID:                 rv.ID.Hex(),
		CompanyID:          rv.CompanyID.Hex(),
		OverallRating:      rv.OverallRating,
		Comment:            rv.Comment,
		RecruiterResponded: rv.RecruiterResponded,
		CreatedAt:          rv.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func toViews(rvs []models.Review) []reviewView {
	out := make([]reviewView, len(rvs))
	for i, rv := range rvs {
		out[i] = toView(rv)
	}
	return out
}
