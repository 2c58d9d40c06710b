// Package analyticspolicy decides which single company's review data a
// caller may aggregate.
//
// Authorization rules:
//   - Recruiters see exactly the company on their approved binding; a
//     pending or rejected recruiter has no scope yet.
//   - Admins may name any company, or none - "no company" is a valid
//     empty scope that yields zero metrics, never an error.
//   - Other roles cannot access analytics at all.
//
// The resolver is a pure gate with no side effects and must run before
// any review data is touched.
package analyticspolicy

import (
	"github.com/hirelens/hirelens/internal/app/system/httperr"
	"github.com/hirelens/hirelens/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Scope is the single company a request is authorized to read.
type Scope struct {
	// Empty marks the degenerate admin scope: no company selected.
	// Aggregation short-circuits to a zero result without a data fetch.
	Empty bool
	// CompanyID is the authorized company when Empty is false.
	CompanyID primitive.ObjectID
}

// EmptyScope is the no-company sentinel.
var EmptyScope = Scope{Empty: true}

// Resolve maps (role, approved binding, requested company) to a Scope.
//
// approved is the caller's current approved binding, nil when none
// exists; it is only consulted for recruiters. companyIDParam is the raw
// ?companyId= value and is only honored for admins - a recruiter cannot
// widen their scope by supplying one.
func Resolve(role string, approved *models.RecruiterBinding, companyIDParam string) (Scope, error) {
	switch role {
	case "recruiter":
		if approved == nil || approved.Status != models.BindingApproved || approved.CompanyID == nil {
			return Scope{}, httperr.New(httperr.UnauthorizedScope,
				"recruiter access has not been approved yet")
		}
		return Scope{CompanyID: *approved.CompanyID}, nil

	case "admin":
		if companyIDParam == "" {
			return EmptyScope, nil
		}
		oid, err := primitive.ObjectIDFromHex(companyIDParam)
		if err != nil {
			return Scope{}, httperr.New(httperr.InvalidArgument,
				"malformed company id %q", companyIDParam)
		}
		return Scope{CompanyID: oid}, nil

	default:
		return Scope{}, httperr.New(httperr.Forbidden,
			"analytics is limited to recruiters and admins")
	}
}
