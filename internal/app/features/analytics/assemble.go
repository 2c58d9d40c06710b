// internal/app/features/analytics/assemble.go
package analytics

import (
	"time"

	"github.com/hirelens/hirelens/internal/app/policy/analyticspolicy"
)

// BuildResult packages metrics with the resolved metadata. The empty
// scope serializes with a blank companyId; everything else echoes the
// authorized company so the dashboard can label itself.
func BuildResult(scope analyticspolicy.Scope, w Window, metrics Metrics, generatedAt time.Time) Result {
	companyID := ""
	if !scope.Empty {
		companyID = scope.CompanyID.Hex()
	}
	return Result{
		Success: true,
		Meta: Meta{
			CompanyID:   companyID,
			Range:       w.RangeKey,
			Interval:    w.Interval,
			GeneratedAt: generatedAt.UTC(),
		},
		Metrics: metrics,
	}
}
