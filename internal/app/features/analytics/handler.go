// internal/app/features/analytics/handler.go
package analytics

import (
	"time"

	"github.com/hirelens/hirelens/internal/app/store/recruiters"
	"github.com/hirelens/hirelens/internal/app/store/reviews"
	"github.com/hirelens/hirelens/internal/app/system/httperr"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// DefaultRecentLimit caps the most-recent slice when no limit is configured.
const DefaultRecentLimit = 5

// maxRecentLimit bounds configuration mistakes.
const maxRecentLimit = 50

// Handler owns the recruiter analytics endpoint.
//
// Now is the injected clock: the planner derives the whole window from a
// single reading of it, so tests can pin "now" and assert exact bucket
// boundaries.
type Handler struct {
	DB          *mongo.Database
	Reviews     *reviews.Store
	Bindings    *recruiters.Store
	Resp        *httperr.Writer
	Log         *zap.Logger
	Now         func() time.Time
	RecentLimit int
}

// NewHandler creates the analytics Handler.
func NewHandler(db *mongo.Database, reviewStore *reviews.Store, bindingStore *recruiters.Store, resp *httperr.Writer, logger *zap.Logger, recentLimit int) *Handler {
	if recentLimit <= 0 {
		recentLimit = DefaultRecentLimit
	}
	if recentLimit > maxRecentLimit {
		recentLimit = maxRecentLimit
	}
	return &Handler{
		DB:          db,
		Reviews:     reviewStore,
		Bindings:    bindingStore,
		Resp:        resp,
		Log:         logger,
		Now:         time.Now,
		RecentLimit: recentLimit,
	}
}
