// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	analyticsfeature "github.com/hirelens/hirelens/internal/app/features/analytics"
	companiesfeature "github.com/hirelens/hirelens/internal/app/features/companies"
	healthfeature "github.com/hirelens/hirelens/internal/app/features/health"
	recruitersfeature "github.com/hirelens/hirelens/internal/app/features/recruiters"
	reviewsfeature "github.com/hirelens/hirelens/internal/app/features/reviews"
	companystore "github.com/hirelens/hirelens/internal/app/store/companies"
	recruiterstore "github.com/hirelens/hirelens/internal/app/store/recruiters"
	reviewstore "github.com/hirelens/hirelens/internal/app/store/reviews"
	userstore "github.com/hirelens/hirelens/internal/app/store/users"
	"github.com/hirelens/hirelens/internal/app/system/auth"
	"github.com/hirelens/hirelens/internal/app/system/httperr"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: any DB or backend clients bundled in DBDeps
//   - logger: the fully configured zap.Logger for this app
//
// HireLens initializes the token manager, applies the identity-loading
// middleware globally, and mounts feature routers for health, analytics,
// the recruiter workflow, reviews, and the company directory.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	tokenMgr, err := auth.NewManager(appCfg.TokenKey, appCfg.TokenTTL, logger)
	if err != nil {
		logger.Error("token manager init failed", zap.Error(err))
		return nil, err
	}

	resp := httperr.NewWriter(logger)

	bindings := recruiterstore.New(deps.MongoDatabase)
	companies := companystore.New(deps.MongoDatabase)
	reviews := reviewstore.New(deps.MongoDatabase)
	users := userstore.New(deps.MongoDatabase)

	r := chi.NewRouter()

	// Global auth middleware: verifies the bearer token if present and
	// makes the caller identity available via auth.CurrentIdentity(r).
	r.Use(tokenMgr.LoadIdentity)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Recruiter analytics dashboard
	analyticsHandler := analyticsfeature.NewHandler(deps.MongoDatabase, reviews, bindings, resp, logger, appCfg.AnalyticsRecentLimit)
	r.Mount("/analytics", analyticsfeature.Routes(analyticsHandler, tokenMgr))

	// Recruiter access workflow: submission, triage, decisions
	recruitersHandler := recruitersfeature.NewHandler(bindings, companies, users, resp, logger)
	r.Mount("/recruiters", recruitersfeature.Routes(recruitersHandler, tokenMgr))

	// Candidate reviews and recruiter responses
	reviewsHandler := reviewsfeature.NewHandler(reviews, companies, bindings, resp, logger)
	r.Mount("/reviews", reviewsfeature.Routes(reviewsHandler, tokenMgr))

	// Company directory (includes per-company review feed)
	companiesHandler := companiesfeature.NewHandler(companies, resp, logger)
	r.Mount("/companies", companiesfeature.Routes(companiesHandler, reviewsHandler, tokenMgr))

	return r, nil
}
