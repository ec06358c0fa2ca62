// Package app provides router configuration.
package app

import (
	"context"
	"errors"
	"time"

	"github.com/guttosm/spool-service/config"
	"github.com/guttosm/spool-service/internal/http"
	"github.com/guttosm/spool-service/internal/middleware"
)

// errDatabaseUnavailable is reported by readiness when startup could not
// connect to MongoDB.
var errDatabaseUnavailable = errors.New("database not connected")

// summaryRoute scans every active spool and gets its own deadline.
const summaryRoute = "/api/summary"

// RouterComponents holds router-related components. The background workers
// it owns are stopped by Stop.
type RouterComponents struct {
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
	AsyncLogger   *middleware.AsyncLogger
	RateLimiter   *middleware.ShardedRateLimiter
	Idempotency   *middleware.IdempotencyConfig
}

// InitializeRouter builds the health handler and router configuration for
// the inventory API.
func InitializeRouter(db *DatabaseComponents, svcs *ServiceComponents, cfg config.Config) *RouterComponents {
	healthHandler := http.NewHealthHandler()
	if db != nil && db.DB != nil {
		healthHandler.RegisterChecker("mongodb", http.HealthCheckerFunc(db.DB.HealthCheck))
		for name, cb := range db.Breakers {
			healthHandler.RegisterCircuitBreaker(name, cb)
		}
	} else {
		healthHandler.RegisterChecker("mongodb", http.HealthCheckerFunc(func(context.Context) error {
			return errDatabaseUnavailable
		}))
	}

	idem := middleware.DefaultIdempotencyConfig()
	components := &RouterComponents{
		HealthHandler: healthHandler,
		Idempotency:   &idem,
	}

	routerCfg := http.DefaultRouterConfig()
	routerCfg.RateLimit = cfg.Server.RateLimit
	routerCfg.RateWindow = cfg.Server.RateWindow
	routerCfg.EnableAuth = cfg.Auth.Enabled
	routerCfg.APIKeys = cfg.Auth.APIKeys
	routerCfg.CORSOrigins = cfg.Server.CORSOrigins
	routerCfg.SwaggerUser = cfg.Server.SwaggerUser
	routerCfg.SwaggerPass = cfg.Server.SwaggerPass
	timeouts := middleware.DefaultTimeoutConfig()
	if cfg.Server.RequestTimeout > 0 {
		timeouts.Timeout = cfg.Server.RequestTimeout
	}
	if cfg.Server.SummaryTimeout > 0 {
		timeouts.Routes = map[string]time.Duration{summaryRoute: cfg.Server.SummaryTimeout}
	}
	routerCfg.RequestTimeout = timeouts.Timeout
	routerCfg.RouteTimeouts = timeouts.Routes
	routerCfg.Idempotency = components.Idempotency

	if cfg.Server.RateLimit > 0 {
		components.RateLimiter = middleware.NewRateLimiter(cfg.Server.RateLimit, cfg.Server.RateWindow)
		routerCfg.RateLimiter = components.RateLimiter
	}

	// Audit entries are only persisted when there is somewhere to put them.
	if db != nil {
		components.AsyncLogger = middleware.NewAsyncLogger(svcs.Logging, middleware.DefaultAsyncLoggerConfig())
		routerCfg.AuditSink = components.AsyncLogger
	}

	routerCfg.VendorService = svcs.Vendors
	routerCfg.FilamentService = svcs.Filaments
	routerCfg.SpoolService = svcs.Spools
	routerCfg.PrintJobService = svcs.PrintJobs
	routerCfg.SummaryService = svcs.Summary
	routerCfg.LoggingService = svcs.Logging

	components.Config = routerCfg
	return components
}

// Stop drains the audit logger and stops the limiter and idempotency
// cleanup goroutines.
func (r *RouterComponents) Stop() {
	if r.AsyncLogger != nil {
		r.AsyncLogger.Stop()
	}
	if r.RateLimiter != nil {
		r.RateLimiter.Stop()
	}
	if r.Idempotency != nil && r.Idempotency.Cache != nil {
		r.Idempotency.Cache.Stop()
	}
}
