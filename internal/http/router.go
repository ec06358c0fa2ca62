package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/guttosm/spool-service/internal/metrics"
	"github.com/guttosm/spool-service/internal/middleware"
	"github.com/guttosm/spool-service/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RouterConfig holds router configuration options.
type RouterConfig struct {
	RateLimit      int
	RateWindow     time.Duration
	APIKeys        map[string]bool
	EnableAuth     bool
	CORSOrigins    []string
	SwaggerUser    string
	SwaggerPass    string
	RequestTimeout time.Duration
	// RouteTimeouts overrides RequestTimeout for specific route patterns.
	RouteTimeouts map[string]time.Duration

	// RateLimiter, when set, is used instead of building one from RateLimit.
	// The caller owns it and stops it on shutdown.
	RateLimiter *middleware.ShardedRateLimiter
	// Idempotency, when set and enabled, guards the API write routes.
	Idempotency *middleware.IdempotencyConfig
	// AuditSink receives request and audit entries for persistence.
	AuditSink middleware.EntrySink

	VendorService   service.VendorService
	FilamentService service.FilamentService
	SpoolService    service.SpoolService
	PrintJobService service.PrintJobService
	SummaryService  service.SummaryService
	LoggingService  service.LoggingService
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RateLimit:      100,
		RateWindow:     time.Minute,
		RequestTimeout: middleware.DefaultTimeoutConfig().Timeout,
	}
}

// NewRouter creates and configures the Gin router for the spool service.
func NewRouter(healthHandler *HealthHandler, cfg RouterConfig) *gin.Engine {
	router := gin.New()

	configureGlobalMiddleware(router, &cfg)
	registerInfrastructureRoutes(router, healthHandler, &cfg)

	api := router.Group("/api")
	configureAPIMiddleware(api, &cfg)

	groups := []RouteGroup{
		NewInventoryRoutes(&cfg),
	}
	if cfg.LoggingService != nil {
		groups = append(groups, &LogRoutes{Logs: NewLogsHandler(cfg.LoggingService)})
	}
	for _, g := range groups {
		g.RegisterRoutes(api)
	}

	return router
}

// configureGlobalMiddleware sets up middleware applied to all routes.
func configureGlobalMiddleware(router *gin.Engine, cfg *RouterConfig) {
	allowedOrigins := cfg.CORSOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{
			"Origin", "Content-Type", "Accept", "Accept-Encoding", "Accept-Language", "Cache-Control",
			"Authorization", middleware.APIKeyHeader, middleware.IdempotencyKeyHeader, middleware.RequestIDHeader,
		},
		ExposeHeaders: []string{
			middleware.RequestIDHeader,
			middleware.IdempotencyReplayedHeader,
			middleware.RateLimitLimitHeader,
			middleware.RateLimitRemainingHeader,
			middleware.RateLimitResetHeader,
			"Retry-After",
			"Location",
			TotalCountHeader,
		},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression(),
		middleware.RequestLogger(cfg.AuditSink),
		middleware.ErrorHandler(),
		middleware.WithAuditSink(cfg.AuditSink),
	)

	limiter := cfg.RateLimiter
	if limiter == nil && cfg.RateLimit > 0 {
		limiter = middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
	}
	if limiter != nil {
		router.Use(limiter.RateLimit())
	}

	router.Use(middleware.Timeout(middleware.TimeoutConfig{Timeout: cfg.RequestTimeout, Routes: cfg.RouteTimeouts}))
}

// registerInfrastructureRoutes registers health, metrics, and documentation routes.
func registerInfrastructureRoutes(router *gin.Engine, healthHandler *HealthHandler, cfg *RouterConfig) {
	if healthHandler != nil {
		healthHandler.Register(router)
	}
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.SwaggerUser != "" && cfg.SwaggerPass != "" {
		authorized := router.Group("/swagger", gin.BasicAuth(gin.Accounts{
			cfg.SwaggerUser: cfg.SwaggerPass,
		}))
		authorized.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	} else {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

// configureAPIMiddleware sets up middleware for the API group.
// Authentication runs first so a replayed response is never served to an
// unauthenticated caller.
func configureAPIMiddleware(api *gin.RouterGroup, cfg *RouterConfig) {
	if cfg.EnableAuth && len(cfg.APIKeys) > 0 {
		api.Use(middleware.APIKeyAuth(cfg.APIKeys))
	}
	if cfg.Idempotency != nil && cfg.Idempotency.Enabled {
		api.Use(middleware.Idempotency(*cfg.Idempotency))
	}
}
