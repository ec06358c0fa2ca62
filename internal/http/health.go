package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/spool-service/internal/circuitbreaker"
	"golang.org/x/sync/errgroup"
)

// defaultCheckTimeout bounds each readiness check.
const defaultCheckTimeout = 2 * time.Second

// HealthChecker reports whether a dependency is usable.
type HealthChecker interface {
	Check(ctx context.Context) error
}

// HealthCheckerFunc adapts a function to HealthChecker.
type HealthCheckerFunc func(ctx context.Context) error

// Check calls f.
func (f HealthCheckerFunc) Check(ctx context.Context) error {
	return f(ctx)
}

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	checkers        map[string]HealthChecker
	circuitBreakers map[string]*circuitbreaker.CircuitBreaker
	timeout         time.Duration
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{
		checkers:        make(map[string]HealthChecker),
		circuitBreakers: make(map[string]*circuitbreaker.CircuitBreaker),
		timeout:         defaultCheckTimeout,
	}
}

// RegisterChecker adds a dependency check to the readiness check.
func (h *HealthHandler) RegisterChecker(name string, checker HealthChecker) {
	if checker != nil {
		h.checkers[name] = checker
	}
}

// RegisterCircuitBreaker registers a circuit breaker for health monitoring.
func (h *HealthHandler) RegisterCircuitBreaker(name string, cb *circuitbreaker.CircuitBreaker) {
	if cb != nil {
		h.circuitBreakers[name] = cb
	}
}

// Register registers health endpoints on the router.
func (h *HealthHandler) Register(router *gin.Engine) {
	router.GET("/healthz", h.Liveness)
	router.GET("/readyz", h.Readiness)
}

// Liveness handles the liveness check endpoint.
// @Summary     Liveness check
// @Description Returns OK if the process is running.
// @Tags        Health
// @Produce     json
// @Success     200 {object} map[string]string "Service is alive"
// @Router      /healthz [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// CheckResult is the outcome of one readiness check.
type CheckResult struct {
	Status    string `json:"status"`
	LatencyMS int64  `json:"latency_ms"`
	Error     string `json:"error,omitempty"`
}

// ReadinessResponse is the body of GET /readyz.
type ReadinessResponse struct {
	Status   string                          `json:"status"`
	Checks   map[string]CheckResult          `json:"checks"`
	Circuits map[string]circuitbreaker.Stats `json:"circuits,omitempty"`
}

// Readiness handles the readiness check endpoint.
// @Summary     Readiness check
// @Description Pings MongoDB and inspects the repository circuit breakers. Checks run concurrently.
// @Tags        Health
// @Produce     json
// @Success     200 {object} ReadinessResponse "Service is ready"
// @Failure     503 {object} ReadinessResponse "Service is not ready"
// @Router      /readyz [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	resp := ReadinessResponse{
		Status: "ok",
		Checks: h.runChecks(c.Request.Context()),
	}

	for _, res := range resp.Checks {
		if res.Error != "" {
			resp.Status = "degraded"
		}
	}
	if len(h.circuitBreakers) > 0 {
		resp.Circuits = make(map[string]circuitbreaker.Stats, len(h.circuitBreakers))
		for name, cb := range h.circuitBreakers {
			stats := cb.GetStats()
			resp.Circuits[name] = stats
			if !stats.IsHealthy {
				resp.Status = "degraded"
			}
		}
	}

	status := http.StatusOK
	if resp.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, resp)
}

// runChecks runs every checker concurrently under the handler timeout.
func (h *HealthHandler) runChecks(parent context.Context) map[string]CheckResult {
	ctx, cancel := context.WithTimeout(parent, h.timeout)
	defer cancel()

	var (
		mu      sync.Mutex
		results = make(map[string]CheckResult, len(h.checkers))
		g       errgroup.Group
	)
	for name, checker := range h.checkers {
		g.Go(func() error {
			start := time.Now()
			err := checker.Check(ctx)
			res := CheckResult{Status: "ok", LatencyMS: time.Since(start).Milliseconds()}
			if err != nil {
				res.Status, res.Error = "failed", err.Error()
			}
			mu.Lock()
			results[name] = res
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return results
}
