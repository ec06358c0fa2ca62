// Package metrics provides Prometheus metrics collection for the spool service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// SummaryAggregationsTotal tracks filament summary computations.
	SummaryAggregationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "filament_summary_aggregations_total",
			Help: "Total number of filament summary aggregations",
		},
		[]string{"status"},
	)

	// SummaryAggregationDuration tracks time spent loading and grouping spools.
	SummaryAggregationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "filament_summary_aggregation_duration_seconds",
			Help:    "Filament summary aggregation duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		},
	)

	// SummaryGroups tracks the number of groups in the last computed summary.
	SummaryGroups = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "filament_summary_groups",
			Help: "Number of filament groups in the last summary",
		},
	)

	// ActiveSpools tracks the active spool count of the last computed summary.
	ActiveSpools = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "filament_active_spools",
			Help: "Number of non-archived spools in the last summary",
		},
	)

	// RemainingWeightGrams tracks total remaining filament of the last computed summary.
	RemainingWeightGrams = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "filament_remaining_weight_grams",
			Help: "Total remaining filament weight in grams",
		},
	)

	// SpoolUsageGrams tracks filament consumed through the use endpoint.
	SpoolUsageGrams = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "filament_spool_usage_grams_total",
			Help: "Total filament weight consumed from spools in grams",
		},
	)

	// CacheOperationsTotal tracks cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"operation", "result"},
	)

	// PanicsRecoveredTotal counts handler panics turned into 500 responses.
	PanicsRecoveredTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_panics_recovered_total",
			Help: "Total number of recovered handler panics",
		},
		[]string{"path"},
	)

	// LogEntriesTotal tracks persisted request and audit entries by outcome
	// (written, failed, dropped).
	LogEntriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "log_entries_total",
			Help: "Total number of log entries handed to the async logger, by outcome",
		},
		[]string{"result"},
	)

	// RateLimitedTotal counts rejected requests by client kind (key or ip).
	RateLimitedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_rate_limited_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
		[]string{"client"},
	)

	// CircuitBreakerState tracks breaker state per repository (0 closed, 1 open, 2 half-open).
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0 closed, 1 open, 2 half-open)",
		},
		[]string{"name"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := routeLabel(c)

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// unmatchedRoute labels requests no route matched, keeping label
// cardinality bounded.
const unmatchedRoute = "unmatched"

func routeLabel(c *gin.Context) string {
	if route := c.FullPath(); route != "" {
		return route
	}
	return unmatchedRoute
}

// RecordPanic counts a recovered panic on the matched route.
func RecordPanic(c *gin.Context) {
	PanicsRecoveredTotal.WithLabelValues(routeLabel(c)).Inc()
}

// RecordLogEntries counts n log entries with the given outcome.
func RecordLogEntries(result string, n int) {
	if n > 0 {
		LogEntriesTotal.WithLabelValues(result).Add(float64(n))
	}
}

// RecordRateLimited counts a rejected request.
func RecordRateLimited(client string) {
	RateLimitedTotal.WithLabelValues(client).Inc()
}

// RecordSummaryAggregation records metrics for a summary computation.
func RecordSummaryAggregation(duration time.Duration, status string) {
	SummaryAggregationDuration.Observe(duration.Seconds())
	SummaryAggregationsTotal.WithLabelValues(status).Inc()
}

// UpdateSummaryMetrics publishes the totals of a freshly computed summary.
func UpdateSummaryMetrics(groups, spools int, remaining float64) {
	SummaryGroups.Set(float64(groups))
	ActiveSpools.Set(float64(spools))
	RemainingWeightGrams.Set(remaining)
}

// RecordSpoolUsage adds consumed grams to the usage counter.
func RecordSpoolUsage(grams float64) {
	if grams > 0 {
		SpoolUsageGrams.Add(grams)
	}
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// SetCircuitBreakerState publishes a breaker state.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}
