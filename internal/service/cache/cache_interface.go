// Package cache defines the contract of the filament summary cache.
package cache

import "github.com/guttosm/spool-service/internal/domain/model"

// SummaryCache holds at most one computed summary.
//
// Every write to the inventory bumps the generation. A computation started
// under an older generation may still be returned to its caller but Set
// refuses to store it.
type SummaryCache interface {
	// Get returns the cached summary when present and fresh. The returned
	// generation must be passed to Set after a recomputation.
	Get() (model.FilamentSummary, uint64, bool)
	// Set stores the summary if generation is still current.
	Set(generation uint64, summary model.FilamentSummary) bool
	// Invalidate drops the cached summary and starts a new generation.
	Invalidate()
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits          int64
	Misses        int64
	Invalidations int64
	StaleWrites   int64
	Generation    uint64
}

// SummaryCacheWithMetrics extends SummaryCache with metrics reporting.
type SummaryCacheWithMetrics interface {
	SummaryCache
	Metrics() Metrics
}
