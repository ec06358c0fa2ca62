// Package service contains the business logic for the spool service.
package service

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/spool-service/internal/domain/model"
	"github.com/guttosm/spool-service/internal/metrics"
	"github.com/guttosm/spool-service/internal/service/cache"
)

// ttlSummaryCache is a single-entry summary cache with TTL expiration and
// generation based invalidation. It implements cache.SummaryCacheWithMetrics.
type ttlSummaryCache struct {
	mu         sync.RWMutex
	ttl        time.Duration
	summary    model.FilamentSummary
	expiresAt  time.Time
	valid      bool
	generation uint64
	now        func() time.Time

	hits          int64
	misses        int64
	invalidations int64
	staleWrites   int64
}

// NewSummaryCache creates a summary cache. A non-positive ttl disables
// caching: Get always misses and Set never stores.
func NewSummaryCache(ttl time.Duration) cache.SummaryCacheWithMetrics {
	return &ttlSummaryCache{ttl: ttl, now: time.Now}
}

func (c *ttlSummaryCache) Get() (model.FilamentSummary, uint64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.valid {
		atomic.AddInt64(&c.misses, 1)
		metrics.RecordCacheOperation("get", "miss")
		return model.FilamentSummary{}, c.generation, false
	}
	if c.now().After(c.expiresAt) {
		atomic.AddInt64(&c.misses, 1)
		metrics.RecordCacheOperation("get", "expired")
		return model.FilamentSummary{}, c.generation, false
	}

	atomic.AddInt64(&c.hits, 1)
	metrics.RecordCacheOperation("get", "hit")
	return c.summary, c.generation, true
}

func (c *ttlSummaryCache) Set(generation uint64, summary model.FilamentSummary) bool {
	if c.ttl <= 0 {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if generation != c.generation {
		atomic.AddInt64(&c.staleWrites, 1)
		metrics.RecordCacheOperation("set", "stale")
		return false
	}
	c.summary = summary
	c.expiresAt = c.now().Add(c.ttl)
	c.valid = true
	metrics.RecordCacheOperation("set", "success")
	return true
}

func (c *ttlSummaryCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generation++
	c.valid = false
	c.summary = model.FilamentSummary{}
	atomic.AddInt64(&c.invalidations, 1)
	metrics.RecordCacheOperation("invalidate", "success")
}

// Metrics returns current cache performance metrics.
func (c *ttlSummaryCache) Metrics() cache.Metrics {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return cache.Metrics{
		Hits:          atomic.LoadInt64(&c.hits),
		Misses:        atomic.LoadInt64(&c.misses),
		Invalidations: atomic.LoadInt64(&c.invalidations),
		StaleWrites:   atomic.LoadInt64(&c.staleWrites),
		Generation:    c.generation,
	}
}
