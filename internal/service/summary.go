package service

import (
	"context"
	"time"

	"github.com/guttosm/spool-service/internal/domain/model"
	"github.com/guttosm/spool-service/internal/logger"
	"github.com/guttosm/spool-service/internal/metrics"
	"github.com/guttosm/spool-service/internal/repository"
	"github.com/guttosm/spool-service/internal/service/cache"
)

// DefaultListCeiling bounds how many spools a summary reads.
const DefaultListCeiling = 1000

// SummaryService builds the filament summary of the active inventory.
type SummaryService interface {
	Summary(ctx context.Context) (model.FilamentSummary, error)
	Invalidator
}

// SummaryServiceImpl implements SummaryService on top of Aggregate.
type SummaryServiceImpl struct {
	spools  repository.SpoolRepositoryInterface
	cache   cache.SummaryCache
	ceiling int
}

// NewSummaryService creates a summary service. A nil cache disables memoization.
func NewSummaryService(spools repository.SpoolRepositoryInterface, c cache.SummaryCache, ceiling int) SummaryService {
	if ceiling <= 0 {
		ceiling = DefaultListCeiling
	}
	return &SummaryServiceImpl{
		spools:  spools,
		cache:   c,
		ceiling: ceiling,
	}
}

// Summary returns the current summary, from cache when fresh.
//
// The cache generation is read before loading spools; if a write lands while
// the summary is being computed the result is still returned but not cached.
func (s *SummaryServiceImpl) Summary(ctx context.Context) (model.FilamentSummary, error) {
	if s.spools == nil {
		return model.FilamentSummary{}, ErrRepositoryNotConfigured
	}

	var generation uint64
	if s.cache != nil {
		cached, gen, ok := s.cache.Get()
		if ok {
			return cached, nil
		}
		generation = gen
	}

	start := time.Now()
	spools, err := s.spools.List(ctx, model.SpoolQuery{Limit: s.ceiling})
	if err != nil {
		metrics.RecordSummaryAggregation(time.Since(start), "error")
		return model.FilamentSummary{}, err
	}
	if len(spools) == s.ceiling {
		l := logger.FromContext(ctx)
		l.Warn().Int("ceiling", s.ceiling).Msg("Spool listing hit the ceiling; summary may be incomplete")
	}

	summary := Aggregate(spools)
	metrics.RecordSummaryAggregation(time.Since(start), "success")
	metrics.UpdateSummaryMetrics(len(summary.Groups), summary.TotalSpools, summary.TotalRemainingWeight)

	if s.cache != nil && !s.cache.Set(generation, summary) {
		l := logger.FromContext(ctx)
		l.Debug().Uint64("generation", generation).Msg("Discarded stale summary")
	}
	return summary, nil
}

// Invalidate drops any cached summary.
func (s *SummaryServiceImpl) Invalidate() {
	if s.cache != nil {
		s.cache.Invalidate()
	}
}
