package service

import (
	"context"
	"fmt"

	"github.com/guttosm/spool-service/internal/domain/model"
	"github.com/guttosm/spool-service/internal/repository"
)

// Audit resources an entry can point at.
const (
	ResourceVendor   = "vendor"
	ResourceFilament = "filament"
	ResourceSpool    = "spool"
	ResourcePrintJob = "print_job"
)

const (
	defaultLogLimit = 100
	maxLogLimit     = 1000
)

// LoggingService stores request and audit entries and reads them back.
type LoggingService interface {
	CreateLog(ctx context.Context, entry *model.LogEntry) error
	CreateLogs(ctx context.Context, entries []*model.LogEntry) error

	// QueryLogs returns matching entries, newest first.
	QueryLogs(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error)
	// CountLogs ignores paging options.
	CountLogs(ctx context.Context, opts model.LogQueryOptions) (int64, error)

	// History returns the audit trail of one resource, newest first.
	History(ctx context.Context, resource, id string, limit int) ([]model.LogEntry, error)
}

// LoggingServiceImpl implements LoggingService on the logs collection.
type LoggingServiceImpl struct {
	repo repository.LogsRepositoryInterface
}

// NewLoggingService creates a LoggingService. A nil repository makes every
// call fail with ErrRepositoryNotConfigured.
func NewLoggingService(repo repository.LogsRepositoryInterface) LoggingService {
	return &LoggingServiceImpl{repo: repo}
}

func (s *LoggingServiceImpl) CreateLog(ctx context.Context, entry *model.LogEntry) error {
	if s.repo == nil {
		return ErrRepositoryNotConfigured
	}
	if entry == nil {
		return fmt.Errorf("log entry: %w", ErrInvalidInput)
	}
	return s.repo.Create(ctx, entry)
}

func (s *LoggingServiceImpl) CreateLogs(ctx context.Context, entries []*model.LogEntry) error {
	batch := make([]*model.LogEntry, 0, len(entries))
	for _, e := range entries {
		if e != nil {
			batch = append(batch, e)
		}
	}
	if len(batch) == 0 {
		return nil
	}
	if s.repo == nil {
		return ErrRepositoryNotConfigured
	}
	return s.repo.CreateMany(ctx, batch)
}

func (s *LoggingServiceImpl) QueryLogs(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	opts, err := normalizeLogQuery(opts)
	if err != nil {
		return nil, err
	}
	return s.repo.Query(ctx, opts)
}

func (s *LoggingServiceImpl) CountLogs(ctx context.Context, opts model.LogQueryOptions) (int64, error) {
	if s.repo == nil {
		return 0, ErrRepositoryNotConfigured
	}
	opts, err := normalizeLogQuery(opts)
	if err != nil {
		return 0, err
	}
	opts.Limit, opts.Skip = 0, 0
	return s.repo.Count(ctx, opts)
}

func (s *LoggingServiceImpl) History(ctx context.Context, resource, id string, limit int) ([]model.LogEntry, error) {
	if _, err := ParseID("id", id); err != nil {
		return nil, err
	}
	return s.QueryLogs(ctx, model.LogQueryOptions{Resource: resource, ResourceID: id, Limit: limit})
}

// normalizeLogQuery checks filters and clamps the page size.
func normalizeLogQuery(opts model.LogQueryOptions) (model.LogQueryOptions, error) {
	if opts.Level != "" && !model.ValidLevel(opts.Level) {
		return opts, fmt.Errorf("level %q: %w", opts.Level, ErrInvalidInput)
	}
	switch opts.Resource {
	case "", ResourceVendor, ResourceFilament, ResourceSpool, ResourcePrintJob:
	default:
		return opts, fmt.Errorf("resource %q: %w", opts.Resource, ErrInvalidInput)
	}
	if opts.ResourceID != "" && opts.Resource == "" {
		return opts, fmt.Errorf("resource_id requires resource: %w", ErrInvalidInput)
	}
	if opts.StartTime != nil && opts.EndTime != nil && opts.StartTime.After(*opts.EndTime) {
		return opts, fmt.Errorf("since is after until: %w", ErrInvalidInput)
	}
	if opts.Skip < 0 {
		return opts, fmt.Errorf("skip %d: %w", opts.Skip, ErrInvalidInput)
	}
	switch {
	case opts.Limit <= 0:
		opts.Limit = defaultLogLimit
	case opts.Limit > maxLogLimit:
		opts.Limit = maxLogLimit
	}
	return opts, nil
}
