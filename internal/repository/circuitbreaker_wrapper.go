// Package repository provides circuit breaker wrappers for MongoDB operations.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/guttosm/spool-service/internal/circuitbreaker"
	"github.com/guttosm/spool-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// guarded runs fn through the breaker and returns its result.
// ErrNotFound is a valid answer and never counts against the database.
func guarded[T any](ctx context.Context, cb *circuitbreaker.CircuitBreaker, fn func() (T, error)) (T, error) {
	var result T
	var notFoundErr error
	err := cb.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = fn()
		if errors.Is(cbErr, ErrNotFound) {
			notFoundErr = cbErr
			return nil
		}
		return cbErr
	})
	if err == nil && notFoundErr != nil {
		return result, notFoundErr
	}
	return result, err
}

func guardedErr(ctx context.Context, cb *circuitbreaker.CircuitBreaker, fn func() error) error {
	_, err := guarded(ctx, cb, func() (struct{}, error) {
		return struct{}{}, fn()
	})
	return err
}

// VendorRepositoryWithCircuitBreaker wraps a vendor repository with circuit breaker protection.
type VendorRepositoryWithCircuitBreaker struct {
	repo           VendorRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewVendorRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewVendorRepositoryWithCircuitBreaker(repo VendorRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *VendorRepositoryWithCircuitBreaker {
	return &VendorRepositoryWithCircuitBreaker{repo: repo, circuitBreaker: cb}
}

func (r *VendorRepositoryWithCircuitBreaker) List(ctx context.Context, limit, skip int) ([]model.Vendor, error) {
	return guarded(ctx, r.circuitBreaker, func() ([]model.Vendor, error) {
		return r.repo.List(ctx, limit, skip)
	})
}

func (r *VendorRepositoryWithCircuitBreaker) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Vendor, error) {
	return guarded(ctx, r.circuitBreaker, func() (*model.Vendor, error) {
		return r.repo.GetByID(ctx, id)
	})
}

func (r *VendorRepositoryWithCircuitBreaker) FindByName(ctx context.Context, name string) (*model.Vendor, error) {
	return guarded(ctx, r.circuitBreaker, func() (*model.Vendor, error) {
		return r.repo.FindByName(ctx, name)
	})
}

func (r *VendorRepositoryWithCircuitBreaker) Create(ctx context.Context, vendor *model.Vendor) error {
	return guardedErr(ctx, r.circuitBreaker, func() error {
		return r.repo.Create(ctx, vendor)
	})
}

func (r *VendorRepositoryWithCircuitBreaker) Update(ctx context.Context, id primitive.ObjectID, changes bson.M) (*model.Vendor, error) {
	return guarded(ctx, r.circuitBreaker, func() (*model.Vendor, error) {
		return r.repo.Update(ctx, id, changes)
	})
}

func (r *VendorRepositoryWithCircuitBreaker) Delete(ctx context.Context, id primitive.ObjectID) error {
	return guardedErr(ctx, r.circuitBreaker, func() error {
		return r.repo.Delete(ctx, id)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *VendorRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// FilamentRepositoryWithCircuitBreaker wraps a filament repository with circuit breaker protection.
type FilamentRepositoryWithCircuitBreaker struct {
	repo           FilamentRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewFilamentRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewFilamentRepositoryWithCircuitBreaker(repo FilamentRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *FilamentRepositoryWithCircuitBreaker {
	return &FilamentRepositoryWithCircuitBreaker{repo: repo, circuitBreaker: cb}
}

func (r *FilamentRepositoryWithCircuitBreaker) List(ctx context.Context, q model.FilamentQuery) ([]model.Filament, error) {
	return guarded(ctx, r.circuitBreaker, func() ([]model.Filament, error) {
		return r.repo.List(ctx, q)
	})
}

func (r *FilamentRepositoryWithCircuitBreaker) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Filament, error) {
	return guarded(ctx, r.circuitBreaker, func() (*model.Filament, error) {
		return r.repo.GetByID(ctx, id)
	})
}

func (r *FilamentRepositoryWithCircuitBreaker) FindByName(ctx context.Context, name string) (*model.Filament, error) {
	return guarded(ctx, r.circuitBreaker, func() (*model.Filament, error) {
		return r.repo.FindByName(ctx, name)
	})
}

func (r *FilamentRepositoryWithCircuitBreaker) CountByVendor(ctx context.Context, vendorID primitive.ObjectID) (int64, error) {
	return guarded(ctx, r.circuitBreaker, func() (int64, error) {
		return r.repo.CountByVendor(ctx, vendorID)
	})
}

func (r *FilamentRepositoryWithCircuitBreaker) Create(ctx context.Context, filament *model.Filament) error {
	return guardedErr(ctx, r.circuitBreaker, func() error {
		return r.repo.Create(ctx, filament)
	})
}

func (r *FilamentRepositoryWithCircuitBreaker) Update(ctx context.Context, id primitive.ObjectID, changes bson.M) (*model.Filament, error) {
	return guarded(ctx, r.circuitBreaker, func() (*model.Filament, error) {
		return r.repo.Update(ctx, id, changes)
	})
}

func (r *FilamentRepositoryWithCircuitBreaker) Delete(ctx context.Context, id primitive.ObjectID) error {
	return guardedErr(ctx, r.circuitBreaker, func() error {
		return r.repo.Delete(ctx, id)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *FilamentRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// SpoolRepositoryWithCircuitBreaker wraps a spool repository with circuit breaker protection.
type SpoolRepositoryWithCircuitBreaker struct {
	repo           SpoolRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewSpoolRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewSpoolRepositoryWithCircuitBreaker(repo SpoolRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *SpoolRepositoryWithCircuitBreaker {
	return &SpoolRepositoryWithCircuitBreaker{repo: repo, circuitBreaker: cb}
}

func (r *SpoolRepositoryWithCircuitBreaker) List(ctx context.Context, q model.SpoolQuery) ([]model.Spool, error) {
	return guarded(ctx, r.circuitBreaker, func() ([]model.Spool, error) {
		return r.repo.List(ctx, q)
	})
}

func (r *SpoolRepositoryWithCircuitBreaker) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Spool, error) {
	return guarded(ctx, r.circuitBreaker, func() (*model.Spool, error) {
		return r.repo.GetByID(ctx, id)
	})
}

func (r *SpoolRepositoryWithCircuitBreaker) Count(ctx context.Context) (int64, error) {
	return guarded(ctx, r.circuitBreaker, func() (int64, error) {
		return r.repo.Count(ctx)
	})
}

func (r *SpoolRepositoryWithCircuitBreaker) CountByFilament(ctx context.Context, filamentID primitive.ObjectID) (int64, error) {
	return guarded(ctx, r.circuitBreaker, func() (int64, error) {
		return r.repo.CountByFilament(ctx, filamentID)
	})
}

func (r *SpoolRepositoryWithCircuitBreaker) Create(ctx context.Context, spool *model.Spool) error {
	return guardedErr(ctx, r.circuitBreaker, func() error {
		return r.repo.Create(ctx, spool)
	})
}

func (r *SpoolRepositoryWithCircuitBreaker) Update(ctx context.Context, id primitive.ObjectID, changes bson.M) (*model.Spool, error) {
	return guarded(ctx, r.circuitBreaker, func() (*model.Spool, error) {
		return r.repo.Update(ctx, id, changes)
	})
}

func (r *SpoolRepositoryWithCircuitBreaker) Use(ctx context.Context, id primitive.ObjectID, weight, initial float64, at time.Time) (*model.Spool, error) {
	return guarded(ctx, r.circuitBreaker, func() (*model.Spool, error) {
		return r.repo.Use(ctx, id, weight, initial, at)
	})
}

func (r *SpoolRepositoryWithCircuitBreaker) Delete(ctx context.Context, id primitive.ObjectID) error {
	return guardedErr(ctx, r.circuitBreaker, func() error {
		return r.repo.Delete(ctx, id)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *SpoolRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// PrintJobRepositoryWithCircuitBreaker wraps a print job repository with circuit breaker protection.
type PrintJobRepositoryWithCircuitBreaker struct {
	repo           PrintJobRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewPrintJobRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewPrintJobRepositoryWithCircuitBreaker(repo PrintJobRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *PrintJobRepositoryWithCircuitBreaker {
	return &PrintJobRepositoryWithCircuitBreaker{repo: repo, circuitBreaker: cb}
}

type printJobPage struct {
	jobs  []model.PrintJob
	total int64
}

func (r *PrintJobRepositoryWithCircuitBreaker) Find(ctx context.Context, q model.PrintJobQuery) ([]model.PrintJob, int64, error) {
	page, err := guarded(ctx, r.circuitBreaker, func() (printJobPage, error) {
		jobs, total, err := r.repo.Find(ctx, q)
		return printJobPage{jobs: jobs, total: total}, err
	})
	if err != nil {
		return nil, 0, err
	}
	return page.jobs, page.total, nil
}

func (r *PrintJobRepositoryWithCircuitBreaker) GetByID(ctx context.Context, id primitive.ObjectID) (*model.PrintJob, error) {
	return guarded(ctx, r.circuitBreaker, func() (*model.PrintJob, error) {
		return r.repo.GetByID(ctx, id)
	})
}

func (r *PrintJobRepositoryWithCircuitBreaker) Create(ctx context.Context, job *model.PrintJob) error {
	return guardedErr(ctx, r.circuitBreaker, func() error {
		return r.repo.Create(ctx, job)
	})
}

func (r *PrintJobRepositoryWithCircuitBreaker) Update(ctx context.Context, id primitive.ObjectID, changes bson.M) (*model.PrintJob, error) {
	return guarded(ctx, r.circuitBreaker, func() (*model.PrintJob, error) {
		return r.repo.Update(ctx, id, changes)
	})
}

func (r *PrintJobRepositoryWithCircuitBreaker) Delete(ctx context.Context, id primitive.ObjectID) error {
	return guardedErr(ctx, r.circuitBreaker, func() error {
		return r.repo.Delete(ctx, id)
	})
}

func (r *PrintJobRepositoryWithCircuitBreaker) DeleteBySpool(ctx context.Context, spoolID primitive.ObjectID) (int64, error) {
	return guarded(ctx, r.circuitBreaker, func() (int64, error) {
		return r.repo.DeleteBySpool(ctx, spoolID)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *PrintJobRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker wraps a logs repository with circuit breaker protection.
type LogsRepositoryWithCircuitBreaker struct {
	repo           LogsRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewLogsRepositoryWithCircuitBreaker(repo LogsRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{repo: repo, circuitBreaker: cb}
}

// Create stores a single log entry. Entries are dropped while the circuit is open.
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *model.LogEntry) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// CreateMany stores multiple log entries. Entries are dropped while the circuit is open.
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*model.LogEntry) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error) {
	return guarded(ctx, r.circuitBreaker, func() ([]model.LogEntry, error) {
		return r.repo.Query(ctx, opts)
	})
}

func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts model.LogQueryOptions) (int64, error) {
	return guarded(ctx, r.circuitBreaker, func() (int64, error) {
		return r.repo.Count(ctx, opts)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
