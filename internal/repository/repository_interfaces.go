package repository

import (
	"context"
	"time"

	"github.com/guttosm/spool-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VendorRepositoryInterface defines vendor persistence operations.
type VendorRepositoryInterface interface {
	List(ctx context.Context, limit, skip int) ([]model.Vendor, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Vendor, error)
	FindByName(ctx context.Context, name string) (*model.Vendor, error)
	Create(ctx context.Context, vendor *model.Vendor) error
	Update(ctx context.Context, id primitive.ObjectID, changes bson.M) (*model.Vendor, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// FilamentRepositoryInterface defines filament persistence operations.
type FilamentRepositoryInterface interface {
	List(ctx context.Context, q model.FilamentQuery) ([]model.Filament, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Filament, error)
	FindByName(ctx context.Context, name string) (*model.Filament, error)
	CountByVendor(ctx context.Context, vendorID primitive.ObjectID) (int64, error)
	Create(ctx context.Context, filament *model.Filament) error
	Update(ctx context.Context, id primitive.ObjectID, changes bson.M) (*model.Filament, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// SpoolRepositoryInterface defines spool persistence operations.
type SpoolRepositoryInterface interface {
	List(ctx context.Context, q model.SpoolQuery) ([]model.Spool, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Spool, error)
	Count(ctx context.Context) (int64, error)
	CountByFilament(ctx context.Context, filamentID primitive.ObjectID) (int64, error)
	Create(ctx context.Context, spool *model.Spool) error
	Update(ctx context.Context, id primitive.ObjectID, changes bson.M) (*model.Spool, error)
	Use(ctx context.Context, id primitive.ObjectID, weight, initial float64, at time.Time) (*model.Spool, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// PrintJobRepositoryInterface defines print job persistence operations.
type PrintJobRepositoryInterface interface {
	// Find returns one page of matching jobs, newest first, and the number
	// of jobs matching without paging.
	Find(ctx context.Context, q model.PrintJobQuery) ([]model.PrintJob, int64, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.PrintJob, error)
	Create(ctx context.Context, job *model.PrintJob) error
	Update(ctx context.Context, id primitive.ObjectID, changes bson.M) (*model.PrintJob, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteBySpool(ctx context.Context, spoolID primitive.ObjectID) (int64, error)
}

// LogsRepositoryInterface defines log persistence operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *model.LogEntry) error
	CreateMany(ctx context.Context, entries []*model.LogEntry) error
	Query(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error)
	Count(ctx context.Context, opts model.LogQueryOptions) (int64, error)
}
