// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/spool-service/internal/domain/dto"
	"github.com/guttosm/spool-service/internal/domain/model"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockVendorService mocks service.VendorService.
type MockVendorService struct {
	mock.Mock
}

func (m *MockVendorService) List(ctx context.Context, limit, skip int) ([]model.Vendor, error) {
	args := m.Called(ctx, limit, skip)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Vendor), args.Error(1)
}

func (m *MockVendorService) Get(ctx context.Context, id primitive.ObjectID) (*model.Vendor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Vendor), args.Error(1)
}

func (m *MockVendorService) Create(ctx context.Context, req dto.CreateVendorRequest) (*model.Vendor, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Vendor), args.Error(1)
}

func (m *MockVendorService) Update(ctx context.Context, id primitive.ObjectID, req dto.UpdateVendorRequest) (*model.Vendor, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Vendor), args.Error(1)
}

func (m *MockVendorService) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockFilamentService mocks service.FilamentService.
type MockFilamentService struct {
	mock.Mock
}

func (m *MockFilamentService) List(ctx context.Context, q model.FilamentQuery) ([]model.Filament, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Filament), args.Error(1)
}

func (m *MockFilamentService) Get(ctx context.Context, id primitive.ObjectID) (*model.Filament, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Filament), args.Error(1)
}

func (m *MockFilamentService) Create(ctx context.Context, req dto.CreateFilamentRequest) (*model.Filament, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Filament), args.Error(1)
}

func (m *MockFilamentService) Update(ctx context.Context, id primitive.ObjectID, req dto.UpdateFilamentRequest) (*model.Filament, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Filament), args.Error(1)
}

func (m *MockFilamentService) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockSpoolService mocks service.SpoolService.
type MockSpoolService struct {
	mock.Mock
}

func (m *MockSpoolService) List(ctx context.Context, q model.SpoolQuery) ([]model.Spool, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Spool), args.Error(1)
}

func (m *MockSpoolService) Get(ctx context.Context, id primitive.ObjectID) (*model.Spool, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Spool), args.Error(1)
}

func (m *MockSpoolService) Create(ctx context.Context, req dto.CreateSpoolRequest) (*model.Spool, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Spool), args.Error(1)
}

func (m *MockSpoolService) Update(ctx context.Context, id primitive.ObjectID, req dto.UpdateSpoolRequest) (*model.Spool, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Spool), args.Error(1)
}

func (m *MockSpoolService) Use(ctx context.Context, id primitive.ObjectID, weight float64) (*model.Spool, error) {
	args := m.Called(ctx, id, weight)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Spool), args.Error(1)
}

func (m *MockSpoolService) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPrintJobService mocks service.PrintJobService.
type MockPrintJobService struct {
	mock.Mock
}

func (m *MockPrintJobService) Find(ctx context.Context, q model.PrintJobQuery) ([]model.PrintJob, int64, error) {
	args := m.Called(ctx, q)
	total, _ := args.Get(1).(int64)
	if args.Get(0) == nil {
		return nil, total, args.Error(2)
	}
	return args.Get(0).([]model.PrintJob), total, args.Error(2)
}

func (m *MockPrintJobService) Get(ctx context.Context, id primitive.ObjectID) (*model.PrintJob, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PrintJob), args.Error(1)
}

func (m *MockPrintJobService) Create(ctx context.Context, req dto.CreatePrintJobRequest) (*model.PrintJob, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PrintJob), args.Error(1)
}

func (m *MockPrintJobService) Update(ctx context.Context, id primitive.ObjectID, req dto.UpdatePrintJobRequest) (*model.PrintJob, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PrintJob), args.Error(1)
}

func (m *MockPrintJobService) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockSummaryService mocks service.SummaryService.
type MockSummaryService struct {
	mock.Mock
}

func (m *MockSummaryService) Summary(ctx context.Context) (model.FilamentSummary, error) {
	args := m.Called(ctx)
	summary, _ := args.Get(0).(model.FilamentSummary)
	return summary, args.Error(1)
}

func (m *MockSummaryService) Invalidate() {
	m.Called()
}

// MockLoggingService mocks service.LoggingService.
type MockLoggingService struct {
	mock.Mock
}

func (m *MockLoggingService) CreateLog(ctx context.Context, entry *model.LogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLoggingService) CreateLogs(ctx context.Context, entries []*model.LogEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockLoggingService) QueryLogs(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LogEntry), args.Error(1)
}

func (m *MockLoggingService) CountLogs(ctx context.Context, opts model.LogQueryOptions) (int64, error) {
	args := m.Called(ctx, opts)
	count, _ := args.Get(0).(int64)
	return count, args.Error(1)
}

func (m *MockLoggingService) History(ctx context.Context, resource, id string, limit int) ([]model.LogEntry, error) {
	args := m.Called(ctx, resource, id, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LogEntry), args.Error(1)
}
