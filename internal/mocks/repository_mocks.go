// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"
	"time"

	"github.com/guttosm/spool-service/internal/domain/model"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type cleanupT interface {
	mock.TestingT
	Cleanup(func())
}

// MockVendorRepositoryInterface mocks repository.VendorRepositoryInterface.
type MockVendorRepositoryInterface struct {
	mock.Mock
}

// NewMockVendorRepositoryInterface creates a mock that asserts its expectations on cleanup.
func NewMockVendorRepositoryInterface(t cleanupT) *MockVendorRepositoryInterface {
	m := &MockVendorRepositoryInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockVendorRepositoryInterface) List(ctx context.Context, limit, skip int) ([]model.Vendor, error) {
	args := m.Called(ctx, limit, skip)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Vendor), args.Error(1)
}

func (m *MockVendorRepositoryInterface) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Vendor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Vendor), args.Error(1)
}

func (m *MockVendorRepositoryInterface) FindByName(ctx context.Context, name string) (*model.Vendor, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Vendor), args.Error(1)
}

func (m *MockVendorRepositoryInterface) Create(ctx context.Context, vendor *model.Vendor) error {
	args := m.Called(ctx, vendor)
	return args.Error(0)
}

func (m *MockVendorRepositoryInterface) Update(ctx context.Context, id primitive.ObjectID, changes bson.M) (*model.Vendor, error) {
	args := m.Called(ctx, id, changes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Vendor), args.Error(1)
}

func (m *MockVendorRepositoryInterface) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockFilamentRepositoryInterface mocks repository.FilamentRepositoryInterface.
type MockFilamentRepositoryInterface struct {
	mock.Mock
}

// NewMockFilamentRepositoryInterface creates a mock that asserts its expectations on cleanup.
func NewMockFilamentRepositoryInterface(t cleanupT) *MockFilamentRepositoryInterface {
	m := &MockFilamentRepositoryInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockFilamentRepositoryInterface) List(ctx context.Context, q model.FilamentQuery) ([]model.Filament, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Filament), args.Error(1)
}

func (m *MockFilamentRepositoryInterface) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Filament, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Filament), args.Error(1)
}

func (m *MockFilamentRepositoryInterface) FindByName(ctx context.Context, name string) (*model.Filament, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Filament), args.Error(1)
}

func (m *MockFilamentRepositoryInterface) CountByVendor(ctx context.Context, vendorID primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, vendorID)
	count, _ := args.Get(0).(int64)
	return count, args.Error(1)
}

func (m *MockFilamentRepositoryInterface) Create(ctx context.Context, filament *model.Filament) error {
	args := m.Called(ctx, filament)
	return args.Error(0)
}

func (m *MockFilamentRepositoryInterface) Update(ctx context.Context, id primitive.ObjectID, changes bson.M) (*model.Filament, error) {
	args := m.Called(ctx, id, changes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Filament), args.Error(1)
}

func (m *MockFilamentRepositoryInterface) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockSpoolRepositoryInterface mocks repository.SpoolRepositoryInterface.
type MockSpoolRepositoryInterface struct {
	mock.Mock
}

// NewMockSpoolRepositoryInterface creates a mock that asserts its expectations on cleanup.
func NewMockSpoolRepositoryInterface(t cleanupT) *MockSpoolRepositoryInterface {
	m := &MockSpoolRepositoryInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockSpoolRepositoryInterface) List(ctx context.Context, q model.SpoolQuery) ([]model.Spool, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Spool), args.Error(1)
}

func (m *MockSpoolRepositoryInterface) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Spool, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Spool), args.Error(1)
}

func (m *MockSpoolRepositoryInterface) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	count, _ := args.Get(0).(int64)
	return count, args.Error(1)
}

func (m *MockSpoolRepositoryInterface) CountByFilament(ctx context.Context, filamentID primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, filamentID)
	count, _ := args.Get(0).(int64)
	return count, args.Error(1)
}

func (m *MockSpoolRepositoryInterface) Create(ctx context.Context, spool *model.Spool) error {
	args := m.Called(ctx, spool)
	return args.Error(0)
}

func (m *MockSpoolRepositoryInterface) Update(ctx context.Context, id primitive.ObjectID, changes bson.M) (*model.Spool, error) {
	args := m.Called(ctx, id, changes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Spool), args.Error(1)
}

func (m *MockSpoolRepositoryInterface) Use(ctx context.Context, id primitive.ObjectID, weight, initial float64, at time.Time) (*model.Spool, error) {
	args := m.Called(ctx, id, weight, initial, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Spool), args.Error(1)
}

func (m *MockSpoolRepositoryInterface) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPrintJobRepositoryInterface mocks repository.PrintJobRepositoryInterface.
type MockPrintJobRepositoryInterface struct {
	mock.Mock
}

// NewMockPrintJobRepositoryInterface creates a mock that asserts its expectations on cleanup.
func NewMockPrintJobRepositoryInterface(t cleanupT) *MockPrintJobRepositoryInterface {
	m := &MockPrintJobRepositoryInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockPrintJobRepositoryInterface) Find(ctx context.Context, q model.PrintJobQuery) ([]model.PrintJob, int64, error) {
	args := m.Called(ctx, q)
	total, _ := args.Get(1).(int64)
	if args.Get(0) == nil {
		return nil, total, args.Error(2)
	}
	return args.Get(0).([]model.PrintJob), total, args.Error(2)
}

func (m *MockPrintJobRepositoryInterface) GetByID(ctx context.Context, id primitive.ObjectID) (*model.PrintJob, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PrintJob), args.Error(1)
}

func (m *MockPrintJobRepositoryInterface) Create(ctx context.Context, job *model.PrintJob) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *MockPrintJobRepositoryInterface) Update(ctx context.Context, id primitive.ObjectID, changes bson.M) (*model.PrintJob, error) {
	args := m.Called(ctx, id, changes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PrintJob), args.Error(1)
}

func (m *MockPrintJobRepositoryInterface) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPrintJobRepositoryInterface) DeleteBySpool(ctx context.Context, spoolID primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, spoolID)
	count, _ := args.Get(0).(int64)
	return count, args.Error(1)
}

// MockLogsRepositoryInterface mocks repository.LogsRepositoryInterface.
type MockLogsRepositoryInterface struct {
	mock.Mock
}

func (m *MockLogsRepositoryInterface) Create(ctx context.Context, entry *model.LogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLogsRepositoryInterface) CreateMany(ctx context.Context, entries []*model.LogEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockLogsRepositoryInterface) Query(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LogEntry), args.Error(1)
}

func (m *MockLogsRepositoryInterface) Count(ctx context.Context, opts model.LogQueryOptions) (int64, error) {
	args := m.Called(ctx, opts)
	count, _ := args.Get(0).(int64)
	return count, args.Error(1)
}
