//go:build !integration

package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/guttosm/spool-service/internal/domain/dto"
	"github.com/guttosm/spool-service/internal/domain/model"
	"github.com/guttosm/spool-service/internal/mocks"
	"github.com/guttosm/spool-service/internal/repository"
	"github.com/guttosm/spool-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSpoolService_Create(t *testing.T) {
	filamentID := primitive.NewObjectID()

	tests := []struct {
		name              string
		req               dto.CreateSpoolRequest
		filamentWeight    *float64
		expectedRemaining *float64
		expectedInitial   *float64
	}{
		{
			name:              "defaults weights to filament weight",
			req:               dto.CreateSpoolRequest{FilamentID: filamentID.Hex()},
			filamentWeight:    model.Float(1000),
			expectedRemaining: model.Float(1000),
			expectedInitial:   model.Float(1000),
		},
		{
			name:              "keeps explicit remaining weight",
			req:               dto.CreateSpoolRequest{FilamentID: filamentID.Hex(), RemainingWeight: model.Float(420)},
			filamentWeight:    model.Float(1000),
			expectedRemaining: model.Float(420),
			expectedInitial:   model.Float(1000),
		},
		{
			name:              "keeps explicit initial weight and price",
			req:               dto.CreateSpoolRequest{FilamentID: filamentID.Hex(), InitialWeight: model.Float(750), Price: model.Float(18)},
			filamentWeight:    model.Float(1000),
			expectedRemaining: model.Float(1000),
			expectedInitial:   model.Float(750),
		},
		{
			name: "filament without weight leaves remaining unset",
			req:  dto.CreateSpoolRequest{FilamentID: filamentID.Hex()},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filaments := mocks.NewMockFilamentRepositoryInterface(t)
			filaments.On("GetByID", mock.Anything, filamentID).
				Return(&model.Filament{ID: filamentID, Weight: tt.filamentWeight}, nil)

			spools := mocks.NewMockSpoolRepositoryInterface(t)
			var created *model.Spool
			spools.On("Create", mock.Anything, mock.AnythingOfType("*model.Spool")).
				Run(func(args mock.Arguments) { created = args.Get(1).(*model.Spool) }).
				Return(nil)
			spools.On("GetByID", mock.Anything, mock.Anything).Return(&model.Spool{}, nil)

			svc := service.NewSpoolService(spools, filaments, nil, nil)
			_, err := svc.Create(context.Background(), tt.req)

			require.NoError(t, err)
			require.NotNil(t, created)
			assert.Equal(t, filamentID, created.FilamentID)
			assert.Equal(t, tt.expectedRemaining, created.RemainingWeight)
			assert.Equal(t, tt.expectedInitial, created.InitialWeight)
			assert.Equal(t, tt.req.Price, created.Price)
		})
	}
}

func TestSpoolService_CreateUnknownFilament(t *testing.T) {
	filamentID := primitive.NewObjectID()
	filaments := mocks.NewMockFilamentRepositoryInterface(t)
	filaments.On("GetByID", mock.Anything, filamentID).Return(nil, repository.ErrNotFound)
	svc := service.NewSpoolService(mocks.NewMockSpoolRepositoryInterface(t), filaments, nil, nil)

	_, err := svc.Create(context.Background(), dto.CreateSpoolRequest{FilamentID: filamentID.Hex()})

	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestSpoolService_Update(t *testing.T) {
	id := primitive.NewObjectID()
	archived := true
	spools := mocks.NewMockSpoolRepositoryInterface(t)
	spools.On("Update", mock.Anything, id, bson.M{"archived": true, "location": "Drybox"}).
		Return(&model.Spool{ID: id, Archived: true, Location: "Drybox"}, nil)
	inv := &countingInvalidator{}
	svc := service.NewSpoolService(spools, nil, nil, inv)

	spool, err := svc.Update(context.Background(), id, dto.UpdateSpoolRequest{Archived: &archived, Location: strPtr("Drybox")})

	require.NoError(t, err)
	assert.True(t, spool.Archived)
	assert.Equal(t, 1, inv.calls)
}

func TestSpoolService_Use(t *testing.T) {
	id := primitive.NewObjectID()
	filament := &model.Filament{Weight: model.Float(1000)}

	tests := []struct {
		name          string
		weight        float64
		setupMock     func(*mocks.MockSpoolRepositoryInterface)
		expectedError error
		invalidations int
	}{
		{
			name:   "subtracts from active spool",
			weight: 25,
			setupMock: func(m *mocks.MockSpoolRepositoryInterface) {
				m.On("GetByID", mock.Anything, id).
					Return(&model.Spool{ID: id, RemainingWeight: model.Float(100), Filament: filament}, nil)
				m.On("Use", mock.Anything, id, 25.0, 1000.0, mock.AnythingOfType("time.Time")).
					Return(&model.Spool{ID: id, RemainingWeight: model.Float(75)}, nil)
			},
			invalidations: 1,
		},
		{
			name:          "rejects non-positive weight",
			weight:        0,
			setupMock:     func(*mocks.MockSpoolRepositoryInterface) {},
			expectedError: service.ErrInvalidInput,
		},
		{
			name:   "rejects archived spool",
			weight: 5,
			setupMock: func(m *mocks.MockSpoolRepositoryInterface) {
				m.On("GetByID", mock.Anything, id).Return(&model.Spool{ID: id, Archived: true}, nil)
			},
			expectedError: service.ErrConflict,
		},
		{
			name:   "missing spool",
			weight: 5,
			setupMock: func(m *mocks.MockSpoolRepositoryInterface) {
				m.On("GetByID", mock.Anything, id).Return(nil, repository.ErrNotFound)
			},
			expectedError: service.ErrNotFound,
		},
		{
			name:   "archived between read and update",
			weight: 5,
			setupMock: func(m *mocks.MockSpoolRepositoryInterface) {
				m.On("GetByID", mock.Anything, id).Return(&model.Spool{ID: id}, nil)
				m.On("Use", mock.Anything, id, 5.0, 0.0, mock.Anything).Return(nil, repository.ErrNotFound)
			},
			expectedError: service.ErrConflict,
		},
		{
			name:   "database error",
			weight: 5,
			setupMock: func(m *mocks.MockSpoolRepositoryInterface) {
				m.On("GetByID", mock.Anything, id).Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spools := mocks.NewMockSpoolRepositoryInterface(t)
			tt.setupMock(spools)
			inv := &countingInvalidator{}
			svc := service.NewSpoolService(spools, nil, nil, inv)

			spool, err := svc.Use(context.Background(), id, tt.weight)

			if tt.expectedError != nil {
				require.Error(t, err)
				if errors.Is(tt.expectedError, service.ErrInvalidInput) ||
					errors.Is(tt.expectedError, service.ErrConflict) ||
					errors.Is(tt.expectedError, service.ErrNotFound) {
					assert.ErrorIs(t, err, tt.expectedError)
				} else {
					assert.Equal(t, tt.expectedError.Error(), err.Error())
				}
				assert.Nil(t, spool)
			} else {
				require.NoError(t, err)
				assert.Equal(t, 75.0, model.ValueOrZero(spool.RemainingWeight))
			}
			assert.Equal(t, tt.invalidations, inv.calls)
		})
	}
}

func TestSpoolService_Delete(t *testing.T) {
	id := primitive.NewObjectID()

	t.Run("missing spool keeps its print jobs", func(t *testing.T) {
		spools := mocks.NewMockSpoolRepositoryInterface(t)
		spools.On("Delete", mock.Anything, id).Return(repository.ErrNotFound)
		jobs := mocks.NewMockPrintJobRepositoryInterface(t)
		svc := service.NewSpoolService(spools, nil, jobs, nil)

		assert.ErrorIs(t, svc.Delete(context.Background(), id), service.ErrNotFound)
		jobs.AssertNotCalled(t, "DeleteBySpool", mock.Anything, mock.Anything)
	})

	t.Run("removes print jobs of the spool", func(t *testing.T) {
		spools := mocks.NewMockSpoolRepositoryInterface(t)
		spools.On("Delete", mock.Anything, id).Return(nil)
		jobs := mocks.NewMockPrintJobRepositoryInterface(t)
		jobs.On("DeleteBySpool", mock.Anything, id).Return(int64(3), nil).Once()
		inv := &countingInvalidator{}
		svc := service.NewSpoolService(spools, nil, jobs, inv)

		assert.NoError(t, svc.Delete(context.Background(), id))
		assert.Equal(t, 1, inv.calls)
	})

	t.Run("failed print job cleanup still deletes the spool", func(t *testing.T) {
		spools := mocks.NewMockSpoolRepositoryInterface(t)
		spools.On("Delete", mock.Anything, id).Return(nil)
		jobs := mocks.NewMockPrintJobRepositoryInterface(t)
		jobs.On("DeleteBySpool", mock.Anything, id).Return(int64(0), errors.New("database error")).Once()
		svc := service.NewSpoolService(spools, nil, jobs, nil)

		assert.NoError(t, svc.Delete(context.Background(), id))
	})

	t.Run("without print job storage", func(t *testing.T) {
		spools := mocks.NewMockSpoolRepositoryInterface(t)
		spools.On("Delete", mock.Anything, id).Return(nil)
		svc := service.NewSpoolService(spools, nil, nil, nil)

		assert.NoError(t, svc.Delete(context.Background(), id))
	})
}

func TestSpoolService_List(t *testing.T) {
	q := model.SpoolQuery{IncludeArchived: true, Limit: 20}
	spools := mocks.NewMockSpoolRepositoryInterface(t)
	spools.On("List", mock.Anything, q).Return([]model.Spool{{}, {}}, nil)
	svc := service.NewSpoolService(spools, nil, nil, nil)

	got, err := svc.List(context.Background(), q)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}
