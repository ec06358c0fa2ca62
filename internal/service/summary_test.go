//go:build !integration

package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/guttosm/spool-service/internal/domain/model"
	"github.com/guttosm/spool-service/internal/mocks"
	"github.com/guttosm/spool-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func activeSpools() []model.Spool {
	pla := &model.Filament{Material: "PLA", ColorHex: "FF0000", Weight: model.Float(1000)}
	return []model.Spool{
		{RemainingWeight: model.Float(400), Filament: pla},
		{RemainingWeight: model.Float(100), Filament: pla},
	}
}

func TestSummaryService_Summary(t *testing.T) {
	spools := mocks.NewMockSpoolRepositoryInterface(t)
	spools.On("List", mock.Anything, model.SpoolQuery{Limit: 50}).Return(activeSpools(), nil).Once()
	svc := service.NewSummaryService(spools, nil, 50)

	summary, err := svc.Summary(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, summary.TotalSpools)
	assert.Equal(t, 500.0, summary.TotalRemainingWeight)
	require.Len(t, summary.Groups, 1)
	assert.Equal(t, 2000.0, summary.Groups[0].TotalFilamentWeight)
}

func TestSummaryService_UsesCacheUntilInvalidated(t *testing.T) {
	spools := mocks.NewMockSpoolRepositoryInterface(t)
	spools.On("List", mock.Anything, mock.Anything).Return(activeSpools(), nil).Twice()
	svc := service.NewSummaryService(spools, service.NewSummaryCache(time.Minute), 0)

	_, err := svc.Summary(context.Background())
	require.NoError(t, err)
	_, err = svc.Summary(context.Background())
	require.NoError(t, err)

	svc.Invalidate()

	_, err = svc.Summary(context.Background())
	require.NoError(t, err)
}

func TestSummaryService_StaleComputationIsNotCached(t *testing.T) {
	c := service.NewSummaryCache(time.Minute)
	spools := mocks.NewMockSpoolRepositoryInterface(t)
	svc := service.NewSummaryService(spools, c, 0)

	// A write lands while the first computation is loading spools.
	spools.On("List", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { svc.Invalidate() }).
		Return(activeSpools(), nil).Once()
	spools.On("List", mock.Anything, mock.Anything).Return([]model.Spool{}, nil).Once()

	first, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, first.TotalSpools)

	second, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, second.TotalSpools)
	assert.EqualValues(t, 1, c.Metrics().StaleWrites)
}

func TestSummaryService_RepositoryError(t *testing.T) {
	spools := mocks.NewMockSpoolRepositoryInterface(t)
	spools.On("List", mock.Anything, mock.Anything).Return(nil, errors.New("database error"))
	svc := service.NewSummaryService(spools, service.NewSummaryCache(time.Minute), 0)

	_, err := svc.Summary(context.Background())

	assert.EqualError(t, err, "database error")
}

func TestSummaryService_NoRepository(t *testing.T) {
	svc := service.NewSummaryService(nil, nil, 0)

	_, err := svc.Summary(context.Background())

	assert.ErrorIs(t, err, service.ErrRepositoryNotConfigured)
}
