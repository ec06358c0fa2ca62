package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/guttosm/spool-service/internal/domain/dto"
	"github.com/guttosm/spool-service/internal/domain/model"
	"github.com/guttosm/spool-service/internal/logger"
	"github.com/guttosm/spool-service/internal/metrics"
	"github.com/guttosm/spool-service/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SpoolService provides spool operations.
type SpoolService interface {
	List(ctx context.Context, q model.SpoolQuery) ([]model.Spool, error)
	Get(ctx context.Context, id primitive.ObjectID) (*model.Spool, error)
	Create(ctx context.Context, req dto.CreateSpoolRequest) (*model.Spool, error)
	Update(ctx context.Context, id primitive.ObjectID, req dto.UpdateSpoolRequest) (*model.Spool, error)
	Use(ctx context.Context, id primitive.ObjectID, weight float64) (*model.Spool, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// SpoolServiceImpl implements SpoolService.
type SpoolServiceImpl struct {
	spools      repository.SpoolRepositoryInterface
	filaments   repository.FilamentRepositoryInterface
	jobs        repository.PrintJobRepositoryInterface
	invalidator Invalidator
	now         func() time.Time
}

// NewSpoolService creates a new spool service. Deleting a spool also deletes
// its print jobs when jobs is set.
func NewSpoolService(spools repository.SpoolRepositoryInterface, filaments repository.FilamentRepositoryInterface, jobs repository.PrintJobRepositoryInterface, inv Invalidator) SpoolService {
	return &SpoolServiceImpl{
		spools:      spools,
		filaments:   filaments,
		jobs:        jobs,
		invalidator: invalidatorOrNoop(inv),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *SpoolServiceImpl) List(ctx context.Context, q model.SpoolQuery) ([]model.Spool, error) {
	if s.spools == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.spools.List(ctx, q)
}

func (s *SpoolServiceImpl) Get(ctx context.Context, id primitive.ObjectID) (*model.Spool, error) {
	if s.spools == nil {
		return nil, ErrRepositoryNotConfigured
	}
	spool, err := s.spools.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err, "spool", id)
	}
	return spool, nil
}

// Create registers a spool. Without explicit weights the spool starts full,
// at the filament's net weight.
func (s *SpoolServiceImpl) Create(ctx context.Context, req dto.CreateSpoolRequest) (*model.Spool, error) {
	if s.spools == nil {
		return nil, ErrRepositoryNotConfigured
	}
	if err := checkRequest(&req); err != nil {
		return nil, err
	}

	filament, err := s.existingFilament(ctx, req.FilamentID)
	if err != nil {
		return nil, err
	}

	spool := &model.Spool{
		FilamentID:      filament.ID,
		RemainingWeight: req.RemainingWeight,
		InitialWeight:   req.InitialWeight,
		Price:           req.Price,
		Location:        req.Location,
		LotNr:           req.LotNr,
		Comment:         req.Comment,
		Archived:        req.Archived,
	}
	if filament.Weight != nil {
		if spool.InitialWeight == nil {
			spool.InitialWeight = model.Float(*filament.Weight)
		}
		if spool.RemainingWeight == nil {
			spool.RemainingWeight = model.Float(*filament.Weight)
		}
	}

	if err := s.spools.Create(ctx, spool); err != nil {
		return nil, err
	}
	s.invalidator.Invalidate()
	return s.Get(ctx, spool.ID)
}

func (s *SpoolServiceImpl) Update(ctx context.Context, id primitive.ObjectID, req dto.UpdateSpoolRequest) (*model.Spool, error) {
	if s.spools == nil {
		return nil, ErrRepositoryNotConfigured
	}
	if err := checkRequest(&req); err != nil {
		return nil, err
	}

	changes := bson.M{}
	if req.FilamentID != nil {
		filament, err := s.existingFilament(ctx, *req.FilamentID)
		if err != nil {
			return nil, err
		}
		changes["filament_id"] = filament.ID
	}
	if req.RemainingWeight != nil {
		changes["remaining_weight"] = *req.RemainingWeight
	}
	if req.InitialWeight != nil {
		changes["initial_weight"] = *req.InitialWeight
	}
	if req.Price != nil {
		changes["price"] = *req.Price
	}
	setString(changes, "location", req.Location, nil)
	setString(changes, "lot_nr", req.LotNr, nil)
	setString(changes, "comment", req.Comment, nil)
	if req.Archived != nil {
		changes["archived"] = *req.Archived
	}

	spool, err := s.spools.Update(ctx, id, changes)
	if err != nil {
		return nil, translate(err, "spool", id)
	}
	s.invalidator.Invalidate()
	return spool, nil
}

// Use consumes weight grams of filament from a spool. The remaining weight
// never drops below zero. Archived spools cannot be used.
func (s *SpoolServiceImpl) Use(ctx context.Context, id primitive.ObjectID, weight float64) (*model.Spool, error) {
	if s.spools == nil {
		return nil, ErrRepositoryNotConfigured
	}
	if weight <= 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, dto.ErrInvalidUseWeight)
	}

	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Archived {
		return nil, fmt.Errorf("spool %s is archived: %w", id.Hex(), ErrConflict)
	}

	var initial float64
	if current.Filament != nil {
		initial = model.ValueOrZero(current.Filament.Weight)
	}

	spool, err := s.spools.Use(ctx, id, weight, initial, s.now())
	if errors.Is(err, repository.ErrNotFound) {
		// archived or deleted since it was read
		return nil, fmt.Errorf("spool %s is no longer usable: %w", id.Hex(), ErrConflict)
	}
	if err != nil {
		return nil, err
	}

	consumed := model.ValueOrZero(current.RemainingWeight) - model.ValueOrZero(spool.RemainingWeight)
	if current.RemainingWeight == nil {
		consumed = initial - model.ValueOrZero(spool.RemainingWeight)
	}
	metrics.RecordSpoolUsage(consumed)

	s.invalidator.Invalidate()
	return spool, nil
}

// Delete removes a spool and then its print jobs. Jobs left behind by a
// failed cascade are logged; the spool is gone either way.
func (s *SpoolServiceImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	if s.spools == nil {
		return ErrRepositoryNotConfigured
	}
	if err := s.spools.Delete(ctx, id); err != nil {
		return translate(err, "spool", id)
	}
	s.invalidator.Invalidate()

	if s.jobs == nil {
		return nil
	}
	n, err := s.jobs.DeleteBySpool(ctx, id)
	l := logger.FromContext(ctx)
	if err != nil {
		l.Warn().Err(err).Str("spool_id", id.Hex()).Msg("Failed to delete print jobs of deleted spool")
		return nil
	}
	if n > 0 {
		l.Debug().Str("spool_id", id.Hex()).Int64("print_jobs", n).Msg("Deleted print jobs with spool")
	}
	return nil
}

func (s *SpoolServiceImpl) existingFilament(ctx context.Context, hex string) (*model.Filament, error) {
	filamentID, err := ParseID("filament_id", hex)
	if err != nil {
		return nil, err
	}
	if s.filaments == nil {
		return nil, ErrRepositoryNotConfigured
	}
	filament, err := s.filaments.GetByID(ctx, filamentID)
	if err != nil {
		return nil, translate(err, "filament", filamentID)
	}
	return filament, nil
}
