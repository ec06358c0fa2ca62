package service

import (
	"context"
	"strings"
	"time"

	"github.com/guttosm/spool-service/internal/domain/dto"
	"github.com/guttosm/spool-service/internal/domain/model"
	"github.com/guttosm/spool-service/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PrintJobService records what each print consumed and earned.
type PrintJobService interface {
	// Find returns one page of matching jobs, newest first, and the total
	// number of matches.
	Find(ctx context.Context, q model.PrintJobQuery) ([]model.PrintJob, int64, error)
	Get(ctx context.Context, id primitive.ObjectID) (*model.PrintJob, error)
	Create(ctx context.Context, req dto.CreatePrintJobRequest) (*model.PrintJob, error)
	Update(ctx context.Context, id primitive.ObjectID, req dto.UpdatePrintJobRequest) (*model.PrintJob, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// PrintJobServiceImpl implements PrintJobService.
type PrintJobServiceImpl struct {
	jobs   repository.PrintJobRepositoryInterface
	spools repository.SpoolRepositoryInterface
	now    func() time.Time
}

// NewPrintJobService creates a new print job service.
func NewPrintJobService(jobs repository.PrintJobRepositoryInterface, spools repository.SpoolRepositoryInterface) PrintJobService {
	return &PrintJobServiceImpl{
		jobs:   jobs,
		spools: spools,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *PrintJobServiceImpl) Find(ctx context.Context, q model.PrintJobQuery) ([]model.PrintJob, int64, error) {
	if s.jobs == nil {
		return nil, 0, ErrRepositoryNotConfigured
	}
	q.Name = strings.TrimSpace(q.Name)
	return s.jobs.Find(ctx, q)
}

func (s *PrintJobServiceImpl) Get(ctx context.Context, id primitive.ObjectID) (*model.PrintJob, error) {
	if s.jobs == nil {
		return nil, ErrRepositoryNotConfigured
	}
	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err, "print_job", id)
	}
	return job, nil
}

// Create records a print job against an existing spool. A missing cost is
// derived from the spool's price per gram when weight_used is positive.
func (s *PrintJobServiceImpl) Create(ctx context.Context, req dto.CreatePrintJobRequest) (*model.PrintJob, error) {
	if s.jobs == nil {
		return nil, ErrRepositoryNotConfigured
	}
	if err := checkRequest(&req); err != nil {
		return nil, err
	}

	spool, err := s.existingSpool(ctx, req.SpoolID)
	if err != nil {
		return nil, err
	}

	job := &model.PrintJob{
		SpoolID:           spool.ID,
		Name:              req.Name,
		WeightUsed:        *req.WeightUsed,
		StartedAt:         utc(req.StartedAt),
		CompletedAt:       utc(req.CompletedAt),
		Cost:              req.Cost,
		Revenue:           req.Revenue,
		Notes:             req.Notes,
		ExternalReference: req.ExternalReference,
		Registered:        s.now().Truncate(time.Second),
	}
	if job.Cost == nil && job.WeightUsed > 0 {
		if perGram, ok := spool.PricePerGram(); ok {
			job.Cost = model.Float(job.WeightUsed * perGram)
		}
	}

	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, err
	}
	return s.Get(ctx, job.ID)
}

func (s *PrintJobServiceImpl) Update(ctx context.Context, id primitive.ObjectID, req dto.UpdatePrintJobRequest) (*model.PrintJob, error) {
	if s.jobs == nil {
		return nil, ErrRepositoryNotConfigured
	}
	if err := checkRequest(&req); err != nil {
		return nil, err
	}

	changes := bson.M{}
	if req.SpoolID != nil {
		spool, err := s.existingSpool(ctx, *req.SpoolID)
		if err != nil {
			return nil, err
		}
		changes["spool_id"] = spool.ID
	}
	setString(changes, "name", req.Name, nil)
	setString(changes, "notes", req.Notes, nil)
	setString(changes, "external_reference", req.ExternalReference, nil)
	if req.WeightUsed != nil {
		changes["weight_used"] = *req.WeightUsed
	}
	if req.StartedAt != nil {
		changes["started_at"] = req.StartedAt.UTC()
	}
	if req.CompletedAt != nil {
		changes["completed_at"] = req.CompletedAt.UTC()
	}
	if req.Cost != nil {
		changes["cost"] = *req.Cost
	}
	if req.Revenue != nil {
		changes["revenue"] = *req.Revenue
	}

	job, err := s.jobs.Update(ctx, id, changes)
	if err != nil {
		return nil, translate(err, "print_job", id)
	}
	return job, nil
}

func (s *PrintJobServiceImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	if s.jobs == nil {
		return ErrRepositoryNotConfigured
	}
	if err := s.jobs.Delete(ctx, id); err != nil {
		return translate(err, "print_job", id)
	}
	return nil
}

func (s *PrintJobServiceImpl) existingSpool(ctx context.Context, hex string) (*model.Spool, error) {
	spoolID, err := ParseID("spool_id", hex)
	if err != nil {
		return nil, err
	}
	if s.spools == nil {
		return nil, ErrRepositoryNotConfigured
	}
	spool, err := s.spools.GetByID(ctx, spoolID)
	if err != nil {
		return nil, translate(err, "spool", spoolID)
	}
	return spool, nil
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
