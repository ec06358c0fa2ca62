package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/guttosm/spool-service/internal/domain/dto"
	"github.com/guttosm/spool-service/internal/domain/model"
	"github.com/guttosm/spool-service/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VendorService provides vendor operations.
type VendorService interface {
	List(ctx context.Context, limit, skip int) ([]model.Vendor, error)
	Get(ctx context.Context, id primitive.ObjectID) (*model.Vendor, error)
	Create(ctx context.Context, req dto.CreateVendorRequest) (*model.Vendor, error)
	Update(ctx context.Context, id primitive.ObjectID, req dto.UpdateVendorRequest) (*model.Vendor, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// VendorServiceImpl implements VendorService.
type VendorServiceImpl struct {
	vendors     repository.VendorRepositoryInterface
	filaments   repository.FilamentRepositoryInterface
	invalidator Invalidator
}

// NewVendorService creates a new vendor service. The filament repository is
// consulted before deletes.
func NewVendorService(vendors repository.VendorRepositoryInterface, filaments repository.FilamentRepositoryInterface, inv Invalidator) VendorService {
	return &VendorServiceImpl{
		vendors:     vendors,
		filaments:   filaments,
		invalidator: invalidatorOrNoop(inv),
	}
}

func (s *VendorServiceImpl) List(ctx context.Context, limit, skip int) ([]model.Vendor, error) {
	if s.vendors == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.vendors.List(ctx, limit, skip)
}

func (s *VendorServiceImpl) Get(ctx context.Context, id primitive.ObjectID) (*model.Vendor, error) {
	if s.vendors == nil {
		return nil, ErrRepositoryNotConfigured
	}
	vendor, err := s.vendors.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err, "vendor", id)
	}
	return vendor, nil
}

func (s *VendorServiceImpl) Create(ctx context.Context, req dto.CreateVendorRequest) (*model.Vendor, error) {
	if s.vendors == nil {
		return nil, ErrRepositoryNotConfigured
	}
	if err := checkRequest(&req); err != nil {
		return nil, err
	}

	vendor := &model.Vendor{
		Name:    strings.TrimSpace(req.Name),
		Comment: req.Comment,
	}
	if err := s.vendors.Create(ctx, vendor); err != nil {
		return nil, err
	}
	s.invalidator.Invalidate()
	return vendor, nil
}

func (s *VendorServiceImpl) Update(ctx context.Context, id primitive.ObjectID, req dto.UpdateVendorRequest) (*model.Vendor, error) {
	if s.vendors == nil {
		return nil, ErrRepositoryNotConfigured
	}
	if err := checkRequest(&req); err != nil {
		return nil, err
	}

	changes := bson.M{}
	if req.Name != nil {
		changes["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Comment != nil {
		changes["comment"] = *req.Comment
	}

	vendor, err := s.vendors.Update(ctx, id, changes)
	if err != nil {
		return nil, translate(err, "vendor", id)
	}
	s.invalidator.Invalidate()
	return vendor, nil
}

func (s *VendorServiceImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	if s.vendors == nil || s.filaments == nil {
		return ErrRepositoryNotConfigured
	}

	refs, err := s.filaments.CountByVendor(ctx, id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return fmt.Errorf("vendor %s is referenced by %d filament(s): %w", id.Hex(), refs, ErrConflict)
	}

	if err := s.vendors.Delete(ctx, id); err != nil {
		return translate(err, "vendor", id)
	}
	s.invalidator.Invalidate()
	return nil
}
