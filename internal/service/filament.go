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

// FilamentService provides filament operations.
type FilamentService interface {
	List(ctx context.Context, q model.FilamentQuery) ([]model.Filament, error)
	Get(ctx context.Context, id primitive.ObjectID) (*model.Filament, error)
	Create(ctx context.Context, req dto.CreateFilamentRequest) (*model.Filament, error)
	Update(ctx context.Context, id primitive.ObjectID, req dto.UpdateFilamentRequest) (*model.Filament, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// FilamentServiceImpl implements FilamentService.
type FilamentServiceImpl struct {
	filaments   repository.FilamentRepositoryInterface
	vendors     repository.VendorRepositoryInterface
	spools      repository.SpoolRepositoryInterface
	invalidator Invalidator
}

// NewFilamentService creates a new filament service.
func NewFilamentService(
	filaments repository.FilamentRepositoryInterface,
	vendors repository.VendorRepositoryInterface,
	spools repository.SpoolRepositoryInterface,
	inv Invalidator,
) FilamentService {
	return &FilamentServiceImpl{
		filaments:   filaments,
		vendors:     vendors,
		spools:      spools,
		invalidator: invalidatorOrNoop(inv),
	}
}

// NormalizeHex strips leading '#' characters and upper-cases a color.
func NormalizeHex(hex string) string {
	return strings.ToUpper(strings.TrimLeft(strings.TrimSpace(hex), "#"))
}

// NormalizeHexList normalizes every entry of a comma-separated color list,
// dropping empty entries.
func NormalizeHexList(hexes string) string {
	parts := strings.Split(hexes, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = NormalizeHex(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, ",")
}

func (s *FilamentServiceImpl) List(ctx context.Context, q model.FilamentQuery) ([]model.Filament, error) {
	if s.filaments == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.filaments.List(ctx, q)
}

func (s *FilamentServiceImpl) Get(ctx context.Context, id primitive.ObjectID) (*model.Filament, error) {
	if s.filaments == nil {
		return nil, ErrRepositoryNotConfigured
	}
	filament, err := s.filaments.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err, "filament", id)
	}
	return filament, nil
}

func (s *FilamentServiceImpl) Create(ctx context.Context, req dto.CreateFilamentRequest) (*model.Filament, error) {
	if s.filaments == nil {
		return nil, ErrRepositoryNotConfigured
	}
	if err := checkRequest(&req); err != nil {
		return nil, err
	}

	filament := &model.Filament{
		Name:                strings.TrimSpace(req.Name),
		Material:            strings.TrimSpace(req.Material),
		ColorHex:            NormalizeHex(req.ColorHex),
		MultiColorHexes:     NormalizeHexList(req.MultiColorHexes),
		MultiColorDirection: strings.ToLower(strings.TrimSpace(req.MultiColorDirection)),
		Weight:              req.Weight,
		SpoolWeight:         req.SpoolWeight,
		Density:             req.Density,
		Diameter:            req.Diameter,
		Price:               req.Price,
		Comment:             req.Comment,
	}

	if req.VendorID != "" {
		vendorID, err := s.existingVendor(ctx, req.VendorID)
		if err != nil {
			return nil, err
		}
		filament.VendorID = &vendorID
	}

	if err := s.filaments.Create(ctx, filament); err != nil {
		return nil, err
	}
	s.invalidator.Invalidate()
	return s.Get(ctx, filament.ID)
}

func (s *FilamentServiceImpl) Update(ctx context.Context, id primitive.ObjectID, req dto.UpdateFilamentRequest) (*model.Filament, error) {
	if s.filaments == nil {
		return nil, ErrRepositoryNotConfigured
	}
	if err := checkRequest(&req); err != nil {
		return nil, err
	}

	changes := bson.M{}
	if req.VendorID != nil {
		if *req.VendorID == "" {
			changes["vendor_id"] = nil
		} else {
			vendorID, err := s.existingVendor(ctx, *req.VendorID)
			if err != nil {
				return nil, err
			}
			changes["vendor_id"] = vendorID
		}
	}
	setString(changes, "name", req.Name, strings.TrimSpace)
	setString(changes, "material", req.Material, strings.TrimSpace)
	setString(changes, "color_hex", req.ColorHex, NormalizeHex)
	setString(changes, "multi_color_hexes", req.MultiColorHexes, NormalizeHexList)
	setString(changes, "multi_color_direction", req.MultiColorDirection, func(v string) string {
		return strings.ToLower(strings.TrimSpace(v))
	})
	setString(changes, "comment", req.Comment, nil)
	if req.Weight != nil {
		changes["weight"] = *req.Weight
	}
	if req.SpoolWeight != nil {
		changes["spool_weight"] = *req.SpoolWeight
	}
	if req.Density != nil {
		changes["density"] = *req.Density
	}
	if req.Diameter != nil {
		changes["diameter"] = *req.Diameter
	}
	if req.Price != nil {
		changes["price"] = *req.Price
	}

	filament, err := s.filaments.Update(ctx, id, changes)
	if err != nil {
		return nil, translate(err, "filament", id)
	}
	s.invalidator.Invalidate()
	return filament, nil
}

func (s *FilamentServiceImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	if s.filaments == nil || s.spools == nil {
		return ErrRepositoryNotConfigured
	}

	refs, err := s.spools.CountByFilament(ctx, id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return fmt.Errorf("filament %s is referenced by %d spool(s): %w", id.Hex(), refs, ErrConflict)
	}

	if err := s.filaments.Delete(ctx, id); err != nil {
		return translate(err, "filament", id)
	}
	s.invalidator.Invalidate()
	return nil
}

func (s *FilamentServiceImpl) existingVendor(ctx context.Context, hex string) (primitive.ObjectID, error) {
	vendorID, err := ParseID("vendor_id", hex)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if s.vendors == nil {
		return primitive.NilObjectID, ErrRepositoryNotConfigured
	}
	if _, err := s.vendors.GetByID(ctx, vendorID); err != nil {
		return primitive.NilObjectID, translate(err, "vendor", vendorID)
	}
	return vendorID, nil
}

// setString records a text change; the empty string clears the field.
func setString(changes bson.M, field string, v *string, normalize func(string) string) {
	if v == nil {
		return
	}
	value := *v
	if normalize != nil {
		value = normalize(value)
	}
	changes[field] = value
}
