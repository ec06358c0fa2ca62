package repository

import (
	"context"
	"time"

	"github.com/guttosm/spool-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// FilamentRepository provides filament persistence. Reads expand the vendor.
type FilamentRepository struct {
	collection *mongo.Collection
}

// NewFilamentRepository creates a new filament repository.
func NewFilamentRepository(db *MongoDB) *FilamentRepository {
	return &FilamentRepository{collection: db.Filaments}
}

// List returns filaments matching the query, vendor expanded.
func (r *FilamentRepository) List(ctx context.Context, q model.FilamentQuery) ([]model.Filament, error) {
	filter := bson.M{}
	if q.VendorID != nil {
		filter["vendor_id"] = *q.VendorID
	}
	if q.Material != "" {
		filter["material"] = q.Material
	}
	return r.aggregate(ctx, filter, q.Limit, q.Skip)
}

// GetByID returns the filament with the given id, vendor expanded.
func (r *FilamentRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Filament, error) {
	filaments, err := r.aggregate(ctx, bson.M{"_id": id}, 1, 0)
	if err != nil {
		return nil, err
	}
	if len(filaments) == 0 {
		return nil, ErrNotFound
	}
	return &filaments[0], nil
}

// FindByName returns the first filament with the given name.
func (r *FilamentRepository) FindByName(ctx context.Context, name string) (*model.Filament, error) {
	filaments, err := r.aggregate(ctx, bson.M{"name": name}, 1, 0)
	if err != nil {
		return nil, err
	}
	if len(filaments) == 0 {
		return nil, ErrNotFound
	}
	return &filaments[0], nil
}

// CountByVendor returns how many filaments reference the vendor.
func (r *FilamentRepository) CountByVendor(ctx context.Context, vendorID primitive.ObjectID) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"vendor_id": vendorID})
}

// Create inserts a filament. The expanded vendor is never stored.
func (r *FilamentRepository) Create(ctx context.Context, filament *model.Filament) error {
	if filament.ID.IsZero() {
		filament.ID = primitive.NewObjectID()
	}
	if filament.Registered.IsZero() {
		filament.Registered = time.Now().UTC()
	}
	doc := *filament
	doc.Vendor = nil
	_, err := r.collection.InsertOne(ctx, doc)
	return err
}

// Update applies the given field changes and returns the updated filament.
func (r *FilamentRepository) Update(ctx context.Context, id primitive.ObjectID, changes bson.M) (*model.Filament, error) {
	if len(changes) > 0 {
		res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": changes})
		if err != nil {
			return nil, err
		}
		if res.MatchedCount == 0 {
			return nil, ErrNotFound
		}
	}
	return r.GetByID(ctx, id)
}

// Delete removes the filament with the given id.
func (r *FilamentRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *FilamentRepository) aggregate(ctx context.Context, filter bson.M, limit, skip int) ([]model.Filament, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: filter}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}
	pipeline = append(pipeline, pagingStages(limit, skip)...)
	pipeline = append(pipeline, lookupOne("vendors", "vendor_id", "vendor")...)

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	filaments := []model.Filament{}
	if err := cursor.All(ctx, &filaments); err != nil {
		return nil, err
	}
	return filaments, nil
}
