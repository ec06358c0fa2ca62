package repository

import (
	"context"
	"time"

	"github.com/guttosm/spool-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// VendorRepository provides vendor persistence.
type VendorRepository struct {
	collection *mongo.Collection
}

// NewVendorRepository creates a new vendor repository.
func NewVendorRepository(db *MongoDB) *VendorRepository {
	return &VendorRepository{collection: db.Vendors}
}

// List returns vendors ordered by name.
func (r *VendorRepository) List(ctx context.Context, limit, skip int) ([]model.Vendor, error) {
	opts := findOptions(limit, skip).SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	vendors := []model.Vendor{}
	if err := cursor.All(ctx, &vendors); err != nil {
		return nil, err
	}
	return vendors, nil
}

// GetByID returns the vendor with the given id.
func (r *VendorRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Vendor, error) {
	var vendor model.Vendor
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&vendor); err != nil {
		return nil, notFound(err)
	}
	return &vendor, nil
}

// FindByName returns the first vendor with the given name.
func (r *VendorRepository) FindByName(ctx context.Context, name string) (*model.Vendor, error) {
	var vendor model.Vendor
	if err := r.collection.FindOne(ctx, bson.M{"name": name}).Decode(&vendor); err != nil {
		return nil, notFound(err)
	}
	return &vendor, nil
}

// Create inserts a vendor, assigning its id and registration time.
func (r *VendorRepository) Create(ctx context.Context, vendor *model.Vendor) error {
	if vendor.ID.IsZero() {
		vendor.ID = primitive.NewObjectID()
	}
	if vendor.Registered.IsZero() {
		vendor.Registered = time.Now().UTC()
	}
	_, err := r.collection.InsertOne(ctx, vendor)
	return err
}

// Update applies the given field changes and returns the updated vendor.
func (r *VendorRepository) Update(ctx context.Context, id primitive.ObjectID, changes bson.M) (*model.Vendor, error) {
	if len(changes) == 0 {
		return r.GetByID(ctx, id)
	}

	var vendor model.Vendor
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": changes},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&vendor)
	if err != nil {
		return nil, notFound(err)
	}
	return &vendor, nil
}

// Delete removes the vendor with the given id.
func (r *VendorRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
