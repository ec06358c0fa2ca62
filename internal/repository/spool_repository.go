package repository

import (
	"context"
	"time"

	"github.com/guttosm/spool-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// SpoolRepository provides spool persistence. Reads expand the filament and
// its vendor.
type SpoolRepository struct {
	collection *mongo.Collection
}

// NewSpoolRepository creates a new spool repository.
func NewSpoolRepository(db *MongoDB) *SpoolRepository {
	return &SpoolRepository{collection: db.Spools}
}

// List returns spools matching the query in registration order.
// Archived spools are excluded unless IncludeArchived is set.
func (r *SpoolRepository) List(ctx context.Context, q model.SpoolQuery) ([]model.Spool, error) {
	filter := bson.M{}
	if !q.IncludeArchived {
		filter["archived"] = false
	}
	if q.FilamentID != nil {
		filter["filament_id"] = *q.FilamentID
	}
	return r.aggregate(ctx, filter, q.Limit, q.Skip)
}

// GetByID returns the spool with the given id.
func (r *SpoolRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Spool, error) {
	spools, err := r.aggregate(ctx, bson.M{"_id": id}, 1, 0)
	if err != nil {
		return nil, err
	}
	if len(spools) == 0 {
		return nil, ErrNotFound
	}
	return &spools[0], nil
}

// Count returns the number of stored spools, archived included.
func (r *SpoolRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// CountByFilament returns how many spools reference the filament.
func (r *SpoolRepository) CountByFilament(ctx context.Context, filamentID primitive.ObjectID) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"filament_id": filamentID})
}

// Create inserts a spool. The expanded filament is never stored.
func (r *SpoolRepository) Create(ctx context.Context, spool *model.Spool) error {
	if spool.ID.IsZero() {
		spool.ID = primitive.NewObjectID()
	}
	if spool.Registered.IsZero() {
		spool.Registered = time.Now().UTC()
	}
	doc := *spool
	doc.Filament = nil
	_, err := r.collection.InsertOne(ctx, doc)
	return err
}

// Update applies the given field changes and returns the updated spool.
func (r *SpoolRepository) Update(ctx context.Context, id primitive.ObjectID, changes bson.M) (*model.Spool, error) {
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

// Use subtracts weight grams from a non-archived spool in a single update.
// A spool without a tracked remaining weight starts from initial. The result
// is clamped at zero; first_used is set once and last_used every time.
func (r *SpoolRepository) Use(ctx context.Context, id primitive.ObjectID, weight, initial float64, at time.Time) (*model.Spool, error) {
	remaining := bson.D{{Key: "$ifNull", Value: bson.A{"$remaining_weight", initial}}}
	update := mongo.Pipeline{
		{{Key: "$set", Value: bson.D{
			{Key: "remaining_weight", Value: bson.D{{Key: "$max", Value: bson.A{
				0.0,
				bson.D{{Key: "$subtract", Value: bson.A{remaining, weight}}},
			}}}},
			{Key: "first_used", Value: bson.D{{Key: "$ifNull", Value: bson.A{"$first_used", at}}}},
			{Key: "last_used", Value: at},
		}}},
	}

	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id, "archived": false}, update)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

// Delete removes the spool with the given id.
func (r *SpoolRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SpoolRepository) aggregate(ctx context.Context, filter bson.M, limit, skip int) ([]model.Spool, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: filter}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}
	pipeline = append(pipeline, pagingStages(limit, skip)...)
	pipeline = append(pipeline, lookupOne("filaments", "filament_id", "filament")...)
	pipeline = append(pipeline, lookupOne("vendors", "filament.vendor_id", "filament.vendor")...)

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	spools := []model.Spool{}
	if err := cursor.All(ctx, &spools); err != nil {
		return nil, err
	}
	return spools, nil
}
