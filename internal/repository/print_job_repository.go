package repository

import (
	"context"
	"regexp"
	"time"

	"github.com/guttosm/spool-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// PrintJobRepository provides print job persistence. Reads expand the spool
// and its filament.
type PrintJobRepository struct {
	collection *mongo.Collection
}

// NewPrintJobRepository creates a new print job repository.
func NewPrintJobRepository(db *MongoDB) *PrintJobRepository {
	return &PrintJobRepository{collection: db.PrintJobs}
}

func printJobFilter(q model.PrintJobQuery) bson.M {
	filter := bson.M{}
	if q.SpoolID != nil {
		filter["spool_id"] = *q.SpoolID
	}
	if q.Name != "" {
		filter["name"] = primitive.Regex{Pattern: regexp.QuoteMeta(q.Name), Options: "i"}
	}
	return filter
}

// Find returns the requested page of matching jobs, newest registration
// first, and the total number of matches.
func (r *PrintJobRepository) Find(ctx context.Context, q model.PrintJobQuery) ([]model.PrintJob, int64, error) {
	filter := printJobFilter(q)
	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	jobs, err := r.aggregate(ctx, filter, q.Limit, q.Skip)
	if err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

// GetByID returns the print job with the given id.
func (r *PrintJobRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.PrintJob, error) {
	jobs, err := r.aggregate(ctx, bson.M{"_id": id}, 1, 0)
	if err != nil {
		return nil, err
	}
	if len(jobs) == 0 {
		return nil, ErrNotFound
	}
	return &jobs[0], nil
}

// Create inserts a print job. The expanded spool is never stored.
func (r *PrintJobRepository) Create(ctx context.Context, job *model.PrintJob) error {
	if job.ID.IsZero() {
		job.ID = primitive.NewObjectID()
	}
	if job.Registered.IsZero() {
		job.Registered = time.Now().UTC().Truncate(time.Second)
	}
	doc := *job
	doc.Spool = nil
	_, err := r.collection.InsertOne(ctx, doc)
	return err
}

// Update applies the given field changes and returns the updated job.
func (r *PrintJobRepository) Update(ctx context.Context, id primitive.ObjectID, changes bson.M) (*model.PrintJob, error) {
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

// Delete removes the print job with the given id.
func (r *PrintJobRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteBySpool removes every job of a spool and reports how many went.
func (r *PrintJobRepository) DeleteBySpool(ctx context.Context, spoolID primitive.ObjectID) (int64, error) {
	res, err := r.collection.DeleteMany(ctx, bson.M{"spool_id": spoolID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *PrintJobRepository) aggregate(ctx context.Context, filter bson.M, limit, skip int) ([]model.PrintJob, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: filter}},
		{{Key: "$sort", Value: bson.D{{Key: "registered", Value: -1}, {Key: "_id", Value: -1}}}},
	}
	pipeline = append(pipeline, pagingStages(limit, skip)...)
	pipeline = append(pipeline, lookupOne("spools", "spool_id", "spool")...)
	pipeline = append(pipeline, lookupOne("filaments", "spool.filament_id", "spool.filament")...)

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	jobs := []model.PrintJob{}
	if err := cursor.All(ctx, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}
