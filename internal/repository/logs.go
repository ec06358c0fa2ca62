package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/guttosm/spool-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LogsRepository persists request and audit log entries. Entries expire
// through the TTL index managed by MongoDB.SetLogsTTL.
type LogsRepository struct {
	collection *mongo.Collection
}

// NewLogsRepository creates a new logs repository.
func NewLogsRepository(db *MongoDB) *LogsRepository {
	return &LogsRepository{
		collection: db.Logs,
	}
}

// Create inserts a new log entry.
func (r *LogsRepository) Create(ctx context.Context, entry *model.LogEntry) error {
	stamp(entry)
	_, err := r.collection.InsertOne(ctx, entry)
	return err
}

// CreateMany inserts multiple log entries in bulk.
func (r *LogsRepository) CreateMany(ctx context.Context, entries []*model.LogEntry) error {
	if len(entries) == 0 {
		return nil
	}

	docs := make([]interface{}, len(entries))
	for i, entry := range entries {
		stamp(entry)
		docs[i] = entry
	}

	// Unordered so one bad entry does not drop the rest of the batch.
	_, err := r.collection.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	return err
}

// Query returns log entries matching the options, newest first.
func (r *LogsRepository) Query(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error) {
	findOpts := findOptions(opts.Limit, opts.Skip).SetSort(bson.D{{Key: "timestamp", Value: -1}})

	cursor, err := r.collection.Find(ctx, logFilter(opts), findOpts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	entries := make([]model.LogEntry, 0, cursor.RemainingBatchLength())
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("decode log entries: %w", err)
	}
	return entries, nil
}

// Count returns the number of log entries matching the options. Paging is ignored.
func (r *LogsRepository) Count(ctx context.Context, opts model.LogQueryOptions) (int64, error) {
	return r.collection.CountDocuments(ctx, logFilter(opts))
}

// logFilter builds the query document. Fields are appended in index order
// so the resource history index is usable.
func logFilter(opts model.LogQueryOptions) bson.D {
	filter := bson.D{}
	add := func(key string, value string) {
		if value != "" {
			filter = append(filter, bson.E{Key: key, Value: value})
		}
	}
	add("resource", opts.Resource)
	add("resource_id", opts.ResourceID)
	add("request_id", opts.RequestID)
	add("level", opts.Level)
	add("action_type", opts.ActionType)

	window := bson.D{}
	if opts.StartTime != nil {
		window = append(window, bson.E{Key: "$gte", Value: *opts.StartTime})
	}
	if opts.EndTime != nil {
		window = append(window, bson.E{Key: "$lte", Value: *opts.EndTime})
	}
	if len(window) > 0 {
		filter = append(filter, bson.E{Key: "timestamp", Value: window})
	}
	return filter
}

func stamp(entry *model.LogEntry) {
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
}
