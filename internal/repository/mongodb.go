// Package repository provides the MongoDB data access layer for the inventory.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when a document does not exist.
var ErrNotFound = errors.New("document not found")

// MongoConfig holds MongoDB connection pool configuration.
type MongoConfig struct {
	// MaxPoolSize is the maximum number of connections in the pool.
	MaxPoolSize uint64
	// MinPoolSize is the minimum number of connections to keep in the pool.
	MinPoolSize uint64
	// MaxConnIdleTime is how long a connection can remain idle before being closed.
	MaxConnIdleTime time.Duration
	// ConnectTimeout is the timeout for establishing a connection.
	ConnectTimeout time.Duration
	// ServerSelectionTimeout is how long to wait for server selection.
	ServerSelectionTimeout time.Duration
	// SocketTimeout is the timeout for socket read/write operations.
	SocketTimeout time.Duration
	// EnableCompression enables wire protocol compression.
	EnableCompression bool
}

// DefaultMongoConfig returns production-optimized MongoDB configuration.
func DefaultMongoConfig() MongoConfig {
	return MongoConfig{
		MaxPoolSize:            50,
		MinPoolSize:            5,
		MaxConnIdleTime:        10 * time.Minute,
		ConnectTimeout:         10 * time.Second,
		ServerSelectionTimeout: 5 * time.Second,
		SocketTimeout:          30 * time.Second,
		EnableCompression:      true,
	}
}

// MongoDB provides MongoDB client and collection access.
type MongoDB struct {
	Client    *mongo.Client
	Database  *mongo.Database
	Vendors   *mongo.Collection
	Filaments *mongo.Collection
	Spools    *mongo.Collection
	PrintJobs *mongo.Collection
	Logs      *mongo.Collection
}

// NewMongoDB creates a new MongoDB connection with default configuration.
func NewMongoDB(uri, databaseName string) (*MongoDB, error) {
	return NewMongoDBWithConfig(uri, databaseName, DefaultMongoConfig())
}

// NewMongoDBWithConfig creates a new MongoDB connection with custom configuration.
func NewMongoDBWithConfig(uri, databaseName string, cfg MongoConfig) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetMaxConnIdleTime(cfg.MaxConnIdleTime).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ServerSelectionTimeout).
		SetSocketTimeout(cfg.SocketTimeout).
		SetRetryWrites(true).
		SetRetryReads(true)

	if cfg.EnableCompression {
		clientOptions.SetCompressors([]string{"zstd", "snappy", "zlib"})
	}

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	db := client.Database(databaseName)
	mongoDB := &MongoDB{
		Client:    client,
		Database:  db,
		Vendors:   db.Collection("vendors"),
		Filaments: db.Collection("filaments"),
		Spools:    db.Collection("spools"),
		PrintJobs: db.Collection("print_jobs"),
		Logs:      db.Collection("logs"),
	}

	if err := mongoDB.createIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return mongoDB, nil
}

// logsTTLIndex names the expiry index so it can be replaced when the TTL changes.
const logsTTLIndex = "logs_ttl"

// indexPlan lists the indexes each collection needs. Required indexes back
// reference checks and fail startup when they cannot be built; the rest only
// speed up lookups.
type indexPlan struct {
	coll     *mongo.Collection
	models   []mongo.IndexModel
	required bool
}

func (m *MongoDB) indexPlans() []indexPlan {
	asc := func(keys ...string) bson.D {
		d := make(bson.D, len(keys))
		for i, k := range keys {
			d[i] = bson.E{Key: k, Value: 1}
		}
		return d
	}
	return []indexPlan{
		{coll: m.Spools, required: true, models: []mongo.IndexModel{
			{Keys: asc("filament_id")},
			{Keys: asc("archived")},
		}},
		{coll: m.Filaments, required: true, models: []mongo.IndexModel{
			{Keys: asc("vendor_id")},
			{Keys: asc("material")},
			{Keys: asc("name")},
		}},
		{coll: m.PrintJobs, required: true, models: []mongo.IndexModel{
			{Keys: asc("spool_id")},
			{Keys: bson.D{{Key: "registered", Value: -1}, {Key: "_id", Value: -1}}},
		}},
		{coll: m.Vendors, models: []mongo.IndexModel{
			{Keys: asc("name")},
		}},
		{coll: m.Logs, models: []mongo.IndexModel{
			{Keys: asc("request_id")},
			{Keys: asc("action_type")},
			{Keys: bson.D{{Key: "resource", Value: 1}, {Key: "resource_id", Value: 1}, {Key: "timestamp", Value: -1}}},
		}},
	}
}

func (m *MongoDB) createIndexes(ctx context.Context) error {
	for _, plan := range m.indexPlans() {
		if _, err := plan.coll.Indexes().CreateMany(ctx, plan.models); err != nil && plan.required {
			return fmt.Errorf("create %s indexes: %w", plan.coll.Name(), err)
		}
	}
	return nil
}

// SetLogsTTL replaces the expiry index on the logs collection. A zero TTL
// keeps entries forever.
func (m *MongoDB) SetLogsTTL(ctx context.Context, ttl time.Duration) error {
	// The index may not exist yet.
	_, _ = m.Logs.Indexes().DropOne(ctx, logsTTLIndex)
	if ttl <= 0 {
		return nil
	}

	_, err := m.Logs.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "timestamp", Value: 1}},
		Options: options.Index().SetName(logsTTLIndex).SetExpireAfterSeconds(int32(ttl.Seconds())),
	})
	return err
}

// Close closes the MongoDB connection.
func (m *MongoDB) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}

// HealthCheck verifies the MongoDB connection is healthy.
func (m *MongoDB) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return m.Client.Ping(ctx, nil)
}

// findOptions applies paging to a find call.
func findOptions(limit, skip int) *options.FindOptions {
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	if skip > 0 {
		opts.SetSkip(int64(skip))
	}
	return opts
}

// pagingStages returns the $skip/$limit stages for an aggregation pipeline.
func pagingStages(limit, skip int) mongo.Pipeline {
	var stages mongo.Pipeline
	if skip > 0 {
		stages = append(stages, bson.D{{Key: "$skip", Value: int64(skip)}})
	}
	if limit > 0 {
		stages = append(stages, bson.D{{Key: "$limit", Value: int64(limit)}})
	}
	return stages
}

// lookupOne joins a single referenced document into field `as`.
// Missing references leave the field absent.
func lookupOne(from, localField, as string) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: from},
			{Key: "localField", Value: localField},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: as},
		}}},
		{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$" + as},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
	}
}

// notFound maps the driver's no-documents error to ErrNotFound.
func notFound(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}
