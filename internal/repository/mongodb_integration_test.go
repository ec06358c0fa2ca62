//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// indexNames lists the index names present on a collection.
func indexNames(t *testing.T, db *MongoDB, coll string) map[string]bson.M {
	t.Helper()
	ctx := context.Background()
	cursor, err := db.Database.Collection(coll).Indexes().List(ctx)
	require.NoError(t, err)
	var specs []bson.M
	require.NoError(t, cursor.All(ctx, &specs))

	out := make(map[string]bson.M, len(specs))
	for _, s := range specs {
		out[s["name"].(string)] = s
	}
	return out
}

func TestMongoDB_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	t.Cleanup(func() { require.NoError(t, db.Close(ctx)) })

	t.Run("health check", func(t *testing.T) {
		assert.NoError(t, db.HealthCheck(ctx))
	})

	t.Run("reference indexes exist", func(t *testing.T) {
		assert.Contains(t, indexNames(t, db, "spools"), "filament_id_1")
		assert.Contains(t, indexNames(t, db, "filaments"), "vendor_id_1")
		assert.Contains(t, indexNames(t, db, "print_jobs"), "spool_id_1")
		assert.Contains(t, indexNames(t, db, "print_jobs"), "registered_-1__id_-1")
		assert.Contains(t, indexNames(t, db, "logs"), "resource_1_resource_id_1_timestamp_-1")
	})

	t.Run("logs TTL can be changed and removed", func(t *testing.T) {
		require.NoError(t, db.SetLogsTTL(ctx, 24*time.Hour))
		require.NoError(t, db.SetLogsTTL(ctx, 48*time.Hour))

		ttl, ok := indexNames(t, db, "logs")[logsTTLIndex]
		require.True(t, ok)
		assert.EqualValues(t, 48*3600, ttl["expireAfterSeconds"])

		require.NoError(t, db.SetLogsTTL(ctx, 0))
		assert.NotContains(t, indexNames(t, db, "logs"), logsTTLIndex)
	})
}
