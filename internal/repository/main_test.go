//go:build integration

package repository

import (
	"context"
	"os"
	"testing"

	"github.com/guttosm/spool-service/internal/testutil"
	"github.com/stretchr/testify/require"
)

// TestMain starts one MongoDB container for the whole package.
func TestMain(m *testing.M) {
	os.Exit(testutil.SetupTestMainWithMongoDB(context.Background(), m))
}

// setupTestDBFromSharedContainer connects to a database named after the test.
func setupTestDBFromSharedContainer(t *testing.T) *MongoDB {
	t.Helper()
	db, err := NewMongoDB(testutil.GetSharedContainerURI(), testutil.SanitizeDBName(t.Name()))
	require.NoError(t, err)
	return db
}
