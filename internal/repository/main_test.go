//go:build integration

package repository

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/palletdesk/pallet-service/internal/testutil"
)

// TestMain sets up a shared MongoDB container for all integration tests in this package.
// Reusing a single container keeps the suite fast; each test gets its own database.
func TestMain(m *testing.M) {
	os.Exit(testutil.SetupTestMainWithMongoDB(context.Background(), m))
}

// setupTestDB creates a MongoDB connection using the shared container with a
// unique database name for test isolation.
func setupTestDB(t *testing.T) *MongoDB {
	dbName := testutil.SanitizeDBName(t.Name())
	uri := testutil.GetSharedContainerURI()
	db, err := NewMongoDB(uri, dbName)
	require.NoError(t, err)
	return db
}

// cleanupTestDB drops the test database and closes the connection.
func cleanupTestDB(t *testing.T, db *MongoDB) {
	ctx := context.Background()
	if err := db.Database.Drop(ctx); err != nil {
		t.Logf("failed to drop test database: %v", err)
	}
	if err := db.Close(ctx); err != nil {
		t.Logf("failed to close test database: %v", err)
	}
}
