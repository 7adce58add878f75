package repositories

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "roads.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, InitSchema(context.Background(), db))
	return db
}

func TestSqliteRoadRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	roads := []string{"Alice's House-Bob's House", "Bob's House-Town Hall", "Alice's House-Post Office"}
	require.NoError(t, SeedRoads(ctx, db, roads))

	got, err := NewSqliteRoadRepository(db).ListRoads(ctx)
	require.NoError(t, err)
	assert.Equal(t, roads, got)
}

func TestSeedRoadsReplacesPreviousMap(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	require.NoError(t, SeedRoads(ctx, db, []string{"A-B", "B-C", "C-D"}))
	require.NoError(t, SeedRoads(ctx, db, []string{"X-Y"}))

	got, err := NewSqliteRoadRepository(db).ListRoads(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"X-Y"}, got)
}

func TestSeedRoadsRejectsMalformedRoad(t *testing.T) {
	db := openTestDB(t)

	for _, bad := range []string{"AB", "A-", "A-B-C"} {
		assert.Error(t, SeedRoads(context.Background(), db, []string{"A-B", bad}), bad)
	}
}

func TestRepositoriesRequireDB(t *testing.T) {
	_, err := NewSqliteRoadRepository(nil).ListRoads(context.Background())
	assert.Error(t, err)
	_, err = NewSQLRoadRepository(nil).ListRoads(context.Background())
	assert.Error(t, err)
	assert.Error(t, InitSchema(context.Background(), nil))
	assert.Error(t, SeedRoads(context.Background(), nil, []string{"A-B"}))
}
