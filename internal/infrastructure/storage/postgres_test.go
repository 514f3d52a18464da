package storage

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardlens/backend/internal/domain"
)

// newTestPostgresStore connects to CARDLENS_TEST_DATABASE_URL or skips the test
func newTestPostgresStore(t *testing.T, name string) *PostgresStore {
	t.Helper()
	url := os.Getenv("CARDLENS_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("CARDLENS_TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	store, err := NewPostgresStore(ctx, url, name, DefaultPostgresConfig(), nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		store.pool.Exec(ctx, `DELETE FROM card_catalogs WHERE name = $1`, name)
		store.pool.Exec(ctx, `DELETE FROM card_catalog_history WHERE name = $1`, name)
		store.Close()
	})
	return store
}

func TestNewPostgresStore_InvalidURL(t *testing.T) {
	_, err := NewPostgresStore(context.Background(), "postgres://%zz", "", DefaultPostgresConfig(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid database url")
}

func TestPostgresStore_LoadMissing(t *testing.T) {
	store := newTestPostgresStore(t, "test-missing")

	_, err := store.Load(context.Background())

	assert.ErrorIs(t, err, domain.ErrCatalogNotFound)
}

func TestPostgresStore_SaveAndLoad(t *testing.T) {
	store := newTestPostgresStore(t, "test-roundtrip")
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testCatalog()))
	// second save takes the upsert path
	require.NoError(t, store.Save(ctx, testCatalog()))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, testCatalog(), loaded)

	var history int
	err = store.pool.QueryRow(ctx, `SELECT count(*) FROM card_catalog_history WHERE name = $1`, "test-roundtrip").Scan(&history)
	require.NoError(t, err)
	assert.Equal(t, 2, history)
}

func TestPostgresStore_RejectsInvalidCatalog(t *testing.T) {
	store := newTestPostgresStore(t, "test-invalid")
	ctx := context.Background()

	bad := testCatalog()
	bad.Cards = append(bad.Cards, bad.Cards[0])
	bad.TotalCards = 2

	assert.ErrorIs(t, store.Save(ctx, bad), domain.ErrInvalidCatalog)

	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, domain.ErrCatalogNotFound)
}
