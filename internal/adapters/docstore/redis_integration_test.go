package docstore_test

import (
	"context"
	"os"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenhabit/zenhabit-engine/internal/adapters/docstore"
	"github.com/zenhabit/zenhabit-engine/internal/core/domain"
)

// Exercises a real redis instance; skipped unless ZENHABIT_REDIS_HOST is
// set (directly or through a .env file).
func TestRedisStore_Integration(t *testing.T) {
	_ = godotenv.Load("../../../.env")

	host := os.Getenv("ZENHABIT_REDIS_HOST")
	if host == "" {
		t.Skip("ZENHABIT_REDIS_HOST not set, skipping redis integration test")
	}

	port := os.Getenv("ZENHABIT_REDIS_PORT")
	if port == "" {
		port = "6379"
	}

	client, err := docstore.NewRedisClient(host, port, os.Getenv("ZENHABIT_REDIS_PASSWORD"), 0)
	require.NoError(t, err)
	defer client.Close()

	ctx := context.Background()
	store := docstore.NewRedisStore(client)

	document := []byte(`[{"id":"redis-roundtrip"}]`)
	require.NoError(t, store.Write(ctx, document))

	got, err := store.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, document, got)

	require.NoError(t, client.Del(ctx, "zenhabit_entries").Err())

	_, err = store.Read(ctx)
	assert.ErrorIs(t, err, domain.ErrDocumentNotFound)
}
