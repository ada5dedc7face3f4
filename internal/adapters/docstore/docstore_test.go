package docstore_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenhabit/zenhabit-engine/internal/adapters/docstore"
	"github.com/zenhabit/zenhabit-engine/internal/core/domain"
)

func TestDiskvStore(t *testing.T) {
	ctx := context.Background()
	store := docstore.NewDiskvStore(t.TempDir())

	_, err := store.Read(ctx)
	assert.ErrorIs(t, err, domain.ErrDocumentNotFound)

	document := []byte(`[{"id":"abc","date":"2024-01-05"}]`)
	require.NoError(t, store.Write(ctx, document))

	got, err := store.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, document, got)

	// Full overwrite, not append.
	replacement := []byte(`[]`)
	require.NoError(t, store.Write(ctx, replacement))

	got, err = store.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, replacement, got)
}

func TestDiskvStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	first := docstore.NewDiskvStore(dir)
	require.NoError(t, first.Write(ctx, []byte(`[{"id":"x"}]`)))

	second := docstore.NewDiskvStore(dir)
	got, err := second.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":"x"}]`), got)
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := docstore.NewMemoryStore()

	_, err := store.Read(ctx)
	assert.ErrorIs(t, err, domain.ErrDocumentNotFound)

	require.NoError(t, store.Write(ctx, []byte("[]")))

	got, err := store.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("[]"), got)
}
