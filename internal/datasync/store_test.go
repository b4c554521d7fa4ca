package datasync

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mushafapp/ghareeb/internal/database"
)

func TestDBStore_Version(t *testing.T) {
	ctx := context.Background()
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	defer db.Close()

	store := NewDBStore(db)

	version, err := store.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, version)

	require.NoError(t, store.Commit(ctx, 3, nil))
	version, err = store.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, version)
}

func TestDBStore_ContentFile(t *testing.T) {
	ctx := context.Background()
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	defer db.Close()

	store := NewDBStore(db)

	body, err := store.ContentFile(ctx, "pages")
	require.NoError(t, err)
	assert.Nil(t, body)

	require.NoError(t, store.Commit(ctx, 1, []StoredFile{
		{Key: "pages", Body: []byte("page data"), SHA256: "abc"},
	}))

	body, err = store.ContentFile(ctx, "pages")
	require.NoError(t, err)
	assert.Equal(t, []byte("page data"), body)
}

func TestDBStore_Commit(t *testing.T) {
	ctx := context.Background()
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	defer db.Close()

	store := NewDBStore(db)

	require.NoError(t, store.Commit(ctx, 1, []StoredFile{
		{Key: "pages", Body: []byte("v1 pages")},
		{Key: "glossary", Body: []byte("v1 glossary")},
	}))
	require.NoError(t, store.Commit(ctx, 2, []StoredFile{
		{Key: "pages", Body: []byte("v2 pages")},
	}))

	version, err := store.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, version)

	pages, err := store.ContentFile(ctx, "pages")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2 pages"), pages)

	glossary, err := store.ContentFile(ctx, "glossary")
	require.NoError(t, err)
	assert.Equal(t, []byte("v1 glossary"), glossary)
}
