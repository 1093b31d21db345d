package imagestore

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskStoreRoundTrip(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "abc.webp", []byte("imagem")))

	rc, err := store.Open(ctx, "abc.webp")
	require.NoError(t, err)
	defer rc.Close()

	b, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, []byte("imagem"), b)

	require.NoError(t, store.Remove(ctx, "abc.webp"))

	_, err = store.Open(ctx, "abc.webp")
	assert.Error(t, err)
}

func TestDiskStoreRejectsPathTraversal(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	for _, name := range []string{"", "../fora.webp", "sub/dir.webp"} {
		assert.Error(t, store.Save(ctx, name, []byte("x")))
		_, openErr := store.Open(ctx, name)
		assert.Error(t, openErr)
	}
}
