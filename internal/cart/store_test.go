package cart

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/barber-shop/internal/domain/cart"
)

func setupStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	return NewStore(rdb, 30*time.Minute), mr
}

func TestStoreRoundTrip(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	c := domain.Add(domain.Cart{}, domain.Entry{ProductID: 1, Name: "Pomada", Price: 20, Quantity: 2})
	require.NoError(t, store.Save(ctx, 7, c))

	loaded, err := store.Get(ctx, 7)
	require.NoError(t, err)
	require.Len(t, loaded.Entries, 1)
	assert.Equal(t, 2, loaded.Entries[0].Quantity)
	assert.Equal(t, float64(40), loaded.Total())
}

func TestStoreGetMissingIsEmptyCart(t *testing.T) {
	store, _ := setupStore(t)

	c, err := store.Get(context.Background(), 42)
	require.NoError(t, err)
	assert.True(t, c.IsEmpty())
}

func TestStoreIsolatedPerUser(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	mine := domain.Add(domain.Cart{}, domain.Entry{ProductID: 1, Price: 10, Quantity: 1})
	require.NoError(t, store.Save(ctx, 1, mine))

	other, err := store.Get(ctx, 2)
	require.NoError(t, err)
	assert.True(t, other.IsEmpty())
}

func TestStoreClear(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	c := domain.Add(domain.Cart{}, domain.Entry{ProductID: 1, Price: 10, Quantity: 1})
	require.NoError(t, store.Save(ctx, 7, c))
	require.NoError(t, store.Clear(ctx, 7))

	loaded, err := store.Get(ctx, 7)
	require.NoError(t, err)
	assert.True(t, loaded.IsEmpty())
}

func TestStoreTTLExpires(t *testing.T) {
	store, mr := setupStore(t)
	ctx := context.Background()

	c := domain.Add(domain.Cart{}, domain.Entry{ProductID: 1, Price: 10, Quantity: 1})
	require.NoError(t, store.Save(ctx, 7, c))

	// Sessão expirada leva o carrinho junto.
	mr.FastForward(31 * time.Minute)

	loaded, err := store.Get(ctx, 7)
	require.NoError(t, err)
	assert.True(t, loaded.IsEmpty())
}
