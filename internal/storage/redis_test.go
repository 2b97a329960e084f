package storage_test

import (
	"context"
	"testing"

	"food-delivery/internal/domain"
	"food-delivery/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedisBackend(t *testing.T) (*storage.RedisBackend, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })
	return storage.NewRedisBackend(client, "fooddelivery"), server
}

func TestRedisBackend_EnsureDoesNotOverwrite(t *testing.T) {
	ctx := context.Background()
	backend, server := setupRedisBackend(t)

	require.NoError(t, server.Set("fooddelivery:collection:orders", `[{"id":"kept"}]`))

	_, err := storage.NewRecordStore(ctx, backend)
	require.NoError(t, err)

	got, err := server.Get("fooddelivery:collection:orders")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"kept"}]`, got)

	got, err = server.Get("fooddelivery:collection:users")
	require.NoError(t, err)
	assert.Equal(t, "[]", got)
}

func TestRedisBackend_RecordStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	backend, _ := setupRedisBackend(t)
	store, err := storage.NewRecordStore(ctx, backend)
	require.NoError(t, err)

	orders := []domain.Order{{ID: "o-1", User: "alice", PaymentMethod: domain.PaymentBankCard, Status: domain.OrderStatusProcessing}}
	require.NoError(t, store.SaveOrders(ctx, orders))

	got, err := store.LoadOrders(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "o-1", got[0].ID)
	assert.Equal(t, domain.PaymentBankCard, got[0].PaymentMethod)
}

func TestRedisBackend_MissingKey(t *testing.T) {
	backend, _ := setupRedisBackend(t)

	_, err := backend.Read(context.Background(), storage.CollectionRestaurants)
	assert.ErrorIs(t, err, storage.ErrMissingCollection)
}

func TestRedisBackend_ServerDown(t *testing.T) {
	backend, server := setupRedisBackend(t)
	server.Close()

	_, err := storage.NewRecordStore(context.Background(), backend)
	assert.ErrorIs(t, err, storage.ErrStorage)
}
