package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

type RedisBackend struct {
	Client *redis.Client
	Prefix string
}

func NewRedisBackend(client *redis.Client, prefix string) *RedisBackend {
	return &RedisBackend{Client: client, Prefix: prefix}
}

func (b *RedisBackend) CollectionKey(name string) string {
	return b.Prefix + ":collection:" + name
}

func (b *RedisBackend) Ensure(ctx context.Context, name string) error {
	return b.Client.SetNX(ctx, b.CollectionKey(name), "[]", 0).Err()
}

func (b *RedisBackend) Read(ctx context.Context, name string) ([]byte, error) {
	doc, err := b.Client.Get(ctx, b.CollectionKey(name)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%s: %w", name, ErrMissingCollection)
	}
	return doc, err
}

func (b *RedisBackend) Write(ctx context.Context, name string, doc []byte) error {
	return b.Client.Set(ctx, b.CollectionKey(name), doc, 0).Err()
}
