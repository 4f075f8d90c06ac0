package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/andromeda/ordersync/internal/domain/shared"
	"github.com/redis/go-redis/v9"
)

// DefaultKeyPrefix namespaces dedupe keys in a shared Redis
const DefaultKeyPrefix = "ordersync:dedupe:"

// RedisDedupeStore keeps seen event keys in Redis so replicas share them
type RedisDedupeStore struct {
	client    redis.UniversalClient
	keyPrefix string
}

// NewRedisDedupeStore wraps an existing client
func NewRedisDedupeStore(client redis.UniversalClient, keyPrefix string) *RedisDedupeStore {
	if keyPrefix == "" {
		keyPrefix = DefaultKeyPrefix
	}
	return &RedisDedupeStore{client: client, keyPrefix: keyPrefix}
}

// MarkProcessed sets the key with SET NX so only the first caller wins
func (s *RedisDedupeStore) MarkProcessed(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := s.client.SetNX(ctx, s.keyPrefix+key, "1", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("cache: mark %s: %w", key, err)
	}
	return ok, nil
}

// IsProcessed reports whether the key exists
func (s *RedisDedupeStore) IsProcessed(ctx context.Context, key string) (bool, error) {
	n, err := s.client.Exists(ctx, s.keyPrefix+key).Result()
	if err != nil {
		return false, fmt.Errorf("cache: check %s: %w", key, err)
	}
	return n > 0, nil
}

// Close closes the underlying client
func (s *RedisDedupeStore) Close() error {
	return s.client.Close()
}

var _ shared.IdempotencyStore = (*RedisDedupeStore)(nil)
