package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/andromeda/ordersync/internal/domain/shared"
	"github.com/andromeda/ordersync/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const pingTimeout = 5 * time.Second

// NewDedupeStore picks the store for the configuration. With no Redis host
// it returns the in-memory store. When Redis is configured but unreachable
// it logs a warning and falls back to memory, since dedupe fails open.
func NewDedupeStore(ctx context.Context, cfg config.RedisConfig, logger *zap.Logger) shared.IdempotencyStore {
	addr := cfg.Addr()
	if addr == "" {
		logger.Info("using in-memory dedupe store")
		return NewMemoryDedupeStore(0)
	}

	store, err := dialRedis(ctx, addr, cfg)
	if err != nil {
		logger.Warn("redis unavailable, falling back to in-memory dedupe store",
			zap.String("addr", addr),
			zap.Error(err),
		)
		return NewMemoryDedupeStore(0)
	}

	logger.Info("using redis dedupe store", zap.String("addr", addr))
	return store
}

func dialRedis(ctx context.Context, addr string, cfg config.RedisConfig) (*RedisDedupeStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("cache: ping %s: %w", addr, err)
	}
	return NewRedisDedupeStore(client, DefaultKeyPrefix), nil
}
