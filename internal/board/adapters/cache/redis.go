// Package cache содержит кэш чтения ответов на базе Redis.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"adboard/internal/board/config"
	"adboard/internal/board/ports/services"
	"adboard/pkg/logger"
)

// Константы для логирования.
const (
	LogMethodGet        = "get"
	LogMethodAdd        = "add"
	LogMethodInvalidate = "invalidate"

	ErrorFailedToConnect    = "failed to connect to redis"
	ErrorFailedToGet        = "failed to get value from redis"
	ErrorFailedToAdd        = "failed to add value to redis"
	ErrorFailedToInvalidate = "failed to invalidate redis keys"
	ErrorFailedToClose      = "failed to close redis connection"
)

// DefaultInvalidationHold используется, если удержание не задано.
const DefaultInvalidationHold = 30 * time.Second

// tombstone занимает инвалидированный ключ. JSON-значения с NUL не начинаются.
const tombstone = "\x00invalidated"

// RedisCache реализует services.Cache поверх Redis.
type RedisCache struct {
	client           *redis.Client
	defaultTTL       time.Duration
	invalidationHold time.Duration
}

// NewRedisCache подключается к Redis и проверяет соединение.
func NewRedisCache(ctx context.Context, cfg *config.RedisConfig) (services.Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:            cfg.GetAddress(),
		Password:        cfg.Password,
		DB:              cfg.DB,
		DialTimeout:     cfg.ConnectTimeout,
		ReadTimeout:     cfg.ReadTimeout,
		WriteTimeout:    cfg.WriteTimeout,
		PoolSize:        cfg.PoolSize,
		MinIdleConns:    cfg.MinIdle,
		ConnMaxIdleTime: cfg.IdleTimeout,
		ConnMaxLifetime: cfg.MaxConnLifetime,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%s: %w", ErrorFailedToConnect, err)
	}

	logger.Log(ctx).Info(ctx, "redis cache connected", zap.String("address", cfg.GetAddress()))

	hold := cfg.InvalidationHold
	if hold <= 0 {
		hold = DefaultInvalidationHold
	}

	return &RedisCache{
		client:           client,
		defaultTTL:       cfg.DefaultTTL,
		invalidationHold: hold,
	}, nil
}

// Get получает значение по ключу; отсутствующий или инвалидированный ключ
// дает пустую строку.
func (c *RedisCache) Get(ctx context.Context, key string) (string, error) {
	value, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		logger.Log(ctx).With(zap.String("method", LogMethodGet), zap.String("key", key)).
			Warn(ctx, ErrorFailedToGet, zap.Error(err))
		return "", fmt.Errorf("%s: %w", ErrorFailedToGet, err)
	}
	if value == tombstone {
		return "", nil
	}

	return value, nil
}

// Add сохраняет значение, если ключ свободен (SET NX); нулевой ttl
// заменяется значением по умолчанию.
func (c *RedisCache) Add(ctx context.Context, key string, value string, ttl time.Duration) (bool, error) {
	if ttl == 0 {
		ttl = c.defaultTTL
	}

	added, err := c.client.SetNX(ctx, key, value, ttl).Result()
	if err != nil {
		logger.Log(ctx).With(zap.String("method", LogMethodAdd), zap.String("key", key)).
			Warn(ctx, ErrorFailedToAdd, zap.Error(err))
		return false, fmt.Errorf("%s: %w", ErrorFailedToAdd, err)
	}

	return added, nil
}

// Invalidate заменяет значения ключей меткой на время invalidationHold.
func (c *RedisCache) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	_, err := c.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, key := range keys {
			pipe.Set(ctx, key, tombstone, c.invalidationHold)
		}
		return nil
	})
	if err != nil {
		logger.Log(ctx).With(zap.String("method", LogMethodInvalidate), zap.Strings("keys", keys)).
			Warn(ctx, ErrorFailedToInvalidate, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrorFailedToInvalidate, err)
	}

	return nil
}

// Close закрывает соединение с Redis.
func (c *RedisCache) Close() error {
	if err := c.client.Close(); err != nil {
		return fmt.Errorf("%s: %w", ErrorFailedToClose, err)
	}
	return nil
}
