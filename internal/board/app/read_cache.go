package app

import (
	"context"
	"encoding/json"
	"strconv"

	"go.uber.org/zap"

	"adboard/internal/board/ports/services"
	"adboard/pkg/logger"
)

const (
	userKeyPrefix = "board:user:"
	advKeyPrefix  = "board:adv:"

	msgCacheReadFailed   = "cache read failed, falling back to store"
	msgCacheWriteFailed  = "cache write failed"
	msgCacheWriteSkipped = "cache key is held or already filled, value not stored"
	msgCacheDropFailed   = "cache invalidation failed"
	msgCacheCorrupted    = "cached value is corrupted, ignoring"
)

func userKey(id int64) string {
	return userKeyPrefix + strconv.FormatInt(id, 10)
}

func advKey(id int64) string {
	return advKeyPrefix + strconv.FormatInt(id, 10)
}

// readCache - кэш чтения поверх services.Cache. Ошибки кэша только логируются.
// put не перезаписывает ключ, инвалидированный записью, завершившейся после
// начала чтения.
type readCache struct {
	cache services.Cache
}

// get заполняет dst из кэша и сообщает о попадании.
func (r readCache) get(ctx context.Context, key string, dst any) bool {
	raw, err := r.cache.Get(ctx, key)
	if err != nil {
		logger.Log(ctx).Warn(ctx, msgCacheReadFailed, zap.String("key", key), zap.Error(err))
		return false
	}
	if raw == "" {
		return false
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		logger.Log(ctx).Warn(ctx, msgCacheCorrupted, zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (r readCache) put(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		logger.Log(ctx).Warn(ctx, msgCacheWriteFailed, zap.String("key", key), zap.Error(err))
		return
	}
	added, err := r.cache.Add(ctx, key, string(raw), 0)
	if err != nil {
		logger.Log(ctx).Warn(ctx, msgCacheWriteFailed, zap.String("key", key), zap.Error(err))
		return
	}
	if !added {
		logger.Log(ctx).Debug(ctx, msgCacheWriteSkipped, zap.String("key", key))
	}
}

func (r readCache) drop(ctx context.Context, keys ...string) {
	if err := r.cache.Invalidate(ctx, keys...); err != nil {
		logger.Log(ctx).Warn(ctx, msgCacheDropFailed, zap.Strings("keys", keys), zap.Error(err))
	}
}
