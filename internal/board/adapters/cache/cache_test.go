package cache_test

import (
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adboard/internal/board/adapters/cache"
	"adboard/internal/board/config"
)

func mockRedisServer(t *testing.T) (*miniredis.Miniredis, *config.RedisConfig) {
	t.Helper()

	s, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(s.Close)

	host, portStr, _ := strings.Cut(s.Addr(), ":")
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)

	return s, &config.RedisConfig{
		Host:           host,
		Port:           port,
		ConnectTimeout: time.Second,
		ReadTimeout:    time.Second,
		WriteTimeout:   time.Second,
		PoolSize:       2,
		DefaultTTL:     5 * time.Minute,
	}
}

func TestNewRedisCache(t *testing.T) {
	ctx := context.Background()

	t.Run("connects", func(t *testing.T) {
		_, cfg := mockRedisServer(t)

		c, err := cache.NewRedisCache(ctx, cfg)

		require.NoError(t, err)
		assert.NoError(t, c.Close())
	})

	t.Run("unreachable server", func(t *testing.T) {
		cfg := &config.RedisConfig{
			Host:           "127.0.0.1",
			Port:           1,
			ConnectTimeout: 100 * time.Millisecond,
		}

		c, err := cache.NewRedisCache(ctx, cfg)

		require.Error(t, err)
		assert.Nil(t, c)
		assert.Contains(t, err.Error(), cache.ErrorFailedToConnect)
	})
}

func TestRedisCache(t *testing.T) {
	ctx := context.Background()
	s, cfg := mockRedisServer(t)

	c, err := cache.NewRedisCache(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	t.Run("missing key is empty", func(t *testing.T) {
		value, err := c.Get(ctx, "board:user:404")

		require.NoError(t, err)
		assert.Empty(t, value)
	})

	t.Run("add uses default ttl", func(t *testing.T) {
		added, err := c.Add(ctx, "board:user:1", `{"username":"bob"}`, 0)
		require.NoError(t, err)
		assert.True(t, added)

		value, err := c.Get(ctx, "board:user:1")
		require.NoError(t, err)
		assert.JSONEq(t, `{"username":"bob"}`, value)
		assert.Equal(t, cfg.DefaultTTL, s.TTL("board:user:1"))
	})

	t.Run("add keeps existing value", func(t *testing.T) {
		added, err := c.Add(ctx, "board:user:1", `{"username":"eve"}`, 0)
		require.NoError(t, err)
		assert.False(t, added)

		value, err := c.Get(ctx, "board:user:1")
		require.NoError(t, err)
		assert.JSONEq(t, `{"username":"bob"}`, value)
	})

	t.Run("add with explicit ttl", func(t *testing.T) {
		_, err := c.Add(ctx, "board:adv:1", "{}", time.Minute)
		require.NoError(t, err)

		assert.Equal(t, time.Minute, s.TTL("board:adv:1"))
	})

	t.Run("expired key is gone", func(t *testing.T) {
		_, err := c.Add(ctx, "board:adv:2", "{}", time.Second)
		require.NoError(t, err)
		s.FastForward(2 * time.Second)

		value, err := c.Get(ctx, "board:adv:2")
		require.NoError(t, err)
		assert.Empty(t, value)
	})

	t.Run("invalidated keys read as missing", func(t *testing.T) {
		_, err := c.Add(ctx, "board:adv:3", "{}", 0)
		require.NoError(t, err)

		require.NoError(t, c.Invalidate(ctx, "board:adv:3", "board:adv:4"))

		for _, key := range []string{"board:adv:3", "board:adv:4"} {
			value, err := c.Get(ctx, key)
			require.NoError(t, err)
			assert.Empty(t, value, key)
			assert.Equal(t, cache.DefaultInvalidationHold, s.TTL(key))
		}
	})

	t.Run("stale read cannot refill invalidated key", func(t *testing.T) {
		require.NoError(t, c.Invalidate(ctx, "board:user:5"))

		added, err := c.Add(ctx, "board:user:5", `{"username":"stale","advertisements":0}`, 0)
		require.NoError(t, err)
		assert.False(t, added)

		s.FastForward(cache.DefaultInvalidationHold + time.Second)

		added, err = c.Add(ctx, "board:user:5", `{"username":"fresh","advertisements":1}`, 0)
		require.NoError(t, err)
		assert.True(t, added)
	})

	t.Run("invalidate without keys", func(t *testing.T) {
		assert.NoError(t, c.Invalidate(ctx))
	})

	t.Run("server failure surfaces as error", func(t *testing.T) {
		s.SetError("ERR injected failure")
		t.Cleanup(func() { s.SetError("") })

		_, err := c.Get(ctx, "board:user:1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), cache.ErrorFailedToGet)
	})
}

func TestNoop(t *testing.T) {
	ctx := context.Background()
	c := cache.NewNoop()

	added, err := c.Add(ctx, "k", "v", time.Minute)
	require.NoError(t, err)
	assert.False(t, added)
	value, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Empty(t, value)
	assert.NoError(t, c.Invalidate(ctx, "k"))
	assert.NoError(t, c.Close())
}
