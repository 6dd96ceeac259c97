package app_test

import (
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adboard/internal/board/adapters/cache"
	"adboard/internal/board/app"
	"adboard/internal/board/config"
	"adboard/internal/board/domain/entities"
	"adboard/internal/board/ports/services"
)

func newRedisCache(t *testing.T) (*miniredis.Miniredis, services.Cache) {
	t.Helper()

	s, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(s.Close)

	host, portStr, _ := strings.Cut(s.Addr(), ":")
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)

	c, err := cache.NewRedisCache(context.Background(), &config.RedisConfig{
		Host:             host,
		Port:             port,
		ConnectTimeout:   time.Second,
		ReadTimeout:      time.Second,
		WriteTimeout:     time.Second,
		PoolSize:         2,
		DefaultTTL:       5 * time.Minute,
		InvalidationHold: 30 * time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	return s, c
}

func TestGetUserDoesNotCacheRacedSummary(t *testing.T) {
	ctx := context.Background()
	s, redisCache := newRedisCache(t)

	uow := newFakeUnitOfWork()
	uow.users.On("FindByID", mock.Anything, int64(7)).
		Return(&entities.User{ID: 7, Username: "bob"}, nil)
	// Объявление создано и кэш инвалидирован, пока чтение уже посчитало объявления.
	uow.ads.On("CountByOwner", mock.Anything, int64(7)).
		Run(func(mock.Arguments) {
			require.NoError(t, redisCache.Invalidate(ctx, "board:user:7"))
		}).
		Return(1, nil).Once()

	users := app.NewUserUseCase(uow, new(mockValidator), redisCache)

	summary, err := users.GetUser(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Advertisements)

	cached, err := redisCache.Get(ctx, "board:user:7")
	require.NoError(t, err)
	assert.Empty(t, cached, "summary read before the write must not be cached")

	uow.ads.On("CountByOwner", mock.Anything, int64(7)).Return(2, nil).Once()
	s.FastForward(31 * time.Second)

	summary, err = users.GetUser(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Advertisements)

	cached, err = redisCache.Get(ctx, "board:user:7")
	require.NoError(t, err)
	assert.JSONEq(t, `{"username":"bob","advertisements":2}`, cached)
}
