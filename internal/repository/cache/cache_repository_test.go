package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/routing-gateway/internal/domain"
	"github.com/routing-gateway/internal/repository/cache"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *cache.Redis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, cache.NewRedisFromClient(client, zap.NewNop())
}

func TestCacheRepository_GetSet(t *testing.T) {
	_, r := newTestRedis(t)
	repo := cache.NewCacheRepository(r)
	ctx := context.Background()

	val, err := repo.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, val)

	require.NoError(t, repo.Set(ctx, "k", []byte("v"), time.Minute))
	val, err = repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), val)

	require.NoError(t, repo.Delete(ctx, "k"))
	val, err = repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, val)
}

func TestCacheRepository_Result(t *testing.T) {
	mr, r := newTestRedis(t)
	repo := cache.NewCacheRepository(r)
	ctx := context.Background()

	result := &domain.APIResult{
		StatusCode: 200,
		Data: map[string]any{
			"routes": []any{map[string]any{"summary": map[string]any{"lengthInMeters": 1834.0}}},
		},
	}

	require.NoError(t, repo.SetResult(ctx, "abc", result, 30*time.Second))
	assert.True(t, mr.Exists("routing:result:abc"))

	got, err := repo.GetResult(ctx, "abc")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, result, got)

	mr.FastForward(31 * time.Second)
	got, err = repo.GetResult(ctx, "abc")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCacheRepository_CorruptedEntry(t *testing.T) {
	mr, r := newTestRedis(t)
	repo := cache.NewCacheRepository(r)

	require.NoError(t, mr.Set("routing:result:bad", "{not json"))

	got, err := repo.GetResult(context.Background(), "bad")
	assert.Error(t, err)
	assert.Nil(t, got)
	assert.False(t, mr.Exists("routing:result:bad"))

	got, err = repo.GetResult(context.Background(), "bad")
	require.NoError(t, err)
	assert.Nil(t, got)
}
