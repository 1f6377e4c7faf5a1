package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/routing-gateway/internal/domain"
	"github.com/routing-gateway/internal/domain/repository"
)

const resultKeyPrefix = "routing:result:"

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

// GetResult получает результат вызова из кеша. nil, nil - промах.
// Запись, которую не удалось разобрать, удаляется.
func (r *cacheRepository) GetResult(ctx context.Context, key string) (*domain.APIResult, error) {
	data, err := r.Get(ctx, resultKeyPrefix+key)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var result domain.APIResult
	if err := json.Unmarshal(data, &result); err != nil {
		r.logger.Error("Failed to unmarshal result from cache", zap.Error(err))
		// битая запись удаляется, следующий вызов пойдёт в Routing API
		if delErr := r.Delete(ctx, resultKeyPrefix+key); delErr != nil {
			return nil, fmt.Errorf("unmarshal result: %w (evict: %v)", err, delErr)
		}
		return nil, fmt.Errorf("unmarshal result: %w", err)
	}

	return &result, nil
}

// SetResult сохраняет результат вызова в кеше
func (r *cacheRepository) SetResult(ctx context.Context, key string, result *domain.APIResult, ttl time.Duration) error {
	data, err := json.Marshal(result)
	if err != nil {
		r.logger.Error("Failed to marshal result", zap.Error(err))
		return fmt.Errorf("marshal result: %w", err)
	}

	return r.Set(ctx, resultKeyPrefix+key, data, ttl)
}
