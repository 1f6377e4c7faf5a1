package repository

import (
	"context"
	"time"

	"github.com/routing-gateway/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// GetResult получает закешированный результат вызова
	GetResult(ctx context.Context, key string) (*domain.APIResult, error)

	// SetResult сохраняет результат вызова с TTL
	SetResult(ctx context.Context, key string, result *domain.APIResult, ttl time.Duration) error
}
