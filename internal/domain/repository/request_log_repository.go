package repository

import (
	"context"

	"github.com/routing-gateway/internal/domain"
)

// RequestLogRepository - журнал вызовов внешнего сервиса
type RequestLogRepository interface {
	Insert(ctx context.Context, entry *domain.RequestLogEntry) error
	ListRecent(ctx context.Context, limit int) ([]*domain.RequestLogEntry, error)
}
