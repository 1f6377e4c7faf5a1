package repository

import (
	"context"

	"github.com/routing-gateway/internal/domain"
)

// RoutingRepository - транспорт до внешнего Routing API
type RoutingRepository interface {
	// Do выполняет запрос ровно так, как он собран, и возвращает сырой ответ.
	// Сетевые ошибки возвращаются как *domain.TransportError.
	Do(ctx context.Context, req *domain.HTTPRequest) (*domain.RawResponse, error)
}
