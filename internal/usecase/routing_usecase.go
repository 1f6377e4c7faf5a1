package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/routing-gateway/internal/domain"
	"github.com/routing-gateway/internal/domain/repository"
	"github.com/routing-gateway/internal/infrastructure/tomtom"
	"github.com/routing-gateway/internal/pkg/errors"
)

// RoutingUseCase - сборка запроса, вызов Routing API и разбор ответа.
// Каждый вызов - ровно один блокирующий HTTP запрос.
type RoutingUseCase struct {
	builder        *tomtom.Builder
	routingRepo    repository.RoutingRepository
	cacheRepo      repository.CacheRepository
	requestLogRepo repository.RequestLogRepository
	logger         *zap.Logger
	cacheTTL       time.Duration
}

// NewRoutingUseCase - cacheRepo и requestLogRepo могут быть nil
func NewRoutingUseCase(
	routingRepo repository.RoutingRepository,
	cacheRepo repository.CacheRepository,
	requestLogRepo repository.RequestLogRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *RoutingUseCase {
	return &RoutingUseCase{
		builder:        tomtom.NewBuilder(),
		routingRepo:    routingRepo,
		cacheRepo:      cacheRepo,
		requestLogRepo: requestLogRepo,
		logger:         logger,
		cacheTTL:       cacheTTL,
	}
}

// CalculateRoute - один маршрут
func (uc *RoutingUseCase) CalculateRoute(ctx context.Context, req domain.RouteRequest) (*domain.APIResult, error) {
	httpReq, err := uc.builder.Route(req)
	if err != nil {
		return nil, err
	}
	return uc.execute(ctx, httpReq, req.Options.Avoid)
}

// CalculateReachableRange - достижимая область по бюджетам
func (uc *RoutingUseCase) CalculateReachableRange(ctx context.Context, req domain.RangeRequest) (*domain.APIResult, error) {
	httpReq, err := uc.builder.ReachableRange(req)
	if err != nil {
		return nil, err
	}
	return uc.execute(ctx, httpReq, nil)
}

// CalculateBatch - несколько маршрутов одним запросом, порядок результатов как у пар
func (uc *RoutingUseCase) CalculateBatch(ctx context.Context, req domain.BatchRequest) (*domain.APIResult, error) {
	httpReq, err := uc.builder.Batch(req)
	if err != nil {
		return nil, err
	}
	return uc.execute(ctx, httpReq, req.Options.Avoid)
}

// CalculateMatrix - матрица origins x destinations, ответ не перестраивается
func (uc *RoutingUseCase) CalculateMatrix(ctx context.Context, req domain.MatrixRequest) (*domain.APIResult, error) {
	httpReq, err := uc.builder.Matrix(req)
	if err != nil {
		return nil, err
	}
	return uc.execute(ctx, httpReq, req.Options.Avoid)
}

// RecentRequests - последние записи журнала вызовов
func (uc *RoutingUseCase) RecentRequests(ctx context.Context, limit int) ([]*domain.RequestLogEntry, error) {
	if uc.requestLogRepo == nil {
		return nil, errors.ErrRequestLogDisabled
	}
	return uc.requestLogRepo.ListRecent(ctx, limit)
}

func (uc *RoutingUseCase) execute(ctx context.Context, req *domain.HTTPRequest, avoid []domain.Avoid) (*domain.APIResult, error) {
	key := uc.cacheKey(req)

	if cached := uc.lookup(ctx, key); cached != nil {
		uc.logger.Debug("Routing result served from cache",
			zap.String("mode", string(req.Mode)),
			zap.String("path", req.Path))
		return cached, nil
	}

	start := time.Now()
	resp, err := uc.routingRepo.Do(ctx, req)
	elapsed := time.Since(start)

	if err != nil {
		uc.logger.Error("Routing API call failed",
			zap.String("mode", string(req.Mode)),
			zap.Duration("duration", elapsed),
			zap.Error(err))
		uc.record(ctx, req, avoid, nil, err, elapsed)
		return nil, err
	}

	result := tomtom.Decode(resp)
	if !result.Decoded() {
		uc.logger.Warn("Routing API returned undecodable body",
			zap.String("mode", string(req.Mode)),
			zap.Int("status_code", result.StatusCode),
			zap.String("reason", result.Failure.Reason))
	}

	uc.record(ctx, req, avoid, result, nil, elapsed)
	uc.store(ctx, key, result)

	return result, nil
}

func (uc *RoutingUseCase) cachingEnabled() bool {
	return uc.cacheRepo != nil && uc.cacheTTL > 0
}

func (uc *RoutingUseCase) lookup(ctx context.Context, key string) *domain.APIResult {
	if !uc.cachingEnabled() || key == "" {
		return nil
	}

	cached, err := uc.cacheRepo.GetResult(ctx, key)
	if err != nil {
		uc.logger.Warn("Failed to read routing cache", zap.Error(err))
		return nil
	}
	if cached != nil {
		cached.Cached = true
	}
	return cached
}

// store кеширует только разобранные ответы со статусом 2xx
func (uc *RoutingUseCase) store(ctx context.Context, key string, result *domain.APIResult) {
	if !uc.cachingEnabled() || key == "" || !result.OK() {
		return
	}

	if err := uc.cacheRepo.SetResult(ctx, key, result, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to write routing cache", zap.Error(err))
	}
}

// cacheKey - хеш всего описания запроса, включая ключ API, чтобы сам ключ не попадал в Redis
func (uc *RoutingUseCase) cacheKey(req *domain.HTTPRequest) string {
	if !uc.cachingEnabled() {
		return ""
	}

	payload, err := json.Marshal(struct {
		Method string            `json:"m"`
		Path   string            `json:"p"`
		Params map[string]string `json:"q"`
		Body   any               `json:"b,omitempty"`
	}{req.Method, req.Path, req.Params, req.Body})
	if err != nil {
		uc.logger.Warn("Failed to build cache key", zap.Error(err))
		return ""
	}

	return fmt.Sprintf("%s:%s", req.Mode, strconv.FormatUint(xxhash.Sum64(payload), 16))
}

// record пишет журнал вызовов. Ошибки журнала не влияют на результат.
func (uc *RoutingUseCase) record(
	ctx context.Context,
	req *domain.HTTPRequest,
	avoid []domain.Avoid,
	result *domain.APIResult,
	callErr error,
	elapsed time.Duration,
) {
	if uc.requestLogRepo == nil {
		return
	}

	entry := &domain.RequestLogEntry{
		ID:         uuid.New(),
		Mode:       req.Mode,
		Method:     req.Method,
		Path:       req.Path,
		DurationMs: elapsed.Milliseconds(),
		Avoid:      make([]string, 0, len(avoid)),
		CreatedAt:  time.Now().UTC(),
	}
	for _, a := range avoid {
		entry.Avoid = append(entry.Avoid, string(a))
	}
	if result != nil {
		entry.StatusCode = result.StatusCode
		entry.DecodeFailed = !result.Decoded()
	}
	if callErr != nil {
		msg := callErr.Error()
		entry.TransportError = &msg
	}

	if err := uc.requestLogRepo.Insert(ctx, entry); err != nil {
		uc.logger.Warn("Failed to write request log", zap.Error(err))
	}
}
