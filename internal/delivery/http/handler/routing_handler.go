package handler

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/routing-gateway/internal/domain"
	"github.com/routing-gateway/internal/pkg/errors"
	"github.com/routing-gateway/internal/pkg/utils"
	"github.com/routing-gateway/internal/pkg/validator"
	"github.com/routing-gateway/internal/usecase"
	"github.com/routing-gateway/internal/usecase/dto"
)

// APIKeyHeader - заголовок с ключом Routing API
const APIKeyHeader = "X-Api-Key"

// RoutingHandler - обработчик запросов маршрутизации
type RoutingHandler struct {
	routingUC  *usecase.RoutingUseCase
	defaultKey string
	logger     *zap.Logger
}

// NewRoutingHandler - defaultKey используется, если ключ не передан ни в теле, ни в заголовке
func NewRoutingHandler(routingUC *usecase.RoutingUseCase, defaultKey string, logger *zap.Logger) *RoutingHandler {
	return &RoutingHandler{
		routingUC:  routingUC,
		defaultKey: defaultKey,
		logger:     logger,
	}
}

// CalculateRoute godoc
// @Summary Расчёт маршрута
// @Description Маршрут между двумя точками. Незаданные опции берутся по умолчанию: summaryOnly, all, fastest, traffic=true, avoid=unpavedRoads.
// @Tags Routing
// @Accept json
// @Produce json
// @Param X-Api-Key header string false "Ключ Routing API"
// @Param request body dto.RouteRequest true "Точки и опции маршрута"
// @Success 200 {object} utils.SuccessResponse{data=dto.RoutingResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/routing/route [post]
func (h *RoutingHandler) CalculateRoute(c *fiber.Ctx) error {
	var req dto.RouteRequest
	if err := h.parse(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	start := time.Now()
	result, err := h.routingUC.CalculateRoute(c.Context(), req.ToDomain(h.resolveKey(c, req.Key)))
	if err != nil {
		return utils.SendError(c, err)
	}

	return h.send(c, result, true, start)
}

// CalculateRouteGET godoc
// @Summary Расчёт маршрута (query параметры)
// @Description Тот же расчёт маршрута, точки передаются строками "lat,lon". avoid - список через запятую, пустое значение отключает avoid.
// @Tags Routing
// @Produce json
// @Param origin query string true "Начальная точка" example(42.37806,-87.94427)
// @Param destination query string true "Конечная точка" example(42.39081,-87.95857)
// @Param route_representation query string false "summaryOnly, polyline, none"
// @Param compute_travel_time_for query string false "all, none, allExceptBlocked"
// @Param route_type query string false "fastest, shortest, eco, thrilling"
// @Param traffic query bool false "Учитывать трафик"
// @Param avoid query string false "Список avoid через запятую"
// @Param X-Api-Key header string false "Ключ Routing API"
// @Success 200 {object} utils.SuccessResponse{data=dto.RoutingResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/routing/route [get]
func (h *RoutingHandler) CalculateRouteGET(c *fiber.Ctx) error {
	req, err := routeRequestFromQuery(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := validator.Validate(req); err != nil {
		return utils.SendError(c, err)
	}

	start := time.Now()
	result, err := h.routingUC.CalculateRoute(c.Context(), req.ToDomain(h.resolveKey(c, "")))
	if err != nil {
		return utils.SendError(c, err)
	}

	return h.send(c, result, true, start)
}

// CalculateReachableRange godoc
// @Summary Достижимая область
// @Description Область, достижимая из точки в пределах бюджета времени, расстояния или топлива. Передаются только заданные бюджеты.
// @Tags Routing
// @Accept json
// @Produce json
// @Param X-Api-Key header string false "Ключ Routing API"
// @Param request body dto.RangeRequest true "Точка и бюджеты"
// @Success 200 {object} utils.SuccessResponse{data=dto.RoutingResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/routing/range [post]
func (h *RoutingHandler) CalculateReachableRange(c *fiber.Ctx) error {
	var req dto.RangeRequest
	if err := h.parse(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	start := time.Now()
	result, err := h.routingUC.CalculateReachableRange(c.Context(), req.ToDomain(h.resolveKey(c, req.Key)))
	if err != nil {
		return utils.SendError(c, err)
	}

	return h.send(c, result, false, start)
}

// CalculateBatch godoc
// @Summary Пакетный расчёт маршрутов
// @Description До 5 пар точек за один запрос. Результаты возвращаются в порядке пар.
// @Tags Routing
// @Accept json
// @Produce json
// @Param X-Api-Key header string false "Ключ Routing API"
// @Param request body dto.BatchRequest true "Пары точек и общие опции"
// @Success 200 {object} utils.SuccessResponse{data=dto.RoutingResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/routing/batch [post]
func (h *RoutingHandler) CalculateBatch(c *fiber.Ctx) error {
	var req dto.BatchRequest
	if err := h.parse(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	start := time.Now()
	result, err := h.routingUC.CalculateBatch(c.Context(), req.ToDomain(h.resolveKey(c, req.Key)))
	if err != nil {
		return utils.SendError(c, err)
	}

	return h.send(c, result, false, start)
}

// CalculateMatrix godoc
// @Summary Матрица маршрутов
// @Description Маршруты от каждой из origins до каждой из destinations, до 5 точек с каждой стороны.
// @Tags Routing
// @Accept json
// @Produce json
// @Param X-Api-Key header string false "Ключ Routing API"
// @Param request body dto.MatrixRequest true "Точки и общие опции"
// @Success 200 {object} utils.SuccessResponse{data=dto.RoutingResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/routing/matrix [post]
func (h *RoutingHandler) CalculateMatrix(c *fiber.Ctx) error {
	var req dto.MatrixRequest
	if err := h.parse(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	start := time.Now()
	result, err := h.routingUC.CalculateMatrix(c.Context(), req.ToDomain(h.resolveKey(c, req.Key)))
	if err != nil {
		return utils.SendError(c, err)
	}

	return h.send(c, result, false, start)
}

// RecentRequests godoc
// @Summary Журнал вызовов Routing API
// @Description Последние вызовы, без ключей. Доступно при REQUEST_LOG_ENABLED=true.
// @Tags Routing
// @Produce json
// @Param limit query int false "Количество записей" default(50)
// @Success 200 {object} utils.SuccessResponse{data=dto.RequestLogResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/routing/requests [get]
func (h *RoutingHandler) RecentRequests(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)

	entries, err := h.routingUC.RecentRequests(c.Context(), limit)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.RequestLogResponse{
		Requests: entries,
		Total:    len(entries),
	}, &utils.Meta{Total: len(entries), Limit: limit})
}

func (h *RoutingHandler) parse(c *fiber.Ctx, req interface{}) error {
	if err := c.BodyParser(req); err != nil {
		return errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"body": "invalid JSON",
		})
	}
	return validator.Validate(req)
}

// resolveKey - ключ из тела, затем из заголовка, затем из конфигурации
func (h *RoutingHandler) resolveKey(c *fiber.Ctx, bodyKey string) string {
	if bodyKey != "" {
		return bodyKey
	}
	if key := c.Get(APIKeyHeader); key != "" {
		return key
	}
	return h.defaultKey
}

func (h *RoutingHandler) send(c *fiber.Ctx, result *domain.APIResult, withSummary bool, start time.Time) error {
	return utils.SendSuccess(c, dto.NewRoutingResponse(result, withSummary), &utils.Meta{
		Cached:   result.Cached,
		TimeMSec: float64(time.Since(start).Microseconds()) / 1000,
	})
}

func routeRequestFromQuery(c *fiber.Ctx) (*dto.RouteRequest, error) {
	invalid := func(field, reason string) error {
		return errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"fields": map[string]interface{}{field: reason},
		})
	}

	origin, err := queryPoint(c, "origin")
	if err != nil {
		return nil, invalid("origin", err.Error())
	}
	destination, err := queryPoint(c, "destination")
	if err != nil {
		return nil, invalid("destination", err.Error())
	}

	opts := &dto.RouteOptions{}
	if v := c.Query("route_representation"); v != "" {
		r := domain.RouteRepresentation(v)
		opts.RouteRepresentation = &r
	}
	if v := c.Query("compute_travel_time_for"); v != "" {
		s := domain.TravelTimeScope(v)
		opts.ComputeTravelTimeFor = &s
	}
	if v := c.Query("route_type"); v != "" {
		t := domain.RouteType(v)
		opts.RouteType = &t
	}
	if v := c.Query("traffic"); v != "" {
		traffic, err := strconv.ParseBool(v)
		if err != nil {
			return nil, invalid("traffic", "must be true or false")
		}
		opts.Traffic = &traffic
	}
	if c.Context().QueryArgs().Has("avoid") {
		avoid := []domain.Avoid{}
		for _, part := range strings.Split(c.Query("avoid"), ",") {
			if part = strings.TrimSpace(part); part != "" {
				avoid = append(avoid, domain.Avoid(part))
			}
		}
		opts.Avoid = &avoid
	}

	return &dto.RouteRequest{
		Origin:      origin,
		Destination: destination,
		Options:     opts,
	}, nil
}

func queryPoint(c *fiber.Ctx, name string) (*dto.Point, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, fmt.Errorf("required")
	}
	lat, lon, err := utils.ParseLatLon(raw)
	if err != nil {
		return nil, err
	}
	return &dto.Point{Lat: lat, Lon: lon}, nil
}
