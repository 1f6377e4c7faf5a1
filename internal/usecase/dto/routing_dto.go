package dto

import (
	"github.com/routing-gateway/internal/domain"
	"github.com/routing-gateway/internal/infrastructure/tomtom"
)

// Point - координаты точки. Диапазон не проверяется, это решает Routing API.
type Point struct {
	Lat float64 `json:"lat" example:"42.37806"`
	Lon float64 `json:"lon" example:"-87.94427"`
}

func (p Point) toDomain() domain.Coordinate {
	return domain.Coordinate{Lat: p.Lat, Lon: p.Lon}
}

// RouteOptions - переопределения опций маршрута, незаданные поля берутся по умолчанию
type RouteOptions struct {
	RouteRepresentation  *domain.RouteRepresentation `json:"route_representation,omitempty" validate:"omitempty,enum"`
	ComputeTravelTimeFor *domain.TravelTimeScope     `json:"compute_travel_time_for,omitempty" validate:"omitempty,enum"`
	RouteType            *domain.RouteType           `json:"route_type,omitempty" validate:"omitempty,enum"`
	Traffic              *bool                       `json:"traffic,omitempty"`
	Avoid                *[]domain.Avoid             `json:"avoid,omitempty" validate:"omitempty,dive,enum"`
}

// ToInput - частично заданные опции для нормализации
func (o *RouteOptions) ToInput() *domain.RouteOptionsInput {
	if o == nil {
		return nil
	}
	return &domain.RouteOptionsInput{
		Representation: o.RouteRepresentation,
		TravelTimeFor:  o.ComputeTravelTimeFor,
		RouteType:      o.RouteType,
		Traffic:        o.Traffic,
		Avoid:          o.Avoid,
	}
}

// Normalize - полный набор опций
func (o *RouteOptions) Normalize() domain.RouteOptions {
	if o == nil {
		return domain.DefaultRouteOptions()
	}
	return tomtom.NormalizeOptions(*o.ToInput())
}

// RouteRequest - запрос на расчёт одного маршрута
type RouteRequest struct {
	Origin      *Point        `json:"origin" validate:"required"`
	Destination *Point        `json:"destination" validate:"required"`
	Options     *RouteOptions `json:"options,omitempty"`
	Key         string        `json:"key,omitempty"`
}

func (r *RouteRequest) ToDomain(key string) domain.RouteRequest {
	return domain.RouteRequest{
		Origin:      r.Origin.toDomain(),
		Destination: r.Destination.toDomain(),
		Options:     r.Options.Normalize(),
		Key:         key,
	}
}

// RangeRequest - запрос на достижимую область. Бюджеты не проверяются,
// можно передать несколько или ни одного.
type RangeRequest struct {
	Origin           *Point   `json:"origin" validate:"required"`
	TimeBudgetSec    *float64 `json:"time_budget_sec,omitempty" example:"900"`
	DistanceBudgetM  *float64 `json:"distance_budget_m,omitempty"`
	FuelBudgetLiters *float64 `json:"fuel_budget_l,omitempty"`
	Key              string   `json:"key,omitempty"`
}

func (r *RangeRequest) ToDomain(key string) domain.RangeRequest {
	return domain.RangeRequest{
		Origin: r.Origin.toDomain(),
		Budget: domain.Budget{
			TimeInSec:        r.TimeBudgetSec,
			DistanceInMeters: r.DistanceBudgetM,
			FuelInLiters:     r.FuelBudgetLiters,
		},
		Key: key,
	}
}

// RoutePair - пара точек маршрута
type RoutePair struct {
	Origin      *Point `json:"origin" validate:"required"`
	Destination *Point `json:"destination" validate:"required"`
}

// BatchRequest - пакет маршрутов, от 1 до 5 пар
type BatchRequest struct {
	Pairs   []RoutePair   `json:"pairs" validate:"required,min=1,max=5,dive"`
	Options *RouteOptions `json:"options,omitempty"`
	Key     string        `json:"key,omitempty"`
}

func (r *BatchRequest) ToDomain(key string) domain.BatchRequest {
	pairs := make([]domain.RoutePair, len(r.Pairs))
	for i, p := range r.Pairs {
		pairs[i] = domain.RoutePair{
			Origin:      p.Origin.toDomain(),
			Destination: p.Destination.toDomain(),
		}
	}
	return domain.BatchRequest{
		Pairs:   pairs,
		Options: r.Options.Normalize(),
		Key:     key,
	}
}

// MatrixRequest - матрица маршрутов, от 1 до 5 точек с каждой стороны
type MatrixRequest struct {
	Origins      []Point       `json:"origins" validate:"required,min=1,max=5"`
	Destinations []Point       `json:"destinations" validate:"required,min=1,max=5"`
	Options      *RouteOptions `json:"options,omitempty"`
	Key          string        `json:"key,omitempty"`
}

func (r *MatrixRequest) ToDomain(key string) domain.MatrixRequest {
	return domain.MatrixRequest{
		Origins:      toCoordinates(r.Origins),
		Destinations: toCoordinates(r.Destinations),
		Options:      r.Options.Normalize(),
		Key:          key,
	}
}

func toCoordinates(points []Point) []domain.Coordinate {
	coords := make([]domain.Coordinate, len(points))
	for i, p := range points {
		coords[i] = p.toDomain()
	}
	return coords
}

// RoutingResponse - ответ Routing API. Либо result, либо decode_failure.
type RoutingResponse struct {
	StatusCode    int                   `json:"status_code"`
	Result        map[string]any        `json:"result,omitempty"`
	Summary       any                   `json:"summary,omitempty"`
	DecodeFailure *domain.DecodeFailure `json:"decode_failure,omitempty"`
}

// NewRoutingResponse собирает ответ. withSummary добавляет routes[0].summary, если он есть.
func NewRoutingResponse(result *domain.APIResult, withSummary bool) RoutingResponse {
	resp := RoutingResponse{
		StatusCode:    result.StatusCode,
		Result:        result.Data,
		DecodeFailure: result.Failure,
	}
	if withSummary {
		resp.Summary = firstRouteSummary(result.Data)
	}
	return resp
}

func firstRouteSummary(data map[string]any) any {
	routes, ok := data["routes"].([]any)
	if !ok || len(routes) == 0 {
		return nil
	}
	route, ok := routes[0].(map[string]any)
	if !ok {
		return nil
	}
	return route["summary"]
}

// RequestLogResponse - последние вызовы Routing API
type RequestLogResponse struct {
	Requests []*domain.RequestLogEntry `json:"requests"`
	Total    int                       `json:"total"`
}
