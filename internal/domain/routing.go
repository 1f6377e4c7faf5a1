package domain

import (
	"net/http"
	"strconv"
)

// Mode - режим запроса к TomTom Routing API
type Mode string

const (
	ModeRoute  Mode = "route"
	ModeRange  Mode = "range"
	ModeBatch  Mode = "batch"
	ModeMatrix Mode = "matrix"
)

func (m Mode) IsValid() bool {
	switch m {
	case ModeRoute, ModeRange, ModeBatch, ModeMatrix:
		return true
	}
	return false
}

// Coordinate - пара широта/долгота в градусах. Диапазон не проверяется,
// некорректные значения отклоняет сам внешний сервис.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// String возвращает координату в формате "lat,lon"
func (c Coordinate) String() string {
	return formatFloat(c.Lat) + "," + formatFloat(c.Lon)
}

// RoutePair - пара origin/destination для batch запроса
type RoutePair struct {
	Origin      Coordinate `json:"origin"`
	Destination Coordinate `json:"destination"`
}

// Budget - бюджеты для расчёта достижимой области. Незаданные поля не отправляются.
type Budget struct {
	TimeInSec        *float64 `json:"time_budget_sec,omitempty"`
	DistanceInMeters *float64 `json:"distance_budget_m,omitempty"`
	FuelInLiters     *float64 `json:"fuel_budget_l,omitempty"`
}

// RouteRequest - запрос одного маршрута
type RouteRequest struct {
	Origin      Coordinate
	Destination Coordinate
	Options     RouteOptions
	Key         string
}

// RangeRequest - запрос достижимой области
type RangeRequest struct {
	Origin Coordinate
	Budget Budget
	Key    string
}

// BatchRequest - несколько независимых маршрутов в одном физическом запросе
type BatchRequest struct {
	Pairs   []RoutePair
	Options RouteOptions
	Key     string
}

// MatrixRequest - матрица маршрутов origins x destinations
type MatrixRequest struct {
	Origins      []Coordinate
	Destinations []Coordinate
	Options      RouteOptions
	Key          string
}

// HTTPRequest - описание исходящего запроса, готовое для транспорта
type HTTPRequest struct {
	Mode   Mode
	Method string
	Path   string
	Params map[string]string
	Body   any
}

// HasBody сообщает, нужно ли отправлять тело запроса
func (r *HTTPRequest) HasBody() bool {
	return r.Body != nil
}

// RawResponse - ответ внешнего сервиса без интерпретации
type RawResponse struct {
	StatusCode int
	Header     http.Header
	Body       string
}

// DecodeFailure - тело ответа не является JSON объектом
type DecodeFailure struct {
	Raw    string `json:"raw"`
	Reason string `json:"reason"`
}

// APIResult - результат вызова: либо разобранный JSON, либо DecodeFailure
type APIResult struct {
	StatusCode int            `json:"status_code"`
	Data       map[string]any `json:"result,omitempty"`
	Failure    *DecodeFailure `json:"decode_failure,omitempty"`
	Cached     bool           `json:"-"`
}

// Decoded сообщает, удалось ли разобрать ответ
func (r *APIResult) Decoded() bool {
	return r.Failure == nil
}

// OK сообщает, что ответ разобран и статус 2xx
func (r *APIResult) OK() bool {
	return r.Decoded() && r.StatusCode >= 200 && r.StatusCode < 300
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
