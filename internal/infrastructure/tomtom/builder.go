package tomtom

import (
	"net/http"
	"strings"

	"github.com/routing-gateway/internal/domain"
)

const locationsPlaceholder = "{locations}"

// modeSpec - метод и шаблон пути для режима
type modeSpec struct {
	method string
	path   string
}

var modeSpecs = map[domain.Mode]modeSpec{
	domain.ModeRoute:  {method: http.MethodGet, path: "/routing/1/calculateRoute/{locations}/json"},
	domain.ModeRange:  {method: http.MethodPost, path: "/routing/1/calculateReachableRange/{locations}/json"},
	domain.ModeBatch:  {method: http.MethodPost, path: "/routing/1/batch/sync/json"},
	domain.ModeMatrix: {method: http.MethodPost, path: "/routing/1/matrix/sync/json"},
}

// batchQueryTemplate - путь отдельного элемента batch запроса
const batchQueryTemplate = "/calculateRoute/{locations}/json"

// BatchBody - тело batch запроса
type BatchBody struct {
	BatchItems []BatchItem `json:"batchItems"`
}

// BatchItem - самодостаточный подзапрос batch запроса
type BatchItem struct {
	Query  string            `json:"query"`
	Params map[string]string `json:"params"`
}

// MatrixBody - тело matrix запроса
type MatrixBody struct {
	Origins      []MatrixPoint `json:"origins"`
	Destinations []MatrixPoint `json:"destinations"`
}

type MatrixPoint struct {
	Point LatLng `json:"point"`
}

type LatLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Builder собирает описания запросов для четырёх режимов Routing API
type Builder struct{}

func NewBuilder() *Builder {
	return &Builder{}
}

// Route - GET calculateRoute, опции и ключ в query
func (b *Builder) Route(req domain.RouteRequest) (*domain.HTTPRequest, error) {
	if req.Key == "" {
		return nil, domain.ErrMissingCredential
	}

	return b.build(
		domain.ModeRoute,
		routeLocations(req.Origin, req.Destination),
		OptionParams(req.Options, req.Key),
		nil,
	), nil
}

// ReachableRange - POST calculateReachableRange, бюджеты и ключ в query, тела нет
func (b *Builder) ReachableRange(req domain.RangeRequest) (*domain.HTTPRequest, error) {
	if req.Key == "" {
		return nil, domain.ErrMissingCredential
	}

	return b.build(
		domain.ModeRange,
		req.Origin.String(),
		BudgetParams(req.Budget, req.Key),
		nil,
	), nil
}

// Batch - POST batch/sync, по одному подзапросу на пару в исходном порядке
func (b *Builder) Batch(req domain.BatchRequest) (*domain.HTTPRequest, error) {
	if req.Key == "" {
		return nil, domain.ErrMissingCredential
	}

	items := make([]BatchItem, 0, len(req.Pairs))
	for _, pair := range req.Pairs {
		items = append(items, BatchItem{
			Query:  strings.Replace(batchQueryTemplate, locationsPlaceholder, routeLocations(pair.Origin, pair.Destination), 1),
			Params: OptionParams(req.Options, req.Key),
		})
	}

	return b.build(domain.ModeBatch, "", map[string]string{}, &BatchBody{BatchItems: items}), nil
}

// Matrix - POST matrix/sync, опции и ключ в query, точки в теле
func (b *Builder) Matrix(req domain.MatrixRequest) (*domain.HTTPRequest, error) {
	if req.Key == "" {
		return nil, domain.ErrMissingCredential
	}

	body := &MatrixBody{
		Origins:      matrixPoints(req.Origins),
		Destinations: matrixPoints(req.Destinations),
	}

	return b.build(domain.ModeMatrix, "", OptionParams(req.Options, req.Key), body), nil
}

func (b *Builder) build(mode domain.Mode, locations string, params map[string]string, body any) *domain.HTTPRequest {
	spec := modeSpecs[mode]

	req := &domain.HTTPRequest{
		Mode:   mode,
		Method: spec.method,
		Path:   strings.Replace(spec.path, locationsPlaceholder, locations, 1),
		Params: params,
		Body:   body,
	}

	return req
}

func routeLocations(origin, destination domain.Coordinate) string {
	return origin.String() + ":" + destination.String()
}

func matrixPoints(coords []domain.Coordinate) []MatrixPoint {
	points := make([]MatrixPoint, len(coords))
	for i, c := range coords {
		points[i] = MatrixPoint{Point: LatLng{Latitude: c.Lat, Longitude: c.Lon}}
	}
	return points
}
