package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routing-gateway/internal/domain"
	"github.com/routing-gateway/internal/pkg/validator"
	"github.com/routing-gateway/internal/usecase/dto"
)

func TestRouteRequest_ToDomain(t *testing.T) {
	var req dto.RouteRequest
	require.NoError(t, json.Unmarshal([]byte(`{
		"origin": {"lat": 42.37806, "lon": -87.94427},
		"destination": {"lat": 42.39081, "lon": -87.95857},
		"options": {"route_type": "eco", "avoid": []}
	}`), &req))
	require.NoError(t, validator.Validate(&req))

	got := req.ToDomain("k")
	assert.Equal(t, domain.Coordinate{Lat: 42.37806, Lon: -87.94427}, got.Origin)
	assert.Equal(t, domain.RouteTypeEco, got.Options.RouteType)
	assert.Equal(t, domain.RepresentationSummaryOnly, got.Options.Representation)
	assert.True(t, got.Options.Traffic)
	assert.Empty(t, got.Options.Avoid)
	assert.Equal(t, "k", got.Key)
}

func TestRouteRequest_DefaultOptions(t *testing.T) {
	req := dto.RouteRequest{Origin: &dto.Point{}, Destination: &dto.Point{Lat: 1, Lon: 1}}
	require.NoError(t, validator.Validate(&req))

	assert.Equal(t, domain.DefaultRouteOptions(), req.ToDomain("k").Options)
}

func TestValidation(t *testing.T) {
	p := &dto.Point{Lat: 1, Lon: 2}

	tests := []struct {
		name    string
		req     interface{}
		wantErr bool
	}{
		{"route without destination", &dto.RouteRequest{Origin: p}, true},
		{"unknown route type", &dto.RouteRequest{Origin: p, Destination: p, Options: &dto.RouteOptions{RouteType: ptr(domain.RouteType("scenic"))}}, true},
		{"unknown avoid", &dto.RouteRequest{Origin: p, Destination: p, Options: &dto.RouteOptions{Avoid: &[]domain.Avoid{"potholes"}}}, true},
		{"unknown representation", &dto.RouteRequest{Origin: p, Destination: p, Options: &dto.RouteOptions{RouteRepresentation: ptr(domain.RouteRepresentation("full"))}}, true},
		{"travel time except blocked", &dto.RouteRequest{Origin: p, Destination: p, Options: &dto.RouteOptions{ComputeTravelTimeFor: ptr(domain.TravelTimeAllExceptBlocked)}}, false},
		{"valid avoid", &dto.RouteRequest{Origin: p, Destination: p, Options: &dto.RouteOptions{Avoid: &[]domain.Avoid{domain.AvoidFerries, domain.AvoidTollRoads}}}, false},
		{"range without budgets", &dto.RangeRequest{Origin: p}, false},
		{"empty batch", &dto.BatchRequest{}, true},
		{"batch of six", &dto.BatchRequest{Pairs: make([]dto.RoutePair, 6)}, true},
		{"batch pair without origin", &dto.BatchRequest{Pairs: []dto.RoutePair{{Destination: p}}}, true},
		{"batch of five", &dto.BatchRequest{Pairs: fivePairs(p)}, false},
		{"matrix without destinations", &dto.MatrixRequest{Origins: []dto.Point{*p}}, true},
		{"matrix of six origins", &dto.MatrixRequest{Origins: make([]dto.Point, 6), Destinations: []dto.Point{*p}}, true},
		{"matrix 5x5", &dto.MatrixRequest{Origins: make([]dto.Point, 5), Destinations: make([]dto.Point, 5)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.Validate(tt.req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBatchRequest_ToDomainKeepsOrder(t *testing.T) {
	req := dto.BatchRequest{Pairs: []dto.RoutePair{
		{Origin: &dto.Point{Lat: 1, Lon: 1}, Destination: &dto.Point{Lat: 2, Lon: 2}},
		{Origin: &dto.Point{Lat: 3, Lon: 3}, Destination: &dto.Point{Lat: 4, Lon: 4}},
	}}

	got := req.ToDomain("k")
	require.Len(t, got.Pairs, 2)
	assert.Equal(t, 1.0, got.Pairs[0].Origin.Lat)
	assert.Equal(t, 4.0, got.Pairs[1].Destination.Lon)
}

func TestNewRoutingResponse(t *testing.T) {
	t.Run("summary of first route", func(t *testing.T) {
		var data map[string]any
		require.NoError(t, json.Unmarshal([]byte(`{"routes":[{"summary":{"lengthInMeters":1834}},{"summary":{"lengthInMeters":9}}]}`), &data))

		resp := dto.NewRoutingResponse(&domain.APIResult{StatusCode: 200, Data: data}, true)
		assert.Equal(t, map[string]any{"lengthInMeters": 1834.0}, resp.Summary)
	})

	t.Run("no routes", func(t *testing.T) {
		resp := dto.NewRoutingResponse(&domain.APIResult{StatusCode: 400, Data: map[string]any{"error": "x"}}, true)
		assert.Nil(t, resp.Summary)
	})

	t.Run("decode failure", func(t *testing.T) {
		failure := &domain.DecodeFailure{Raw: "<html>Error</html>", Reason: "invalid character"}
		resp := dto.NewRoutingResponse(&domain.APIResult{StatusCode: 500, Failure: failure}, true)
		assert.Nil(t, resp.Result)
		assert.Same(t, failure, resp.DecodeFailure)
	})
}

func fivePairs(p *dto.Point) []dto.RoutePair {
	pairs := make([]dto.RoutePair, 5)
	for i := range pairs {
		pairs[i] = dto.RoutePair{Origin: p, Destination: p}
	}
	return pairs
}

func ptr[T any](v T) *T {
	return &v
}
