package domain

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordinate_String(t *testing.T) {
	tests := []struct {
		coord    Coordinate
		expected string
	}{
		{Coordinate{Lat: 42.37806, Lon: -87.94427}, "42.37806,-87.94427"},
		{Coordinate{Lat: 0, Lon: 0}, "0,0"},
		{Coordinate{Lat: 52.5, Lon: 13}, "52.5,13"},
		{Coordinate{Lat: 123, Lon: -500}, "123,-500"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.coord.String())
		})
	}
}

func TestMode_IsValid(t *testing.T) {
	for _, m := range []Mode{ModeRoute, ModeRange, ModeBatch, ModeMatrix} {
		assert.True(t, m.IsValid(), m)
	}
	assert.False(t, Mode("teleport").IsValid())
}

func TestOptionEnums_IsValid(t *testing.T) {
	assert.True(t, TravelTimeAllExceptBlocked.IsValid())
	assert.False(t, TravelTimeScope("some").IsValid())
	assert.True(t, RouteTypeThrilling.IsValid())
	assert.False(t, RouteType("scenic").IsValid())
	assert.True(t, RepresentationNone.IsValid())
	assert.True(t, AvoidLowEmissionZones.IsValid())
	assert.False(t, Avoid("potholes").IsValid())
}

func TestAPIResult_OK(t *testing.T) {
	assert.True(t, (&APIResult{StatusCode: http.StatusOK, Data: map[string]any{}}).OK())
	assert.False(t, (&APIResult{StatusCode: http.StatusBadRequest, Data: map[string]any{}}).OK())
	assert.False(t, (&APIResult{StatusCode: http.StatusOK, Failure: &DecodeFailure{Raw: "x"}}).OK())
}

func TestAPIResult_CachedIsNotSerialized(t *testing.T) {
	data, err := json.Marshal(&APIResult{StatusCode: 200, Data: map[string]any{"a": 1.0}, Cached: true})
	require.NoError(t, err)
	assert.JSONEq(t, `{"status_code":200,"result":{"a":1}}`, string(data))
}

func TestTransportError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := error(&TransportError{Method: http.MethodGet, URL: "/routing/1/calculateRoute", Err: cause})

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "GET /routing/1/calculateRoute")
}

func TestRoutingJobEvent_JSON(t *testing.T) {
	seconds := 900.0
	event := RoutingJobEvent{
		JobID: uuid.New(),
		Mode:  ModeRange,
		Range: &RangeJobParams{
			Origin: Coordinate{Lat: 1, Lon: 2},
			Budget: Budget{TimeInSec: &seconds},
		},
	}

	data, err := json.Marshal(event)
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"route"`)
	assert.NotContains(t, string(data), "distance_budget_m")

	var decoded RoutingJobEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.NotNil(t, decoded.Range)
	assert.Equal(t, 900.0, *decoded.Range.Budget.TimeInSec)
}
