package tomtom

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/routing-gateway/internal/config"
	"github.com/routing-gateway/internal/domain"
)

func testConfig(baseURL string) *config.TomTomConfig {
	return &config.TomTomConfig{
		BaseURL:        baseURL,
		RequestTimeout: 5,
	}
}

func TestClient_Do(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	b := NewBuilder()

	t.Run("route request is sent as GET with query params", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/routing/1/calculateRoute/42.37806,-87.94427:42.39081,-87.95857/json", r.URL.Path)
			assert.Equal(t, "summaryOnly", r.URL.Query().Get("routeRepresentation"))
			assert.Equal(t, "unpavedRoads", r.URL.Query().Get("avoid"))
			assert.Equal(t, "test_key", r.URL.Query().Get("key"))
			assert.Equal(t, "*/*", r.Header.Get("Accept"))
			assert.Empty(t, r.Header.Get("Content-Type"))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"routes":[{"summary":{"lengthInMeters":1834}}]}`))
		}))
		defer server.Close()

		req, err := b.Route(domain.RouteRequest{
			Origin:      origin,
			Destination: destination,
			Options:     domain.DefaultRouteOptions(),
			Key:         "test_key",
		})
		require.NoError(t, err)

		resp, err := NewTomTomClient(testConfig(server.URL), logger).Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, `{"routes":[{"summary":{"lengthInMeters":1834}}]}`, resp.Body)
		assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	})

	t.Run("matrix request sends json body and query options", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/routing/1/matrix/sync/json", r.URL.Path)
			assert.Equal(t, "fastest", r.URL.Query().Get("routeType"))
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var body MatrixBody
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Len(t, body.Origins, 1)
			assert.Len(t, body.Destinations, 2)

			w.Write([]byte(`{"formatVersion":"0.0.1","matrix":[[{"statusCode":200}]]}`))
		}))
		defer server.Close()

		req, err := b.Matrix(domain.MatrixRequest{
			Origins:      []domain.Coordinate{origin},
			Destinations: []domain.Coordinate{destination, origin},
			Options:      domain.DefaultRouteOptions(),
			Key:          "test_key",
		})
		require.NoError(t, err)

		resp, err := NewTomTomClient(testConfig(server.URL), logger).Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("range request has no body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			raw, _ := io.ReadAll(r.Body)
			assert.Empty(t, raw)
			assert.Equal(t, "900", r.URL.Query().Get("timeBudgetInSec"))
			assert.False(t, r.URL.Query().Has("fuelBudgetInLiters"))
			w.Write([]byte(`{"reachableRange":{}}`))
		}))
		defer server.Close()

		seconds := 900.0
		req, err := b.ReachableRange(domain.RangeRequest{
			Origin: origin,
			Budget: domain.Budget{TimeInSec: &seconds},
			Key:    "test_key",
		})
		require.NoError(t, err)

		_, err = NewTomTomClient(testConfig(server.URL), logger).Do(context.Background(), req)
		require.NoError(t, err)
	})

	t.Run("error status is returned as a raw response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`<h1>Developer Inactive</h1>`))
		}))
		defer server.Close()

		req, err := b.Route(domain.RouteRequest{Origin: origin, Destination: destination, Options: domain.DefaultRouteOptions(), Key: "bad"})
		require.NoError(t, err)

		resp, err := NewTomTomClient(testConfig(server.URL), logger).Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		assert.Equal(t, `<h1>Developer Inactive</h1>`, resp.Body)
	})

	t.Run("network failure is a transport error without the key", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		baseURL := server.URL
		server.Close()

		req, err := b.Route(domain.RouteRequest{Origin: origin, Destination: destination, Options: domain.DefaultRouteOptions(), Key: "secret_key"})
		require.NoError(t, err)

		resp, err := NewTomTomClient(testConfig(baseURL), logger).Do(context.Background(), req)
		assert.Nil(t, resp)
		require.Error(t, err)

		var transportErr *domain.TransportError
		require.True(t, errors.As(err, &transportErr))
		assert.Equal(t, http.MethodGet, transportErr.Method)
		assert.NotContains(t, err.Error(), "secret_key")
	})

	t.Run("no retry on failure", func(t *testing.T) {
		calls := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		req, err := b.Route(domain.RouteRequest{Origin: origin, Destination: destination, Options: domain.DefaultRouteOptions(), Key: "k"})
		require.NoError(t, err)

		resp, err := NewTomTomClient(testConfig(server.URL), logger).Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, 1, calls)
	})
}
