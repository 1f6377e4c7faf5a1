package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/routing-gateway/internal/delivery/http/handler"
)

type checkerFunc func(ctx context.Context) error

func (f checkerFunc) Health(ctx context.Context) error { return f(ctx) }

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name       string
		checkers   map[string]handler.HealthChecker
		wantStatus int
		wantState  string
	}{
		{"no dependencies", nil, http.StatusOK, "healthy"},
		{
			"all ok",
			map[string]handler.HealthChecker{"redis": checkerFunc(func(context.Context) error { return nil })},
			http.StatusOK,
			"healthy",
		},
		{
			"redis down",
			map[string]handler.HealthChecker{
				"redis":    checkerFunc(func(context.Context) error { return errors.New("refused") }),
				"postgres": checkerFunc(func(context.Context) error { return nil }),
			},
			http.StatusServiceUnavailable,
			"degraded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/health", handler.NewHealthHandler(tt.checkers, zap.NewNop()).Health)

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Equal(t, tt.wantState, body["status"])
		})
	}
}
