package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// HealthChecker - зависимость, состояние которой попадает в health
type HealthChecker interface {
	Health(ctx context.Context) error
}

// HealthHandler обрабатывает проверку состояния сервиса
type HealthHandler struct {
	checkers map[string]HealthChecker
	logger   *zap.Logger
}

// NewHealthHandler - checkers может быть пустым, если Redis и Postgres отключены
func NewHealthHandler(checkers map[string]HealthChecker, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		checkers: checkers,
		logger:   logger,
	}
}

// Health godoc
// @Summary Health check
// @Description Состояние сервиса и подключённых хранилищ. Routing API не опрашивается.
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /api/v1/health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	status := "healthy"
	code := fiber.StatusOK
	deps := make(map[string]string, len(h.checkers))

	for name, checker := range h.checkers {
		if err := checker.Health(ctx); err != nil {
			h.logger.Warn("Health check failed", zap.String("dependency", name), zap.Error(err))
			deps[name] = "unavailable"
			status = "degraded"
			code = fiber.StatusServiceUnavailable
			continue
		}
		deps[name] = "ok"
	}

	return c.Status(code).JSON(fiber.Map{
		"status":       status,
		"dependencies": deps,
		"time":         time.Now(),
	})
}
