package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/routing-gateway/internal/config"
	"github.com/routing-gateway/internal/delivery/http/handler"
	"github.com/routing-gateway/internal/delivery/http/middleware"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	routingHandler *handler.RoutingHandler
	healthHandler  *handler.HealthHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	routingHandler *handler.RoutingHandler,
	healthHandler *handler.HealthHandler,
) *Server {
	// запрос к Routing API может длиться до TOMTOM_REQUEST_TIMEOUT
	writeTimeout := time.Duration(cfg.TomTom.RequestTimeout)*time.Second + 5*time.Second

	app := fiber.New(fiber.Config{
		AppName:      "Routing Gateway",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: writeTimeout,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:            app,
		config:         cfg,
		logger:         logger,
		routingHandler: routingHandler,
		healthHandler:  healthHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// App - fiber приложение, используется в тестах
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	api.Get("/health", s.healthHandler.Health)

	routing := api.Group("/routing")
	routing.Get("/route", s.routingHandler.CalculateRouteGET)
	routing.Post("/route", s.routingHandler.CalculateRoute)
	routing.Post("/range", s.routingHandler.CalculateReachableRange)
	routing.Post("/batch", s.routingHandler.CalculateBatch)
	routing.Post("/matrix", s.routingHandler.CalculateMatrix)
	routing.Get("/requests", s.routingHandler.RecentRequests)
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
