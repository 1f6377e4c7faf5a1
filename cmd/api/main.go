package main

// @title Routing Gateway API
// @version 1.0.0
// @description Шлюз к TomTom Routing API. Собирает запросы четырёх видов и возвращает разобранный ответ.
// @description
// @description Основные возможности:
// @description - Расчёт маршрута между двумя точками
// @description - Достижимая область по бюджету времени, расстояния или топлива
// @description - Пакетный расчёт до 5 маршрутов
// @description - Матрица маршрутов до 5x5

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/routing-gateway/docs"
	"github.com/routing-gateway/internal/config"
	httpDelivery "github.com/routing-gateway/internal/delivery/http"
	"github.com/routing-gateway/internal/delivery/http/handler"
	"github.com/routing-gateway/internal/domain/repository"
	"github.com/routing-gateway/internal/infrastructure/tomtom"
	"github.com/routing-gateway/internal/pkg/logger"
	"github.com/routing-gateway/internal/repository/cache"
	"github.com/routing-gateway/internal/repository/postgres"
	"github.com/routing-gateway/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, "routing-api")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Routing Gateway")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("tomtom_base_url", cfg.TomTom.BaseURL),
		zap.Bool("default_key_set", cfg.TomTom.DefaultKey != ""),
		zap.Bool("cache_enabled", cfg.Cache.Active()),
		zap.Bool("request_log_enabled", cfg.RequestLog.Enabled),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	checkers := make(map[string]handler.HealthChecker)

	// 3. Redis (кеш результатов)
	var cacheRepo repository.CacheRepository
	var cacheTTL time.Duration
	if cfg.Cache.Active() {
		redisClient, err := cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Failed to close Redis connection", zap.Error(err))
			}
		}()

		if err := redisClient.Health(ctx); err != nil {
			log.Fatal("Redis health check failed", zap.Error(err))
		}

		cacheRepo = cache.NewCacheRepository(redisClient)
		cacheTTL = cfg.Cache.RouteTTL
		checkers["redis"] = redisClient
		log.Info("Redis connected")
	}

	// 4. PostgreSQL (журнал вызовов)
	var requestLogRepo repository.RequestLogRepository
	if cfg.RequestLog.Enabled {
		db, err := postgres.New(&cfg.Database, log)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
		}
		defer func() {
			if err := db.Close(); err != nil {
				log.Error("Failed to close PostgreSQL connection", zap.Error(err))
			}
		}()

		if err := db.EnsureSchema(ctx); err != nil {
			log.Fatal("Failed to prepare request log schema", zap.Error(err))
		}

		requestLogRepo = postgres.NewRequestLogRepository(db)
		checkers["postgres"] = db
		log.Info("PostgreSQL connected")
	}

	// 5. Routing API transport and use case
	routingRepo := tomtom.NewTomTomClient(&cfg.TomTom, log)
	routingUC := usecase.NewRoutingUseCase(routingRepo, cacheRepo, requestLogRepo, log, cacheTTL)

	// 6. Handlers and server
	routingHandler := handler.NewRoutingHandler(routingUC, cfg.TomTom.DefaultKey, log)
	healthHandler := handler.NewHealthHandler(checkers, log)

	server := httpDelivery.NewServer(cfg, log, routingHandler, healthHandler)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// 7. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited")
}
