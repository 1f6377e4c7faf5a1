package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/routing-gateway/internal/config"
	"github.com/routing-gateway/internal/domain/repository"
	"github.com/routing-gateway/internal/infrastructure/tomtom"
	"github.com/routing-gateway/internal/pkg/logger"
	"github.com/routing-gateway/internal/repository/cache"
	"github.com/routing-gateway/internal/repository/postgres"
	redisRepo "github.com/routing-gateway/internal/repository/redis"
	"github.com/routing-gateway/internal/usecase"
	"github.com/routing-gateway/internal/worker"
	"github.com/routing-gateway/internal/worker/routing"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, "routing-worker")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Routing Job Worker")
	log.Info("Configuration loaded",
		zap.String("consumer_group", cfg.Worker.ConsumerGroup),
		zap.String("consumer_name", cfg.Worker.ConsumerName),
		zap.Duration("stream_read_timeout", cfg.Worker.StreamReadTimeout))

	// 3. Redis нужен всегда: через него идут задания
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	var cacheRepo repository.CacheRepository
	var cacheTTL time.Duration
	if cfg.Cache.Active() {
		cacheRepo = cache.NewCacheRepository(redisClient)
		cacheTTL = cfg.Cache.RouteTTL
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

		if err := db.EnsureSchema(context.Background()); err != nil {
			log.Fatal("Failed to prepare request log schema", zap.Error(err))
		}
		requestLogRepo = postgres.NewRequestLogRepository(db)
	}

	// 5. Repositories and use case
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log, cfg.Worker.StreamReadTimeout)
	routingRepo := tomtom.NewTomTomClient(&cfg.TomTom, log)
	routingUC := usecase.NewRoutingUseCase(routingRepo, cacheRepo, requestLogRepo, log, cacheTTL)

	// 6. Workers
	jobWorker := routing.NewJobWorker(
		streamRepo,
		routingUC,
		cfg.Worker.ConsumerGroup,
		cfg.Worker.ConsumerName,
		cfg.TomTom.DefaultKey,
		log,
	)

	workerManager := worker.NewWorkerManager(log)
	workerManager.Register(jobWorker)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	// 7. Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Received shutdown signal")

	cancel()

	if err := workerManager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}

	log.Info("Worker shutdown complete")
}
