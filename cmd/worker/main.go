package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/places-sync/internal/config"
	"github.com/places-sync/internal/infrastructure/googleplaces"
	"github.com/places-sync/internal/pkg/logger"
	"github.com/places-sync/internal/repository/cache"
	"github.com/places-sync/internal/repository/postgres"
	redisRepo "github.com/places-sync/internal/repository/redis"
	"github.com/places-sync/internal/usecase"
	"github.com/places-sync/internal/worker"
	"github.com/places-sync/internal/worker/places"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Check if worker is enabled
	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Places Sync Worker")
	log.Info("Configuration loaded",
		zap.String("consumer_group", cfg.Worker.ConsumerGroup),
		zap.Int("max_retries", cfg.Worker.MaxRetries))

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 5. Initialize repositories
	placeRepo := postgres.NewPlaceRepository(db)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)
	progressRepo := cache.NewProgressRepository(redisClient.Client(), cfg.Sync.ProgressTTL, log)
	placesAPI := googleplaces.NewGooglePlacesClient(&cfg.Google, log)

	// 6. Initialize use cases
	syncUC := usecase.NewSyncUseCase(placesAPI, placeRepo, googleplaces.MapDetails, log, time.Now)
	batchSyncUC := usecase.NewBatchSyncUseCase(placeRepo, syncUC, log)

	// 7. Initialize workers
	syncWorker := places.NewSyncWorker(
		streamRepo,
		progressRepo,
		batchSyncUC,
		cfg.Worker.ConsumerGroup,
		log,
	)

	// 8. Create worker manager and register workers
	workerManager := worker.NewWorkerManager(log)
	workerManager.Register(syncWorker)

	// 9. Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	// Wait for interrupt signal
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
