package main

// @title Places Sync Service API
// @version 1.0.0
// @description Сервис синхронизации данных о местах из Google Places API. Находит место по текстовому запросу или номеру телефона, загружает детали (адрес, телефон, координаты, часы работы, ссылки) и хранит их в PostgreSQL с посуточной политикой свежести.
// @description
// @description Основные возможности:
// @description - Чтение места с автоматической ресинхронизацией устаревших записей
// @description - Одиночная синхронизация по place_id или поисковому запросу
// @description - Полная ресинхронизация всех сохранённых мест через очередь задач
// @description - Отслеживание прогресса batch-задач по job_id

// @contact.name API Support
// @contact.email support@places-sync.dev

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

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

	_ "github.com/places-sync/docs"
	"github.com/places-sync/internal/config"
	httpDelivery "github.com/places-sync/internal/delivery/http"
	"github.com/places-sync/internal/delivery/http/handler"
	"github.com/places-sync/internal/infrastructure/googleplaces"
	"github.com/places-sync/internal/pkg/logger"
	"github.com/places-sync/internal/repository/cache"
	"github.com/places-sync/internal/repository/postgres"
	redisRepo "github.com/places-sync/internal/repository/redis"
	"github.com/places-sync/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Places Sync Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

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
	log.Info("PostgreSQL connected")

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
	log.Info("Redis connected")

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize repositories
	placeRepo := postgres.NewPlaceRepository(db)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)
	progressRepo := cache.NewProgressRepository(redisClient.Client(), cfg.Sync.ProgressTTL, log)
	placesAPI := googleplaces.NewGooglePlacesClient(&cfg.Google, log)

	log.Info("Repositories initialized")

	// 7. Initialize use cases
	location, err := time.LoadLocation(cfg.Sync.Timezone)
	if err != nil {
		log.Fatal("Invalid sync timezone", zap.String("timezone", cfg.Sync.Timezone), zap.Error(err))
	}

	syncUC := usecase.NewSyncUseCase(placesAPI, placeRepo, googleplaces.MapDetails, log, time.Now)
	placeUC := usecase.NewPlaceUseCase(placeRepo, syncUC, log, location, time.Now)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP handlers
	placeHandler := handler.NewPlaceHandler(placeUC, syncUC, log)
	syncHandler := handler.NewSyncHandler(streamRepo, progressRepo, log)
	healthHandler := handler.NewHealthHandler(map[string]handler.HealthChecker{
		"postgres": db.Health,
		"redis":    redisClient.Health,
	}, log)

	// 9. Initialize HTTP server
	server := httpDelivery.NewServer(cfg, log, placeHandler, syncHandler, healthHandler)

	log.Info("HTTP server initialized")

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
