package main

// @title ARGO Float Search API
// @version 1.0.0
// @description Сервис поиска и анализа данных буёв ARGO поверх хранилища профилей (BigQuery, PostgreSQL или DuckDB).
// @description
// @description Основные возможности:
// @description - Поиск буёв и профилей по времени, области, диапазонам измерений, платформам и флагам качества
// @description - Поиск ближайших буёв к точке
// @description - Вертикальные профили, временные ряды и траектории отдельных буёв
// @description - Региональная статистика и распределение флагов качества

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

	_ "github.com/argo-float-service/docs"
	"github.com/argo-float-service/internal/config"
	httpDelivery "github.com/argo-float-service/internal/delivery/http"
	"github.com/argo-float-service/internal/delivery/http/handler"
	"github.com/argo-float-service/internal/domain/repository"
	"github.com/argo-float-service/internal/pkg/logger"
	"github.com/argo-float-service/internal/pkg/metrics"
	"github.com/argo-float-service/internal/repository/cache"
	"github.com/argo-float-service/internal/repository/warehouse"
	"github.com/argo-float-service/internal/usecase"
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
	defer func() { _ = log.Sync() }()

	log.Info("Starting ARGO Float Search")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("warehouse", cfg.Warehouse.Driver),
	)

	// 3. Metrics
	m := metrics.New()

	// 4. Open warehouse
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	exec, err := warehouse.Open(ctx, cfg, log, m)
	if err != nil {
		log.Fatal("Failed to open warehouse", zap.Error(err))
	}

	if err := exec.Health(ctx); err != nil {
		log.Fatal("Warehouse health check failed", zap.Error(err))
	}
	log.Info("Warehouse connected")

	// 5. Optional Redis query cache
	var executor repository.WarehouseExecutor = exec
	var redisClient *cache.Redis

	if cfg.Cache.Enabled {
		redisClient, err = cache.NewRedis(ctx, cfg, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		executor = cache.NewQueryCache(exec, cache.NewCacheRepository(redisClient), cfg.Cache.TTL, log, m)
		log.Info("Query cache enabled", zap.Duration("ttl", cfg.Cache.TTL))
	}

	// 6. Initialize Use Cases
	floatUC := usecase.NewFloatUseCase(executor, usecase.TablesFrom(cfg.Warehouse), log)

	// 7. Initialize HTTP Handlers
	handlers := httpDelivery.Handlers{
		Float:   handler.NewFloatHandler(floatUC, m, log),
		Profile: handler.NewProfileHandler(floatUC, m, log),
		Stats:   handler.NewStatsHandler(floatUC, m, log),
	}

	// 8. Initialize HTTP Server
	server := httpDelivery.NewServer(cfg, log, m, exec, handlers)

	// 9. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 10. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if err := exec.Close(); err != nil {
		log.Error("Failed to close warehouse", zap.Error(err))
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis", zap.Error(err))
		}
	}

	log.Info("Server stopped successfully")
}
