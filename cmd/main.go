package main

import (
	"book_catalog_web/config"
	"book_catalog_web/data/cache"
	"book_catalog_web/data/db/postgres"
	redisClient "book_catalog_web/data/redis"
	"book_catalog_web/data/session"
	"book_catalog_web/internal/catalogApi"
	"book_catalog_web/internal/repository"
	"book_catalog_web/internal/service/catalogService"
	"book_catalog_web/internal/transport/web"
	"book_catalog_web/internal/transport/web/middleware"
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	cfg := config.MustLoad()

	setupLogger(cfg)

	slog.Debug("config", slog.Any("cfg", cfg))

	var requestLogRepo middleware.RequestLogRepo
	if cfg.HTTP.RequestLogging {
		postgres.MustMigrate(cfg)

		postgresDb := postgres.NewPostgresClient(cfg)
		defer postgresDb.Close()

		requestLogRepo = repository.NewPostgresRepo(postgresDb)
	}

	redisClient := redisClient.MustInitRedis(cfg)
	defer redisClient.Close()

	redisSession := session.NewRedisSession(cfg, redisClient)

	redisCache := cache.NewRedisCache(cfg, redisClient)

	catalogClient := catalogApi.New(cfg)

	catalogSvc := catalogService.New(cfg, catalogClient, redisCache)

	webController := web.NewController(cfg, catalogSvc, redisSession)

	server := web.New(cfg, webController, requestLogRepo)

	server.Start()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	<-interrupt

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	server.Stop(ctx)
}

func setupLogger(cfg *config.Config) {
	var logLevel slog.Level

	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warning":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(log)
}
