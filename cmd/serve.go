package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"task-match-system.com/task-match-system/internal/cache"
	config "task-match-system.com/task-match-system/internal/configs"
	httpapi "task-match-system.com/task-match-system/internal/http"
	repository "task-match-system.com/task-match-system/internal/repositories"
	"task-match-system.com/task-match-system/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the task matching HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()

		logger := config.NewLogger(cfg.Env)
		defer func() { _ = logger.Sync() }()

		database := config.New(cfg.DatabaseDSN)

		var refCache cache.ReferenceCache
		if cfg.CacheEnabled {
			redisClient := config.NewRedisClient(cfg.RedisAddr)
			defer redisClient.Close()

			refCache = cache.NewRedisReferenceCache(
				redisClient,
				cfg.CacheKeyPrefix,
				time.Duration(cfg.CacheTTLSeconds)*time.Second,
			)
		}

		catalogRepo := repository.NewCatalogRepository(database, refCache)
		availabilityRepo := repository.NewAvailabilityRepository(database)
		requestRepo := repository.NewRequestRepository(database, availabilityRepo)
		ratingRepo := repository.NewRatingRepository(database)

		matcher := services.NewMatcherService(catalogRepo, requestRepo, logger)
		lifecycle := services.NewLifecycleService(requestRepo, logger)
		ratings := services.NewRatingService(requestRepo, ratingRepo)
		catalog := services.NewCatalogService(catalogRepo, requestRepo)
		availability := services.NewAvailabilityService(availabilityRepo, catalogRepo)
		workers := services.NewWorkerService(catalogRepo, logger)

		e := echo.New()
		handler := httpapi.NewHandler(matcher, lifecycle, ratings, catalog, availability, workers)
		httpapi.Register(e, handler, cfg.RateLimit)

		go func() {
			logger.Info("HTTP server listening", zap.String("addr", cfg.AppURL))
			if err := e.Start(cfg.AppURL); err != nil {
				logger.Info("server stopped", zap.Error(err))
			}
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		ctx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second,
		)
		defer cancel()

		_ = e.Shutdown(ctx)

		logger.Info("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
