package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"growth-projector/config"
	httpLayer "growth-projector/http"
	"growth-projector/logger"
	"growth-projector/repository"
	"growth-projector/service"
)

const redisPingTimeout = 3 * time.Second

func newServeCommand() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the projection HTTP API",
		Long: `Start the projection HTTP API.

Endpoints:
  GET  /health
  POST /projection/calculate
  POST /projection/schedule
  GET  /projection/history?limit=N

Configuration is read from the environment and an optional .env file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if port != "" {
				cfg.HTTP.Port = port
			}
			return runServe(cmd.Context(), cmd, cfg)
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "Listen port (overrides HTTP_PORT)")

	return cmd
}

func runServe(ctx context.Context, cmd *cobra.Command, cfg config.Config) error {
	level, err := logger.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		return err
	}

	log, shutdownLogger, err := logger.New(ctx, logger.Options{
		Level:       level,
		Format:      cfg.App.LogFormat,
		Output:      cmd.ErrOrStderr(),
		OTEL:        cfg.App.OTELEnabled,
		ServiceName: cfg.App.ServiceName,
	})
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer shutdownLogger(context.Background())

	cache, closeCache := newCache(ctx, cfg.Redis, log)
	defer closeCache()

	repo := repository.NewProjectionRepositoryMemory(cfg.History.Capacity)
	projectionService := service.NewProjectionService(repo, cache, cfg.Redis.CacheTTL, log)
	projectionHandler := httpLayer.NewProjectionHandler(projectionService, log)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit.Capacity, cfg.RateLimit.Window)
	defer rateLimiter.Stop()

	server := &http.Server{
		Addr:         cfg.HTTP.Addr(),
		Handler:      httpLayer.NewRouter(projectionHandler, rateLimiter, log),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("API listening", "addr", server.Addr, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serverErr:
		return fmt.Errorf("starting server: %w", err)
	case <-quit.Done():
		log.Info("Shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	log.Info("Server exited")
	return nil
}

// newCache connects to Redis when an address is configured and falls back to
// the in-memory cache when it is missing or unreachable.
func newCache(ctx context.Context, cfg config.RedisConfig, log *slog.Logger) (repository.CacheRepository, func()) {
	if cfg.Addr == "" {
		log.Info("using in-memory cache")
		return repository.NewMemoryCache(), func() {}
	}

	redisCache := repository.NewRedisCache(repository.RedisOptions{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()

	if err := redisCache.Ping(pingCtx); err != nil {
		log.Warn("redis unavailable, using in-memory cache", "addr", cfg.Addr, "error", err)
		redisCache.Close()
		return repository.NewMemoryCache(), func() {}
	}

	log.Info("using redis cache", "addr", cfg.Addr)
	return redisCache, func() {
		if err := redisCache.Close(); err != nil {
			log.Warn("failed to close redis client", "error", err)
		}
	}
}
