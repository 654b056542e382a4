package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"fintx/api"
	"fintx/cache"
	"fintx/config"
	"fintx/repository"
	"fintx/session"
	"fintx/store"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger := newLogger(cfg.LogLevel)
	logger.Info().
		Int("http_port", cfg.HTTPPort).
		Str("env", cfg.Env).
		Str("database", cfg.DatabaseURL).
		Str("redis", cfg.RedisURL).
		Msg("starting fintx")

	// Initialize store
	db, err := store.NewSQLiteStore(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize store")
	}
	defer db.Close()

	// Initialize cache
	redisCache, err := cache.NewRedisCache(cfg.RedisURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize cache")
	}
	defer redisCache.Close()

	// Initialize repository and session manager
	repo := repository.New(db, redisCache, cfg.SummaryTTL, logger)
	sessions := session.NewManager(cfg.IsProduction(), cfg.SessionMaxAge)

	// Initialize handler
	h := api.NewHandler(repo, sessions, db, redisCache, logger)

	// Create Echo server
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XFrameOptions:      "DENY",
		ContentTypeNosniff: "nosniff",
	}))
	e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStoreWithConfig(
		middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(float64(cfg.RateLimitMax) / 60.0),
			Burst:     cfg.RateLimitMax,
			ExpiresIn: time.Minute,
		},
	)))

	// Register routes
	h.RegisterRoutes(e)

	// Start server
	go func() {
		addr := fmt.Sprintf(":%d", cfg.HTTPPort)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	logger.Info().Int("port", cfg.HTTPPort).Msg("HTTP server started")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shut down server gracefully")
	}

	logger.Info().Msg("stopped")
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(os.Stdout).Level(lvl).With().Timestamp().Logger()
}
