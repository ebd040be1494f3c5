package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/spaceatlas/atlas-backend/internal/config"
	"github.com/spaceatlas/atlas-backend/internal/database"
	"github.com/spaceatlas/atlas-backend/internal/handler"
	"github.com/spaceatlas/atlas-backend/internal/logger"
	"github.com/spaceatlas/atlas-backend/internal/middleware"
	"github.com/spaceatlas/atlas-backend/internal/repository"
	"github.com/spaceatlas/atlas-backend/internal/router"
	"github.com/spaceatlas/atlas-backend/internal/service"
	"github.com/spaceatlas/atlas-backend/internal/validator"
)

// Login rate limit, matching the public API contract: 20 requests per
// 15 minutes per client IP.
const (
	loginRateLimit  = 20
	loginRateWindow = 15 * time.Minute
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting Space Atlas API")

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Login Rate Limiter ────────────────────────────────────────────
	// Redis-backed when configured so the limit holds across replicas;
	// in-memory otherwise.
	var loginLimiter gin.HandlerFunc
	if cfg.RedisURL != "" {
		rdb, err := database.NewRedisClient(ctx, cfg, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		loginLimiter = middleware.NewRedisRateLimiter(rdb, "ratelimit:login", loginRateLimit, loginRateWindow).Middleware()
	} else {
		log.Info().Msg("REDIS_URL not set, using in-memory login rate limiter")
		loginLimiter = middleware.NewRateLimiter(loginRateLimit, loginRateWindow).Middleware()
	}

	// ─── Initialize Repositories ───────────────────────────────────────
	bodyRepo := repository.NewBodyRepository(pool)

	// ─── Initialize Services ──────────────────────────────────────────
	authService := service.NewAuthService(cfg)
	bodyService := service.NewBodyService(bodyRepo, log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth: handler.NewAuthHandler(authService),
		Body: handler.NewBodyHandler(bodyService),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(authService, handlers, cfg, loginLimiter)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
