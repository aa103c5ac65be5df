// Copyright (c) 2026 DoodleDog. All rights reserved.
// Author: team@doodledog.app

// Command web is the entry point for the DoodleDog web application.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Wire HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/doodledog/doodledog/internal/api"
	"github.com/doodledog/doodledog/internal/auth"
	"github.com/doodledog/doodledog/internal/platform/config"
	"github.com/doodledog/doodledog/internal/platform/constants"
	"github.com/doodledog/doodledog/internal/platform/csrf"
	"github.com/doodledog/doodledog/internal/platform/migration"
	pgstore "github.com/doodledog/doodledog/internal/platform/postgres"
	"github.com/doodledog/doodledog/internal/platform/ratelimit"
	redisstore "github.com/doodledog/doodledog/internal/platform/redis"
	"github.com/doodledog/doodledog/internal/platform/render"
	"github.com/doodledog/doodledog/internal/platform/sec"
	"github.com/doodledog/doodledog/internal/projects"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("[DoodleDog] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("rate_limit_backend", cfg.RateLimitBackend),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Security Services ──────────────────────────────────────────────
	tokenService, err := sec.NewTokenService(cfg.AuthSecret, constants.TokenIssuer)
	must(log, err, "initialize token service")

	csrfGuard := csrf.NewGuard()

	// Attempt counters live in process memory by default; the Redis backend
	// shares them across replicas.
	var limiter ratelimit.Limiter
	switch cfg.RateLimitBackend {
	case config.RateLimitBackendRedis:
		limiter = ratelimit.NewRedisLimiter(rdb, constants.RedisPrefixRateLimit,
			constants.AuthRateLimitAttempts, constants.AuthRateLimitWindow)
	default:
		limiter = ratelimit.NewMemoryLimiter(context.Background(),
			constants.AuthRateLimitAttempts, constants.AuthRateLimitWindow)
	}

	// ── 7. Templates ──────────────────────────────────────────────────────
	pages, err := render.New()
	must(log, err, "parse page templates")

	// ── 8. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}, log)

	// ── 9. Domain Wiring ──────────────────────────────────────────────────
	userStore := auth.NewUserStore(pool)
	authService := auth.NewService(userStore, tokenService)
	authHandler := auth.NewHandler(authService, csrfGuard, limiter, pages)

	projectStore := projects.NewProjectStore(pool)
	projectService := projects.NewService(projectStore)
	projectHandler := projects.NewHandler(projectService, pages)

	// ── 10. HTTP Server ───────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Auth:      authHandler,
		Projects:  projectHandler,
	}

	server := api.NewServer(cfg, log, tokenService, userStore, handlers)

	// ── 11. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
