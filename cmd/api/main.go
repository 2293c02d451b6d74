// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the series catalogue HTTP API.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool) and Redis.
//  4. Run database migrations.
//  5. Build the token verifier and the image pipeline.
//  6. Wire the series store, commands and handlers.
//  7. Start HTTP server with graceful shutdown.
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

	"github.com/taibuivan/serieshub/internal/api"
	"github.com/taibuivan/serieshub/internal/core/genre"
	"github.com/taibuivan/serieshub/internal/core/series"
	"github.com/taibuivan/serieshub/internal/platform/config"
	"github.com/taibuivan/serieshub/internal/platform/constants"
	"github.com/taibuivan/serieshub/internal/platform/imaging"
	"github.com/taibuivan/serieshub/internal/platform/metrics"
	"github.com/taibuivan/serieshub/internal/platform/migration"
	pgstore "github.com/taibuivan/serieshub/internal/platform/postgres"
	redisstore "github.com/taibuivan/serieshub/internal/platform/redis"
	"github.com/taibuivan/serieshub/internal/platform/sec"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	log := newLogger(slog.LevelInfo)
	slog.SetDefault(log)

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.Bool("storage_enabled", cfg.StorageEnabled()),
	)

	// Cancelled on shutdown; stops background loops such as rate limiter eviction.
	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	startupCtx, startupCancel := context.WithTimeout(rootCtx, 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL & Redis ─────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer pool.Close()

	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis_close_failed", slog.Any("error", cerr))
		}
	}()

	// ── 4. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 5. Security & Images ──────────────────────────────────────────────
	verifier, err := sec.NewTokenVerifier(cfg.JWTPubKeyPath, constants.AuthIssuer)
	must(log, err, "load token verifier")

	var objects imaging.ObjectStore = imaging.DisabledStore{}
	if cfg.StorageEnabled() {
		objects, err = imaging.NewS3Store(startupCtx, imaging.S3Options{
			Bucket:          cfg.S3Bucket,
			Region:          cfg.S3Region,
			Endpoint:        cfg.S3Endpoint,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
		})
		must(log, err, "initialize object storage")
	} else {
		log.Warn("object_storage_disabled")
	}

	images := imaging.NewService(imaging.NewProcessor(cfg.ImageMaxWidth, cfg.ImageJPEGQuality, cfg.ImageMaxPixels), objects, log)

	// ── 6. Domain Wiring ──────────────────────────────────────────────────
	store := series.NewCachedStore(series.NewPostgresStore(pool), rdb, cfg.CacheTTL, log)
	seriesHandler := series.NewHandler(
		series.NewService(store),
		series.NewCommands(store, images, log),
		cfg.ImageMaxBytes,
	)

	genreHandler := genre.NewHandler(genre.NewService(genre.NewPostgresRepository(pool)))

	liveness, readiness := api.NewHealthHandlers(log,
		api.Check{Name: "postgres", Ping: func(ctx context.Context) error { return pgstore.Ping(ctx, pool) }},
		api.Check{Name: "redis", Ping: func(ctx context.Context) error { return redisstore.Ping(ctx, rdb) }},
	)

	// ── 7. HTTP Server ────────────────────────────────────────────────────
	server := api.NewServer(rootCtx, cfg, log, verifier, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Metrics:   metrics.Handler(),
		Series:    seriesHandler,
		Genre:     genreHandler,
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case sig := <-quit:
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_failed", slog.Any("error", err))
	}

	rootCancel()
	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		log.Error("shutdown_failed", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server_stopped")
}

func newLogger(level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("app", constants.AppName))
}

// must terminates the process on a startup error. Only used during wiring.
func must(log *slog.Logger, err error, step string) {
	if err != nil {
		log.Error("startup_failure", slog.String("step", step), slog.Any("error", err))
		os.Exit(1)
	}
}
