package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/agendahub/agendahub/internal/config"
	"github.com/agendahub/agendahub/internal/schedule"
	"github.com/agendahub/agendahub/internal/server"
	"github.com/agendahub/agendahub/internal/store/memory"
	"github.com/agendahub/agendahub/internal/store/postgres"
	redisstore "github.com/agendahub/agendahub/internal/store/redis"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("startup failed")
	}
}

func run() error {
	// Initialize structured logging from environment.
	logLevel := os.Getenv("AGENDAHUB_LOG_LEVEL")
	level, parseErr := zerolog.ParseLevel(logLevel)
	if parseErr != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	logFormat := os.Getenv("AGENDAHUB_LOG_FORMAT")
	if logFormat == "text" {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	} else {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	}

	ctx := context.Background()

	// Load configuration from environment.
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Pick the persistence adapter.
	var store schedule.Store
	switch cfg.Store.Backend {
	case config.StoreMemory:
		log.Warn().Msg("using in-memory store; all data is lost on shutdown")
		store = memory.New()
	default:
		if cfg.Database.MaxConns < 0 || cfg.Database.MaxConns > math.MaxInt32 {
			return fmt.Errorf("database max_conns %d out of int32 range", cfg.Database.MaxConns)
		}

		pg, pgErr := postgres.New(ctx, cfg.Database.DSN(), int32(cfg.Database.MaxConns)) //nolint:gosec // bounds checked above
		if pgErr != nil {
			return pgErr
		}
		defer pg.Close()
		store = pg
	}

	// Optional Redis overview cache.
	opts := []schedule.Option{
		schedule.WithStrictBreakWindows(cfg.Schedule.StrictBreakWindows),
		schedule.WithOverlapEnforcement(cfg.Schedule.EnforceNoOverlap),
	}
	if cfg.Redis.Addr != "" {
		cache, cacheErr := redisstore.New(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Schedule.OverviewCacheTTL)
		if cacheErr != nil {
			return cacheErr
		}
		defer cache.Close()
		opts = append(opts, schedule.WithCache(cache))
		log.Info().Str("addr", cfg.Redis.Addr).Msg("overview cache enabled")
	}

	scheduler := schedule.NewService(store, opts...)

	// Graceful shutdown on SIGINT / SIGTERM.
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Create HTTP server with all routes wired.
	srv := server.New(cfg, scheduler)

	// Start server in background goroutine.
	go func() {
		log.Info().Str("addr", cfg.Server.Addr).Str("store", cfg.Store.Backend).Msg("starting server")
		if startErr := srv.Start(ctx); startErr != nil {
			log.Error().Err(startErr).Msg("server error")
		}
	}()

	// Block until shutdown signal.
	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if shutdownErr := srv.Shutdown(shutdownCtx); shutdownErr != nil {
		return shutdownErr
	}

	log.Info().Msg("stopped")
	return nil
}
