package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/FranCa26/InvenLink-24-7/internal/clock"
	"github.com/FranCa26/InvenLink-24-7/internal/config"
	"github.com/FranCa26/InvenLink-24-7/internal/infra"
	"github.com/FranCa26/InvenLink-24-7/internal/router"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	setupLogger(cfg)

	clk, err := clock.New(cfg.StoreTimezone, time.Weekday(cfg.WeekStartsOn))
	if err != nil {
		log.Fatal().Err(err).Str("zone", cfg.StoreTimezone).Msg("invalid store timezone")
	}

	db, err := infra.NewDatabase(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DatabaseDriver).Msg("failed to open database")
	}

	// Redis only backs the summary cache; run without it rather than not at all.
	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, summary cache disabled")
		rdb = nil
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router.New(cfg, db, rdb, clk),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().
			Int("port", cfg.Port).
			Str("env", cfg.Env).
			Str("zone", cfg.StoreTimezone).
			Msg("inventario backend listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Graceful shutdown on SIGINT / SIGTERM. Connections drain first, then
	// the pools are closed, so in-flight transactions finish or roll back.
	wait := gfshutdown.GracefulShutdown(context.Background(), shutdownTimeout, map[string]gfshutdown.Operation{
		"http-server": func(ctx context.Context) error {
			log.Info().Msg("shutting down server")
			err := srv.Shutdown(ctx)
			closeStores(db, rdb)
			return err
		},
	})

	exitCode := <-wait
	log.Info().Int("exit_code", exitCode).Msg("server exited")
	os.Exit(exitCode)
}

// setupLogger: dev pretty console, prod JSON.
func setupLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = time.RFC3339
	if cfg.IsProduction() {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Str("service", "inventario").Logger()
		return
	}
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
}

func closeStores(db *gorm.DB, rdb *redis.Client) {
	if err := infra.CloseDatabase(db); err != nil {
		log.Error().Err(err).Msg("closing database")
	}
	if rdb != nil {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("closing redis")
		}
	}
}
