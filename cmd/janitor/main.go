package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/BVKSH0/baked-bounty-backend/internal/cart"
	"github.com/BVKSH0/baked-bounty-backend/internal/janitor"
	"github.com/BVKSH0/baked-bounty-backend/pkg/config"
	"github.com/BVKSH0/baked-bounty-backend/pkg/db"
	"github.com/BVKSH0/baked-bounty-backend/pkg/logger"
	"github.com/BVKSH0/baked-bounty-backend/pkg/metrics"
	"github.com/BVKSH0/baked-bounty-backend/pkg/migrate"
	"github.com/BVKSH0/baked-bounty-backend/pkg/redis"
)

const lockKeyFormat = "bb:janitor:lock:%s"

func main() {
	logg := logger.New(logger.Options{ServiceName: "janitor"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "janitor",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	janitorMetrics := metrics.NewJanitorMetrics(prometheus.DefaultRegisterer)

	lock, err := janitor.NewRedisLock(redisClient, lockKey(cfg.App.Env), cfg.Janitor.LockTTL)
	if err != nil {
		logg.Error(context.Background(), "failed to create janitor lock", err)
		os.Exit(1)
	}

	cartSweep, err := janitor.NewCartRetentionSweep(janitor.CartRetentionSweepParams{
		Logger:    logg,
		Store:     cart.NewRecordRepository(dbClient.DB()),
		Metrics:   janitorMetrics,
		Retention: cfg.Janitor.CartRetention,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create cart retention sweep", err)
		os.Exit(1)
	}

	runner, err := janitor.NewRunner(janitor.RunnerParams{
		Logger:   logg,
		Registry: janitor.NewRegistry(cartSweep),
		Lock:     lock,
		Metrics:  janitorMetrics,
		Interval: cfg.Janitor.SweepInterval,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create janitor runner", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx = logg.WithField(ctx, "env", cfg.App.Env)
	logg.Info(ctx, "starting janitor")

	if err := runner.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logg.Error(ctx, "janitor stopped unexpectedly", err)
		os.Exit(1)
	}

	logg.Info(ctx, "janitor shutting down gracefully")
}

func lockKey(env string) string {
	if env == "" {
		env = "local"
	}
	return fmt.Sprintf(lockKeyFormat, env)
}
