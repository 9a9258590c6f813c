package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/BVKSH0/baked-bounty-backend/api/routes"
	"github.com/BVKSH0/baked-bounty-backend/internal/cart"
	"github.com/BVKSH0/baked-bounty-backend/internal/catalog"
	"github.com/BVKSH0/baked-bounty-backend/internal/presenter"
	"github.com/BVKSH0/baked-bounty-backend/internal/productpage"
	"github.com/BVKSH0/baked-bounty-backend/internal/slider"
	"github.com/BVKSH0/baked-bounty-backend/pkg/config"
	"github.com/BVKSH0/baked-bounty-backend/pkg/db"
	"github.com/BVKSH0/baked-bounty-backend/pkg/logger"
	"github.com/BVKSH0/baked-bounty-backend/pkg/metrics"
	"github.com/BVKSH0/baked-bounty-backend/pkg/migrate"
	"github.com/BVKSH0/baked-bounty-backend/pkg/redis"
)

const (
	// reviewCardCount is the size of the storefront's review deck.
	reviewCardCount = 6
	// defaultViewportWidth seeds the slider before the first resize command.
	defaultViewportWidth = 1280
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
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

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	cartMetrics := metrics.NewCartMetrics(registry)

	cat := catalog.New()

	cartService, err := cart.NewService(cart.NewRecordRepository(dbClient.DB()), cat, logg, cartMetrics)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}

	notifier, err := presenter.NewNotifier(redisClient, cfg.Cart.ToastTTL)
	if err != nil {
		logg.Error(context.Background(), "failed to create toast notifier", err)
		os.Exit(1)
	}

	pageLoader, err := productpage.NewLoader(cat)
	if err != nil {
		logg.Error(context.Background(), "failed to create product page loader", err)
		os.Exit(1)
	}

	reviewsSlider, err := slider.New(
		reviewCardCount,
		defaultViewportWidth,
		cfg.Slider.AutoAdvance,
		slider.WithSwipeThreshold(cfg.Slider.SwipeThreshold),
	)
	if err != nil {
		logg.Error(context.Background(), "failed to create reviews slider", err)
		os.Exit(1)
	}
	defer reviewsSlider.Close()

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	id := os.Getenv("DYNO")
	if id == "" {
		id = "local"
	}
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":      cfg.App.Env,
		"addr":     addr,
		"instance": id,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			dbClient,
			redisClient,
			cat,
			cartService,
			notifier,
			pageLoader,
			reviewsSlider,
			registry,
		),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
