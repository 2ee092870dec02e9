package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/multierr"

	"github.com/marketconnect/marketconnect-backend/api/routes"
	"github.com/marketconnect/marketconnect-backend/internal/dashboard"
	"github.com/marketconnect/marketconnect-backend/internal/groups"
	"github.com/marketconnect/marketconnect-backend/internal/orders"
	"github.com/marketconnect/marketconnect-backend/internal/products"
	"github.com/marketconnect/marketconnect-backend/internal/suppliers"
	"github.com/marketconnect/marketconnect-backend/internal/vendors"
	"github.com/marketconnect/marketconnect-backend/pkg/config"
	"github.com/marketconnect/marketconnect-backend/pkg/db"
	"github.com/marketconnect/marketconnect-backend/pkg/logger"
	"github.com/marketconnect/marketconnect-backend/pkg/metrics"
	"github.com/marketconnect/marketconnect-backend/pkg/migrate"
	pkgredis "github.com/marketconnect/marketconnect-backend/pkg/redis"
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

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	var idempotencyStore pkgredis.IdempotencyStore
	var redisClient *pkgredis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = pkgredis.New(context.Background(), cfg.Redis, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		idempotencyStore = redisClient
	}

	gdb := dbClient.DB()

	vendorSvc, err := vendors.NewService(vendors.NewRepository(gdb))
	if err != nil {
		logg.Error(context.Background(), "failed to create vendor service", err)
		os.Exit(1)
	}
	supplierSvc, err := suppliers.NewService(suppliers.NewRepository(gdb))
	if err != nil {
		logg.Error(context.Background(), "failed to create supplier service", err)
		os.Exit(1)
	}
	productSvc, err := products.NewService(products.NewRepository(gdb))
	if err != nil {
		logg.Error(context.Background(), "failed to create product service", err)
		os.Exit(1)
	}
	groupSvc, err := groups.NewService(groups.NewRepository(gdb))
	if err != nil {
		logg.Error(context.Background(), "failed to create product group service", err)
		os.Exit(1)
	}
	orderSvc, err := orders.NewService(orders.NewRepository(gdb))
	if err != nil {
		logg.Error(context.Background(), "failed to create order service", err)
		os.Exit(1)
	}
	dashboardSvc, err := dashboard.NewService(groupSvc, orderSvc, supplierSvc)
	if err != nil {
		logg.Error(context.Background(), "failed to create dashboard service", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(registry)

	router := routes.New(routes.Dependencies{
		Config:    cfg,
		Logger:    logg,
		DB:        dbClient,
		Registry:  registry,
		Metrics:   httpMetrics,
		Redis:     idempotencyStore,
		Vendors:   vendorSvc,
		Suppliers: supplierSvc,
		Products:  productSvc,
		Groups:    groupSvc,
		Orders:    orderSvc,
		Dashboard: dashboardSvc,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case sig := <-stop:
		logg.Info(logg.WithField(ctx, "signal", sig.String()), "shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		var shutdownErr error
		shutdownErr = multierr.Append(shutdownErr, server.Shutdown(shutdownCtx))
		if redisClient != nil {
			shutdownErr = multierr.Append(shutdownErr, redisClient.Close())
		}
		shutdownErr = multierr.Append(shutdownErr, dbClient.Close())
		if shutdownErr != nil {
			logg.Error(ctx, "shutdown finished with errors", shutdownErr)
			os.Exit(1)
		}
		logg.Info(ctx, "shutdown complete")
	}
}
