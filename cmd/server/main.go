package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	crhandler "creditguard/internal/creditreport/handler"
	crmetrics "creditguard/internal/creditreport/metrics"
	"creditguard/internal/creditreport/service"
	"creditguard/internal/creditreport/store"
	httpapi "creditguard/internal/http"
	"creditguard/internal/platform/config"
	"creditguard/internal/platform/httpserver"
	"creditguard/internal/platform/logger"
	"creditguard/internal/platform/metrics"
	"creditguard/internal/platform/postgres"
	"creditguard/internal/platform/redis"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal service packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.Logging)

	if err := run(cfg, log); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Server, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := metrics.NewRegistry()
	profileStore, health, closeStore, err := buildStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	svc, err := service.New(profileStore,
		service.WithLogger(log),
		service.WithMetrics(crmetrics.New(reg)),
		service.WithStrictBureau(cfg.StrictBureau),
	)
	if err != nil {
		return err
	}

	router := httpapi.NewRouter(httpapi.Deps{
		Logger:   log,
		Metrics:  metrics.Handler(reg),
		Health:   health,
		Handlers: []httpapi.RouteRegistrar{crhandler.New(svc, log)},
	})
	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting creditguard", "addr", cfg.Addr, "profile_store", cfg.ProfileStore)
	if err := httpserver.Run(ctx, srv); err != nil {
		return err
	}
	log.Info("server stopped")
	return nil
}

// buildStore selects the profile store backend from config.
func buildStore(ctx context.Context, cfg config.Server) (service.ProfileStore, map[string]httpapi.HealthCheck, func(), error) {
	switch cfg.ProfileStore {
	case config.StoreRedis:
		client, err := redis.New(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, nil, err
		}
		if client == nil {
			return nil, nil, nil, errors.New("REDIS_URL is required for the redis profile store")
		}
		health := map[string]httpapi.HealthCheck{"redis": client.Health}
		return store.NewRedisStore(client.Client, cfg.ProfileTTL), health, func() { _ = client.Close() }, nil
	case config.StorePostgres:
		db, err := postgres.Open(ctx, cfg.Database)
		if err != nil {
			return nil, nil, nil, err
		}
		if db == nil {
			return nil, nil, nil, errors.New("DATABASE_URL is required for the postgres profile store")
		}
		pg := store.NewPostgresStore(db, cfg.ProfileTTL)
		if err := pg.EnsureSchema(ctx); err != nil {
			_ = db.Close()
			return nil, nil, nil, err
		}
		health := map[string]httpapi.HealthCheck{"postgres": db.PingContext}
		return pg, health, func() { _ = db.Close() }, nil
	case config.StoreMemory:
		return store.NewInMemoryStore(cfg.ProfileTTL), nil, func() {}, nil
	default:
		return nil, nil, nil, fmt.Errorf("unknown PROFILE_STORE %q", cfg.ProfileStore)
	}
}
