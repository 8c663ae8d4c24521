package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/osse101/TowerIdle_Go/docs"
	"github.com/osse101/TowerIdle_Go/internal/bootstrap"
	"github.com/osse101/TowerIdle_Go/internal/clock"
	"github.com/osse101/TowerIdle_Go/internal/config"
	"github.com/osse101/TowerIdle_Go/internal/handler"
	"github.com/osse101/TowerIdle_Go/internal/server"
	"github.com/osse101/TowerIdle_Go/internal/session"
	"github.com/osse101/TowerIdle_Go/internal/worker"
)

// @title Tower Idle API
// @version 1.0
// @description Idle tower event progression: producers, boosts, offline progress and live updates.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	bootstrap.SetupLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	eventCfg, err := bootstrap.LoadEventConfig(cfg.GameConfigPath)
	if err != nil {
		slog.Error("Startup failed", "error", err)
		os.Exit(1)
	}

	store, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		slog.Error("Startup failed", "error", err)
		os.Exit(1)
	}

	bus, hub, err := bootstrap.InitializeEventSystem()
	if err != nil {
		store.Close()
		slog.Error("Startup failed", "error", err)
		os.Exit(1)
	}

	pool := worker.NewPool(bootstrap.PoolWorkers, bootstrap.PoolQueueSize)
	pool.Start()

	registry := session.NewRegistry(eventCfg, session.Deps{
		Store: store,
		Clock: clock.NewRealClock(),
		Bus:   bus,
		Pool:  pool,
	}, cfg.SessionCacheSize, cfg.SessionIdleTTL)

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		EventID:        eventCfg.ID,
	}, store, handler.NewPlayerHandlers(registry, hub))

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), bootstrap.ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:   srv,
		Sessions: registry,
		Hub:      hub,
		Pool:     pool,
		Store:    store,
	})
}
