package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/TowerIdle_Go/internal/live"
	"github.com/osse101/TowerIdle_Go/internal/server"
	"github.com/osse101/TowerIdle_Go/internal/session"
	"github.com/osse101/TowerIdle_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server   *server.Server
	Sessions *session.Registry
	Hub      *live.Hub
	Pool     *worker.Pool
	Store    *Store
}

// GracefulShutdown stops components in dependency order:
// 1. HTTP server (stop accepting new requests)
// 2. Sessions (tick to now and write a final checkpoint)
// 3. Live hub (close streams)
// 4. Worker pool (drain queued checkpoint writes)
// 5. Store (close the database handle)
//
// Errors during shutdown are logged but do not stop the sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)
	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if c.Sessions != nil {
		slog.Info(LogMsgFlushingSessions, "sessions", c.Sessions.Len())
		if err := c.Sessions.Close(ctx); err != nil {
			slog.Error(LogMsgSessionFlushFailed, "error", err)
		}
	}

	if c.Hub != nil {
		c.Hub.Stop()
	}
	if c.Pool != nil {
		c.Pool.Stop()
	}
	if c.Store != nil {
		c.Store.Close()
	}

	slog.Info(LogMsgServerStopped)
}
