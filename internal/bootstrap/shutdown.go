package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/SideQuest_Go/internal/event"
	"github.com/osse101/SideQuest_Go/internal/scheduler"
	"github.com/osse101/SideQuest_Go/internal/server"
	"github.com/osse101/SideQuest_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server             *server.Server
	Scheduler          *scheduler.Scheduler
	WorkerPool         *worker.Pool
	Realtime           *Realtime
	ResilientPublisher *event.ResilientPublisher
}

// GracefulShutdown stops components in order:
// 1. HTTP server (stop accepting new requests)
// 2. Scheduler and worker pool (no new background jobs)
// 3. Realtime delivery (relay, then hub, closing open streams)
// 4. Event publisher (flush pending retries)
//
// Errors are logged but do not stop the sequence. The database pool is
// closed by the caller afterwards.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Scheduler != nil {
		components.Scheduler.Stop()
	}
	if components.WorkerPool != nil {
		components.WorkerPool.Stop()
	}

	if rt := components.Realtime; rt != nil {
		if rt.Relay != nil {
			if err := rt.Relay.Stop(); err != nil {
				slog.Error(LogMsgRedisRelayShutdownFailed, "error", err)
			} else {
				slog.Info(LogMsgRedisRelayStopped)
			}
		}
		if rt.Hub != nil {
			rt.Hub.Stop()
		}
	}

	if components.ResilientPublisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := components.ResilientPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
