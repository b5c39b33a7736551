package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/MuForge_Go/internal/event"
	"github.com/osse101/MuForge_Go/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server             *server.Server
	ResilientPublisher *event.ResilientPublisher
}

// GracefulShutdown stops the HTTP server first so no new commands arrive, then
// flushes the event publisher. Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
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
