package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/MuForge_Go/internal/bootstrap"
	"github.com/osse101/MuForge_Go/internal/config"
	"github.com/osse101/MuForge_Go/internal/handler"
	"github.com/osse101/MuForge_Go/internal/logger"
	"github.com/osse101/MuForge_Go/internal/server"
)

func main() {
	// Until configuration is loaded
	logger.InitLogger(logger.DefaultConfig())

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Failed to set up logging", "error", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	for _, warning := range cfg.Warnings() {
		slog.Warn("Configuration warning", "detail", warning)
	}

	if err := run(cfg); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	tables, err := bootstrap.LoadTables(cfg)
	if err != nil {
		return err
	}

	_, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		return err
	}

	store := bootstrap.NewSessionStore(cfg)
	gameService := bootstrap.NewGameService(cfg, tables, store, publisher)

	handler.InitValidator()
	srv := server.NewServer(server.Options{
		Port:               cfg.Port,
		Version:            cfg.Version,
		TrustedProxies:     cfg.TrustedProxies,
		RateLimitPerWindow: cfg.RateLimitPerWindow,
		MaxRequestBytes:    cfg.MaxRequestBytes,
	}, gameService)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	var startErr error
	select {
	case <-stop:
	case startErr = <-serverErr:
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
		Server:             srv,
		ResilientPublisher: publisher,
	})

	return startErr
}
