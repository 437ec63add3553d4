package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"kicker-league/config"
	"kicker-league/handlers"
	"kicker-league/storage"
	"kicker-league/utils"
	"kicker-league/workers"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := utils.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := storage.Open(ctx, storage.Options{DatabaseURL: cfg.DatabaseURL, Logger: logger})
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	app, err := handlers.NewApp(handlers.AppConfig{
		Storage:        storage.NewDispatcher(store, logger),
		Logger:         logger,
		AllowedOrigins: cfg.AllowedOrigins,
		AssetsDir:      cfg.AssetsDir,
	})
	if err != nil {
		return err
	}

	if cfg.StatsInterval > 0 {
		stats := workers.NewStatsWorker(store, logger, cfg.StatsInterval)
		if err := stats.Start(); err != nil {
			return err
		}
		defer func() { _ = stats.Stop() }()
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- app.Listen(cfg.Addr())
	}()

	logger.Info("✅ Server running",
		zap.String("addr", "http://"+cfg.Addr()),
		zap.String("driver", store.Driver()),
		zap.Strings("origins", cfg.AllowedOrigins),
	)

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server...")
	return app.ShutdownWithTimeout(shutdownTimeout)
}
