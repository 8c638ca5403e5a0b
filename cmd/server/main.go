package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/honeycarbs/career-hunter/internal/config"
	"github.com/honeycarbs/career-hunter/internal/server"
	"github.com/honeycarbs/career-hunter/pkg/logging"
	"github.com/honeycarbs/career-hunter/pkg/shutdown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := logging.New(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGHUP)
	defer stop()

	app, err := server.InitializeApp(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize server", "err", err)
		os.Exit(1)
	}

	app.Janitor.Start()

	logger.Info("career hunter server initialized and starting", "addr", app.Server.Addr())

	if err := shutdown.Serve(ctx, app.Server, 10*time.Second, logger, app.Janitor); err != nil {
		logger.Error("server exited with error", "err", err)
		_ = logger.Sync()
		os.Exit(1)
	}
	logger.Info("server stopped")
}
