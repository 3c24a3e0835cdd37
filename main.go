package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	api "WireRing/internal/api"
	config "WireRing/internal/config"
	logging "WireRing/internal/logging"

	"go.uber.org/zap"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}

	logger.Info("starting server", zap.String("addr", cfg.Addr))
	err = api.ListenAndServe(ctx, cfg, logger)
	if err != nil {
		logger.Error("server stopped with error", zap.Error(err))
	}
	_ = logger.Sync()
	if err != nil {
		cancel()
		os.Exit(1)
	}
}
