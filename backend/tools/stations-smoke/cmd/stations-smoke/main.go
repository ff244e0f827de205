package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"qrreservation/backend/libs/logging"
	"qrreservation/backend/tools/stations-smoke/internal/app"
	"qrreservation/backend/tools/stations-smoke/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Logs go to stderr so stdout carries only the report.
	logger, err := logging.NewLogger("stderr")
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load stations-smoke config", zap.Error(err))
	}

	app.New(cfg, logger, os.Stdout).Run(ctx)
}
