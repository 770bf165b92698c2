package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/weiawesome/snowflake128/internal/app"
	"github.com/weiawesome/snowflake128/internal/config"
	pkglog "github.com/weiawesome/snowflake128/pkg/log"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		l := pkglog.L()
		l.Fatal().Err(err).Msg("failed to load config")
	}

	pkglog.Init(pkglog.Config{
		Level:       cfg.Log.Level,
		Pretty:      cfg.Log.Pretty,
		ServiceName: "id-service",
	})
	logger := pkglog.L()

	logger.Info().Msg("starting id-service")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize id-service")
	}

	if err := a.Run(ctx); err != nil {
		logger.Error().Err(err).Msg("id-service stopped")
		if errors.Is(err, app.ErrNodeIDLost) {
			os.Exit(2)
		}
		os.Exit(1)
	}

	logger.Info().Msg("id-service stopped")
}
