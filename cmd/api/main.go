package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/wilsonfong56/ETF-Dashboard/internal/api/handlers"
	"github.com/wilsonfong56/ETF-Dashboard/internal/api/router"
	"github.com/wilsonfong56/ETF-Dashboard/internal/domain/market"
	"github.com/wilsonfong56/ETF-Dashboard/internal/infra/cboe"
	"github.com/wilsonfong56/ETF-Dashboard/internal/infra/database/postgres"
	"github.com/wilsonfong56/ETF-Dashboard/internal/infra/mboum"
	"github.com/wilsonfong56/ETF-Dashboard/internal/pkg/config"
	"github.com/wilsonfong56/ETF-Dashboard/internal/pkg/logger"
	"github.com/wilsonfong56/ETF-Dashboard/internal/service/analyzer"
	"github.com/wilsonfong56/ETF-Dashboard/internal/service/ivrank"
	"github.com/wilsonfong56/ETF-Dashboard/internal/service/signals"
)

const (
	serviceName    = "etf-dashboard-api"
	serviceVersion = "1.0.0"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize logger
	if err := logger.Init(logger.Config{
		Level:          cfg.Logging.Level,
		Format:         cfg.Logging.Format,
		FileEnabled:    cfg.Logging.FileEnabled,
		FilePath:       cfg.Logging.FilePath,
		RotationSize:   cfg.Logging.RotationSize,
		RetentionDays:  cfg.Logging.RetentionDays,
		ServiceName:    serviceName,
		ServiceVersion: serviceVersion,
	}); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize logger")
	}

	log.Info().
		Str("version", serviceVersion).
		Msg("Starting ETF Dashboard API server...")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection
	dbPool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer dbPool.Close()

	// Initialize repositories
	ivRepo := postgres.NewIVRepository(dbPool.Pool)
	if err := ivRepo.EnsureSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to ensure IV history schema")
	}

	// Initialize upstream clients
	cboeClient := cboe.NewClient(cfg.CBOE)
	mboumClient := mboum.NewClient(cfg.Mboum)

	// Initialize services
	ivService := ivrank.NewService(ivRepo, nil)
	chainService := analyzer.NewService(cboeClient, ivService, cfg.Cache.ChainTTL, nil)
	signalEngine := signals.NewEngine(mboumClient, market.DefaultBasket(), cfg.Cache.ChartTTL, cfg.Cache.SignalTTL, nil)

	// Initialize handlers and router
	handler := router.NewRouter(&router.Config{
		HealthHandler:  handlers.NewHealthHandler(dbPool),
		QuoteHandler:   handlers.NewQuoteHandler(chainService),
		OptionsHandler: handlers.NewOptionsHandler(chainService),
		SignalsHandler: handlers.NewSignalsHandler(signalEngine),
		ChartHandler:   handlers.NewChartHandler(signalEngine, nil),
		ETFHandler:     handlers.NewETFHandler(),
	})

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().
			Str("address", addr).
			Msg("API server listening")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start API server")
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	log.Info().Msg("Shutdown signal received, stopping server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown failed")
	}

	log.Info().Msg("ETF Dashboard API server stopped")
}
