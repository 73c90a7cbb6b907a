package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/tradelens/tradelens/internal/clientdata"
	"github.com/tradelens/tradelens/internal/clients/marketdata"
	"github.com/tradelens/tradelens/internal/config"
	"github.com/tradelens/tradelens/internal/database"
	"github.com/tradelens/tradelens/internal/modules/analytics"
	"github.com/tradelens/tradelens/internal/modules/holdings"
	"github.com/tradelens/tradelens/internal/scheduler"
	"github.com/tradelens/tradelens/internal/server"
	"github.com/tradelens/tradelens/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New(logger.Config{Level: "info"})
		bootLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize logger
	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.DevMode,
	})
	logger.SetGlobalLogger(log)

	log.Info().Msg("Starting TradeLens")

	// Initialize client data cache database
	cacheDB, err := database.New(database.Config{
		Path:    filepath.Join(cfg.DataDir, "client_data.db"),
		Profile: database.ProfileCache,
		Name:    "client_data",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize client data database")
	}
	defer cacheDB.Close()

	cacheRepo := clientdata.NewRepository(cacheDB.Conn())
	if err := cacheRepo.InitSchema(); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize client data schema")
	}

	// External clients
	quotes := marketdata.NewClient(cfg.MarketDataURL, cacheRepo, log)

	// Services
	analyticsService := analytics.NewService(log)
	holdingsService := holdings.NewService(quotes, cfg.LookupWorkers, log)

	// Initialize scheduler
	sched := scheduler.New(log)
	if err := sched.AddJob("@daily", clientdata.NewCleanupJob(cacheRepo, log)); err != nil {
		log.Fatal().Err(err).Msg("Failed to register cleanup job")
	}
	sched.Start()
	defer sched.Stop()

	// Initialize HTTP server
	srv := server.New(server.Config{
		Port:      cfg.Port,
		Log:       log,
		Analytics: analyticsService,
		Holdings:  holdingsService,
		DevMode:   cfg.DevMode,
	})

	// Start server in goroutine
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Int("port", cfg.Port).Msg("Server started successfully")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}
