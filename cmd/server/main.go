package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	httpapi "tool-rental-pos/internal/api/http"
	"tool-rental-pos/internal/config"
	"tool-rental-pos/internal/jobs"
	"tool-rental-pos/internal/logger"
	"tool-rental-pos/internal/repository/catalogsource"
	"tool-rental-pos/internal/scheduler"
	"tool-rental-pos/internal/service"
	"tool-rental-pos/internal/validation"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Failed to read .env: %v", err)
	}

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting tool rental server...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())

	// Load catalog
	catalog, err := catalogsource.Open(context.Background(), cfg)
	if err != nil {
		logger.Error("Failed to open catalog", "error", err)
		log.Fatalf("Failed to open catalog: %v", err)
	}
	defer catalog.Close()

	// Initialize Services
	catalogSvc := service.NewCatalogService(catalog)
	checkoutSvc := service.NewCheckoutService(catalogSvc, validation.New())

	// Catalog refresh
	refreshSchedule := cfg.Catalog.RefreshSchedule
	if !catalog.Reloadable() {
		refreshSchedule = ""
	}
	sched, err := scheduler.NewScheduler(jobs.NewJobRunner(catalog), refreshSchedule)
	if err != nil {
		log.Fatalf("Failed to create scheduler: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	router := mux.NewRouter()
	httpapi.RegisterRoutes(router, httpapi.NewHandler(catalogSvc, checkoutSvc))

	srv := &http.Server{
		Addr:              cfg.GetServerAddress(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server failed", "error", err)
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	logger.Info("Received shutdown signal", "signal", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
	logger.Info("Server stopped")
}
