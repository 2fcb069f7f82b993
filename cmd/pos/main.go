package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"tool-rental-pos/internal/cli"
	"tool-rental-pos/internal/config"
	"tool-rental-pos/internal/logger"
	"tool-rental-pos/internal/repository/catalogsource"
	"tool-rental-pos/internal/service"
	"tool-rental-pos/internal/utils"
	"tool-rental-pos/internal/validation"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	date := flag.String("date", "", "Checkout date to use instead of today (yyyy-mm-dd)")
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
	logger.Info("Starting tool rental point of sale...", "catalog_source", cfg.Catalog.Source)

	today := func() time.Time { return utils.CalendarDate(time.Now()) }
	if *date != "" {
		fixed, err := validation.ParseCheckoutDate(*date)
		if err != nil {
			log.Fatalf("Invalid -date: %v", err)
		}
		today = func() time.Time { return fixed }
	}

	ctx := context.Background()
	catalog, err := catalogsource.Open(ctx, cfg)
	if err != nil {
		logger.Error("Failed to open catalog", "error", err)
		log.Fatalf("Failed to open catalog: %v", err)
	}
	defer catalog.Close()

	validate := validation.New()
	catalogSvc := service.NewCatalogService(catalog)
	checkoutSvc := service.NewCheckoutService(catalogSvc, validate)

	clerk := cli.NewClerk(os.Stdin, os.Stdout, catalogSvc, checkoutSvc, validate, today)
	if err := clerk.Run(ctx); err != nil {
		logger.Error("Point of sale stopped", "error", err)
		catalog.Close()
		os.Exit(1)
	}
}
