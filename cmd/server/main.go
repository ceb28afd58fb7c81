package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"campusfaq/internal/config"
	"campusfaq/internal/db"
	"campusfaq/internal/dispatch"
	"campusfaq/internal/faq"
	"campusfaq/internal/handlers/api"
	"campusfaq/internal/jobs"
	"campusfaq/internal/keywords"
	"campusfaq/internal/metrics"
	"campusfaq/internal/models"
	"campusfaq/internal/server"
	"campusfaq/internal/sheets"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Load()

	yamlCfg, err := config.LoadYAMLConfig()
	if err != nil {
		log.Fatalf("Failed to load config file: %v", err)
	}

	// Initialize database
	database, err := db.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	// Run migrations
	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	if cfg.SeedDevData || cfg.IsDev() {
		if err := database.SeedDevData(ctx); err != nil {
			log.Printf("Warning: failed to seed dev data: %v", err)
		}
	}

	// Spreadsheet feeds are optional
	var sheetClient *sheets.Client
	if cfg.HasGoogleCredentials() {
		sheetClient, err = sheets.NewClient(ctx, cfg.GoogleCredentialsFile, cfg.GoogleAPIKey)
		if err != nil {
			log.Printf("Warning: spreadsheet feeds disabled: %v", err)
		}
	} else {
		log.Println("Spreadsheet feeds disabled. Set GOOGLE_APPLICATION_CREDENTIALS or GOOGLE_API_KEY to enable.")
	}

	// Knowledge sources, in merge order
	aggregator := faq.NewAggregator([]faq.Source{
		&faq.LocalSource{Path: cfg.LocalFAQFile},
		&faq.StoreSource{Store: database},
		&faq.SheetSource{Source: models.SourceFeedA, Reader: sheetClient, SpreadsheetID: cfg.FeedASheetID, Range: cfg.FeedARange},
		&faq.SheetSource{Source: models.SourceFeedB, Reader: sheetClient, SpreadsheetID: cfg.FeedBSheetID, Range: cfg.FeedBRange},
	}, cfg.FAQCacheTTL, cfg.SourceTimeout)

	keywordStore := keywords.NewStore(&keywords.SheetFeed{
		Client:        sheetClient,
		SpreadsheetID: cfg.KeywordSheetID,
		Range:         cfg.KeywordRange,
	}, cfg.SourceTimeout)

	dispatcher, err := dispatch.New(database, yamlCfg,
		dispatch.FAQFallback(faq.NewResolver(aggregator, cfg.FAQMinScore)),
		dispatch.KeywordFallback(keywords.NewResolver(keywordStore, cfg.KeywordFuzzyThreshold)),
	)
	if err != nil {
		log.Fatalf("Failed to build dispatcher: %v", err)
	}

	adminHandler := api.NewAdminHandler(aggregator, keywordStore)
	metrics.Init(database, adminHandler)

	if cfg.CacheWarmInterval > 0 {
		warmer := jobs.NewCacheWarmer(map[string]jobs.Refresher{
			"faq":      aggregator,
			"keywords": keywordStore,
		}, cfg.CacheWarmInterval)
		go warmer.Start(ctx)
	}

	srv := server.New(cfg)
	srv.RegisterRoutes(server.Handlers{
		Query: api.NewQueryHandler(dispatcher),
		Admin: adminHandler,
		FAQs:  api.NewFAQHandler(database, aggregator),
	})

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("Server started on %s", cfg.ServerAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	cancel()
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
