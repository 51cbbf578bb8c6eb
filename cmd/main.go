package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/camshaft/carcatalog/internal/config"
	"github.com/camshaft/carcatalog/internal/handlers"
	"github.com/camshaft/carcatalog/internal/version"
	"github.com/camshaft/carcatalog/pkg/database"
	"github.com/camshaft/carcatalog/pkg/database/migration"
	"github.com/camshaft/carcatalog/pkg/logging"
	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Application initialization failed: %v", err)
	}
}

func run() error {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
		// Continue execution as .env file might not exist in production
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.NewGormDB(cfg.DatabaseURL, cfg.DatabaseFile)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close(db)

	// Schema is created on startup if absent
	if err := migration.RunMigration(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	logger := logging.GetGlobalLoggerFactory().CreateLogger("main")

	api := handlers.NewAPI(db)
	srv := &http.Server{
		Handler:      api.NewRouter(),
		Addr:         cfg.ServerAddr,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	logger.Info("Catalog service listening", map[string]interface{}{
		"addr":    cfg.ServerAddr,
		"version": version.Get().Version,
	})
	return srv.ListenAndServe()
}
