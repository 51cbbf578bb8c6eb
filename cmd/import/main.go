package main

import (
	"flag"
	"log"

	"github.com/camshaft/carcatalog/internal/config"
	"github.com/camshaft/carcatalog/pkg/database"
	"github.com/camshaft/carcatalog/pkg/database/migration"
	"github.com/camshaft/carcatalog/pkg/importer"
	"github.com/joho/godotenv"
)

// One-shot seed loader: reads a directory of per-make JSON files and loads
// Make -> Model -> Trim rows through the same repositories the API uses.
func main() {
	dirFlag := flag.String("dir", "", "Directory of per-make JSON seed files (defaults to import.dir from config)")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	dir := *dirFlag
	if dir == "" {
		dir = cfg.ImportDir
	}

	db, err := database.NewGormDB(cfg.DatabaseURL, cfg.DatabaseFile)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	if err := migration.RunMigration(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if err := importer.NewImporter(db).Run(dir); err != nil {
		log.Fatalf("Import failed: %v", err)
	}
	log.Println("Import completed successfully")
}
