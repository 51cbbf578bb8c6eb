package main

import (
	"flag"
	"log"

	"github.com/camshaft/carcatalog/internal/config"
	"github.com/camshaft/carcatalog/pkg/database"
	"github.com/camshaft/carcatalog/pkg/database/migration"
	"github.com/camshaft/carcatalog/pkg/database/models"
	"github.com/camshaft/carcatalog/tools"
	"github.com/joho/godotenv"
)

func main() {
	resetFlag := flag.Bool("reset", false, "Drop all catalog tables before migrating")
	checkFlag := flag.Bool("check", false, "Run a connectivity and schema check after migrating")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewGormDB(cfg.DatabaseURL, cfg.DatabaseFile)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)
	log.Println("Connected to database")

	if *resetFlag {
		log.Println("Resetting database...")
		err := db.Migrator().DropTable(
			"car_engines", "car_transmissions", "car_body_styles",
			&models.Car{}, &models.ChassisCode{}, &models.Generation{},
			&models.Trim{}, &models.Model{}, &models.Make{},
			&models.Engine{}, &models.Transmission{}, &models.BodyStyle{},
		)
		if err != nil {
			log.Fatalf("Failed to drop tables: %v", err)
		}
		log.Println("Database reset successfully")
	}

	log.Println("Running migrations...")
	if err := migration.RunMigration(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	if *checkFlag {
		if err := tools.DBCheck(db); err != nil {
			log.Fatalf("Database check failed: %v", err)
		}
	}
}
