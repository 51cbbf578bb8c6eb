package tools

import (
	"fmt"
	"time"

	"github.com/camshaft/carcatalog/pkg/database/models"
	"gorm.io/gorm"
)

// DBCheck verifies that the configured store is reachable and that the
// catalog schema is usable: ping, table presence, row counts and a
// rollback-only transaction probe.
func DBCheck(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying database connection: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	fmt.Println("Database ping successful")

	stats := sqlDB.Stats()
	fmt.Printf("Connection pool: open=%d in_use=%d idle=%d\n",
		stats.OpenConnections, stats.InUse, stats.Idle)

	if err := checkCatalogTables(db); err != nil {
		return err
	}

	if err := testTransactionCapability(db); err != nil {
		return fmt.Errorf("transaction test failed: %w", err)
	}
	fmt.Println("Transaction capability verified")

	start := time.Now()
	var result int
	if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
		return fmt.Errorf("probe query failed: %w", err)
	}
	fmt.Printf("Probe query completed in %v\n", time.Since(start))

	return nil
}

func checkCatalogTables(db *gorm.DB) error {
	tables := map[string]interface{}{
		"makes":         &models.Make{},
		"models":        &models.Model{},
		"generations":   &models.Generation{},
		"chassis_codes": &models.ChassisCode{},
		"trims":         &models.Trim{},
		"cars":          &models.Car{},
		"engines":       &models.Engine{},
		"transmissions": &models.Transmission{},
		"body_styles":   &models.BodyStyle{},
	}
	for name, model := range tables {
		if !db.Migrator().HasTable(model) {
			fmt.Printf("Table %s missing - run the migration first\n", name)
			continue
		}
		var count int64
		if err := db.Model(model).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count %s: %w", name, err)
		}
		fmt.Printf("Table %s: %d rows\n", name, count)
	}
	return nil
}

func testTransactionCapability(db *gorm.DB) error {
	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}
	var result int
	if err := tx.Raw("SELECT 1").Scan(&result).Error; err != nil {
		tx.Rollback()
		return err
	}
	return tx.Rollback().Error
}
