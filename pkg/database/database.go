package database

import (
	"errors"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewGormDB opens a GORM connection. A postgres DSN takes precedence; when
// none is configured the catalog falls back to a single sqlite file, which
// is the default deployment.
func NewGormDB(postgresDSN, sqliteFile string) (*gorm.DB, error) {
	if postgresDSN != "" {
		return gorm.Open(postgres.Open(postgresDSN), &gorm.Config{})
	}
	if sqliteFile == "" {
		return nil, errors.New("no database configured: set a postgres DSN or a sqlite file path")
	}
	return gorm.Open(sqlite.Open(sqliteFile), &gorm.Config{})
}

// NewTestDB opens an in-memory sqlite database for tests.
func NewTestDB() (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
}

// Close releases the underlying sql.DB connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
