// Package database provides the SQL-backed forecast cache and its connection handling
package database

import (
	"forecastapi.app/internal/config"
	"forecastapi.app/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the database selected by cfg.Driver
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.GetDSN())
	case "sqlite":
		dialector = sqlite.Open(cfg.SQLitePath)
	default:
		return nil, errors.NewConfigurationError("unsupported database driver: "+cfg.Driver, nil)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, errors.NewCacheError("failed to connect to database", err)
	}

	return db, nil
}

// RunMigrations creates or updates the forecast cache schema
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(&ForecastCacheEntryModel{}); err != nil {
		return errors.NewCacheError("failed to migrate forecast cache schema", err)
	}
	return nil
}

// Close safely closes the database connection
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
