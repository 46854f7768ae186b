// Package database opens gorm connections and runs schema migration.
package database

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/fxdesk/portal/pkg/models"
)

// NewPostgresDB connects to postgres with the given pool settings.
// TranslateError is on so unique violations surface as
// gorm.ErrDuplicatedKey regardless of driver.
func NewPostgresDB(dsn string, maxOpenConns, maxIdleConns, connMaxLifetimeSec int) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("access connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(connMaxLifetimeSec) * time.Second)

	return db, nil
}

// Migrate creates or updates the quotes and trades tables, including the
// uniqueness index on trades.quote_id that serializes booking races.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Quote{}, &models.Trade{}); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}
