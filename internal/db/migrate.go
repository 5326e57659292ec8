package db

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/diewo77/devis-board/internal/config"
	"github.com/diewo77/devis-board/internal/models"
)

// connectAttempts bounds the retries while postgres is still starting.
const connectAttempts = 5

// Open connects to the database selected by cfg.Driver. Postgres connections
// are retried a few times.
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	attempts := 1
	switch cfg.Driver {
	case "postgres", "postgresql":
		dialector = postgres.Open(NormalizeDSN(cfg.DSN))
		attempts = connectAttempts
	case "sqlite", "":
		dialector = sqlite.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	logLevel := logger.Silent
	if cfg.Debug {
		logLevel = logger.Info
	}
	gcfg := &gorm.Config{Logger: logger.Default.LogMode(logLevel)}

	log.Printf("Connecting to database: driver=%s", cfg.Driver)
	var db *gorm.DB
	var err error
	for i := 1; i <= attempts; i++ {
		db, err = gorm.Open(dialector, gcfg)
		if err == nil {
			return db, nil
		}
		if i < attempts {
			log.Printf("Connection attempt %d/%d failed, retrying: %v", i, attempts, err)
			time.Sleep(2 * time.Second)
		}
	}
	return nil, fmt.Errorf("connect %s: %w", cfg.Driver, err)
}

// Migrate runs AutoMigrate for all models.
// Call this at application startup or as part of a migration step.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		// Reference data
		&models.Tour{},
		&models.Formula{},
		&models.TourFormula{},
		&models.Customer{},
		&models.MotoCategory{},
		&models.MotoLocation{},
		&models.Accommodation{},
		&models.Option{},
		// Quotes
		&models.Quote{},
		&models.QuoteItem{},
		&models.QuoteItemOption{},
	)
}
