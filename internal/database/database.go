// Package database owns the shared gorm connection. The handle is opened
// once at startup with a bounded retry loop and a configured connection
// pool, then injected into the per-domain repositories.
package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/selin-bardakci/waveriders/internal/config"
	"github.com/selin-bardakci/waveriders/internal/entities"
)

type Database struct {
	DB *gorm.DB
}

// NewDatabase opens the configured database, retrying the initial connect
// with linear backoff, and migrates the schema. Connection loss after
// startup is handled by the pool, not by reconnect callbacks.
func NewDatabase(cfg config.Database) (*Database, error) {
	attempts := cfg.ConnectAttempts
	if attempts < 1 {
		attempts = 1
	}

	var db *gorm.DB
	var err error
	for i := 0; i < attempts; i++ {
		db, err = gorm.Open(dialector(cfg), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Warn),
		})
		if err == nil {
			break
		}
		if i < attempts-1 {
			log.Printf("Database connect failed (attempt %d/%d): %v", i+1, attempts, err)
			time.Sleep(cfg.ConnectBackoff)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", attempts, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	err = db.AutoMigrate(
		&entities.User{},
		&entities.Business{},
		&entities.Captain{},
		&entities.Boat{},
		&entities.Rental{},
		&entities.Favorite{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Printf("Database initialized (%s)", cfg.Driver)

	return &Database{DB: db}, nil
}

func dialector(cfg config.Database) gorm.Dialector {
	if cfg.Driver == config.DriverMySQL {
		return mysql.Open(cfg.DSN)
	}
	return sqlite.Open(cfg.Path)
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
