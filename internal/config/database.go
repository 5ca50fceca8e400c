package config

import (
	"errors"
	"fmt"

	_ "github.com/lib/pq" // registers the "postgres" database/sql driver for DB_DRIVER=pq
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"community_portal/internal/models"
)

// OpenDatabase connects to Postgres through pgx (default) or lib/pq. The
// returned handle is owned by the caller and must be released with
// CloseDatabase.
func OpenDatabase(cfg DatabaseConfig, log gormlogger.Interface) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "", "pgx":
		dialector = postgres.Open(cfg.DSN())
	case "pq":
		dialector = postgres.New(postgres.Config{DriverName: "postgres", DSN: cfg.DSN()})
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: log})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	return db, nil
}

// Migrate creates or updates every table the portal uses.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("auto-migration failed: %w", err)
	}
	return nil
}

func CloseDatabase(db *gorm.DB) error {
	if db == nil {
		return errors.New("nil database handle")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
