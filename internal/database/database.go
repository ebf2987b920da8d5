package database

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"workspace-simulator/internal/database/models"
	apperrors "workspace-simulator/internal/errors"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Options struct {
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	SkipAutoMigrate bool
}

// Initialize opens the configured database and creates the schema from
// GORM models. SQLite serves single-file local runs, Postgres serves
// shared environments.
func Initialize(driver, dsn string, opts *Options) (*gorm.DB, error) {
	// Defaults
	if opts == nil {
		opts = &Options{}
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Error
	}
	if opts.MaxOpenConns == 0 {
		opts.MaxOpenConns = 20
	}
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 10
	}
	if opts.ConnMaxLifetime == 0 {
		opts.ConnMaxLifetime = 30 * time.Minute
	}
	if opts.ConnMaxIdleTime == 0 {
		opts.ConnMaxIdleTime = 10 * time.Minute
	}

	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dialector = postgres.Open(dsn)
	case "sqlite":
		prepared, err := prepareSQLiteDSN(dsn)
		if err != nil {
			return nil, err
		}
		dialector = sqlite.Open(prepared)
	default:
		return nil, apperrors.ErrUnknownDatabaseDriver
	}

	// Open DB
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(opts.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
		sqlDB.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	}

	// AutoMigrate all models, parents before children
	if !opts.SkipAutoMigrate {
		all := []interface{}{
			&models.Organization{},
			&models.User{},
			&models.Team{},
			&models.TeamMembership{},
			&models.Project{},
			&models.Section{},
			&models.Task{},
			&models.Comment{},
			&models.CustomFieldDefinition{},
			&models.CustomFieldValue{},
			&models.Tag{},
			&models.TaskTag{},
		}
		if err := db.AutoMigrate(all...); err != nil {
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}
	}

	return db, nil
}

// prepareSQLiteDSN creates the parent directory and turns on foreign
// keys, which SQLite leaves off by default.
func prepareSQLiteDSN(path string) (string, error) {
	if path == "" {
		return "", apperrors.NewConfigurationError("DATABASE_PATH", "sqlite driver needs a file path")
	}

	if !isMemoryDSN(path) {
		if dir := filepath.Dir(strings.TrimPrefix(path, "file:")); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return "", fmt.Errorf("create database directory: %w", err)
			}
		}
	}

	if strings.Contains(path, "?") {
		return path + "&_foreign_keys=on", nil
	}
	return path + "?_foreign_keys=on", nil
}

func isMemoryDSN(path string) bool {
	return path == ":memory:" || strings.HasPrefix(path, "file::memory:")
}
