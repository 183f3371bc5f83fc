package database

import (
	"fmt"

	"dbadmin/pkg/config"
	applog "dbadmin/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open establishes a pooled connection to the configured database. The schema
// is owned by the assistant platform; no migrations run here.
func Open(cfg *config.Config) (*gorm.DB, error) {
	// Set up GORM logger configuration
	var logLevel logger.LogLevel
	if cfg.Env == "development" {
		logLevel = logger.Warn
	} else {
		logLevel = logger.Error
	}

	// Override log level if explicitly set in config
	switch cfg.Database.LogLevel {
	case "silent":
		logLevel = logger.Silent
	case "error":
		logLevel = logger.Error
	case "warn":
		logLevel = logger.Warn
	case "info":
		logLevel = logger.Info
	}

	// Configure Postgres options
	pgConfig := postgres.Config{
		DSN:                  cfg.Database.DSN(),
		PreferSimpleProtocol: true, // Disables implicit prepared statement usage
	}

	db, err := gorm.Open(postgres.New(pgConfig), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Configure connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	return db, nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	return sqlDB.Close()
}

// Overridable in tests.
var (
	openConn  = Open
	closeConn = Close
)

// Run opens a connection, invokes fn with it and releases the pool when fn
// returns. The release runs on both the success and the error path, exactly
// once per invocation.
func Run(cfg *config.Config, fn func(db *gorm.DB) error) error {
	db, err := openConn(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeConn(db); cerr != nil {
			applog.GetLogger().Warn("Failed to close database connection", zap.Error(cerr))
		}
	}()
	return fn(db)
}
