package db

import (
	"fmt"  // Error formatting
	"log"  // gorm log writer
	"os"   // Standard output
	"time" // Slow query threshold

	"employee_management/internal/config" // Application configuration

	"gorm.io/driver/mysql"    // MySQL driver for GORM
	"gorm.io/driver/postgres" // PostgreSQL driver for GORM
	"gorm.io/driver/sqlite"   // SQLite driver for GORM
	"gorm.io/gorm"            // GORM ORM library
	"gorm.io/gorm/logger"     // GORM logger levels
)

// Dialector returns the GORM dialector for the configured driver
func Dialector(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case config.DriverMySQL:
		// clientFoundRows makes RowsAffected count matched rows, so rewriting an unchanged value is not a miss
		dsn := cfg.DBUser + ":" + cfg.DBPassword + "@tcp(" + cfg.DBHost + ":" + cfg.DBPort + ")/" + cfg.DBName + "?parseTime=true&clientFoundRows=true"
		return mysql.Open(dsn), nil
	case config.DriverPostgres:
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode)
		return postgres.Open(dsn), nil
	case config.DriverSQLite:
		return sqlite.Open(cfg.DBPath), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
	}
}

// Open connects to the configured database
func Open(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}
	return OpenDialector(dialector, cfg.IsProd)
}

// newLogger returns the gorm logger writing to w. Missing rows are an expected
// outcome of lookups and are not logged.
func newLogger(w logger.Writer, quiet bool) logger.Interface {
	level := logger.Warn // Surface slow queries and errors
	if quiet {
		level = logger.Error
	}
	return logger.New(w, logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
	})
}

// OpenDialector connects through dialector with the settings the store relies on
func OpenDialector(dialector gorm.Dialector, quiet bool) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError:                           true, // Map unique violations to gorm.ErrDuplicatedKey
		SkipDefaultTransaction:                   true, // Every write is one statement
		DisableForeignKeyConstraintWhenMigrating: true, // Leave requests outlive deleted employees
		Logger:                                   newLogger(log.New(os.Stdout, "\r\n", log.LstdFlags), quiet),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to DB: %w", err)
	}
	return db, nil
}
