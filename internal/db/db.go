package db

import (
	"errors"
	"fmt"
	"time"

	"scoreboard/internal/config"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// sqliteDriverName is the database/sql name registered by modernc.org/sqlite.
const sqliteDriverName = "sqlite"

// Open connects to the database named by cfg.DatabaseURL.
func Open(cfg config.Config) (*gorm.DB, error) {
	if cfg.DatabaseURL == "" {
		return nil, config.ErrMissingDatabaseURL
	}
	dialect, err := cfg.Dialect()
	if err != nil {
		return nil, err
	}

	var dialector gorm.Dialector
	switch dialect {
	case config.DialectPostgres:
		dialector = postgres.Open(cfg.DatabaseURL)
	case config.DialectSQLite:
		dialector = sqlite.New(sqlite.Config{
			DriverName: sqliteDriverName,
			DSN:        config.SQLitePath(cfg.DatabaseURL),
		})
	}

	conn, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dialect, err)
	}
	sqlDB, err := conn.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.DBConnMaxLifetimeSeconds) * time.Second)
	sqlDB.SetConnMaxIdleTime(time.Duration(cfg.DBConnMaxIdleTimeSeconds) * time.Second)
	return conn, nil
}

// Close releases the pool behind conn.
func Close(conn *gorm.DB) error {
	if conn == nil {
		return errors.New("db connection is nil")
	}
	sqlDB, err := conn.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
