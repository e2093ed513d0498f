package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
)

var (
	ErrMissingDatabaseURL = errors.New("DATABASE_URL is not set")
	ErrUnknownDialect     = errors.New("unsupported database url scheme")
)

// LoadDotEnv loads environment variables from a .env file if present.
// Existing environment variables are not overwritten.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return godotenv.Load(path)
}

type Config struct {
	DatabaseURL              string `env:"DATABASE_URL"`
	DBMaxOpenConns           int    `env:"DB_MAX_OPEN_CONNS" envDefault:"10"`
	DBMaxIdleConns           int    `env:"DB_MAX_IDLE_CONNS" envDefault:"10"`
	DBConnMaxLifetimeSeconds int    `env:"DB_CONN_MAX_LIFETIME_SECONDS" envDefault:"300"`
	DBConnMaxIdleTimeSeconds int    `env:"DB_CONN_MAX_IDLE_SECONDS" envDefault:"60"`
	SeedFile                 string `env:"SEED_FILE"`
}

func Default() Config {
	return Config{
		DBMaxOpenConns:           10,
		DBMaxIdleConns:           10,
		DBConnMaxLifetimeSeconds: 300,
		DBConnMaxIdleTimeSeconds: 60,
	}
}

// Load reads the configuration from the environment. Pool settings that are
// not positive fall back to their defaults.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	defaults := Default()
	if cfg.DBMaxOpenConns <= 0 {
		cfg.DBMaxOpenConns = defaults.DBMaxOpenConns
	}
	if cfg.DBMaxIdleConns <= 0 {
		cfg.DBMaxIdleConns = defaults.DBMaxIdleConns
	}
	if cfg.DBConnMaxLifetimeSeconds <= 0 {
		cfg.DBConnMaxLifetimeSeconds = defaults.DBConnMaxLifetimeSeconds
	}
	if cfg.DBConnMaxIdleTimeSeconds <= 0 {
		cfg.DBConnMaxIdleTimeSeconds = defaults.DBConnMaxIdleTimeSeconds
	}
	cfg.DatabaseURL = strings.TrimSpace(cfg.DatabaseURL)
	cfg.SeedFile = strings.TrimSpace(cfg.SeedFile)
	return cfg, nil
}

// Validate checks that a database can be selected from the config.
func (c Config) Validate() error {
	if c.DatabaseURL == "" {
		return ErrMissingDatabaseURL
	}
	_, err := c.Dialect()
	return err
}

// Dialect derives the SQL dialect from the DATABASE_URL scheme.
func (c Config) Dialect() (string, error) {
	return DialectOf(c.DatabaseURL)
}

func DialectOf(databaseURL string) (string, error) {
	if databaseURL == "" {
		return "", ErrMissingDatabaseURL
	}
	scheme, _, ok := strings.Cut(databaseURL, "://")
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownDialect, databaseURL)
	}
	switch strings.ToLower(scheme) {
	case "postgres", "postgresql":
		return DialectPostgres, nil
	case "sqlite":
		return DialectSQLite, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownDialect, scheme)
	}
}

// SQLitePath strips the sqlite:// scheme, leaving the DSN for the driver.
// Foreign keys are switched on unless the URL already sets that pragma.
func SQLitePath(databaseURL string) string {
	dsn := strings.TrimPrefix(databaseURL, "sqlite://")
	if strings.Contains(dsn, "foreign_keys") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=foreign_keys(1)"
}

// SQLiteURL returns databaseURL with the pragmas SQLitePath adds.
func SQLiteURL(databaseURL string) string {
	return "sqlite://" + SQLitePath(databaseURL)
}
