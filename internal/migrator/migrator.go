package migrator

import (
	"errors"
	"fmt"
	"log"

	"scoreboard/internal/config"
	"scoreboard/internal/migrations"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// Migrator applies the embedded migrations for one database.
type Migrator struct {
	m       *migrate.Migrate
	dialect string
}

// New prepares the migrations matching the dialect of databaseURL.
func New(databaseURL string) (*Migrator, error) {
	const op = "migrator.New"

	dialect, err := config.DialectOf(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	files, err := migrations.Source(dialect)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if dialect == config.DialectSQLite {
		databaseURL = config.SQLiteURL(databaseURL)
	}
	source, err := iofs.New(files, ".")
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create source: %w", op, err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", source, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create migrate instance: %w", op, err)
	}
	return &Migrator{m: m, dialect: dialect}, nil
}

// Up applies every pending migration. Nothing pending is not an error.
func (mg *Migrator) Up() error {
	log.Printf("applying %s migrations", mg.dialect)
	if err := mg.m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrator.Up: %w", err)
	}
	return nil
}

// Down reverts every applied migration.
func (mg *Migrator) Down() error {
	log.Printf("reverting %s migrations", mg.dialect)
	if err := mg.m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrator.Down: %w", err)
	}
	return nil
}

// Steps applies n migrations when n is positive and reverts -n otherwise.
func (mg *Migrator) Steps(n int) error {
	if n == 0 {
		return nil
	}
	if err := mg.m.Steps(n); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrator.Steps(%d): %w", n, err)
	}
	return nil
}

// Version reports the applied version. A fresh database reports 0.
func (mg *Migrator) Version() (uint, bool, error) {
	version, dirty, err := mg.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("migrator.Version: %w", err)
	}
	return version, dirty, nil
}

// Force records version as applied and clears the dirty flag.
func (mg *Migrator) Force(version int) error {
	if err := mg.m.Force(version); err != nil {
		return fmt.Errorf("migrator.Force(%d): %w", version, err)
	}
	return nil
}

func (mg *Migrator) Close() error {
	sourceErr, dbErr := mg.m.Close()
	return errors.Join(sourceErr, dbErr)
}

// Apply runs every pending migration against databaseURL.
func Apply(databaseURL string) error {
	mg, err := New(databaseURL)
	if err != nil {
		return err
	}
	defer mg.Close()
	return mg.Up()
}
