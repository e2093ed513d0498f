package db

import (
	"path/filepath"
	"testing"

	"scoreboard/internal/config"
	"scoreboard/internal/migrator"

	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	cfg := config.Default()
	cfg.DatabaseURL = "sqlite://" + filepath.Join(t.TempDir(), "scoreboard.db") + "?_pragma=foreign_keys(1)"
	if err := migrator.Apply(cfg.DatabaseURL); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	conn, err := Open(cfg)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { Close(conn) })
	return conn
}
