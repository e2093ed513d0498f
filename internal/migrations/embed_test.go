package migrations

import (
	"errors"
	"io/fs"
	"sort"
	"strings"
	"testing"
	"time"

	"scoreboard/internal/config"
)

func TestDialectMigrationsMatch(t *testing.T) {
	var previous []string
	for _, dialect := range Dialects {
		source, err := Source(dialect)
		if err != nil {
			t.Fatalf("source %s: %v", dialect, err)
		}
		entries, err := fs.ReadDir(source, ".")
		if err != nil {
			t.Fatalf("read %s migrations: %v", dialect, err)
		}
		files := make([]string, 0, len(entries))
		for _, entry := range entries {
			files = append(files, entry.Name())
		}
		sort.Strings(files)

		if len(files) != 4 {
			t.Fatalf("expected 4 %s migration files, got %v", dialect, files)
		}
		if files[0] != "20160506174102_create_games.down.sql" {
			t.Fatalf("expected games migration first, got %s", files[0])
		}
		if previous != nil && strings.Join(previous, ",") != strings.Join(files, ",") {
			t.Fatalf("dialects disagree: %v vs %v", previous, files)
		}
		previous = files
	}
}

func TestTeamsMigrationDeclaresForeignKey(t *testing.T) {
	for _, dialect := range Dialects {
		content, err := fs.ReadFile(FS, dialect+"/20160506174103_create_teams.up.sql")
		if err != nil {
			t.Fatalf("read %s teams migration: %v", dialect, err)
		}
		sql := string(content)
		if !strings.Contains(sql, "REFERENCES games (id)") {
			t.Fatalf("%s teams migration missing foreign key", dialect)
		}
		if !strings.Contains(sql, "index_teams_on_game_id") {
			t.Fatalf("%s teams migration missing game_id index", dialect)
		}
	}
}

func TestSourceUnknownDialect(t *testing.T) {
	if _, err := Source("mysql"); !errors.Is(err, config.ErrUnknownDialect) {
		t.Fatalf("expected unknown dialect error, got %v", err)
	}
}

func TestFileBase(t *testing.T) {
	now := time.Date(2016, 5, 6, 17, 41, 3, 0, time.UTC)
	base, err := FileBase(now, "create_teams")
	if err != nil {
		t.Fatalf("file base: %v", err)
	}
	if base != "20160506174103_create_teams" {
		t.Fatalf("unexpected base %q", base)
	}
	if _, err := FileBase(now, ""); err == nil {
		t.Fatal("expected empty name to fail")
	}
	if _, err := FileBase(now, "create teams"); err == nil {
		t.Fatal("expected name with spaces to fail")
	}
}
