// Package migrations contains the embedded SQL migrations, one directory per
// dialect, in golang-migrate file layout.
package migrations

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"scoreboard/internal/config"
)

//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS

// VersionFormat is the UTC timestamp layout used as a migration version.
const VersionFormat = "20060102150405"

// Dialects lists the directories a new migration must be written to.
var Dialects = []string{config.DialectPostgres, config.DialectSQLite}

// Source returns the migrations for one dialect, rooted at its directory.
func Source(dialect string) (fs.FS, error) {
	for _, known := range Dialects {
		if known == dialect {
			return fs.Sub(FS, dialect)
		}
	}
	return nil, fmt.Errorf("%w: %s", config.ErrUnknownDialect, dialect)
}

// FileBase returns "<version>_<name>" for a migration created at now.
func FileBase(now time.Time, name string) (string, error) {
	if name == "" {
		return "", errors.New("migration name is required")
	}
	if strings.ContainsAny(name, " ") {
		return "", errors.New("migration name must not contain spaces")
	}
	return fmt.Sprintf("%s_%s", now.UTC().Format(VersionFormat), name), nil
}
