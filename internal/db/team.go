package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var (
	ErrGameRequired = errors.New("team requires a game")
	ErrGameNotFound = errors.New("game not found")
)

// CreateTeam inserts team after checking that its game exists. A foreign key
// violation reported by the database is mapped to ErrGameNotFound as well.
func CreateTeam(ctx context.Context, conn *gorm.DB, team *Team) error {
	if team.GameID == 0 {
		return ErrGameRequired
	}
	exists, err := GameExists(ctx, conn, team.GameID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("game %d: %w", team.GameID, ErrGameNotFound)
	}
	if err := conn.WithContext(ctx).Create(team).Error; err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("game %d: %w", team.GameID, ErrGameNotFound)
		}
		return err
	}
	return nil
}

func CountTeams(ctx context.Context, conn *gorm.DB) (int64, error) {
	var count int64
	err := conn.WithContext(ctx).Model(&Team{}).Count(&count).Error
	return count, err
}

func TeamsByName(ctx context.Context, conn *gorm.DB, name string) ([]Team, error) {
	var teams []Team
	err := conn.WithContext(ctx).Where("name = ?", name).Order("id asc").Find(&teams).Error
	return teams, err
}

func isForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		if liteErr.Code() == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY {
			return true
		}
		return strings.Contains(liteErr.Error(), "FOREIGN KEY constraint failed")
	}
	return false
}
