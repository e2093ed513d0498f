package seed

import (
	"context"
	"fmt"
	"io"

	"scoreboard/internal/db"

	"gorm.io/gorm"
)

type Result struct {
	Games int
	Teams int
}

// Seeder creates games and teams from a Dataset. Runs are not idempotent:
// seeding the same dataset twice stores it twice.
type Seeder struct {
	db  *gorm.DB
	out io.Writer
}

func New(conn *gorm.DB, out io.Writer) *Seeder {
	if out == nil {
		out = io.Discard
	}
	return &Seeder{db: conn, out: out}
}

// Run creates each game in order and then its teams. The first failed insert
// stops the run; rows created before it are kept.
func (s *Seeder) Run(ctx context.Context, data Dataset) (Result, error) {
	var result Result
	fmt.Fprintf(s.out, "Seeding %d games...\n", len(data.Games))

	for i, def := range data.Games {
		game, err := db.CreateGame(ctx, s.db)
		if err != nil {
			return result, fmt.Errorf("seed game %d: %w", i+1, err)
		}
		result.Games++

		for _, teamDef := range def.Teams {
			team := db.Team{
				GameID:      game.ID,
				Name:        teamDef.Name,
				PlayerNames: teamDef.PlayerNames,
				Score:       teamDef.Score,
			}
			if err := db.CreateTeam(ctx, s.db, &team); err != nil {
				return result, fmt.Errorf("seed game %d team %q: %w", i+1, teamDef.Name, err)
			}
			result.Teams++
		}
	}

	fmt.Fprintln(s.out, "Done.")
	return result, nil
}
