package db

import "time"

type Game struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
	Teams     []Team
}

// Team belongs to one Game. PlayerNames is kept as the comma separated text
// it was entered as.
type Team struct {
	ID          uint   `gorm:"primaryKey"`
	GameID      uint   `gorm:"index:index_teams_on_game_id"`
	Name        string
	Score       int
	PlayerNames string
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}
