package db

import (
	"context"

	"gorm.io/gorm"
)

// CreateGame inserts a game with no attributes besides its timestamps.
func CreateGame(ctx context.Context, conn *gorm.DB) (*Game, error) {
	game := Game{}
	if err := conn.WithContext(ctx).Create(&game).Error; err != nil {
		return nil, err
	}
	return &game, nil
}

func GameExists(ctx context.Context, conn *gorm.DB, id uint) (bool, error) {
	var count int64
	if err := conn.WithContext(ctx).Model(&Game{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func CountGames(ctx context.Context, conn *gorm.DB) (int64, error) {
	var count int64
	err := conn.WithContext(ctx).Model(&Game{}).Count(&count).Error
	return count, err
}

// ListGames returns every game with its teams, both in creation order.
func ListGames(ctx context.Context, conn *gorm.DB) ([]Game, error) {
	var games []Game
	err := conn.WithContext(ctx).
		Preload("Teams", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("id asc")
		}).
		Order("id asc").
		Find(&games).Error
	return games, err
}
