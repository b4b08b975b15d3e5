package repository

import (
	"context"
	"errors"

	"match-rating-backend/internal/database/models"
	apperrors "match-rating-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlayerRepository handles database operations for players
type PlayerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db *gorm.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// Create creates a new player
func (r *PlayerRepository) Create(ctx context.Context, player *models.Player) error {
	return r.db.WithContext(ctx).Create(player).Error
}

// GetByID retrieves a player by ID
func (r *PlayerRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Player, error) {
	var player models.Player
	err := r.db.WithContext(ctx).First(&player, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPlayerNotFound
		}
		return nil, err
	}
	return &player, nil
}

// GetAll retrieves all players ordered by name
func (r *PlayerRepository) GetAll(ctx context.Context) ([]models.Player, error) {
	var players []models.Player
	err := r.db.WithContext(ctx).Order("name ASC").Order("created_at ASC").Find(&players).Error
	return players, err
}

// GetByIDs retrieves the players that still exist among ids. Missing ids are
// skipped rather than reported.
func (r *PlayerRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Player, error) {
	var players []models.Player
	if len(ids) == 0 {
		return players, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&players).Error
	return players, err
}

// Delete deletes a player. Their votes, cast and received, are removed by the
// ON DELETE CASCADE foreign keys on the votes table.
func (r *PlayerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Player{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrPlayerNotFound
	}
	return nil
}
