package repository

import (
	"context"
	"errors"

	"match-rating-backend/internal/database/models"
	apperrors "match-rating-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MatchRepository handles database operations for matches
type MatchRepository struct {
	db *gorm.DB
}

// NewMatchRepository creates a new match repository
func NewMatchRepository(db *gorm.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

// Create creates a new match
func (r *MatchRepository) Create(ctx context.Context, match *models.Match) error {
	return r.db.WithContext(ctx).Create(match).Error
}

// GetByID retrieves a match by ID
func (r *MatchRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Match, error) {
	var match models.Match
	err := r.db.WithContext(ctx).First(&match, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMatchNotFound
		}
		return nil, err
	}
	return &match, nil
}

// GetAll retrieves all matches, most recent first
func (r *MatchRepository) GetAll(ctx context.Context) ([]models.Match, error) {
	var matches []models.Match
	err := r.db.WithContext(ctx).Order("date DESC").Order("created_at DESC").Find(&matches).Error
	return matches, err
}

// Update applies a partial update and returns the stored match.
// Used for unconditional writes such as the winner.
func (r *MatchRepository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*models.Match, error) {
	result := r.db.WithContext(ctx).Model(&models.Match{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, apperrors.ErrMatchNotFound
	}
	return r.GetByID(ctx, id)
}

// UpdateTeams replaces the whole roster if the stored version still equals
// expectedVersion, and bumps the version. A stale version yields ErrMatchModified.
func (r *MatchRepository) UpdateTeams(ctx context.Context, id uuid.UUID, teams models.Teams, expectedVersion int) (*models.Match, error) {
	result := r.db.WithContext(ctx).Model(&models.Match{}).
		Where("id = ? AND version = ?", id, expectedVersion).
		Updates(map[string]interface{}{
			"teams":   teams,
			"version": gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		// Either the match is gone or another writer got there first
		if _, err := r.GetByID(ctx, id); err != nil {
			return nil, err
		}
		return nil, apperrors.ErrMatchModified
	}
	return r.GetByID(ctx, id)
}

// Delete deletes a match; its votes go with it through ON DELETE CASCADE
func (r *MatchRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Match{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrMatchNotFound
	}
	return nil
}
