package repository

import (
	"context"
	"errors"

	"match-rating-backend/internal/database/models"
	apperrors "match-rating-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VoteRepository handles database operations for votes
type VoteRepository struct {
	db *gorm.DB
}

// NewVoteRepository creates a new vote repository
func NewVoteRepository(db *gorm.DB) *VoteRepository {
	return &VoteRepository{db: db}
}

// GetByMatchID retrieves all votes for a match in insertion order. Aggregation
// relies on this order for its tie-break.
func (r *VoteRepository) GetByMatchID(ctx context.Context, matchID uuid.UUID) ([]models.Vote, error) {
	var votes []models.Vote
	err := r.db.WithContext(ctx).
		Where("match_id = ?", matchID).
		Order("seq ASC").
		Find(&votes).Error
	return votes, err
}

// CountByMatchAndVoter returns how many votes a voter has cast in a match
func (r *VoteRepository) CountByMatchAndVoter(ctx context.Context, matchID, voterID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Vote{}).
		Where("match_id = ? AND voter_id = ?", matchID, voterID).
		Count(&count).Error
	return count, err
}

// CreateBatch inserts all votes in one transaction. Either every vote is stored
// or none is. A duplicate (match, voter, votee) rolls the batch back with
// ErrBallotAlreadySubmitted.
func (r *VoteRepository) CreateBatch(ctx context.Context, votes []models.Vote) error {
	if len(votes) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&votes).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.ErrBallotAlreadySubmitted
	}
	return err
}
