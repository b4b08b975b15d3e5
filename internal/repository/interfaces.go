package repository

import (
	"context"

	"match-rating-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// PlayerRepositoryInterface defines the interface for player repository operations
type PlayerRepositoryInterface interface {
	Create(ctx context.Context, player *models.Player) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Player, error)
	GetAll(ctx context.Context) ([]models.Player, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Player, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// MatchRepositoryInterface defines the interface for match repository operations
type MatchRepositoryInterface interface {
	Create(ctx context.Context, match *models.Match) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Match, error)
	GetAll(ctx context.Context) ([]models.Match, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*models.Match, error)
	UpdateTeams(ctx context.Context, id uuid.UUID, teams models.Teams, expectedVersion int) (*models.Match, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// VoteRepositoryInterface defines the interface for vote repository operations
type VoteRepositoryInterface interface {
	GetByMatchID(ctx context.Context, matchID uuid.UUID) ([]models.Vote, error)
	CountByMatchAndVoter(ctx context.Context, matchID, voterID uuid.UUID) (int64, error)
	CreateBatch(ctx context.Context, votes []models.Vote) error
}
