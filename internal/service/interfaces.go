package service

import (
	"context"

	"match-rating-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// PlayerServiceInterface defines the interface for player service
type PlayerServiceInterface interface {
	CreatePlayer(ctx context.Context, req *CreatePlayerRequest) (*PlayerResponse, error)
	ListPlayers(ctx context.Context) ([]PlayerResponse, error)
	DeletePlayer(ctx context.Context, id uuid.UUID) error
}

// MatchServiceInterface defines the interface for match service
type MatchServiceInterface interface {
	CreateMatch(ctx context.Context, req *CreateMatchRequest) (*MatchResponse, error)
	GetMatch(ctx context.Context, id uuid.UUID) (*MatchResponse, error)
	ListMatches(ctx context.Context) ([]MatchResponse, error)
	SetWinner(ctx context.Context, matchID uuid.UUID, team models.Team) (*MatchResponse, error)
	ClearWinner(ctx context.Context, matchID uuid.UUID) (*MatchResponse, error)
	DeleteMatch(ctx context.Context, id uuid.UUID) error
}

// RosterServiceInterface defines the interface for roster service
type RosterServiceInterface interface {
	AddToTeam(ctx context.Context, matchID, playerID uuid.UUID, team models.Team) (*MatchResponse, error)
	RemoveFromTeam(ctx context.Context, matchID, playerID uuid.UUID, team models.Team) (*MatchResponse, error)
}

// VotingServiceInterface defines the interface for voting service
type VotingServiceInterface interface {
	SubmitBallot(ctx context.Context, matchID uuid.UUID, req *SubmitBallotRequest) (*BallotResult, error)
}

// ResultsServiceInterface defines the interface for results service
type ResultsServiceInterface interface {
	GetMatchResults(ctx context.Context, matchID uuid.UUID) (*MatchResultsResponse, error)
}

var (
	_ PlayerServiceInterface  = (*PlayerService)(nil)
	_ MatchServiceInterface   = (*MatchService)(nil)
	_ RosterServiceInterface  = (*RosterService)(nil)
	_ VotingServiceInterface  = (*VotingService)(nil)
	_ ResultsServiceInterface = (*ResultsService)(nil)
)
