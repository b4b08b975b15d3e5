package service

import (
	"context"

	"match-rating-backend/internal/database/models"
	apperrors "match-rating-backend/internal/errors"
	"match-rating-backend/internal/logger"
	"match-rating-backend/internal/repository"

	"github.com/google/uuid"
)

// RosterService mutates match rosters. Every write replaces the whole roster
// and is guarded by the match version, so a concurrent edit fails with
// ErrMatchModified instead of being silently overwritten.
type RosterService struct {
	matchRepo  repository.MatchRepositoryInterface
	playerRepo repository.PlayerRepositoryInterface
}

// NewRosterService creates a new roster service
func NewRosterService(
	matchRepo repository.MatchRepositoryInterface,
	playerRepo repository.PlayerRepositoryInterface,
) *RosterService {
	return &RosterService{
		matchRepo:  matchRepo,
		playerRepo: playerRepo,
	}
}

// AddToTeamRequest represents the request to place a player on a team
type AddToTeamRequest struct {
	PlayerID uuid.UUID   `json:"player_id" binding:"required" example:"0b8f2f0e-6c59-4d55-8f0c-3f4bb1f5b1c1"`
	Team     models.Team `json:"team" binding:"required" example:"A"`
}

// AddToTeam places a player on a team. A player already on either team yields
// ALREADY_ASSIGNED and the roster is left untouched, so retries are safe.
func (s *RosterService) AddToTeam(ctx context.Context, matchID, playerID uuid.UUID, team models.Team) (*MatchResponse, error) {
	if !team.IsValid() {
		return nil, apperrors.ErrInvalidTeam
	}

	match, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return nil, wrapLookupError(ctx, "match", err)
	}

	if current, ok := match.Teams.TeamOf(playerID); ok {
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"match_id":  matchID,
			"player_id": playerID,
			"team":      current,
		}).Debug("player already assigned")
		return nil, apperrors.ErrAlreadyAssigned
	}

	if _, err := s.playerRepo.GetByID(ctx, playerID); err != nil {
		return nil, wrapLookupError(ctx, "player", err)
	}

	updated, err := s.matchRepo.UpdateTeams(ctx, matchID, match.Teams.With(playerID, team), match.Version)
	if err != nil {
		return nil, wrapLookupError(ctx, "match", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"match_id":  matchID,
		"player_id": playerID,
		"team":      team,
	}).Info("player added to team")
	return resolveMatch(ctx, s.playerRepo, updated)
}

// RemoveFromTeam takes a player off a team. Removing an absent player is a no-op.
func (s *RosterService) RemoveFromTeam(ctx context.Context, matchID, playerID uuid.UUID, team models.Team) (*MatchResponse, error) {
	if !team.IsValid() {
		return nil, apperrors.ErrInvalidTeam
	}

	match, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return nil, wrapLookupError(ctx, "match", err)
	}

	if current, ok := match.Teams.TeamOf(playerID); !ok || current != team {
		return resolveMatch(ctx, s.playerRepo, match)
	}

	updated, err := s.matchRepo.UpdateTeams(ctx, matchID, match.Teams.Without(playerID, team), match.Version)
	if err != nil {
		return nil, wrapLookupError(ctx, "match", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"match_id":  matchID,
		"player_id": playerID,
		"team":      team,
	}).Info("player removed from team")
	return resolveMatch(ctx, s.playerRepo, updated)
}
