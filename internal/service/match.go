package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"match-rating-backend/internal/database/models"
	apperrors "match-rating-backend/internal/errors"
	"match-rating-backend/internal/logger"
	"match-rating-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// DateLayout is the wire format of match dates
const DateLayout = "2006-01-02"

// MatchService handles the lifecycle of matches: creation, winner, deletion
type MatchService struct {
	matchRepo  repository.MatchRepositoryInterface
	playerRepo repository.PlayerRepositoryInterface
	validator  *validator.Validate
}

// NewMatchService creates a new match service
func NewMatchService(
	matchRepo repository.MatchRepositoryInterface,
	playerRepo repository.PlayerRepositoryInterface,
	validator *validator.Validate,
) *MatchService {
	return &MatchService{
		matchRepo:  matchRepo,
		playerRepo: playerRepo,
		validator:  validator,
	}
}

// CreateMatchRequest represents the request to create a match
type CreateMatchRequest struct {
	Name string `json:"name" validate:"required,max=100" example:"Friday 5-a-side"`
	Date string `json:"date" validate:"required,datetime=2006-01-02" example:"2025-03-14"`
}

// SetWinnerRequest represents the request to record a winner
type SetWinnerRequest struct {
	Team models.Team `json:"team" validate:"required" example:"A"`
}

// RosterEntry is a roster member resolved to a display name
type RosterEntry struct {
	PlayerID uuid.UUID `json:"player_id"`
	Name     string    `json:"name"`
}

// MatchResponse represents a match in API responses
type MatchResponse struct {
	ID        uuid.UUID      `json:"id"`
	Name      string         `json:"name"`
	Date      string         `json:"date"`
	TeamA     []RosterEntry  `json:"team_a"`
	TeamB     []RosterEntry  `json:"team_b"`
	Winner    *models.Winner `json:"winner"`
	Version   int            `json:"version"`
	CreatedAt string         `json:"created_at"`
	UpdatedAt string         `json:"updated_at"`
}

// CreateMatch creates a match with empty rosters and no winner
func (s *MatchService) CreateMatch(ctx context.Context, req *CreateMatchRequest) (*MatchResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Date = strings.TrimSpace(req.Date)
	if req.Name == "" {
		return nil, apperrors.NewValidationError("name", "must not be blank")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	date, err := time.Parse(DateLayout, req.Date)
	if err != nil {
		return nil, apperrors.NewValidationError("date", "must be a valid date in YYYY-MM-DD format")
	}

	match := &models.Match{
		Name:    req.Name,
		Date:    date,
		Teams:   models.Teams{TeamA: []uuid.UUID{}, TeamB: []uuid.UUID{}},
		Version: 1,
	}
	if err := s.matchRepo.Create(ctx, match); err != nil {
		logger.WithContext(ctx).WithError(err).Error("failed to create match")
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	logger.WithContext(ctx).WithField("match_id", match.ID).Info("match created")
	return toMatchResponse(match, nil), nil
}

// GetMatch returns a match with its roster resolved to player names
func (s *MatchService) GetMatch(ctx context.Context, id uuid.UUID) (*MatchResponse, error) {
	match, err := s.matchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, wrapLookupError(ctx, "match", err)
	}
	return resolveMatch(ctx, s.playerRepo, match)
}

// ListMatches returns all matches, most recent first. Players and matches are
// independent reads and are fetched concurrently.
func (s *MatchService) ListMatches(ctx context.Context) ([]MatchResponse, error) {
	var (
		matches []models.Match
		players []models.Player
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		matches, err = s.matchRepo.GetAll(gctx)
		if err != nil {
			return fmt.Errorf("failed to list matches: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		players, err = s.playerRepo.GetAll(gctx)
		if err != nil {
			return fmt.Errorf("failed to load players: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		logger.WithContext(ctx).WithError(err).Error("failed to list matches")
		return nil, err
	}

	directory := NewPlayerDirectory(players)
	responses := make([]MatchResponse, len(matches))
	for i := range matches {
		responses[i] = *toMatchResponse(&matches[i], directory)
	}
	return responses, nil
}

// SetWinner overwrites the winner unconditionally. Setting the same team twice
// is a no-op from the caller's point of view. No roster or vote precondition applies.
func (s *MatchService) SetWinner(ctx context.Context, matchID uuid.UUID, team models.Team) (*MatchResponse, error) {
	if !team.IsValid() {
		return nil, apperrors.ErrInvalidTeam
	}

	match, err := s.matchRepo.Update(ctx, matchID, map[string]interface{}{"winner_team": string(team)})
	if err != nil {
		return nil, wrapLookupError(ctx, "match", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"match_id": matchID,
		"winner":   team,
	}).Info("match winner recorded")
	return resolveMatch(ctx, s.playerRepo, match)
}

// ClearWinner removes a recorded winner
func (s *MatchService) ClearWinner(ctx context.Context, matchID uuid.UUID) (*MatchResponse, error) {
	match, err := s.matchRepo.Update(ctx, matchID, map[string]interface{}{"winner_team": nil})
	if err != nil {
		return nil, wrapLookupError(ctx, "match", err)
	}

	logger.WithContext(ctx).WithField("match_id", matchID).Info("match winner cleared")
	return resolveMatch(ctx, s.playerRepo, match)
}

// DeleteMatch removes a match. Its votes are removed by the store.
func (s *MatchService) DeleteMatch(ctx context.Context, id uuid.UUID) error {
	if err := s.matchRepo.Delete(ctx, id); err != nil {
		if apperrors.IsNotFound(err) {
			return err
		}
		logger.WithContext(ctx).WithError(err).WithField("match_id", id).Error("failed to delete match")
		return fmt.Errorf("failed to delete match: %w", err)
	}

	logger.WithContext(ctx).WithField("match_id", id).Info("match deleted")
	return nil
}

// wrapLookupError passes typed errors through and wraps store failures
func wrapLookupError(ctx context.Context, entity string, err error) error {
	if apperrors.IsNotFound(err) || apperrors.IsConflict(err) || apperrors.IsValidation(err) {
		return err
	}
	logger.WithContext(ctx).WithError(err).Errorf("store failure on %s", entity)
	return fmt.Errorf("failed to access %s: %w", entity, err)
}

// resolveMatch builds the response with roster names looked up from the store
func resolveMatch(ctx context.Context, playerRepo repository.PlayerRepositoryInterface, match *models.Match) (*MatchResponse, error) {
	players, err := playerRepo.GetAll(ctx)
	if err != nil {
		logger.WithContext(ctx).WithError(err).Error("failed to load players")
		return nil, fmt.Errorf("failed to load players: %w", err)
	}
	return toMatchResponse(match, NewPlayerDirectory(players)), nil
}

// toMatchResponse builds the response. A nil directory leaves names empty.
func toMatchResponse(m *models.Match, players PlayerDirectory) *MatchResponse {
	resolve := func(ids []uuid.UUID) []RosterEntry {
		entries := make([]RosterEntry, len(ids))
		for i, id := range ids {
			entries[i] = RosterEntry{PlayerID: id}
			if players != nil {
				entries[i].Name = players.Name(id)
			}
		}
		return entries
	}

	return &MatchResponse{
		ID:        m.ID,
		Name:      m.Name,
		Date:      m.Date.Format(DateLayout),
		TeamA:     resolve(m.Teams.TeamA),
		TeamB:     resolve(m.Teams.TeamB),
		Winner:    m.Winner(),
		Version:   m.Version,
		CreatedAt: m.CreatedAt.Format(time.RFC3339),
		UpdatedAt: m.UpdatedAt.Format(time.RFC3339),
	}
}
