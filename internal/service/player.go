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
)

// PlayerService handles business logic for players
type PlayerService struct {
	repo      repository.PlayerRepositoryInterface
	validator *validator.Validate
}

// NewPlayerService creates a new player service
func NewPlayerService(repo repository.PlayerRepositoryInterface, validator *validator.Validate) *PlayerService {
	return &PlayerService{
		repo:      repo,
		validator: validator,
	}
}

// CreatePlayerRequest represents the request to create a player
type CreatePlayerRequest struct {
	Name string `json:"name" validate:"required,max=100" example:"Lionel"`
}

// PlayerResponse represents a player in API responses
type PlayerResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt string    `json:"created_at"`
}

// CreatePlayer creates a new player
func (s *PlayerService) CreatePlayer(ctx context.Context, req *CreatePlayerRequest) (*PlayerResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return nil, apperrors.NewValidationError("name", "must not be blank")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("name", err.Error())
	}

	player := &models.Player{Name: req.Name}
	if err := s.repo.Create(ctx, player); err != nil {
		logger.WithContext(ctx).WithError(err).Error("failed to create player")
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	logger.WithContext(ctx).WithField("player_id", player.ID).Info("player created")
	return toPlayerResponse(player), nil
}

// ListPlayers returns every player ordered by name
func (s *PlayerService) ListPlayers(ctx context.Context) ([]PlayerResponse, error) {
	players, err := s.repo.GetAll(ctx)
	if err != nil {
		logger.WithContext(ctx).WithError(err).Error("failed to list players")
		return nil, fmt.Errorf("failed to list players: %w", err)
	}

	responses := make([]PlayerResponse, len(players))
	for i := range players {
		responses[i] = *toPlayerResponse(&players[i])
	}
	return responses, nil
}

// DeletePlayer removes a player. Their votes are removed by the store; roster
// entries that still reference the id resolve to UnknownPlayerName.
func (s *PlayerService) DeletePlayer(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if apperrors.IsNotFound(err) {
			return err
		}
		logger.WithContext(ctx).WithError(err).WithField("player_id", id).Error("failed to delete player")
		return fmt.Errorf("failed to delete player: %w", err)
	}

	logger.WithContext(ctx).WithField("player_id", id).Info("player deleted")
	return nil
}

func toPlayerResponse(p *models.Player) *PlayerResponse {
	return &PlayerResponse{
		ID:        p.ID,
		Name:      p.Name,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
	}
}
