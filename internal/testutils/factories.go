package testutils

import (
	"fmt"
	"time"

	"match-rating-backend/internal/database/models"

	"github.com/google/uuid"
)

// PlayerFactory provides methods to create test Player data
type PlayerFactory struct {
	seq int
}

// NewPlayerFactory creates a new PlayerFactory
func NewPlayerFactory() *PlayerFactory {
	return &PlayerFactory{}
}

// Create creates a test Player with a unique name
func (f *PlayerFactory) Create() *models.Player {
	f.seq++
	return f.WithName(fmt.Sprintf("Player %d", f.seq))
}

// WithName creates a test Player with a custom name
func (f *PlayerFactory) WithName(name string) *models.Player {
	return &models.Player{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name: name,
	}
}

// MatchFactory provides methods to create test Match data
type MatchFactory struct{}

// NewMatchFactory creates a new MatchFactory
func NewMatchFactory() *MatchFactory {
	return &MatchFactory{}
}

// Create creates a test Match with empty rosters and no winner
func (f *MatchFactory) Create() *models.Match {
	return &models.Match{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:    "Test Match",
		Date:    time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		Teams:   models.Teams{TeamA: []uuid.UUID{}, TeamB: []uuid.UUID{}},
		Version: 1,
	}
}

// WithRoster creates a test Match with the given sides
func (f *MatchFactory) WithRoster(teamA, teamB []*models.Player) *models.Match {
	m := f.Create()
	for _, p := range teamA {
		m.Teams.TeamA = append(m.Teams.TeamA, p.ID)
	}
	for _, p := range teamB {
		m.Teams.TeamB = append(m.Teams.TeamB, p.ID)
	}
	return m
}

// VoteFactory provides methods to create test Vote data
type VoteFactory struct{}

// NewVoteFactory creates a new VoteFactory
func NewVoteFactory() *VoteFactory {
	return &VoteFactory{}
}

// Create creates a test Vote
func (f *VoteFactory) Create(matchID, voterID, voteeID uuid.UUID, score int) models.Vote {
	return models.Vote{
		ID:      uuid.New(),
		MatchID: matchID,
		VoterID: voterID,
		VoteeID: voteeID,
		Score:   score,
	}
}
