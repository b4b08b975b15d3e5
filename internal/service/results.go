package service

import (
	"context"
	"fmt"

	"match-rating-backend/internal/database/models"
	"match-rating-backend/internal/logger"
	"match-rating-backend/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// ResultsService tabulates the votes of a match
type ResultsService struct {
	matchRepo  repository.MatchRepositoryInterface
	playerRepo repository.PlayerRepositoryInterface
	voteRepo   repository.VoteRepositoryInterface
}

// NewResultsService creates a new results service
func NewResultsService(
	matchRepo repository.MatchRepositoryInterface,
	playerRepo repository.PlayerRepositoryInterface,
	voteRepo repository.VoteRepositoryInterface,
) *ResultsService {
	return &ResultsService{
		matchRepo:  matchRepo,
		playerRepo: playerRepo,
		voteRepo:   voteRepo,
	}
}

// PlayerResult is one roster row of the results table
type PlayerResult struct {
	PlayerID       uuid.UUID   `json:"player_id"`
	Name           string      `json:"name"`
	Team           models.Team `json:"team"`
	Average        *float64    `json:"average"`
	AverageDisplay string      `json:"average_display"`
	VotesReceived  int         `json:"votes_received"`
	VotesCast      int         `json:"votes_cast"`
}

// MatchResultsResponse is the aggregated view of a match's votes
type MatchResultsResponse struct {
	MatchID    uuid.UUID      `json:"match_id"`
	MatchName  string         `json:"match_name"`
	Date       string         `json:"date"`
	Winner     *models.Winner `json:"winner"`
	Players    []PlayerResult `json:"players"`
	MVP        *MVP           `json:"mvp"`
	VoterCount int            `json:"voter_count"`
	TotalVotes int            `json:"total_votes"`
}

// GetMatchResults loads a match and aggregates its votes
func (s *ResultsService) GetMatchResults(ctx context.Context, matchID uuid.UUID) (*MatchResultsResponse, error) {
	match, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return nil, wrapLookupError(ctx, "match", err)
	}
	return s.resultsFor(ctx, match)
}

// resultsFor fetches players and votes concurrently and aggregates them
func (s *ResultsService) resultsFor(ctx context.Context, match *models.Match) (*MatchResultsResponse, error) {
	var (
		players []models.Player
		votes   []models.Vote
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		players, err = s.playerRepo.GetAll(gctx)
		if err != nil {
			return fmt.Errorf("failed to load players: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		votes, err = s.voteRepo.GetByMatchID(gctx, match.ID)
		if err != nil {
			return fmt.Errorf("failed to load votes: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		logger.WithContext(ctx).WithError(err).WithField("match_id", match.ID).Error("failed to load results")
		return nil, err
	}

	return BuildMatchResults(match, players, votes), nil
}

// BuildMatchResults aggregates votes into one row per roster member, team A
// first. Roster ids without a player render as UnknownPlayerName.
func BuildMatchResults(match *models.Match, players []models.Player, votes []models.Vote) *MatchResultsResponse {
	directory := NewPlayerDirectory(players)
	averages := ComputeAverages(votes)
	voterCounts := ComputeVoterCounts(votes)

	rows := make([]PlayerResult, 0, len(match.Teams.TeamA)+len(match.Teams.TeamB))
	for _, team := range []models.Team{models.TeamA, models.TeamB} {
		for _, id := range match.Teams.Side(team) {
			bucket, _ := averages.Bucket(id)
			avg, ok := bucket.Average()
			row := PlayerResult{
				PlayerID:       id,
				Name:           directory.Name(id),
				Team:           team,
				AverageDisplay: FormatAverage(avg, ok),
				VotesReceived:  bucket.Count,
				VotesCast:      voterCounts[id],
			}
			if ok {
				row.Average = &avg
			}
			rows = append(rows, row)
		}
	}

	return &MatchResultsResponse{
		MatchID:    match.ID,
		MatchName:  match.Name,
		Date:       match.Date.Format(DateLayout),
		Winner:     match.Winner(),
		Players:    rows,
		MVP:        ComputeMVP(averages, directory),
		VoterCount: len(voterCounts),
		TotalVotes: len(votes),
	}
}
