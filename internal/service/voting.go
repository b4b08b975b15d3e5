package service

import (
	"context"
	"fmt"
	"slices"

	"match-rating-backend/internal/database/models"
	apperrors "match-rating-backend/internal/errors"
	"match-rating-backend/internal/logger"
	"match-rating-backend/internal/repository"

	"github.com/google/uuid"
)

// VotingService validates and records ballots
type VotingService struct {
	matchRepo  repository.MatchRepositoryInterface
	playerRepo repository.PlayerRepositoryInterface
	voteRepo   repository.VoteRepositoryInterface
	results    *ResultsService
}

// NewVotingService creates a new voting service
func NewVotingService(
	matchRepo repository.MatchRepositoryInterface,
	playerRepo repository.PlayerRepositoryInterface,
	voteRepo repository.VoteRepositoryInterface,
	results *ResultsService,
) *VotingService {
	return &VotingService{
		matchRepo:  matchRepo,
		playerRepo: playerRepo,
		voteRepo:   voteRepo,
		results:    results,
	}
}

// SubmitBallotRequest carries one voter's scores for everyone else in the match.
// A nil VoterID means no voter was selected; a nil score means the player was
// left unrated.
type SubmitBallotRequest struct {
	VoterID *uuid.UUID         `json:"voter_id"`
	Ratings map[uuid.UUID]*int `json:"ratings"`
}

// BallotResult is returned after a ballot is stored. The engine keeps no voter
// selection, so the next voter starts from a clean request.
type BallotResult struct {
	VotesRecorded int                   `json:"votes_recorded"`
	Results       *MatchResultsResponse `json:"results"`
}

// EligibleVotees returns every roster member except the voter, team A first
func EligibleVotees(match *models.Match, voterID uuid.UUID) []uuid.UUID {
	members := match.Teams.Members()
	eligible := make([]uuid.UUID, 0, len(members))
	for _, id := range members {
		if id != voterID {
			eligible = append(eligible, id)
		}
	}
	return eligible
}

// ActiveRoster returns a copy of match whose teams keep only the players that
// still exist. Deleted players stay on the stored roster but can neither vote
// nor be rated.
func ActiveRoster(match *models.Match, players []models.Player) *models.Match {
	existing := make(map[uuid.UUID]struct{}, len(players))
	for _, p := range players {
		existing[p.ID] = struct{}{}
	}
	keep := func(ids []uuid.UUID) []uuid.UUID {
		out := make([]uuid.UUID, 0, len(ids))
		for _, id := range ids {
			if _, ok := existing[id]; ok {
				out = append(out, id)
			}
		}
		return out
	}

	active := *match
	active.Teams = models.Teams{
		TeamA: keep(match.Teams.TeamA),
		TeamB: keep(match.Teams.TeamB),
	}
	return &active
}

// ValidateBallot checks a ballot without touching the store. Checks run in
// order: selection, completeness, range, then stray ratings for players who
// are not eligible (including the voter).
func (s *VotingService) ValidateBallot(match *models.Match, voterID *uuid.UUID, ratings map[uuid.UUID]*int) error {
	if match == nil || voterID == nil || *voterID == uuid.Nil {
		return apperrors.ErrSelectionRequired
	}

	eligible := EligibleVotees(match, *voterID)

	var missing []string
	for _, id := range eligible {
		if score, ok := ratings[id]; !ok || score == nil {
			missing = append(missing, id.String())
		}
	}
	if len(missing) > 0 {
		return apperrors.NewIncompleteBallotError(missing)
	}

	var outOfRange []string
	for _, id := range eligible {
		if score := *ratings[id]; score < models.MinScore || score > models.MaxScore {
			outOfRange = append(outOfRange, id.String())
		}
	}
	if len(outOfRange) > 0 {
		return apperrors.NewOutOfRangeError(outOfRange)
	}

	if len(ratings) > len(eligible) {
		allowed := make(map[uuid.UUID]struct{}, len(eligible))
		for _, id := range eligible {
			allowed[id] = struct{}{}
		}
		var stray []string
		for id := range ratings {
			if _, ok := allowed[id]; !ok {
				stray = append(stray, id.String())
			}
		}
		slices.Sort(stray)
		return &apperrors.ValidationError{
			Code:    apperrors.CodeValidation,
			Field:   "ratings",
			Message: "ratings may only cover the other players in the match",
			Details: stray,
		}
	}

	return nil
}

// SubmitBallot validates a ballot against the stored roster and writes one vote
// per eligible player in a single transaction. A voter may submit once per
// match; a second ballot is rejected with ErrBallotAlreadySubmitted.
func (s *VotingService) SubmitBallot(ctx context.Context, matchID uuid.UUID, req *SubmitBallotRequest) (*BallotResult, error) {
	if matchID == uuid.Nil || req == nil || req.VoterID == nil {
		return nil, apperrors.ErrSelectionRequired
	}
	voterID := *req.VoterID
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"match_id": matchID,
		"voter_id": voterID,
	})

	match, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return nil, wrapLookupError(ctx, "match", err)
	}
	if !match.Teams.Contains(voterID) {
		return nil, apperrors.ErrVoterNotInMatch
	}

	players, err := s.playerRepo.GetByIDs(ctx, match.Teams.Members())
	if err != nil {
		log.WithError(err).Error("failed to load roster players")
		return nil, fmt.Errorf("failed to load players: %w", err)
	}
	active := ActiveRoster(match, players)
	if !active.Teams.Contains(voterID) {
		return nil, apperrors.ErrVoterNotInMatch
	}

	// Scores for rostered players who were deleted since are dropped, not rejected
	ratings := make(map[uuid.UUID]*int, len(req.Ratings))
	for id, score := range req.Ratings {
		if match.Teams.Contains(id) && !active.Teams.Contains(id) {
			continue
		}
		ratings[id] = score
	}

	if err := s.ValidateBallot(active, req.VoterID, ratings); err != nil {
		log.WithError(err).Debug("ballot rejected")
		return nil, err
	}

	existing, err := s.voteRepo.CountByMatchAndVoter(ctx, matchID, voterID)
	if err != nil {
		log.WithError(err).Error("failed to check existing ballot")
		return nil, fmt.Errorf("failed to check existing ballot: %w", err)
	}
	if existing > 0 {
		return nil, apperrors.ErrBallotAlreadySubmitted
	}

	eligible := EligibleVotees(active, voterID)
	votes := make([]models.Vote, 0, len(eligible))
	for _, id := range eligible {
		votes = append(votes, models.Vote{
			ID:      uuid.New(),
			MatchID: matchID,
			VoterID: voterID,
			VoteeID: id,
			Score:   *ratings[id],
		})
	}

	// A voter alone on the roster has nobody to rate; that is accepted as an empty ballot
	if len(votes) > 0 {
		if err := s.voteRepo.CreateBatch(ctx, votes); err != nil {
			if apperrors.IsAlreadyExists(err) {
				return nil, err
			}
			log.WithError(err).Error("failed to store ballot")
			return nil, fmt.Errorf("failed to store ballot: %w", err)
		}
	}
	log.WithField("votes", len(votes)).Info("ballot recorded")

	results, err := s.results.resultsFor(ctx, match)
	if err != nil {
		return nil, err
	}

	return &BallotResult{
		VotesRecorded: len(votes),
		Results:       results,
	}, nil
}
