//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"
	"time"

	"match-rating-backend/internal/database/models"
	apperrors "match-rating-backend/internal/errors"
	"match-rating-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// MatchRepositoryTestSuite tests the MatchRepository
type MatchRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *MatchRepository
	playerRepo    *PlayerRepository
	voteRepo      *VoteRepository
	matches       *testutils.MatchFactory
	players       *testutils.PlayerFactory
	ctx           context.Context
}

// SetupSuite runs before all tests in the suite
func (suite *MatchRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewMatchRepository(suite.baseTestSuite.DB)
	suite.playerRepo = NewPlayerRepository(suite.baseTestSuite.DB)
	suite.voteRepo = NewVoteRepository(suite.baseTestSuite.DB)
	suite.matches = testutils.NewMatchFactory()
	suite.players = testutils.NewPlayerFactory()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *MatchRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *MatchRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *MatchRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *MatchRepositoryTestSuite) TestCreateAndGetByID() {
	a, b := suite.players.Create(), suite.players.Create()
	match := suite.matches.WithRoster([]*models.Player{a}, []*models.Player{b})
	suite.Require().NoError(suite.repo.Create(suite.ctx, match))

	got, err := suite.repo.GetByID(suite.ctx, match.ID)

	suite.Require().NoError(err)
	suite.Equal([]uuid.UUID{a.ID}, got.Teams.TeamA)
	suite.Equal([]uuid.UUID{b.ID}, got.Teams.TeamB)
	suite.Equal(1, got.Version)
	suite.Nil(got.Winner())
	suite.Equal("2025-03-14", got.Date.Format("2006-01-02"))
}

func (suite *MatchRepositoryTestSuite) TestGetByIDNotFound() {
	_, err := suite.repo.GetByID(suite.ctx, uuid.New())

	suite.ErrorIs(err, apperrors.ErrMatchNotFound)
}

func (suite *MatchRepositoryTestSuite) TestGetAllMostRecentFirst() {
	older := suite.matches.Create()
	older.Date = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := suite.matches.Create()
	newer.Date = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	suite.Require().NoError(suite.repo.Create(suite.ctx, older))
	suite.Require().NoError(suite.repo.Create(suite.ctx, newer))

	all, err := suite.repo.GetAll(suite.ctx)

	suite.Require().NoError(err)
	suite.Require().Len(all, 2)
	suite.Equal(newer.ID, all[0].ID)
}

func (suite *MatchRepositoryTestSuite) TestUpdateWinner() {
	match := suite.matches.Create()
	suite.Require().NoError(suite.repo.Create(suite.ctx, match))

	for i := 0; i < 2; i++ {
		updated, err := suite.repo.Update(suite.ctx, match.ID, map[string]interface{}{"winner_team": "A"})
		suite.Require().NoError(err)
		suite.Equal(&models.Winner{Team: models.TeamA}, updated.Winner())
	}

	cleared, err := suite.repo.Update(suite.ctx, match.ID, map[string]interface{}{"winner_team": nil})
	suite.Require().NoError(err)
	suite.Nil(cleared.Winner())
}

func (suite *MatchRepositoryTestSuite) TestUpdateNotFound() {
	_, err := suite.repo.Update(suite.ctx, uuid.New(), map[string]interface{}{"winner_team": "B"})

	suite.ErrorIs(err, apperrors.ErrMatchNotFound)
}

func (suite *MatchRepositoryTestSuite) TestUpdateTeamsBumpsVersion() {
	p := suite.players.Create()
	match := suite.matches.Create()
	suite.Require().NoError(suite.repo.Create(suite.ctx, match))

	updated, err := suite.repo.UpdateTeams(suite.ctx, match.ID, match.Teams.With(p.ID, models.TeamB), 1)

	suite.Require().NoError(err)
	suite.Equal(2, updated.Version)
	suite.Equal([]uuid.UUID{p.ID}, updated.Teams.TeamB)
	suite.Empty(updated.Teams.TeamA)
}

func (suite *MatchRepositoryTestSuite) TestUpdateTeamsStaleVersion() {
	p1, p2 := suite.players.Create(), suite.players.Create()
	match := suite.matches.Create()
	suite.Require().NoError(suite.repo.Create(suite.ctx, match))

	_, err := suite.repo.UpdateTeams(suite.ctx, match.ID, match.Teams.With(p1.ID, models.TeamA), 1)
	suite.Require().NoError(err)

	// a second writer still holding version 1 loses
	_, err = suite.repo.UpdateTeams(suite.ctx, match.ID, match.Teams.With(p2.ID, models.TeamA), 1)
	suite.True(apperrors.IsConflict(err))

	stored, err := suite.repo.GetByID(suite.ctx, match.ID)
	suite.Require().NoError(err)
	suite.Equal([]uuid.UUID{p1.ID}, stored.Teams.TeamA)
}

func (suite *MatchRepositoryTestSuite) TestUpdateTeamsMissingMatch() {
	_, err := suite.repo.UpdateTeams(suite.ctx, uuid.New(), models.Teams{}, 1)

	suite.ErrorIs(err, apperrors.ErrMatchNotFound)
}

func (suite *MatchRepositoryTestSuite) TestDeleteCascadesVotes() {
	a, b := suite.players.Create(), suite.players.Create()
	suite.Require().NoError(suite.playerRepo.Create(suite.ctx, a))
	suite.Require().NoError(suite.playerRepo.Create(suite.ctx, b))
	match := suite.matches.WithRoster([]*models.Player{a}, []*models.Player{b})
	suite.Require().NoError(suite.repo.Create(suite.ctx, match))

	votes := testutils.NewVoteFactory()
	suite.Require().NoError(suite.voteRepo.CreateBatch(suite.ctx, []models.Vote{
		votes.Create(match.ID, a.ID, b.ID, 9),
	}))

	suite.Require().NoError(suite.repo.Delete(suite.ctx, match.ID))

	var count int64
	suite.Require().NoError(suite.baseTestSuite.DB.Model(&models.Vote{}).Count(&count).Error)
	suite.Zero(count)

	suite.ErrorIs(suite.repo.Delete(suite.ctx, match.ID), apperrors.ErrMatchNotFound)
}

func TestMatchRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(MatchRepositoryTestSuite))
}
