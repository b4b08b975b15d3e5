//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"

	"match-rating-backend/internal/database/models"
	apperrors "match-rating-backend/internal/errors"
	"match-rating-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// PlayerRepositoryTestSuite tests the PlayerRepository
type PlayerRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *PlayerRepository
	voteRepo      *VoteRepository
	matchRepo     *MatchRepository
	factory       *testutils.PlayerFactory
	ctx           context.Context
}

// SetupSuite runs before all tests in the suite
func (suite *PlayerRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewPlayerRepository(suite.baseTestSuite.DB)
	suite.voteRepo = NewVoteRepository(suite.baseTestSuite.DB)
	suite.matchRepo = NewMatchRepository(suite.baseTestSuite.DB)
	suite.factory = testutils.NewPlayerFactory()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *PlayerRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *PlayerRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *PlayerRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *PlayerRepositoryTestSuite) TestCreateAndGetByID() {
	player := suite.factory.WithName("Ana")
	suite.Require().NoError(suite.repo.Create(suite.ctx, player))

	got, err := suite.repo.GetByID(suite.ctx, player.ID)

	suite.NoError(err)
	suite.Equal("Ana", got.Name)
}

func (suite *PlayerRepositoryTestSuite) TestGetByIDNotFound() {
	got, err := suite.repo.GetByID(suite.ctx, uuid.New())

	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrPlayerNotFound)
}

func (suite *PlayerRepositoryTestSuite) TestGetAllOrderedByName() {
	for _, name := range []string{"Cai", "Ana", "Ben"} {
		suite.Require().NoError(suite.repo.Create(suite.ctx, suite.factory.WithName(name)))
	}

	players, err := suite.repo.GetAll(suite.ctx)

	suite.NoError(err)
	suite.Require().Len(players, 3)
	suite.Equal("Ana", players[0].Name)
	suite.Equal("Ben", players[1].Name)
	suite.Equal("Cai", players[2].Name)
}

func (suite *PlayerRepositoryTestSuite) TestGetByIDsSkipsMissing() {
	ana, ben := suite.factory.WithName("Ana"), suite.factory.WithName("Ben")
	suite.Require().NoError(suite.repo.Create(suite.ctx, ana))
	suite.Require().NoError(suite.repo.Create(suite.ctx, ben))

	players, err := suite.repo.GetByIDs(suite.ctx, []uuid.UUID{ana.ID, uuid.New(), ben.ID})

	suite.NoError(err)
	suite.Require().Len(players, 2)
	ids := []uuid.UUID{players[0].ID, players[1].ID}
	suite.ElementsMatch([]uuid.UUID{ana.ID, ben.ID}, ids)

	none, err := suite.repo.GetByIDs(suite.ctx, nil)
	suite.NoError(err)
	suite.Empty(none)
}

func (suite *PlayerRepositoryTestSuite) TestDeleteCascadesVotes() {
	voter, votee, other := suite.factory.Create(), suite.factory.Create(), suite.factory.Create()
	suite.Require().NoError(suite.repo.Create(suite.ctx, voter))
	suite.Require().NoError(suite.repo.Create(suite.ctx, votee))
	suite.Require().NoError(suite.repo.Create(suite.ctx, other))

	match := testutils.NewMatchFactory().WithRoster(
		[]*models.Player{voter, votee},
		[]*models.Player{other},
	)
	suite.Require().NoError(suite.matchRepo.Create(suite.ctx, match))

	votes := testutils.NewVoteFactory()
	suite.Require().NoError(suite.voteRepo.CreateBatch(suite.ctx, []models.Vote{
		votes.Create(match.ID, voter.ID, votee.ID, 7),
		votes.Create(match.ID, voter.ID, other.ID, 8),
		votes.Create(match.ID, other.ID, voter.ID, 6),
	}))

	suite.Require().NoError(suite.repo.Delete(suite.ctx, voter.ID))

	remaining, err := suite.voteRepo.GetByMatchID(suite.ctx, match.ID)
	suite.NoError(err)
	suite.Empty(remaining)

	// the roster still references the deleted id
	stored, err := suite.matchRepo.GetByID(suite.ctx, match.ID)
	suite.NoError(err)
	suite.Contains(stored.Teams.TeamA, voter.ID)
}

func (suite *PlayerRepositoryTestSuite) TestDeleteNotFound() {
	err := suite.repo.Delete(suite.ctx, uuid.New())

	suite.ErrorIs(err, apperrors.ErrPlayerNotFound)
}

func TestPlayerRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(PlayerRepositoryTestSuite))
}
