//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"

	"match-rating-backend/internal/database/models"
	apperrors "match-rating-backend/internal/errors"
	"match-rating-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// VoteRepositoryTestSuite tests the VoteRepository
type VoteRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *VoteRepository
	votes         *testutils.VoteFactory
	ctx           context.Context

	a, b, c *models.Player
	match   *models.Match
}

// SetupSuite runs before all tests in the suite
func (suite *VoteRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewVoteRepository(suite.baseTestSuite.DB)
	suite.votes = testutils.NewVoteFactory()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *VoteRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest seeds three players on one match
func (suite *VoteRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	players := testutils.NewPlayerFactory()
	playerRepo := NewPlayerRepository(suite.baseTestSuite.DB)
	suite.a, suite.b, suite.c = players.Create(), players.Create(), players.Create()
	for _, p := range []*models.Player{suite.a, suite.b, suite.c} {
		suite.Require().NoError(playerRepo.Create(suite.ctx, p))
	}

	suite.match = testutils.NewMatchFactory().WithRoster(
		[]*models.Player{suite.a, suite.b},
		[]*models.Player{suite.c},
	)
	suite.Require().NoError(NewMatchRepository(suite.baseTestSuite.DB).Create(suite.ctx, suite.match))
}

// TearDownTest runs after each test
func (suite *VoteRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *VoteRepositoryTestSuite) TestCreateBatchAndReadInInsertionOrder() {
	m := suite.match.ID
	suite.Require().NoError(suite.repo.CreateBatch(suite.ctx, []models.Vote{
		suite.votes.Create(m, suite.a.ID, suite.c.ID, 4),
		suite.votes.Create(m, suite.a.ID, suite.b.ID, 9),
	}))
	suite.Require().NoError(suite.repo.CreateBatch(suite.ctx, []models.Vote{
		suite.votes.Create(m, suite.b.ID, suite.a.ID, 6),
		suite.votes.Create(m, suite.b.ID, suite.c.ID, 5),
	}))

	votes, err := suite.repo.GetByMatchID(suite.ctx, m)

	suite.Require().NoError(err)
	suite.Require().Len(votes, 4)
	suite.Equal(suite.c.ID, votes[0].VoteeID)
	suite.Equal(suite.b.ID, votes[1].VoteeID)
	suite.Equal(suite.a.ID, votes[2].VoteeID)
	suite.Equal(suite.c.ID, votes[3].VoteeID)
	for i := 1; i < len(votes); i++ {
		suite.Less(votes[i-1].Seq, votes[i].Seq)
	}
}

func (suite *VoteRepositoryTestSuite) TestCountByMatchAndVoter() {
	m := suite.match.ID
	suite.Require().NoError(suite.repo.CreateBatch(suite.ctx, []models.Vote{
		suite.votes.Create(m, suite.a.ID, suite.b.ID, 7),
		suite.votes.Create(m, suite.a.ID, suite.c.ID, 8),
	}))

	count, err := suite.repo.CountByMatchAndVoter(suite.ctx, m, suite.a.ID)
	suite.NoError(err)
	suite.Equal(int64(2), count)

	count, err = suite.repo.CountByMatchAndVoter(suite.ctx, m, suite.b.ID)
	suite.NoError(err)
	suite.Zero(count)
}

func (suite *VoteRepositoryTestSuite) TestCreateBatchDuplicateRollsBack() {
	m := suite.match.ID
	suite.Require().NoError(suite.repo.CreateBatch(suite.ctx, []models.Vote{
		suite.votes.Create(m, suite.a.ID, suite.b.ID, 7),
	}))

	err := suite.repo.CreateBatch(suite.ctx, []models.Vote{
		suite.votes.Create(m, suite.a.ID, suite.c.ID, 8),
		suite.votes.Create(m, suite.a.ID, suite.b.ID, 3),
	})

	suite.ErrorIs(err, apperrors.ErrBallotAlreadySubmitted)
	count, err := suite.repo.CountByMatchAndVoter(suite.ctx, m, suite.a.ID)
	suite.NoError(err)
	suite.Equal(int64(1), count)
}

func (suite *VoteRepositoryTestSuite) TestCreateBatchRejectsOutOfRangeAtomically() {
	m := suite.match.ID

	err := suite.repo.CreateBatch(suite.ctx, []models.Vote{
		suite.votes.Create(m, suite.a.ID, suite.b.ID, 7),
		suite.votes.Create(m, suite.a.ID, suite.c.ID, 11),
	})

	suite.Error(err)
	count, err := suite.repo.CountByMatchAndVoter(suite.ctx, m, suite.a.ID)
	suite.NoError(err)
	suite.Zero(count)
}

func (suite *VoteRepositoryTestSuite) TestCreateBatchRejectsSelfVote() {
	err := suite.repo.CreateBatch(suite.ctx, []models.Vote{
		suite.votes.Create(suite.match.ID, suite.a.ID, suite.a.ID, 10),
	})

	suite.Error(err)
}

func (suite *VoteRepositoryTestSuite) TestCreateBatchEmpty() {
	suite.NoError(suite.repo.CreateBatch(suite.ctx, nil))
}

func TestVoteRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(VoteRepositoryTestSuite))
}
