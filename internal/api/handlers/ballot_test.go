package handlers_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"match-rating-backend/internal/api/handlers"
	apperrors "match-rating-backend/internal/errors"
	"match-rating-backend/internal/mocks"
	"match-rating-backend/internal/service"
	"match-rating-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// BallotHandlerTestSuite defines the test suite for BallotHandler
type BallotHandlerTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockVoting *mocks.MockVotingServiceInterface
	handler    *handlers.BallotHandler
	httpSuite  *testutils.HTTPTestSuite

	matchID, voterID, a, b uuid.UUID
	url                    string
}

// SetupTest sets up the test suite
func (suite *BallotHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockVoting = mocks.NewMockVotingServiceInterface(suite.ctrl)
	suite.handler = handlers.NewBallotHandler(suite.mockVoting)

	suite.httpSuite = testutils.SetupHTTPTest()
	suite.httpSuite.Router.POST("/api/v1/matches/:id/ballots", suite.handler.SubmitBallot)

	suite.matchID, suite.voterID = uuid.New(), uuid.New()
	suite.a, suite.b = uuid.New(), uuid.New()
	suite.url = "/api/v1/matches/" + suite.matchID.String() + "/ballots"
}

// TearDownTest cleans up after each test
func (suite *BallotHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *BallotHandlerTestSuite) TestSubmitBallot_Success() {
	suite.mockVoting.EXPECT().
		SubmitBallot(gomock.Any(), suite.matchID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, req *service.SubmitBallotRequest) (*service.BallotResult, error) {
			require.NotNil(suite.T(), req.VoterID)
			assert.Equal(suite.T(), suite.voterID, *req.VoterID)
			require.Len(suite.T(), req.Ratings, 2)
			assert.Equal(suite.T(), 4, *req.Ratings[suite.a])
			assert.Equal(suite.T(), 10, *req.Ratings[suite.b])
			return &service.BallotResult{VotesRecorded: 2}, nil
		})

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.url, map[string]interface{}{
		"voter_id": suite.voterID,
		"ratings": map[string]int{
			suite.a.String(): 4,
			suite.b.String(): 10,
		},
	})

	var resp service.BallotResult
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &resp)
	assert.Equal(suite.T(), 2, resp.VotesRecorded)
}

func (suite *BallotHandlerTestSuite) TestSubmitBallot_FractionalScore() {
	body := fmt.Sprintf(`{"voter_id":%q,"ratings":{%q:7.5,%q:3}}`, suite.voterID, suite.a, suite.b)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.url, testutils.RawJSON(body))

	testutils.AssertValidationCode(suite.T(), recorder, "OUT_OF_RANGE")
}

func (suite *BallotHandlerTestSuite) TestSubmitBallot_ServiceErrors() {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"no voter", apperrors.ErrSelectionRequired, http.StatusBadRequest, "SELECTION_REQUIRED"},
		{"incomplete", apperrors.NewIncompleteBallotError([]string{"x"}), http.StatusBadRequest, "INCOMPLETE"},
		{"out of range", apperrors.NewOutOfRangeError([]string{"x"}), http.StatusBadRequest, "OUT_OF_RANGE"},
		{"duplicate", apperrors.ErrBallotAlreadySubmitted, http.StatusConflict, ""},
		{"no match", apperrors.ErrMatchNotFound, http.StatusNotFound, ""},
	}

	for _, tc := range cases {
		suite.T().Run(tc.name, func(t *testing.T) {
			suite.mockVoting.EXPECT().SubmitBallot(gomock.Any(), suite.matchID, gomock.Any()).Return(nil, tc.err)

			recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.url, map[string]interface{}{
				"voter_id": suite.voterID,
				"ratings":  map[string]int{suite.a.String(): 5},
			})

			if tc.code != "" {
				body := testutils.AssertValidationCode(t, recorder, tc.code)
				if tc.code == "INCOMPLETE" {
					assert.Equal(t, []interface{}{"x"}, body["details"])
				}
				return
			}
			assert.Equal(t, tc.status, recorder.Code)
		})
	}
}

func (suite *BallotHandlerTestSuite) TestSubmitBallot_BadMatchID() {
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/matches/nope/ballots", map[string]interface{}{})

	testutils.AssertValidationCode(suite.T(), recorder, "VALIDATION")
}

// TestBallotHandlerTestSuite runs the test suite
func TestBallotHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(BallotHandlerTestSuite))
}
