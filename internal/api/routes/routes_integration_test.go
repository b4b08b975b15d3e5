//go:build integration
// +build integration

package routes_test

import (
	"fmt"
	"net/http"
	"os"
	"testing"

	"match-rating-backend/internal/api/routes"
	"match-rating-backend/internal/auth"
	"match-rating-backend/internal/service"
	"match-rating-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

func TestMain(m *testing.M) {
	code := m.Run()
	testutils.CleanupSharedContainer()
	os.Exit(code)
}

// MatchFlowTestSuite drives a whole match through the router against Postgres
type MatchFlowTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	httpSuite     *testutils.HTTPTestSuite
	admin         map[string]string
}

func (suite *MatchFlowTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.httpSuite = &testutils.HTTPTestSuite{
		Router: routes.SetupRoutes(suite.baseTestSuite.DB, suite.baseTestSuite.Config),
	}

	authService, err := auth.NewAuthService(suite.baseTestSuite.Config.JWTSecret, 0)
	suite.Require().NoError(err)
	token, err := authService.GenerateToken("referee")
	suite.Require().NoError(err)
	suite.admin = testutils.BearerHeader(token)
}

func (suite *MatchFlowTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *MatchFlowTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *MatchFlowTestSuite) createPlayer(name string) uuid.UUID {
	recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodPost, "/api/v1/players", map[string]string{"name": name}, suite.admin)
	var player service.PlayerResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &player)
	return player.ID
}

func (suite *MatchFlowTestSuite) ballot(matchID, voter uuid.UUID, ratings map[uuid.UUID]int) int {
	body := map[string]interface{}{"voter_id": voter, "ratings": ratings}
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, fmt.Sprintf("/api/v1/matches/%s/ballots", matchID), body)
	return recorder.Code
}

func (suite *MatchFlowTestSuite) TestFullMatch() {
	t := suite.T()
	p1, p2, p3 := suite.createPlayer("Ana"), suite.createPlayer("Bruno"), suite.createPlayer("Carla")

	recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodPost, "/api/v1/matches", map[string]string{
		"name": "Friday 5-a-side",
		"date": "2025-03-14",
	}, suite.admin)
	var match service.MatchResponse
	testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &match)
	base := "/api/v1/matches/" + match.ID.String()

	for _, entry := range []struct {
		player uuid.UUID
		team   string
	}{{p1, "A"}, {p2, "a"}, {p3, "B"}} {
		recorder = suite.httpSuite.MakeRequestWithHeaders(http.MethodPost, base+"/roster", map[string]string{
			"player_id": entry.player.String(),
			"team":      entry.team,
		}, suite.admin)
		suite.Equal(http.StatusOK, recorder.Code, recorder.Body.String())
	}

	recorder = suite.httpSuite.MakeRequestWithHeaders(http.MethodPost, base+"/roster", map[string]string{
		"player_id": p1.String(),
		"team":      "B",
	}, suite.admin)
	testutils.AssertValidationCode(t, recorder, "ALREADY_ASSIGNED")

	suite.Equal(http.StatusCreated, suite.ballot(match.ID, p1, map[uuid.UUID]int{p2: 10, p3: 4}))
	suite.Equal(http.StatusConflict, suite.ballot(match.ID, p1, map[uuid.UUID]int{p2: 1, p3: 1}))
	suite.Equal(http.StatusBadRequest, suite.ballot(match.ID, p2, map[uuid.UUID]int{p1: 5}))
	suite.Equal(http.StatusCreated, suite.ballot(match.ID, p3, map[uuid.UUID]int{p1: 7, p2: 10}))

	recorder = suite.httpSuite.MakeRequestWithHeaders(http.MethodPut, base+"/winner", map[string]string{"team": "A"}, suite.admin)
	suite.Equal(http.StatusOK, recorder.Code)

	recorder = suite.httpSuite.MakeRequest(http.MethodGet, base+"/results", nil)
	var results service.MatchResultsResponse
	testutils.AssertJSONResponse(t, recorder, http.StatusOK, &results)

	byName := make(map[string]service.PlayerResult, len(results.Players))
	for _, p := range results.Players {
		byName[p.Name] = p
	}
	suite.Equal("7.0", byName["Ana"].AverageDisplay)
	suite.Equal("10.0", byName["Bruno"].AverageDisplay)
	suite.Equal("4.0", byName["Carla"].AverageDisplay)
	suite.Require().NotNil(results.MVP)
	suite.Equal(p2, results.MVP.PlayerID)
	suite.Require().NotNil(results.Winner)
	suite.Equal(2, results.VoterCount)
}

func (suite *MatchFlowTestSuite) TestAdminRoutesRequireToken() {
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/players", map[string]string{"name": "Ana"})

	suite.Equal(http.StatusUnauthorized, recorder.Code)
}

func (suite *MatchFlowTestSuite) TestDeletedPlayerShowsUnknown() {
	p1, p2 := suite.createPlayer("Ana"), suite.createPlayer("Bruno")

	recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodPost, "/api/v1/matches", map[string]string{
		"name": "Sunday kickabout",
		"date": "2025-03-16",
	}, suite.admin)
	var match service.MatchResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &match)
	base := "/api/v1/matches/" + match.ID.String()

	for _, id := range []uuid.UUID{p1, p2} {
		recorder = suite.httpSuite.MakeRequestWithHeaders(http.MethodPost, base+"/roster", map[string]string{
			"player_id": id.String(),
			"team":      "A",
		}, suite.admin)
		suite.Require().Equal(http.StatusOK, recorder.Code)
	}

	recorder = suite.httpSuite.MakeRequestWithHeaders(http.MethodDelete, "/api/v1/players/"+p2.String(), nil, suite.admin)
	suite.Require().Equal(http.StatusNoContent, recorder.Code)

	recorder = suite.httpSuite.MakeRequest(http.MethodGet, base, nil)
	var got service.MatchResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &got)
	suite.Require().Len(got.TeamA, 2)
	suite.Equal("Unknown", got.TeamA[1].Name)
}

func (suite *MatchFlowTestSuite) TestBallotAfterRosteredPlayerDeleted() {
	p1, p2, p3 := suite.createPlayer("Ana"), suite.createPlayer("Bruno"), suite.createPlayer("Carla")

	recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodPost, "/api/v1/matches", map[string]string{
		"name": "Tuesday futsal",
		"date": "2025-03-18",
	}, suite.admin)
	var match service.MatchResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &match)
	base := "/api/v1/matches/" + match.ID.String()

	for _, entry := range []struct {
		player uuid.UUID
		team   string
	}{{p1, "A"}, {p2, "A"}, {p3, "B"}} {
		recorder = suite.httpSuite.MakeRequestWithHeaders(http.MethodPost, base+"/roster", map[string]string{
			"player_id": entry.player.String(),
			"team":      entry.team,
		}, suite.admin)
		suite.Require().Equal(http.StatusOK, recorder.Code)
	}

	recorder = suite.httpSuite.MakeRequestWithHeaders(http.MethodDelete, "/api/v1/players/"+p3.String(), nil, suite.admin)
	suite.Require().Equal(http.StatusNoContent, recorder.Code)

	// the deleted player is neither required nor stored, even when rated
	suite.Equal(http.StatusCreated, suite.ballot(match.ID, p1, map[uuid.UUID]int{p2: 8}))
	suite.Equal(http.StatusCreated, suite.ballot(match.ID, p2, map[uuid.UUID]int{p1: 6, p3: 9}))
	suite.Equal(http.StatusBadRequest, suite.ballot(match.ID, p3, map[uuid.UUID]int{p1: 5, p2: 5}))

	recorder = suite.httpSuite.MakeRequest(http.MethodGet, base+"/results", nil)
	var results service.MatchResultsResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &results)
	suite.Equal(2, results.VoterCount)
	suite.Require().NotNil(results.MVP)
	suite.Equal(p2, results.MVP.PlayerID)
}

func TestMatchFlowTestSuite(t *testing.T) {
	suite.Run(t, new(MatchFlowTestSuite))
}
