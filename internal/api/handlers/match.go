package handlers

import (
	"net/http"

	"match-rating-backend/internal/database/models"
	apperrors "match-rating-backend/internal/errors"
	"match-rating-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MatchHandler handles HTTP requests for matches, their rosters, winners and results
type MatchHandler struct {
	matchService   service.MatchServiceInterface
	rosterService  service.RosterServiceInterface
	resultsService service.ResultsServiceInterface
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(
	matchService service.MatchServiceInterface,
	rosterService service.RosterServiceInterface,
	resultsService service.ResultsServiceInterface,
) *MatchHandler {
	return &MatchHandler{
		matchService:   matchService,
		rosterService:  rosterService,
		resultsService: resultsService,
	}
}

// CreateMatch handles POST /matches
// @Summary Create a new match
// @Description Create a match with empty rosters and no winner
// @Tags matches
// @Accept json
// @Produce json
// @Param match body service.CreateMatchRequest true "Match data"
// @Success 201 {object} service.MatchResponse "Successfully created match"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Missing or invalid admin token"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /matches [post]
func (h *MatchHandler) CreateMatch(c *gin.Context) {
	var req service.CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	match, err := h.matchService.CreateMatch(c, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, match)
}

// ListMatches handles GET /matches
// @Summary List matches
// @Description Get all matches, most recent first, with rosters resolved to player names
// @Tags matches
// @Produce json
// @Success 200 {array} service.MatchResponse "Successfully retrieved matches"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /matches [get]
func (h *MatchHandler) ListMatches(c *gin.Context) {
	matches, err := h.matchService.ListMatches(c)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, matches)
}

// GetMatch handles GET /matches/:id
// @Summary Get match by ID
// @Description Get a match with its roster and winner
// @Tags matches
// @Produce json
// @Param id path string true "Match ID (UUID)"
// @Success 200 {object} service.MatchResponse "Successfully retrieved match"
// @Failure 400 {object} ErrorResponse "Invalid match ID"
// @Failure 404 {object} ErrorResponse "Match not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /matches/{id} [get]
func (h *MatchHandler) GetMatch(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	match, err := h.matchService.GetMatch(c, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, match)
}

// DeleteMatch handles DELETE /matches/:id
// @Summary Delete a match
// @Description Delete a match together with all of its votes
// @Tags matches
// @Param id path string true "Match ID (UUID)"
// @Success 204 "Successfully deleted match"
// @Failure 400 {object} ErrorResponse "Invalid match ID"
// @Failure 401 {object} ErrorResponse "Missing or invalid admin token"
// @Failure 404 {object} ErrorResponse "Match not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /matches/{id} [delete]
func (h *MatchHandler) DeleteMatch(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.matchService.DeleteMatch(c, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// AddToTeam handles POST /matches/:id/roster
// @Summary Add a player to a team
// @Description Place a player on team A or B. A player already on either team is rejected with ALREADY_ASSIGNED.
// @Tags roster
// @Accept json
// @Produce json
// @Param id path string true "Match ID (UUID)"
// @Param entry body service.AddToTeamRequest true "Player and team"
// @Success 200 {object} service.MatchResponse "Updated match"
// @Failure 400 {object} ErrorResponse "Invalid request or player already assigned"
// @Failure 401 {object} ErrorResponse "Missing or invalid admin token"
// @Failure 404 {object} ErrorResponse "Match or player not found"
// @Failure 409 {object} ErrorResponse "Roster was modified concurrently"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /matches/{id}/roster [post]
func (h *MatchHandler) AddToTeam(c *gin.Context) {
	matchID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.AddToTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	team, valid := models.ParseTeam(string(req.Team))
	if !valid {
		respondError(c, apperrors.ErrInvalidTeam)
		return
	}

	match, err := h.rosterService.AddToTeam(c, matchID, req.PlayerID, team)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, match)
}

// RemoveFromTeam handles DELETE /matches/:id/roster/:playerId
// @Summary Remove a player from a team
// @Description Take a player off a team. Removing a player who is not on that team changes nothing.
// @Tags roster
// @Produce json
// @Param id path string true "Match ID (UUID)"
// @Param playerId path string true "Player ID (UUID)"
// @Param team query string true "Team (A or B)"
// @Success 200 {object} service.MatchResponse "Updated match"
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 401 {object} ErrorResponse "Missing or invalid admin token"
// @Failure 404 {object} ErrorResponse "Match not found"
// @Failure 409 {object} ErrorResponse "Roster was modified concurrently"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /matches/{id}/roster/{playerId} [delete]
func (h *MatchHandler) RemoveFromTeam(c *gin.Context) {
	matchID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	playerID, ok := parseUUIDParam(c, "playerId")
	if !ok {
		return
	}
	team, valid := models.ParseTeam(c.Query("team"))
	if !valid {
		respondError(c, apperrors.ErrInvalidTeam)
		return
	}

	match, err := h.rosterService.RemoveFromTeam(c, matchID, playerID, team)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, match)
}

// SetWinner handles PUT /matches/:id/winner
// @Summary Record the winning team
// @Description Overwrite the winner of a match. Setting the same team again is accepted.
// @Tags matches
// @Accept json
// @Produce json
// @Param id path string true "Match ID (UUID)"
// @Param winner body service.SetWinnerRequest true "Winning team"
// @Success 200 {object} service.MatchResponse "Updated match"
// @Failure 400 {object} ErrorResponse "Invalid team"
// @Failure 401 {object} ErrorResponse "Missing or invalid admin token"
// @Failure 404 {object} ErrorResponse "Match not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /matches/{id}/winner [put]
func (h *MatchHandler) SetWinner(c *gin.Context) {
	matchID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.SetWinnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	team, valid := models.ParseTeam(string(req.Team))
	if !valid {
		respondError(c, apperrors.ErrInvalidTeam)
		return
	}

	match, err := h.matchService.SetWinner(c, matchID, team)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, match)
}

// ClearWinner handles DELETE /matches/:id/winner
// @Summary Clear the winning team
// @Tags matches
// @Produce json
// @Param id path string true "Match ID (UUID)"
// @Success 200 {object} service.MatchResponse "Updated match"
// @Failure 400 {object} ErrorResponse "Invalid match ID"
// @Failure 401 {object} ErrorResponse "Missing or invalid admin token"
// @Failure 404 {object} ErrorResponse "Match not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /matches/{id}/winner [delete]
func (h *MatchHandler) ClearWinner(c *gin.Context) {
	matchID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	match, err := h.matchService.ClearWinner(c, matchID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, match)
}

// GetMatchResults handles GET /matches/:id/results
// @Summary Get match results
// @Description Per-player average scores, vote counts and the MVP. Players without votes show N/A.
// @Tags results
// @Produce json
// @Param id path string true "Match ID (UUID)"
// @Success 200 {object} service.MatchResultsResponse "Aggregated results"
// @Failure 400 {object} ErrorResponse "Invalid match ID"
// @Failure 404 {object} ErrorResponse "Match not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /matches/{id}/results [get]
func (h *MatchHandler) GetMatchResults(c *gin.Context) {
	matchID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	results, err := h.resultsService.GetMatchResults(c, matchID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, results)
}
