package handlers

import (
	"net/http"

	"match-rating-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PlayerHandler handles HTTP requests for player operations
type PlayerHandler struct {
	playerService service.PlayerServiceInterface
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(playerService service.PlayerServiceInterface) *PlayerHandler {
	return &PlayerHandler{
		playerService: playerService,
	}
}

// CreatePlayer handles POST /players
// @Summary Create a new player
// @Description Register a player who can be placed on rosters and vote
// @Tags players
// @Accept json
// @Produce json
// @Param player body service.CreatePlayerRequest true "Player data"
// @Success 201 {object} service.PlayerResponse "Successfully created player"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Missing or invalid admin token"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /players [post]
func (h *PlayerHandler) CreatePlayer(c *gin.Context) {
	var req service.CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	player, err := h.playerService.CreatePlayer(c, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, player)
}

// ListPlayers handles GET /players
// @Summary List players
// @Description Get all players ordered by name
// @Tags players
// @Produce json
// @Success 200 {array} service.PlayerResponse "Successfully retrieved players"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /players [get]
func (h *PlayerHandler) ListPlayers(c *gin.Context) {
	players, err := h.playerService.ListPlayers(c)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, players)
}

// DeletePlayer handles DELETE /players/:id
// @Summary Delete a player
// @Description Delete a player and every vote they cast or received. Rosters that still list the player show them as Unknown.
// @Tags players
// @Param id path string true "Player ID (UUID)"
// @Success 204 "Successfully deleted player"
// @Failure 400 {object} ErrorResponse "Invalid player ID"
// @Failure 401 {object} ErrorResponse "Missing or invalid admin token"
// @Failure 404 {object} ErrorResponse "Player not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /players/{id} [delete]
func (h *PlayerHandler) DeletePlayer(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.playerService.DeletePlayer(c, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
