package handlers

import (
	"net/http"

	"match-rating-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// BallotHandler handles ballot submission
type BallotHandler struct {
	votingService service.VotingServiceInterface
}

// NewBallotHandler creates a new ballot handler
func NewBallotHandler(votingService service.VotingServiceInterface) *BallotHandler {
	return &BallotHandler{
		votingService: votingService,
	}
}

// SubmitBallot handles POST /matches/:id/ballots
// @Summary Submit a ballot
// @Description A voter scores every other player of the match from 1 to 10. The ballot is stored whole or not at all, and a voter may submit only once per match.
// @Tags ballots
// @Accept json
// @Produce json
// @Param id path string true "Match ID (UUID)"
// @Param ballot body service.SubmitBallotRequest true "Voter and ratings keyed by player ID"
// @Success 201 {object} service.BallotResult "Ballot recorded"
// @Failure 400 {object} ErrorResponse "SELECTION_REQUIRED, INCOMPLETE, OUT_OF_RANGE or VALIDATION"
// @Failure 404 {object} ErrorResponse "Match not found"
// @Failure 409 {object} ErrorResponse "Voter already submitted a ballot for this match"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /matches/{id}/ballots [post]
func (h *BallotHandler) SubmitBallot(c *gin.Context) {
	matchID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.SubmitBallotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.votingService.SubmitBallot(c, matchID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}
