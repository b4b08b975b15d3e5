package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	apperrors "match-rating-backend/internal/errors"
	"match-rating-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error   string   `json:"error" example:"error message"`
	Code    string   `json:"code,omitempty" example:"INCOMPLETE"`
	Details []string `json:"details,omitempty"`
}

// respondError maps a service error onto a status code and error body
func respondError(c *gin.Context, err error) {
	var verr *apperrors.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   verr.Error(),
			Code:    string(verr.Code),
			Details: verr.Details,
		})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case apperrors.IsAlreadyExists(err), apperrors.IsConflict(err):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	default:
		logger.WithContext(c).WithError(err).Error("request failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal server error",
			Details: []string{err.Error()},
		})
	}
}

// respondBindError reports a request body that could not be decoded
func respondBindError(c *gin.Context, err error) {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && strings.HasPrefix(typeErr.Field, "ratings") && strings.HasPrefix(typeErr.Value, "number") {
		// a fractional score never decodes into an int
		respondError(c, apperrors.NewOutOfRangeError([]string{strings.TrimPrefix(strings.TrimPrefix(typeErr.Field, "ratings"), ".")}))
		return
	}
	respondError(c, apperrors.NewValidationError("body", err.Error()))
}

// parseUUIDParam reads a path parameter as a UUID, writing a 400 when it is not one
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		respondError(c, apperrors.NewValidationError(name, "must be a valid UUID"))
		return uuid.Nil, false
	}
	return id, true
}
