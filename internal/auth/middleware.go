package auth

import (
	"net/http"
	"strings"

	apperrors "match-rating-backend/internal/errors"
	"match-rating-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware guards administrative endpoints
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAdmin validates the bearer token and requires the admin role
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrMissingToken.Error()})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			return
		}

		claims, err := m.service.ValidateToken(tokenString)
		if err != nil {
			logger.WithContext(c).WithError(err).Warn("rejected admin token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
			return
		}

		if claims.Role != RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": apperrors.ErrAdminOnly.Error()})
			return
		}

		c.Set(logger.UsernameKey, claims.Username)
		c.Set("auth_claims", claims)

		c.Next()
	}
}

// GetUsername is a helper function to extract the username from context
func GetUsername(c *gin.Context) (string, bool) {
	username, exists := c.Get(logger.UsernameKey)
	if !exists {
		return "", false
	}

	name, ok := username.(string)
	return name, ok
}
