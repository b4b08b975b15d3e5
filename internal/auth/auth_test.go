package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "match-rating-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAuthService(t *testing.T) {
	t.Run("missing secret", func(t *testing.T) {
		svc, err := NewAuthService("  ", time.Hour)
		assert.Nil(t, svc)
		assert.True(t, apperrors.IsConfiguration(err))
	})

	t.Run("default ttl", func(t *testing.T) {
		svc, err := NewAuthService("secret", 0)
		require.NoError(t, err)
		assert.Equal(t, defaultTokenTTL, svc.ttl)
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc, err := NewAuthService("test-signing-key", time.Hour)
	require.NoError(t, err)

	t.Run("round trip", func(t *testing.T) {
		token, err := svc.GenerateToken("organizer")
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "organizer", claims.Username)
		assert.Equal(t, RoleAdmin, claims.Role)
		assert.Equal(t, tokenIssuer, claims.Issuer)
	})

	t.Run("empty username", func(t *testing.T) {
		_, err := svc.GenerateToken("")
		assert.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other, err := NewAuthService("another-key", time.Hour)
		require.NoError(t, err)
		token, err := other.GenerateToken("organizer")
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.True(t, apperrors.IsAuthentication(err))
	})

	t.Run("expired", func(t *testing.T) {
		past, err := NewAuthService("test-signing-key", time.Minute)
		require.NoError(t, err)
		past.now = func() time.Time { return time.Now().Add(-time.Hour) }
		token, err := past.GenerateToken("organizer")
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "expired")
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-jwt")
		assert.True(t, apperrors.IsAuthentication(err))
	})
}

func TestRequireAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc, err := NewAuthService("test-signing-key", time.Hour)
	require.NoError(t, err)
	mw := NewAuthMiddleware(svc)

	newRouter := func() *gin.Engine {
		r := gin.New()
		r.POST("/admin", mw.RequireAdmin(), func(c *gin.Context) {
			name, _ := GetUsername(c)
			c.JSON(http.StatusOK, gin.H{"username": name})
		})
		return r
	}

	do := func(header string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/admin", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		newRouter().ServeHTTP(w, req)
		return w
	}

	t.Run("no header", func(t *testing.T) {
		w := do("")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("not a bearer token", func(t *testing.T) {
		w := do("Basic abc")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		w := do("Bearer nope")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("non admin role", func(t *testing.T) {
		claims := &AdminClaims{
			Username: "player",
			Role:     "viewer",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
				Issuer:    tokenIssuer,
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-signing-key"))
		require.NoError(t, err)

		w := do("Bearer " + token)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin", func(t *testing.T) {
		token, err := svc.GenerateToken("organizer")
		require.NoError(t, err)

		w := do("Bearer " + token)
		require.Equal(t, http.StatusOK, w.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "organizer", body["username"])
	})
}
