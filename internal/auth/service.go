package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	apperrors "match-rating-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// RoleAdmin grants access to roster, match and player administration
	RoleAdmin = "admin"

	tokenIssuer     = "match-rating-backend"
	defaultTokenTTL = 12 * time.Hour
)

// AdminClaims represents the JWT claims carried by an admin token
type AdminClaims struct {
	Username             string `json:"username" example:"organizer"`
	Role                 string `json:"role" example:"admin"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// AuthService issues and validates admin tokens
type AuthService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewAuthService creates an auth service signing with the given secret.
// A zero ttl uses the default lifetime.
func NewAuthService(secret string, ttl time.Duration) (*AuthService, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, apperrors.NewConfigurationError("JWT secret is required")
	}
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &AuthService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// GenerateToken creates a signed admin token for username
func (s *AuthService) GenerateToken(username string) (string, error) {
	if strings.TrimSpace(username) == "" {
		return "", fmt.Errorf("username is required")
	}

	now := s.now()
	claims := &AdminClaims{
		Username: username,
		Role:     RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   username,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken parses a token and checks its signature, expiry and issuer
func (s *AuthService) ValidateToken(tokenString string) (*AdminClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.NewAuthenticationError("token has expired")
		}
		return nil, apperrors.NewAuthenticationError(fmt.Sprintf("invalid token: %v", err))
	}

	if claims, ok := token.Claims.(*AdminClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, apperrors.NewAuthenticationError("invalid token")
}
