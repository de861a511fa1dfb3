package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token types carried in the "type" claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	UserID uuid.UUID `json:"uid"`
	Type   string    `json:"type"`
	jwt.RegisteredClaims
}

// TokenPair is the result of a successful login.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    time.Duration
}

// TokenService issues and validates signed session tokens.
type TokenService interface {
	// GenerateTokens creates an access token and a refresh token for userID.
	GenerateTokens(userID uuid.UUID) (TokenPair, error)

	// ValidateToken parses tokenString and checks that it is of tokenType.
	ValidateToken(tokenString, tokenType string) (*Claims, error)
}
