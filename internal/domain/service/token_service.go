package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims for the session tokens.
type Claims struct {
	UserID uuid.UUID `json:"userId"`
	jwt.RegisteredClaims
}

// TokenService signs and validates bearer credentials.
type TokenService interface {
	// GenerateToken creates a signed credential for userID and returns its expiry.
	GenerateToken(userID uuid.UUID) (token string, expiresAt time.Time, err error)

	// ValidateToken checks the signature and validity window of a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
