package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the claims carried by access tokens issued by the identity service.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and validates access tokens.
// Credentials are verified by the identity service; this service only trusts signed tokens.
type TokenService interface {
	// GenerateAccessToken signs a token for the given subject and role.
	GenerateAccessToken(subject uuid.UUID, role string) (string, error)

	// ValidateToken checks signature and expiry and returns the claims.
	ValidateToken(tokenString string) (*Claims, error)

	// AccessTokenTTL returns the lifetime of issued tokens.
	AccessTokenTTL() time.Duration
}
