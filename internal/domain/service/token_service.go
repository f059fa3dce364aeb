package service

import (
	"time"

	"cliphub/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token type discriminators embedded in the claims, so an access token can
// never be replayed on the refresh path or vice versa.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims defines the custom claims for the JWT tokens. Access tokens carry
// the full identity claim set; refresh tokens carry only the user ID.
type Claims struct {
	UserID   uuid.UUID `json:"uid"`
	Email    string    `json:"email,omitempty"`
	Username string    `json:"username,omitempty"`
	FullName string    `json:"fullName,omitempty"`
	Type     string    `json:"type"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateTokenPair creates a new access and refresh token for a user.
	// The two tokens are signed with independent secrets and lifetimes.
	GenerateTokenPair(user *entity.User) (accessToken string, refreshToken string, err error)

	// ValidateAccessToken checks signature and expiry against the access
	// secret and returns the identity claims.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// ValidateRefreshToken checks signature and expiry against the refresh
	// secret and returns the identity claims.
	ValidateRefreshToken(tokenString string) (*Claims, error)

	// AccessTokenDuration returns the configured access token lifetime.
	AccessTokenDuration() time.Duration

	// RefreshTokenDuration returns the configured refresh token lifetime.
	RefreshTokenDuration() time.Duration
}
