package auth

import (
	"testing"
	"time"

	"cliphub/config"
	domainerrors "cliphub/internal/domain/errors"
	"cliphub/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cliphub/internal/domain/entity"

	"github.com/google/uuid"
)

func newTestJWTConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"
	cfg.Token.AccessTTL = 15 * time.Minute
	cfg.Token.RefreshTTL = 7 * 24 * time.Hour

	return cfg
}

func newTokenUser() *entity.User {
	return &entity.User{
		ID:       uuid.New(),
		Username: "testuser",
		Email:    "test@example.com",
		FullName: "Test User",
	}
}

func TestJWTService_GenerateAndValidateTokenPair(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	user := newTokenUser()

	accessToken, refreshToken, err := jwtService.GenerateTokenPair(user)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)
	assert.NotEqual(t, accessToken, refreshToken)

	// Access token carries the full identity claim set.
	accessClaims, err := jwtService.ValidateAccessToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, accessClaims.UserID)
	assert.Equal(t, user.Email, accessClaims.Email)
	assert.Equal(t, user.Username, accessClaims.Username)
	assert.Equal(t, user.FullName, accessClaims.FullName)
	assert.Equal(t, service.TokenTypeAccess, accessClaims.Type)

	// Refresh token carries only the user ID.
	refreshClaims, err := jwtService.ValidateRefreshToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, refreshClaims.UserID)
	assert.Empty(t, refreshClaims.Email)
	assert.Equal(t, service.TokenTypeRefresh, refreshClaims.Type)
}

func TestJWTService_TokenTypeConfusion(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	accessToken, refreshToken, err := jwtService.GenerateTokenPair(newTokenUser())
	require.NoError(t, err)

	// An access token must never pass refresh validation, and vice versa.
	_, err = jwtService.ValidateRefreshToken(accessToken)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)

	_, err = jwtService.ValidateAccessToken(refreshToken)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestJWTService_WrongSecret(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	otherCfg := newTestJWTConfig()
	otherCfg.SecretKey.Access = "a_completely_different_access_secret"
	otherCfg.SecretKey.Refresh = "a_completely_different_refresh_secret"
	otherService, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	accessToken, _, err := jwtService.GenerateTokenPair(newTokenUser())
	require.NoError(t, err)

	_, err = otherService.ValidateAccessToken(accessToken)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	cfg := newTestJWTConfig()
	cfg.Token.AccessTTL = -time.Minute

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	accessToken, _, err := jwtService.GenerateTokenPair(newTokenUser())
	require.NoError(t, err)

	_, err = jwtService.ValidateAccessToken(accessToken)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestJWTService_MalformedToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	_, err = jwtService.ValidateAccessToken("not.a.token")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)

	_, err = jwtService.ValidateRefreshToken("")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestJWTService_MissingSecrets(t *testing.T) {
	cfg := &config.Config{}

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}

func TestJWTService_Durations(t *testing.T) {
	cfg := newTestJWTConfig()

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	assert.Equal(t, cfg.Token.AccessTTL, jwtService.AccessTokenDuration())
	assert.Equal(t, cfg.Token.RefreshTTL, jwtService.RefreshTokenDuration())
}
