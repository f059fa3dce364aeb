// Package middleware contains the HTTP middleware for the delivery layer.
package middleware

import (
	"strings"

	domainerrors "cliphub/internal/domain/errors"
	"cliphub/internal/domain/repository"
	"cliphub/internal/domain/service"

	"github.com/pkg/errors"

	"github.com/labstack/echo/v4"
)

// Context keys set by Authenticate for downstream handlers.
const (
	ContextKeyUser   = "user"
	ContextKeyUserID = "userID"
)

const (
	accessTokenCookie = "accessToken"
	bearerPrefix      = "Bearer "
)

// AuthMiddleware validates access tokens and resolves the current user.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, userRepo: userRepo}
}

// Authenticate extracts the access token from the accessToken cookie or the
// Authorization header, validates it, and loads the account it names. The
// full user entity and its ID are placed on the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := m.extractToken(c)
		if tokenString == "" {
			return errors.Wrap(domainerrors.ErrUnauthorized, "missing access token")
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return errors.Wrap(domainerrors.ErrInvalidToken, "access token validation failed")
		}

		currentUser, err := m.userRepo.FindByID(c.Request().Context(), claims.UserID)
		if err != nil {
			// A valid token for a deleted account is still an auth failure.
			return errors.Wrap(domainerrors.ErrInvalidToken, "token subject no longer exists")
		}

		currentUser.PasswordHash = ""
		currentUser.RefreshToken = ""

		c.Set(ContextKeyUser, currentUser)
		c.Set(ContextKeyUserID, currentUser.ID)

		return next(c)
	}
}

// extractToken prefers the cookie; browser clients never touch the header.
func (m *AuthMiddleware) extractToken(c echo.Context) string {
	if cookie, err := c.Cookie(accessTokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return ""
	}

	tokenString := strings.TrimPrefix(authHeader, bearerPrefix)
	if tokenString == authHeader {
		// Header present but not a Bearer token.
		return ""
	}

	return tokenString
}
