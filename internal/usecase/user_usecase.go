// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"cliphub/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
// AvatarPath and CoverImagePath are local temp files buffered by the
// delivery layer from the multipart request; the use case ships them to the
// media host. Avatar is required, the cover image is optional (empty path).
type RegisterInput struct {
	FullName       string
	Email          string
	Username       string
	Password       string
	AvatarPath     string
	CoverImagePath string
}

// LoginInput defines the data required to log in. Exactly one of Username
// or Email may be empty; providing neither is a validation failure.
type LoginInput struct {
	Username string
	Email    string
	Password string
}

// ChangePasswordInput carries an authenticated password change.
type ChangePasswordInput struct {
	OldPassword string
	NewPassword string
}

// --- Output DTOs ---

// AuthOutput returns the user and the freshly issued token pair after a
// successful login or refresh.
type AuthOutput struct {
	User         *entity.User
	AccessToken  string
	RefreshToken string
}

// UserUsecase defines the session and credential operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register creates a new account: validates, checks uniqueness, uploads
	// the avatar (and optional cover image), hashes the password, persists.
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)

	// Login verifies credentials and issues a token pair, persisting the
	// refresh token as the account's current session material.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// Logout clears the server-side refresh token, revoking the session.
	Logout(ctx context.Context, userID uuid.UUID) error

	// Refresh validates a presented refresh token against both its signature
	// and the stored copy, then rotates the pair.
	Refresh(ctx context.Context, presentedToken string) (*AuthOutput, error)

	// ChangePassword verifies the old password and persists a new hash.
	// Outstanding tokens stay valid until natural expiry.
	ChangePassword(ctx context.Context, userID uuid.UUID, input *ChangePasswordInput) error

	// GetByID loads a single user.
	GetByID(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
