// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"cliphub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
//
// Password and refresh-token writes are deliberately separate single-column
// methods: the callers hash before persisting, and a profile update can never
// touch (or re-hash) the credential columns.
type UserRepository interface {
	// Create persists a new user. The password field of the entity must
	// already be hashed. Duplicate username or email surfaces as a conflict.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsernameOrEmail retrieves the user matching either handle.
	// Both arguments are matched in their normalized (lowercased) form.
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*entity.User, error)

	// FindByUsername retrieves a single user by their username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// UpdateProfile writes the mutable profile columns (full name, email,
	// avatar, cover image) of an existing user. Credential columns are
	// never touched by this method.
	UpdateProfile(ctx context.Context, user *entity.User) error

	// UpdatePassword overwrites only the password hash column.
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error

	// UpdateRefreshToken overwrites only the refresh token column.
	// An empty token revokes the session.
	UpdateRefreshToken(ctx context.Context, id uuid.UUID, token string) error
}
