package usecase

import (
	"context"

	"cliphub/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateAccountInput carries a partial account update. At least one field
// must be non-empty.
type UpdateAccountInput struct {
	FullName string
	Email    string
}

// ProfileUsecase defines the account profile operations.
type ProfileUsecase interface {
	// UpdateAccountDetails updates the textual profile fields.
	UpdateAccountDetails(ctx context.Context, userID uuid.UUID, input *UpdateAccountInput) (*entity.User, error)

	// UpdateAvatar replaces the avatar with a freshly uploaded image.
	// localPath is a temp file buffered by the delivery layer.
	UpdateAvatar(ctx context.Context, userID uuid.UUID, localPath string) (*entity.User, error)

	// UpdateCoverImage replaces the cover image.
	UpdateCoverImage(ctx context.Context, userID uuid.UUID, localPath string) (*entity.User, error)
}
