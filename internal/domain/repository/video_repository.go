package repository

import (
	"context"
	"errors"

	"cliphub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrVideoNotFound is returned when a referenced video does not exist.
var ErrVideoNotFound = errors.New("video not found")

// VideoRepository covers the video reads and the watch-history writes the
// user-facing endpoints need. Video publishing itself is a separate concern.
type VideoRepository interface {
	// FindByID retrieves a single published video.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Video, error)

	// RecordWatch appends a watch event for the user and bumps the view count.
	RecordWatch(ctx context.Context, userID, videoID uuid.UUID) error

	// WatchHistory lists the user's watch events newest-first, joined with
	// the videos they refer to.
	WatchHistory(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.WatchHistoryEntry, error)
}
