package usecase

import (
	"context"

	"cliphub/internal/domain/entity"

	"github.com/google/uuid"
)

// ChannelUsecase defines the public channel and watch history operations.
type ChannelUsecase interface {
	// GetChannelProfile assembles the public profile of a channel, including
	// subscriber counts and whether the viewer is subscribed. viewerID is
	// uuid.Nil for anonymous viewers.
	GetChannelProfile(ctx context.Context, username string, viewerID uuid.UUID) (*entity.ChannelProfile, error)

	// ToggleSubscription subscribes the viewer to the channel, or removes the
	// subscription when one already exists. Returns the resulting state.
	ToggleSubscription(ctx context.Context, channelUsername string, subscriberID uuid.UUID) (subscribed bool, err error)

	// RecordWatch appends a watch event for the user and bumps the video's
	// view counter.
	RecordWatch(ctx context.Context, userID, videoID uuid.UUID) error

	// WatchHistory returns the user's most recent watch events, newest first.
	WatchHistory(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.WatchHistoryEntry, error)
}
