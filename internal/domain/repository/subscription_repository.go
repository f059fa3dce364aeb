package repository

import (
	"context"
	"errors"

	"cliphub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSubscriptionNotFound is returned when no subscription row matches.
var ErrSubscriptionNotFound = errors.New("subscription not found")

// SubscriptionRepository covers the subscription edges used by the channel
// aggregation: counts on either side of the (channel, subscriber) pair plus
// membership of one identity in a channel's subscriber set.
type SubscriptionRepository interface {
	// Create persists a subscription edge. Creating an existing edge is a conflict.
	Create(ctx context.Context, sub *entity.Subscription) error

	// Delete removes the edge between a channel and a subscriber.
	Delete(ctx context.Context, channelID, subscriberID uuid.UUID) error

	// CountSubscribers counts accounts subscribed to the given channel.
	CountSubscribers(ctx context.Context, channelID uuid.UUID) (int64, error)

	// CountSubscribedTo counts channels the given account subscribes to.
	CountSubscribedTo(ctx context.Context, subscriberID uuid.UUID) (int64, error)

	// IsSubscribed reports whether subscriberID follows channelID.
	IsSubscribed(ctx context.Context, channelID, subscriberID uuid.UUID) (bool, error)
}
