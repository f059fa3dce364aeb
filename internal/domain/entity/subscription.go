package entity

import (
	"time"

	"github.com/google/uuid"
)

// Subscription links a subscriber account to the channel it follows.
// (channel, subscriber) is unique: following twice is a no-op, and the
// aggregation queries count rows on either side of the pair.
type Subscription struct {
	ID           uuid.UUID
	ChannelID    uuid.UUID // The account being followed.
	SubscriberID uuid.UUID // The account doing the following.
	CreatedAt    time.Time
}

// ChannelProfile is the aggregation result served for a channel page.
// It is computed on demand from users and subscriptions, never persisted.
type ChannelProfile struct {
	ID                uuid.UUID
	Username          string
	FullName          string
	Email             string
	Avatar            string
	CoverImage        string
	SubscriberCount   int64 // Accounts subscribed to this channel.
	SubscribedToCount int64 // Channels this account subscribes to.
	IsSubscribed      bool  // Whether the requesting identity follows this channel.
}
