package entity

import (
	"time"

	"github.com/google/uuid"
)

// Video is a published upload. The files themselves live on the media host;
// only their hosted URLs are stored here.
type Video struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	VideoFile   string // Hosted URL of the video file.
	Thumbnail   string // Hosted URL of the thumbnail image.
	Title       string
	Description string
	Duration    float64 // Seconds.
	Views       int64
	IsPublished bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// WatchEvent records that a user watched a video at a point in time.
// The watch history endpoint replays these newest-first.
type WatchEvent struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	VideoID   uuid.UUID
	WatchedAt time.Time
}

// WatchHistoryEntry joins a watch event with the video it refers to.
type WatchHistoryEntry struct {
	Video     *Video
	WatchedAt time.Time
}
