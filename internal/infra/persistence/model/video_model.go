package model

import (
	"time"

	"github.com/google/uuid"
)

// VideoModel mirrors the 'videos' table. File columns hold media-host URLs.
type VideoModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	VideoFile   string    `gorm:"type:text;not null"`
	Thumbnail   string    `gorm:"type:text;not null"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text;not null"`
	Duration    float64   `gorm:"not null"`
	Views       int64     `gorm:"not null;default:0"`
	IsPublished bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (VideoModel) TableName() string {
	return "videos"
}

// WatchEventModel mirrors the 'watch_events' table, the relational form of
// the per-user watch history.
type WatchEventModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_watch_events_user_watched_at"`
	VideoID   uuid.UUID `gorm:"type:uuid;not null;index"`
	WatchedAt time.Time `gorm:"not null;index:idx_watch_events_user_watched_at"`

	Video *VideoModel `gorm:"foreignKey:VideoID"`
}

// TableName explicitly sets the table name for GORM.
func (WatchEventModel) TableName() string {
	return "watch_events"
}
