package handler

import (
	"time"

	"cliphub/internal/domain/entity"

	"github.com/google/uuid"
)

// userView is the wire shape of an account. Credential and session columns
// are never part of it.
type userView struct {
	ID         uuid.UUID `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	FullName   string    `json:"fullName"`
	Avatar     string    `json:"avatar"`
	CoverImage string    `json:"coverImage,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func newUserView(u *entity.User) *userView {
	if u == nil {
		return nil
	}

	return &userView{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		FullName:   u.FullName,
		Avatar:     u.Avatar,
		CoverImage: u.CoverImage,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

// authView is returned by login and refresh. The tokens are duplicated in
// the body for non-browser clients that cannot use cookies.
type authView struct {
	User         *userView `json:"user"`
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
}

// channelProfileView is the public channel page payload.
type channelProfileView struct {
	ID                uuid.UUID `json:"id"`
	Username          string    `json:"username"`
	FullName          string    `json:"fullName"`
	Avatar            string    `json:"avatar"`
	CoverImage        string    `json:"coverImage,omitempty"`
	SubscriberCount   int64     `json:"subscriberCount"`
	SubscribedToCount int64     `json:"channelsSubscribedToCount"`
	IsSubscribed      bool      `json:"isSubscribed"`
}

func newChannelProfileView(p *entity.ChannelProfile) *channelProfileView {
	return &channelProfileView{
		ID:                p.ID,
		Username:          p.Username,
		FullName:          p.FullName,
		Avatar:            p.Avatar,
		CoverImage:        p.CoverImage,
		SubscriberCount:   p.SubscriberCount,
		SubscribedToCount: p.SubscribedToCount,
		IsSubscribed:      p.IsSubscribed,
	}
}

// videoView is the wire shape of a published video.
type videoView struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"ownerId"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	VideoFile   string    `json:"videoFile"`
	Thumbnail   string    `json:"thumbnail"`
	Duration    float64   `json:"duration"`
	Views       int64     `json:"views"`
	CreatedAt   time.Time `json:"createdAt"`
}

func newVideoView(v *entity.Video) *videoView {
	if v == nil {
		return nil
	}

	return &videoView{
		ID:          v.ID,
		OwnerID:     v.OwnerID,
		Title:       v.Title,
		Description: v.Description,
		VideoFile:   v.VideoFile,
		Thumbnail:   v.Thumbnail,
		Duration:    v.Duration,
		Views:       v.Views,
		CreatedAt:   v.CreatedAt,
	}
}

// watchHistoryEntryView is one row of a user's watch history.
type watchHistoryEntryView struct {
	Video     *videoView `json:"video"`
	WatchedAt time.Time  `json:"watchedAt"`
}

func newWatchHistoryView(entries []*entity.WatchHistoryEntry) []*watchHistoryEntryView {
	views := make([]*watchHistoryEntryView, 0, len(entries))
	for _, entry := range entries {
		views = append(views, &watchHistoryEntryView{
			Video:     newVideoView(entry.Video),
			WatchedAt: entry.WatchedAt,
		})
	}

	return views
}
