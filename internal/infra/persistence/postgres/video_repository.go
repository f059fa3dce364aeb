package postgres

import (
	"context"
	"time"

	"cliphub/internal/domain/entity"
	domainerrors "cliphub/internal/domain/errors"
	"cliphub/internal/domain/repository"
	"cliphub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// videoRepository implements the domain.VideoRepository interface using GORM.
type videoRepository struct {
	db *gorm.DB
}

// NewVideoRepository is the constructor for videoRepository.
func NewVideoRepository(db *gorm.DB) repository.VideoRepository {
	return &videoRepository{db: db}
}

// FindByID retrieves a single published video.
func (repo *videoRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Video, error) {
	var videoM model.VideoModel

	err := repo.db.WithContext(ctx).
		Where("id = ? AND is_published = ?", id, true).
		First(&videoM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVideoNotFound
		}

		return nil, errors.Wrap(err, "failed to find video by id")
	}

	return toVideoDomain(&videoM), nil
}

// RecordWatch appends a watch event and bumps the video's view counter.
// Caller wraps this in a transaction when atomicity across both writes matters.
func (repo *videoRepository) RecordWatch(ctx context.Context, userID, videoID uuid.UUID) error {
	event := &model.WatchEventModel{
		UserID:    userID,
		VideoID:   videoID,
		WatchedAt: time.Now(),
	}

	if err := repo.db.WithContext(ctx).Create(event).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrVideoNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to record watch event")
	}

	result := repo.db.WithContext(ctx).
		Model(&model.VideoModel{}).
		Where("id = ?", videoID).
		UpdateColumn("views", gorm.Expr("views + 1"))
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to bump view count")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVideoNotFound
	}

	return nil
}

// WatchHistory lists the user's watch events newest-first with their videos.
func (repo *videoRepository) WatchHistory(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.WatchHistoryEntry, error) {
	var events []model.WatchEventModel

	err := repo.db.WithContext(ctx).
		Preload("Video").
		Where("user_id = ?", userID).
		Order("watched_at DESC").
		Limit(limit).
		Find(&events).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to load watch history")
	}

	entries := make([]*entity.WatchHistoryEntry, 0, len(events))
	for i := range events {
		entries = append(entries, &entity.WatchHistoryEntry{
			Video:     toVideoDomain(events[i].Video),
			WatchedAt: events[i].WatchedAt,
		})
	}

	return entries, nil
}

// toVideoDomain converts a GORM VideoModel to a domain Video entity.
func toVideoDomain(data *model.VideoModel) *entity.Video {
	if data == nil {
		return nil
	}

	return &entity.Video{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		VideoFile:   data.VideoFile,
		Thumbnail:   data.Thumbnail,
		Title:       data.Title,
		Description: data.Description,
		Duration:    data.Duration,
		Views:       data.Views,
		IsPublished: data.IsPublished,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
