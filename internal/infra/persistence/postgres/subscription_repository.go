package postgres

import (
	"context"

	"cliphub/internal/domain/entity"
	domainerrors "cliphub/internal/domain/errors"
	"cliphub/internal/domain/repository"
	"cliphub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// subscriptionRepository implements the domain.SubscriptionRepository interface using GORM.
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository is the constructor for subscriptionRepository.
func NewSubscriptionRepository(db *gorm.DB) repository.SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

// Create persists a subscription edge between a subscriber and a channel.
func (repo *subscriptionRepository) Create(ctx context.Context, sub *entity.Subscription) error {
	subM := &model.SubscriptionModel{
		ChannelID:    sub.ChannelID,
		SubscriberID: sub.SubscriberID,
	}

	if err := repo.db.WithContext(ctx).Create(subM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("already subscribed")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrChannelNotFound.WrapMessage("channel or subscriber missing")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create subscription")
	}

	sub.ID = subM.ID
	sub.CreatedAt = subM.CreatedAt

	return nil
}

// Delete removes the edge between a channel and a subscriber.
func (repo *subscriptionRepository) Delete(ctx context.Context, channelID, subscriberID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("channel_id = ? AND subscriber_id = ?", channelID, subscriberID).
		Delete(&model.SubscriptionModel{})

	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete subscription")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSubscriptionNotFound
	}

	return nil
}

// CountSubscribers counts accounts subscribed to the given channel.
func (repo *subscriptionRepository) CountSubscribers(ctx context.Context, channelID uuid.UUID) (int64, error) {
	return repo.count(ctx, "channel_id = ?", channelID)
}

// CountSubscribedTo counts channels the given account subscribes to.
func (repo *subscriptionRepository) CountSubscribedTo(ctx context.Context, subscriberID uuid.UUID) (int64, error) {
	return repo.count(ctx, "subscriber_id = ?", subscriberID)
}

// IsSubscribed reports whether subscriberID follows channelID.
func (repo *subscriptionRepository) IsSubscribed(ctx context.Context, channelID, subscriberID uuid.UUID) (bool, error) {
	count, err := repo.count(ctx, "channel_id = ? AND subscriber_id = ?", channelID, subscriberID)
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (repo *subscriptionRepository) count(ctx context.Context, query string, args ...any) (int64, error) {
	var count int64

	err := repo.db.WithContext(ctx).
		Model(&model.SubscriptionModel{}).
		Where(query, args...).
		Count(&count).Error
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count subscriptions")
	}

	return count, nil
}
