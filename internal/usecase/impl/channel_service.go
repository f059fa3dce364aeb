package impl

import (
	"context"
	"log/slog"

	deliverycontext "cliphub/internal/delivery/context"
	"cliphub/internal/domain/entity"
	domainerrors "cliphub/internal/domain/errors"
	"cliphub/internal/domain/repository"
	"cliphub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultWatchHistoryLimit = 20

// channelService implements the ChannelUsecase interface.
type channelService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	subRepo   repository.SubscriptionRepository
	videoRepo repository.VideoRepository
	logger    *slog.Logger
}

// ChannelServiceParams holds dependencies for ChannelService, injected by Fx.
type ChannelServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	SubRepo   repository.SubscriptionRepository
	VideoRepo repository.VideoRepository
	Logger    *slog.Logger
}

// NewChannelService is the constructor for channelService.
func NewChannelService(params ChannelServiceParams) usecase.ChannelUsecase {
	return &channelService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		subRepo:   params.SubRepo,
		videoRepo: params.VideoRepo,
		logger:    params.Logger,
	}
}

func (srv *channelService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetChannelProfile assembles the public channel view from the user record
// and the subscription counters.
func (srv *channelService) GetChannelProfile(ctx context.Context, username string, viewerID uuid.UUID) (*entity.ChannelProfile, error) {
	username = entity.NormalizeHandle(username)
	if username == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "username is required")
	}

	channelUser, err := srv.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrChannelNotFound, "channel lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load channel user")
	}

	subscriberCount, err := srv.subRepo.CountSubscribers(ctx, channelUser.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count subscribers")
	}

	subscribedToCount, err := srv.subRepo.CountSubscribedTo(ctx, channelUser.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count subscribed channels")
	}

	isSubscribed := false
	if viewerID != uuid.Nil {
		isSubscribed, err = srv.subRepo.IsSubscribed(ctx, channelUser.ID, viewerID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to check subscription state")
		}
	}

	return &entity.ChannelProfile{
		ID:                channelUser.ID,
		Username:          channelUser.Username,
		FullName:          channelUser.FullName,
		Avatar:            channelUser.Avatar,
		CoverImage:        channelUser.CoverImage,
		SubscriberCount:   subscriberCount,
		SubscribedToCount: subscribedToCount,
		IsSubscribed:      isSubscribed,
	}, nil
}

// ToggleSubscription flips the viewer's subscription to the channel inside a
// single transaction, so concurrent toggles settle on one consistent state.
func (srv *channelService) ToggleSubscription(ctx context.Context, channelUsername string, subscriberID uuid.UUID) (bool, error) {
	channelUsername = entity.NormalizeHandle(channelUsername)
	if channelUsername == "" {
		return false, errors.Wrap(domainerrors.ErrValidationFailed, "username is required")
	}

	channelUser, err := srv.userRepo.FindByUsername(ctx, channelUsername)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return false, errors.Wrap(domainerrors.ErrChannelNotFound, "channel lookup failed")
		}

		return false, errors.Wrap(err, "failed to load channel user")
	}

	if channelUser.ID == subscriberID {
		return false, errors.Wrap(domainerrors.ErrValidationFailed, "cannot subscribe to your own channel")
	}

	var subscribed bool
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		subRepo := repoFactory.SubscriptionRepo()

		exists, err := subRepo.IsSubscribed(ctx, channelUser.ID, subscriberID)
		if err != nil {
			return errors.Wrap(err, "failed to check subscription state")
		}

		if exists {
			if err := subRepo.Delete(ctx, channelUser.ID, subscriberID); err != nil {
				return errors.Wrap(err, "failed to remove subscription")
			}
			subscribed = false

			return nil
		}

		if err := subRepo.Create(ctx, &entity.Subscription{
			ChannelID:    channelUser.ID,
			SubscriberID: subscriberID,
		}); err != nil {
			return errors.Wrap(err, "failed to create subscription")
		}
		subscribed = true

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to toggle subscription", slog.Any("channelID", channelUser.ID), slog.Any("subscriberID", subscriberID), slog.Any("error", err))

		return false, errors.Wrap(err, "failed to execute subscription toggle transaction")
	}

	srv.log(ctx).Debug("Subscription toggled", slog.Any("channelID", channelUser.ID), slog.Any("subscriberID", subscriberID), slog.Bool("subscribed", subscribed))

	return subscribed, nil
}

// RecordWatch appends a watch event and bumps the view counter atomically.
func (srv *channelService) RecordWatch(ctx context.Context, userID, videoID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		videoRepo := repoFactory.VideoRepo()

		if _, err := videoRepo.FindByID(ctx, videoID); err != nil {
			if errors.Is(err, repository.ErrVideoNotFound) {
				return errors.Wrap(domainerrors.ErrVideoNotFound, "watch recording failed")
			}

			return errors.Wrap(err, "failed to load video")
		}

		if err := videoRepo.RecordWatch(ctx, userID, videoID); err != nil {
			return errors.Wrap(err, "failed to record watch event")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Debug("Watch recorded", slog.Any("userID", userID), slog.Any("videoID", videoID))

	return nil
}

// WatchHistory returns the user's most recent watch events, newest first.
func (srv *channelService) WatchHistory(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.WatchHistoryEntry, error) {
	if limit <= 0 {
		limit = defaultWatchHistoryLimit
	}

	entries, err := srv.videoRepo.WatchHistory(ctx, userID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load watch history")
	}

	return entries, nil
}
