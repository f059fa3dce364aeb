package impl

import (
	"context"
	"testing"
	"time"

	"cliphub/internal/domain/entity"
	domainerrors "cliphub/internal/domain/errors"
	"cliphub/internal/domain/repository"
	mockRepo "cliphub/internal/mocks/repository"
	"cliphub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type channelServiceFixtures struct {
	service   usecase.ChannelUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	subRepo   *mockRepo.MockSubscriptionRepository
	videoRepo *mockRepo.MockVideoRepository
}

func createTestChannelService(t *testing.T) channelServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	subRepo := mockRepo.NewMockSubscriptionRepository(t)
	videoRepo := mockRepo.NewMockVideoRepository(t)

	service := NewChannelService(ChannelServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		SubRepo:   subRepo,
		VideoRepo: videoRepo,
		Logger:    newDiscardLogger(),
	})

	return channelServiceFixtures{
		service:   service,
		txManager: txManager,
		userRepo:  userRepo,
		subRepo:   subRepo,
		videoRepo: videoRepo,
	}
}

func TestChannelService_GetChannelProfile_Success(t *testing.T) {
	fx := createTestChannelService(t)

	ctx := context.Background()
	channelUser := newTestUser()
	viewerID := uuid.New()

	fx.userRepo.EXPECT().FindByUsername(ctx, "testuser").Return(channelUser, nil)
	fx.subRepo.EXPECT().CountSubscribers(ctx, channelUser.ID).Return(int64(42), nil)
	fx.subRepo.EXPECT().CountSubscribedTo(ctx, channelUser.ID).Return(int64(7), nil)
	fx.subRepo.EXPECT().IsSubscribed(ctx, channelUser.ID, viewerID).Return(true, nil)

	profile, err := fx.service.GetChannelProfile(ctx, "TestUser", viewerID)

	require.NoError(t, err)
	assert.Equal(t, channelUser.ID, profile.ID)
	assert.Equal(t, int64(42), profile.SubscriberCount)
	assert.Equal(t, int64(7), profile.SubscribedToCount)
	assert.True(t, profile.IsSubscribed)
}

func TestChannelService_GetChannelProfile_AnonymousViewer(t *testing.T) {
	fx := createTestChannelService(t)

	ctx := context.Background()
	channelUser := newTestUser()

	fx.userRepo.EXPECT().FindByUsername(ctx, "testuser").Return(channelUser, nil)
	fx.subRepo.EXPECT().CountSubscribers(ctx, channelUser.ID).Return(int64(0), nil)
	fx.subRepo.EXPECT().CountSubscribedTo(ctx, channelUser.ID).Return(int64(0), nil)

	profile, err := fx.service.GetChannelProfile(ctx, "testuser", uuid.Nil)

	require.NoError(t, err)
	assert.False(t, profile.IsSubscribed)
}

func TestChannelService_GetChannelProfile_UnknownChannel(t *testing.T) {
	fx := createTestChannelService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().FindByUsername(ctx, "ghost").Return(nil, repository.ErrUserNotFound)

	profile, err := fx.service.GetChannelProfile(ctx, "ghost", uuid.Nil)

	require.Error(t, err)
	assert.Nil(t, profile)
	assert.ErrorIs(t, err, domainerrors.ErrChannelNotFound)
}

func TestChannelService_GetChannelProfile_EmptyUsername(t *testing.T) {
	fx := createTestChannelService(t)

	profile, err := fx.service.GetChannelProfile(context.Background(), "  ", uuid.Nil)

	require.Error(t, err)
	assert.Nil(t, profile)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestChannelService_ToggleSubscription_Subscribe(t *testing.T) {
	fx := createTestChannelService(t)

	ctx := context.Background()
	channelUser := newTestUser()
	subscriberID := uuid.New()

	fx.userRepo.EXPECT().FindByUsername(ctx, "testuser").Return(channelUser, nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(t)
			subRepo := mockRepo.NewMockSubscriptionRepository(t)

			factory.EXPECT().SubscriptionRepo().Return(subRepo)
			subRepo.EXPECT().IsSubscribed(ctx, channelUser.ID, subscriberID).Return(false, nil)
			subRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Subscription")).
				Run(func(ctx context.Context, sub *entity.Subscription) {
					assert.Equal(t, channelUser.ID, sub.ChannelID)
					assert.Equal(t, subscriberID, sub.SubscriberID)
				}).
				Return(nil)

			_ = fn(factory)
		}).
		Return(nil)

	subscribed, err := fx.service.ToggleSubscription(ctx, "testuser", subscriberID)

	require.NoError(t, err)
	assert.True(t, subscribed)
}

func TestChannelService_ToggleSubscription_Unsubscribe(t *testing.T) {
	fx := createTestChannelService(t)

	ctx := context.Background()
	channelUser := newTestUser()
	subscriberID := uuid.New()

	fx.userRepo.EXPECT().FindByUsername(ctx, "testuser").Return(channelUser, nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(t)
			subRepo := mockRepo.NewMockSubscriptionRepository(t)

			factory.EXPECT().SubscriptionRepo().Return(subRepo)
			subRepo.EXPECT().IsSubscribed(ctx, channelUser.ID, subscriberID).Return(true, nil)
			subRepo.EXPECT().Delete(ctx, channelUser.ID, subscriberID).Return(nil)

			_ = fn(factory)
		}).
		Return(nil)

	subscribed, err := fx.service.ToggleSubscription(ctx, "testuser", subscriberID)

	require.NoError(t, err)
	assert.False(t, subscribed)
}

func TestChannelService_ToggleSubscription_OwnChannel(t *testing.T) {
	fx := createTestChannelService(t)

	ctx := context.Background()
	channelUser := newTestUser()

	fx.userRepo.EXPECT().FindByUsername(ctx, "testuser").Return(channelUser, nil)

	subscribed, err := fx.service.ToggleSubscription(ctx, "testuser", channelUser.ID)

	require.Error(t, err)
	assert.False(t, subscribed)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestChannelService_RecordWatch_Success(t *testing.T) {
	fx := createTestChannelService(t)

	ctx := context.Background()
	userID := uuid.New()
	videoID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(t)
			videoRepo := mockRepo.NewMockVideoRepository(t)

			factory.EXPECT().VideoRepo().Return(videoRepo)
			videoRepo.EXPECT().FindByID(ctx, videoID).Return(&entity.Video{ID: videoID}, nil)
			videoRepo.EXPECT().RecordWatch(ctx, userID, videoID).Return(nil)

			_ = fn(factory)
		}).
		Return(nil)

	require.NoError(t, fx.service.RecordWatch(ctx, userID, videoID))
}

func TestChannelService_RecordWatch_UnknownVideo(t *testing.T) {
	fx := createTestChannelService(t)

	ctx := context.Background()
	userID := uuid.New()
	videoID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			videoRepo := mockRepo.NewMockVideoRepository(t)

			factory.EXPECT().VideoRepo().Return(videoRepo)
			videoRepo.EXPECT().FindByID(ctx, videoID).Return(nil, repository.ErrVideoNotFound)

			return fn(factory)
		})

	err := fx.service.RecordWatch(ctx, userID, videoID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrVideoNotFound)
}

func TestChannelService_WatchHistory_DefaultLimit(t *testing.T) {
	fx := createTestChannelService(t)

	ctx := context.Background()
	userID := uuid.New()
	entries := []*entity.WatchHistoryEntry{
		{Video: &entity.Video{ID: uuid.New(), Title: "latest"}, WatchedAt: time.Now()},
		{Video: &entity.Video{ID: uuid.New(), Title: "older"}, WatchedAt: time.Now().Add(-time.Hour)},
	}

	fx.videoRepo.EXPECT().WatchHistory(ctx, userID, defaultWatchHistoryLimit).Return(entries, nil)

	got, err := fx.service.WatchHistory(ctx, userID, 0)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "latest", got[0].Video.Title)
}

func TestChannelService_WatchHistory_ExplicitLimit(t *testing.T) {
	fx := createTestChannelService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.videoRepo.EXPECT().WatchHistory(ctx, userID, 5).Return(nil, nil)

	got, err := fx.service.WatchHistory(ctx, userID, 5)

	require.NoError(t, err)
	assert.Empty(t, got)
}
