package impl

import (
	"context"
	"testing"

	domainerrors "cliphub/internal/domain/errors"
	"cliphub/internal/domain/repository"
	mockRepo "cliphub/internal/mocks/repository"
	mockSvc "cliphub/internal/mocks/service"
	"cliphub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type profileServiceFixtures struct {
	service  usecase.ProfileUsecase
	userRepo *mockRepo.MockUserRepository
	uploader *mockSvc.MockMediaUploader
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	uploader := mockSvc.NewMockMediaUploader(t)

	service := NewProfileService(ProfileServiceParams{
		UserRepo: userRepo,
		Uploader: uploader,
		Logger:   newDiscardLogger(),
	})

	return profileServiceFixtures{
		service:  service,
		userRepo: userRepo,
		uploader: uploader,
	}
}

func TestProfileService_UpdateAccountDetails_Partial(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	storedUser := newTestUser()

	fx.userRepo.EXPECT().FindByID(ctx, storedUser.ID).Return(storedUser, nil)
	fx.userRepo.EXPECT().UpdateProfile(ctx, storedUser).Return(nil)

	updated, err := fx.service.UpdateAccountDetails(ctx, storedUser.ID, &usecase.UpdateAccountInput{
		FullName: "New Name",
	})

	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.FullName)
	// Email untouched by a partial update.
	assert.Equal(t, "test@example.com", updated.Email)
	assert.Empty(t, updated.PasswordHash)
}

func TestProfileService_UpdateAccountDetails_NormalizesEmail(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	storedUser := newTestUser()

	fx.userRepo.EXPECT().FindByID(ctx, storedUser.ID).Return(storedUser, nil)
	fx.userRepo.EXPECT().UpdateProfile(ctx, storedUser).Return(nil)

	updated, err := fx.service.UpdateAccountDetails(ctx, storedUser.ID, &usecase.UpdateAccountInput{
		Email: "  New@Example.COM ",
	})

	require.NoError(t, err)
	assert.Equal(t, "new@example.com", updated.Email)
}

func TestProfileService_UpdateAccountDetails_EmptyInput(t *testing.T) {
	fx := createTestProfileService(t)

	updated, err := fx.service.UpdateAccountDetails(context.Background(), uuid.New(), &usecase.UpdateAccountInput{})

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestProfileService_UpdateAccountDetails_EmailConflict(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	storedUser := newTestUser()

	fx.userRepo.EXPECT().FindByID(ctx, storedUser.ID).Return(storedUser, nil)
	fx.userRepo.EXPECT().
		UpdateProfile(ctx, storedUser).
		Return(domainerrors.ErrUserAlreadyExists.WrapMessage("duplicate email"))

	updated, err := fx.service.UpdateAccountDetails(ctx, storedUser.ID, &usecase.UpdateAccountInput{
		Email: "taken@example.com",
	})

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestProfileService_UpdateAvatar_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	storedUser := newTestUser()

	fx.userRepo.EXPECT().FindByID(ctx, storedUser.ID).Return(storedUser, nil)
	fx.uploader.EXPECT().Upload(ctx, "/tmp/new-avatar.png").Return("https://media.example.com/new-avatar.png", nil)
	fx.userRepo.EXPECT().UpdateProfile(ctx, storedUser).Return(nil)

	updated, err := fx.service.UpdateAvatar(ctx, storedUser.ID, "/tmp/new-avatar.png")

	require.NoError(t, err)
	assert.Equal(t, "https://media.example.com/new-avatar.png", updated.Avatar)
}

func TestProfileService_UpdateAvatar_UploadFailure(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	storedUser := newTestUser()

	fx.userRepo.EXPECT().FindByID(ctx, storedUser.ID).Return(storedUser, nil)
	fx.uploader.EXPECT().Upload(ctx, "/tmp/new-avatar.png").Return("", errors.New("bucket unreachable"))

	updated, err := fx.service.UpdateAvatar(ctx, storedUser.ID, "/tmp/new-avatar.png")

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrMediaUploadFailed)
}

func TestProfileService_UpdateCoverImage_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	storedUser := newTestUser()

	fx.userRepo.EXPECT().FindByID(ctx, storedUser.ID).Return(storedUser, nil)
	fx.uploader.EXPECT().Upload(ctx, "/tmp/cover.png").Return("https://media.example.com/cover.png", nil)
	fx.userRepo.EXPECT().UpdateProfile(ctx, storedUser).Return(nil)

	updated, err := fx.service.UpdateCoverImage(ctx, storedUser.ID, "/tmp/cover.png")

	require.NoError(t, err)
	assert.Equal(t, "https://media.example.com/cover.png", updated.CoverImage)
}

func TestProfileService_UpdateAvatar_UnknownUser(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	updated, err := fx.service.UpdateAvatar(ctx, userID, "/tmp/new-avatar.png")

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
