package impl

import (
	"context"
	"testing"

	"cliphub/internal/domain/entity"
	domainerrors "cliphub/internal/domain/errors"
	"cliphub/internal/domain/repository"
	mockRepo "cliphub/internal/mocks/repository"
	mockSvc "cliphub/internal/mocks/service"
	"cliphub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	uploader     *mockSvc.MockMediaUploader
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	uploader := mockSvc.NewMockMediaUploader(t)

	service := NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Uploader:     uploader,
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		uploader:     uploader,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		FullName:   "Test User",
		Email:      "Test@Example.com",
		Username:   "TestUser",
		Password:   "Password123",
		AvatarPath: "/tmp/avatar.png",
	}

	fx.userRepo.EXPECT().
		FindByUsernameOrEmail(ctx, "testuser", "test@example.com").
		Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.uploader.EXPECT().Upload(ctx, "/tmp/avatar.png").Return("https://media.example.com/avatar.png", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = uuid.New()
		}).
		Return(nil)

	registered, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "testuser", registered.Username)
	assert.Equal(t, "test@example.com", registered.Email)
	assert.Equal(t, "https://media.example.com/avatar.png", registered.Avatar)
	assert.Empty(t, registered.PasswordHash)
	assert.Empty(t, registered.RefreshToken)
}

func TestUserService_Register_WithCoverImage(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		FullName:       "Test User",
		Email:          "test@example.com",
		Username:       "testuser",
		Password:       "Password123",
		AvatarPath:     "/tmp/avatar.png",
		CoverImagePath: "/tmp/cover.png",
	}

	fx.userRepo.EXPECT().
		FindByUsernameOrEmail(ctx, "testuser", "test@example.com").
		Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.uploader.EXPECT().Upload(ctx, "/tmp/avatar.png").Return("https://media.example.com/avatar.png", nil)
	fx.uploader.EXPECT().Upload(ctx, "/tmp/cover.png").Return("https://media.example.com/cover.png", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	registered, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "https://media.example.com/cover.png", registered.CoverImage)
}

func TestUserService_Register_DuplicateAccount(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		FullName:   "Test User",
		Email:      "test@example.com",
		Username:   "testuser",
		Password:   "Password123",
		AvatarPath: "/tmp/avatar.png",
	}

	fx.userRepo.EXPECT().
		FindByUsernameOrEmail(ctx, "testuser", "test@example.com").
		Return(newTestUser(), nil)

	registered, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, registered)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Register_UploadFailure(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		FullName:   "Test User",
		Email:      "test@example.com",
		Username:   "testuser",
		Password:   "Password123",
		AvatarPath: "/tmp/avatar.png",
	}

	fx.userRepo.EXPECT().
		FindByUsernameOrEmail(ctx, "testuser", "test@example.com").
		Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.uploader.EXPECT().Upload(ctx, "/tmp/avatar.png").Return("", errors.New("bucket unreachable"))

	registered, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, registered)
	assert.ErrorIs(t, err, domainerrors.ErrMediaUploadFailed)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	storedUser := newTestUser()

	fx.userRepo.EXPECT().
		FindByUsernameOrEmail(ctx, "testuser", "").
		Return(storedUser, nil)
	fx.hasher.EXPECT().Check("Password123", storedUser.PasswordHash).Return(true)
	fx.tokenService.EXPECT().GenerateTokenPair(storedUser).Return("access-token", "refresh-token", nil)
	fx.userRepo.EXPECT().UpdateRefreshToken(ctx, storedUser.ID, "refresh-token").Return(nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Username: "TestUser",
		Password: "Password123",
	})

	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.Equal(t, storedUser.ID, output.User.ID)
	assert.Empty(t, output.User.PasswordHash)
	assert.Empty(t, output.User.RefreshToken)
}

func TestUserService_Login_MissingIdentifier(t *testing.T) {
	fx := createTestUserService(t)

	output, err := fx.service.Login(context.Background(), &usecase.LoginInput{
		Password: "Password123",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_Login_UnknownAccount(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().
		FindByUsernameOrEmail(ctx, "", "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "Password123",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	storedUser := newTestUser()

	fx.userRepo.EXPECT().
		FindByUsernameOrEmail(ctx, "testuser", "").
		Return(storedUser, nil)
	fx.hasher.EXPECT().Check("wrong", storedUser.PasswordHash).Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Username: "testuser",
		Password: "wrong",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Logout_ClearsStoredToken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().UpdateRefreshToken(ctx, userID, "").Return(nil)

	require.NoError(t, fx.service.Logout(ctx, userID))
}

func TestUserService_Refresh_RotatesTokenPair(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	storedUser := newTestUser()
	storedUser.RefreshToken = "old-refresh-token"

	fx.tokenService.EXPECT().
		ValidateRefreshToken("old-refresh-token").
		Return(refreshClaims(storedUser.ID), nil)
	fx.userRepo.EXPECT().FindByID(ctx, storedUser.ID).Return(storedUser, nil)
	fx.tokenService.EXPECT().GenerateTokenPair(storedUser).Return("new-access", "new-refresh", nil)
	fx.userRepo.EXPECT().UpdateRefreshToken(ctx, storedUser.ID, "new-refresh").Return(nil)

	output, err := fx.service.Refresh(ctx, "old-refresh-token")

	require.NoError(t, err)
	assert.Equal(t, "new-access", output.AccessToken)
	assert.Equal(t, "new-refresh", output.RefreshToken)
}

func TestUserService_Refresh_StaleToken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	storedUser := newTestUser()
	// The stored session was rotated by a later login.
	storedUser.RefreshToken = "newer-refresh-token"

	fx.tokenService.EXPECT().
		ValidateRefreshToken("old-refresh-token").
		Return(refreshClaims(storedUser.ID), nil)
	fx.userRepo.EXPECT().FindByID(ctx, storedUser.ID).Return(storedUser, nil)

	output, err := fx.service.Refresh(ctx, "old-refresh-token")

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestUserService_Refresh_RevokedSession(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	storedUser := newTestUser()
	storedUser.RefreshToken = ""

	fx.tokenService.EXPECT().
		ValidateRefreshToken("old-refresh-token").
		Return(refreshClaims(storedUser.ID), nil)
	fx.userRepo.EXPECT().FindByID(ctx, storedUser.ID).Return(storedUser, nil)

	output, err := fx.service.Refresh(ctx, "old-refresh-token")

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestUserService_Refresh_InvalidToken(t *testing.T) {
	fx := createTestUserService(t)

	fx.tokenService.EXPECT().
		ValidateRefreshToken("garbage").
		Return(nil, errors.New("token verification failed"))

	output, err := fx.service.Refresh(context.Background(), "garbage")

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestUserService_ChangePassword_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	storedUser := newTestUser()

	fx.userRepo.EXPECT().FindByID(ctx, storedUser.ID).Return(storedUser, nil)
	fx.hasher.EXPECT().Check("OldPassword", storedUser.PasswordHash).Return(true)
	fx.hasher.EXPECT().Hash("NewPassword").Return("new_hash", nil)
	fx.userRepo.EXPECT().UpdatePassword(ctx, storedUser.ID, "new_hash").Return(nil)

	err := fx.service.ChangePassword(ctx, storedUser.ID, &usecase.ChangePasswordInput{
		OldPassword: "OldPassword",
		NewPassword: "NewPassword",
	})

	require.NoError(t, err)
}

func TestUserService_ChangePassword_WrongOldPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	storedUser := newTestUser()

	fx.userRepo.EXPECT().FindByID(ctx, storedUser.ID).Return(storedUser, nil)
	fx.hasher.EXPECT().Check("wrong", storedUser.PasswordHash).Return(false)

	err := fx.service.ChangePassword(ctx, storedUser.ID, &usecase.ChangePasswordInput{
		OldPassword: "wrong",
		NewPassword: "NewPassword",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidOldPassword)
}

func TestUserService_GetByID_StripsCredentials(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	storedUser := newTestUser()
	storedUser.RefreshToken = "refresh-token"

	fx.userRepo.EXPECT().FindByID(ctx, storedUser.ID).Return(storedUser, nil)

	found, err := fx.service.GetByID(ctx, storedUser.ID)

	require.NoError(t, err)
	assert.Empty(t, found.PasswordHash)
	assert.Empty(t, found.RefreshToken)
}
