// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "cliphub/internal/delivery/context"
	"cliphub/internal/domain/entity"
	domainerrors "cliphub/internal/domain/errors"
	"cliphub/internal/domain/repository"
	"cliphub/internal/domain/service"
	"cliphub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	uploader     service.MediaUploader
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Uploader     service.MediaUploader
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		uploader:     params.Uploader,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete account registration process.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	newUser := &entity.User{
		Username: input.Username,
		Email:    input.Email,
		FullName: input.FullName,
	}
	newUser.NormalizeIdentity()

	srv.log(ctx).Info("Starting registration", slog.String("username", newUser.Username), slog.String("email", newUser.Email))

	existing, err := srv.userRepo.FindByUsernameOrEmail(ctx, newUser.Username, newUser.Email)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check for existing user")
	}
	if existing != nil {
		srv.log(ctx).Warn("Registration rejected, account exists", slog.String("username", newUser.Username))

		return nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, "registration failed")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}
	newUser.PasswordHash = hashedPassword

	// Media uploads happen before the insert; the uploader removes the local
	// temp files whether the upload succeeds or not.
	avatarURL, err := srv.uploader.Upload(ctx, input.AvatarPath)
	if err != nil {
		srv.log(ctx).Warn("Avatar upload failed during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrMediaUploadFailed, "avatar upload failed")
	}
	newUser.Avatar = avatarURL

	if input.CoverImagePath != "" {
		coverURL, err := srv.uploader.Upload(ctx, input.CoverImagePath)
		if err != nil {
			srv.log(ctx).Warn("Cover image upload failed during registration", slog.Any("error", err))

			return nil, errors.Wrap(domainerrors.ErrMediaUploadFailed, "cover image upload failed")
		}
		newUser.CoverImage = coverURL
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		if errors.Is(err, domainerrors.ErrUserAlreadyExists) {
			return nil, errors.Wrap(err, "registration failed")
		}

		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	// The returned entity never carries credential material out of this layer.
	newUser.PasswordHash = ""
	newUser.RefreshToken = ""

	return newUser, nil
}

// Login orchestrates the credential check and session issuance.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	username := entity.NormalizeHandle(input.Username)
	email := entity.NormalizeHandle(input.Email)

	if username == "" && email == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "username or email is required")
	}

	srv.log(ctx).Debug("Starting login", slog.String("username", username), slog.String("email", email))

	loggedInUser, err := srv.userRepo.FindByUsernameOrEmail(ctx, username, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed, unknown account", slog.String("username", username), slog.String("email", email))

			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	// bcrypt is CPU-bound, keep it outside any transaction.
	if !srv.hasher.Check(input.Password, loggedInUser.PasswordHash) {
		srv.log(ctx).Warn("Login failed, password mismatch", slog.Any("userID", loggedInUser.ID))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	output, err := srv.issueSession(ctx, loggedInUser)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.Any("userID", loggedInUser.ID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", loggedInUser.ID))

	return output, nil
}

// Logout revokes the account's current session by clearing the stored refresh token.
func (srv *userService) Logout(ctx context.Context, userID uuid.UUID) error {
	if err := srv.userRepo.UpdateRefreshToken(ctx, userID, ""); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "logout failed")
		}

		return errors.Wrap(err, "failed to clear refresh token during logout")
	}

	srv.log(ctx).Debug("User logged out", slog.Any("userID", userID))

	return nil
}

// Refresh rotates the session: the presented token must both verify and match
// the stored copy, otherwise the session is treated as revoked or superseded.
func (srv *userService) Refresh(ctx context.Context, presentedToken string) (*usecase.AuthOutput, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(presentedToken)
	if err != nil {
		srv.log(ctx).Warn("Refresh rejected, invalid token", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInvalidToken, "refresh failed")
	}

	currentUser, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidToken, "refresh failed")
		}

		return nil, errors.Wrap(err, "failed to load user for refresh")
	}

	if currentUser.RefreshToken == "" || currentUser.RefreshToken != presentedToken {
		srv.log(ctx).Warn("Refresh rejected, token does not match stored session", slog.Any("userID", currentUser.ID))

		return nil, errors.Wrap(domainerrors.ErrInvalidToken, "refresh token is expired or already used")
	}

	output, err := srv.issueSession(ctx, currentUser)
	if err != nil {
		srv.log(ctx).Warn("Refresh failed", slog.Any("userID", currentUser.ID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Session refreshed", slog.Any("userID", currentUser.ID))

	return output, nil
}

// ChangePassword verifies the old password before storing a new hash.
// Previously issued tokens remain valid until their natural expiry.
func (srv *userService) ChangePassword(ctx context.Context, userID uuid.UUID, input *usecase.ChangePasswordInput) error {
	currentUser, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "change password failed")
		}

		return errors.Wrap(err, "failed to load user for password change")
	}

	if !srv.hasher.Check(input.OldPassword, currentUser.PasswordHash) {
		srv.log(ctx).Warn("Password change rejected, old password mismatch", slog.Any("userID", userID))

		return errors.Wrap(domainerrors.ErrInvalidOldPassword, "change password failed")
	}

	newHash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash new password")
	}

	if err := srv.userRepo.UpdatePassword(ctx, userID, newHash); err != nil {
		return errors.Wrap(err, "failed to persist new password")
	}

	srv.log(ctx).Debug("Password changed", slog.Any("userID", userID))

	return nil
}

// GetByID loads a single user, stripped of credential material.
func (srv *userService) GetByID(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	found, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load user")
	}

	found.PasswordHash = ""
	found.RefreshToken = ""

	return found, nil
}

// issueSession generates a fresh token pair and persists the refresh token as
// the account's single current session.
func (srv *userService) issueSession(ctx context.Context, user *entity.User) (*usecase.AuthOutput, error) {
	accessToken, refreshToken, err := srv.tokenService.GenerateTokenPair(user)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrTokenGeneration, "failed to generate token pair")
	}

	if err := srv.userRepo.UpdateRefreshToken(ctx, user.ID, refreshToken); err != nil {
		return nil, errors.Wrap(err, "failed to persist refresh token")
	}

	sessionUser := *user
	sessionUser.PasswordHash = ""
	sessionUser.RefreshToken = ""

	return &usecase.AuthOutput{
		User:         &sessionUser,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
