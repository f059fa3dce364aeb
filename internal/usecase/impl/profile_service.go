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

// profileService implements the ProfileUsecase interface.
type profileService struct {
	userRepo repository.UserRepository
	uploader service.MediaUploader
	logger   *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Uploader service.MediaUploader
	Logger   *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		userRepo: params.UserRepo,
		uploader: params.Uploader,
		logger:   params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UpdateAccountDetails applies a partial update of the textual profile fields.
func (srv *profileService) UpdateAccountDetails(ctx context.Context, userID uuid.UUID, input *usecase.UpdateAccountInput) (*entity.User, error) {
	if input.FullName == "" && input.Email == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "at least one of fullName or email is required")
	}

	current, err := srv.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.FullName != "" {
		current.FullName = input.FullName
	}
	if input.Email != "" {
		current.Email = entity.NormalizeHandle(input.Email)
	}

	return srv.persistProfile(ctx, current)
}

// UpdateAvatar uploads the new image and swaps the avatar URL.
func (srv *profileService) UpdateAvatar(ctx context.Context, userID uuid.UUID, localPath string) (*entity.User, error) {
	current, err := srv.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	url, err := srv.uploader.Upload(ctx, localPath)
	if err != nil {
		srv.log(ctx).Warn("Avatar upload failed", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrMediaUploadFailed, "avatar upload failed")
	}
	current.Avatar = url

	return srv.persistProfile(ctx, current)
}

// UpdateCoverImage uploads the new image and swaps the cover image URL.
func (srv *profileService) UpdateCoverImage(ctx context.Context, userID uuid.UUID, localPath string) (*entity.User, error) {
	current, err := srv.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	url, err := srv.uploader.Upload(ctx, localPath)
	if err != nil {
		srv.log(ctx).Warn("Cover image upload failed", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrMediaUploadFailed, "cover image upload failed")
	}
	current.CoverImage = url

	return srv.persistProfile(ctx, current)
}

func (srv *profileService) loadUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	found, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "profile update failed")
		}

		return nil, errors.Wrap(err, "failed to load user for profile update")
	}

	return found, nil
}

// persistProfile writes the profile columns only; credential columns are
// untouched so a profile update can never clobber a concurrent session change.
func (srv *profileService) persistProfile(ctx context.Context, user *entity.User) (*entity.User, error) {
	if err := srv.userRepo.UpdateProfile(ctx, user); err != nil {
		if errors.Is(err, domainerrors.ErrUserAlreadyExists) {
			return nil, errors.Wrap(err, "profile update failed")
		}

		return nil, errors.Wrap(err, "failed to persist profile update")
	}

	srv.log(ctx).Debug("Profile updated", slog.Any("userID", user.ID))

	updated := *user
	updated.PasswordHash = ""
	updated.RefreshToken = ""

	return &updated, nil
}
