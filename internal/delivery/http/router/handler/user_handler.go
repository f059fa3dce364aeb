// Package handler contains the HTTP handlers for the application.
package handler

import (
	"context"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"cliphub/internal/delivery/http/middleware"
	"cliphub/internal/delivery/http/response"
	"cliphub/internal/domain/entity"
	domainerrors "cliphub/internal/domain/errors"
	"cliphub/internal/domain/service"
	"cliphub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	cookieAccessToken  = "accessToken"
	cookieRefreshToken = "refreshToken"
)

// UserHandler holds dependencies for the session and account endpoints.
type UserHandler struct {
	uc        usecase.UserUsecase
	profileUc usecase.ProfileUsecase
	tokenSvc  service.TokenService
	logger    *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, profileUc usecase.ProfileUsecase, tokenSvc service.TokenService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:        uc,
		profileUc: profileUc,
		tokenSvc:  tokenSvc,
		logger:    logger,
	}
}

type registerRequest struct {
	FullName string `form:"fullName" validate:"required"`
	Email    string `form:"email" validate:"required,email"`
	Username string `form:"username" validate:"required,min=3"`
	Password string `form:"password" validate:"required,min=6"`
}

// Register handles the multipart registration request. The avatar file is
// required, the cover image is optional.
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	avatarPath, err := bufferFormFile(c, "avatar")
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("avatar file is required").WrapMessage("missing avatar upload")
	}

	coverPath, err := bufferFormFile(c, "coverImage")
	if err != nil && !errors.Is(err, http.ErrMissingFile) {
		return domainerrors.ErrValidationFailed.WithDetails("cover image could not be read").WrapMessage("bad cover image upload")
	}

	registered, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		FullName:       req.FullName,
		Email:          req.Email,
		Username:       req.Username,
		Password:       req.Password,
		AvatarPath:     avatarPath,
		CoverImagePath: coverPath,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newUserView(registered), "User registered successfully")
}

type loginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password" validate:"required"`
}

// Login authenticates by username or email, issues the token pair, and sets
// both session cookies.
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.setAuthCookies(c, output.AccessToken, output.RefreshToken)

	return response.Success(c, http.StatusOK, &authView{
		User:         newUserView(output.User),
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
	}, "User logged in successfully")
}

// Logout revokes the server-side session and expires both cookies.
func (h *UserHandler) Logout(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Logout(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	h.clearAuthCookies(c)

	return response.Success(c, http.StatusOK, nil, "User logged out successfully")
}

// RefreshToken rotates the session. The refresh token is read from its
// cookie only; this endpoint is for browser clients.
func (h *UserHandler) RefreshToken(c echo.Context) error {
	cookie, err := c.Cookie(cookieRefreshToken)
	if err != nil || cookie.Value == "" {
		return domainerrors.ErrUnauthorized.WrapMessage("missing refresh token cookie")
	}

	output, err := h.uc.Refresh(c.Request().Context(), cookie.Value)
	if err != nil {
		return errors.WithStack(err)
	}

	h.setAuthCookies(c, output.AccessToken, output.RefreshToken)

	return response.Success(c, http.StatusOK, &authView{
		User:         newUserView(output.User),
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
	}, "Access token refreshed")
}

type changePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

// ChangePassword verifies the old password and stores a new hash.
func (h *UserHandler) ChangePassword(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid password change input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.ChangePassword(c.Request().Context(), userID, &usecase.ChangePasswordInput{
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password changed successfully")
}

// CurrentUser returns the authenticated account as resolved by the auth middleware.
func (h *UserHandler) CurrentUser(c echo.Context) error {
	current, ok := c.Get(middleware.ContextKeyUser).(*entity.User)
	if !ok {
		return domainerrors.ErrUnauthorized.WrapMessage("no authenticated user on context")
	}

	return response.Success(c, http.StatusOK, newUserView(current), "Current user fetched successfully")
}

type updateAccountRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email" validate:"omitempty,email"`
}

// UpdateAccountDetails applies a partial update of fullName and email.
func (h *UserHandler) UpdateAccountDetails(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req updateAccountRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid account update input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	updated, err := h.profileUc.UpdateAccountDetails(c.Request().Context(), userID, &usecase.UpdateAccountInput{
		FullName: req.FullName,
		Email:    req.Email,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserView(updated), "Account details updated successfully")
}

// UpdateAvatar replaces the avatar with the uploaded image.
func (h *UserHandler) UpdateAvatar(c echo.Context) error {
	return h.updateImage(c, "avatar", h.profileUc.UpdateAvatar, "Avatar updated successfully")
}

// UpdateCoverImage replaces the cover image with the uploaded image.
func (h *UserHandler) UpdateCoverImage(c echo.Context) error {
	return h.updateImage(c, "coverImage", h.profileUc.UpdateCoverImage, "Cover image updated successfully")
}

func (h *UserHandler) updateImage(
	c echo.Context,
	field string,
	update func(ctx context.Context, userID uuid.UUID, localPath string) (*entity.User, error),
	message string,
) error {
	userID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	localPath, err := bufferFormFile(c, field)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(field + " file is required").WrapMessage("missing image upload")
	}

	updated, err := update(c.Request().Context(), userID, localPath)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserView(updated), message)
}

// currentUserID reads the authenticated user ID set by the auth middleware.
func currentUserID(c echo.Context) (uuid.UUID, error) {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, domainerrors.ErrUnauthorized.WrapMessage("no authenticated user on context")
	}

	return userID, nil
}

// setAuthCookies installs both session cookies. httpOnly plus secure keeps
// the tokens out of script reach and off plaintext transports.
func (h *UserHandler) setAuthCookies(c echo.Context, accessToken, refreshToken string) {
	c.SetCookie(sessionCookie(cookieAccessToken, accessToken, int(h.tokenSvc.AccessTokenDuration().Seconds())))
	c.SetCookie(sessionCookie(cookieRefreshToken, refreshToken, int(h.tokenSvc.RefreshTokenDuration().Seconds())))
}

// clearAuthCookies expires both session cookies immediately.
func (h *UserHandler) clearAuthCookies(c echo.Context) {
	c.SetCookie(sessionCookie(cookieAccessToken, "", -1))
	c.SetCookie(sessionCookie(cookieRefreshToken, "", -1))
}

func sessionCookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	}
}

// bufferFormFile copies the named multipart file to a temp file and returns
// its path. The uploader owns removal of the temp file afterwards.
func bufferFormFile(c echo.Context, field string) (string, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return "", err
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", errors.Wrap(err, "failed to open uploaded file")
	}
	defer src.Close()

	return bufferUpload(src, fileHeader.Filename)
}

func bufferUpload(src multipart.File, filename string) (string, error) {
	dst, err := os.CreateTemp("", "upload-*"+filepath.Ext(filename))
	if err != nil {
		return "", errors.Wrap(err, "failed to create temp file for upload")
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(dst.Name())

		return "", errors.Wrap(err, "failed to buffer uploaded file")
	}

	if err := dst.Close(); err != nil {
		os.Remove(dst.Name())

		return "", errors.Wrap(err, "failed to flush uploaded file")
	}

	return dst.Name(), nil
}
