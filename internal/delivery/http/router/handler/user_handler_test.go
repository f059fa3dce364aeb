package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cliphub/internal/delivery/http/middleware"
	"cliphub/internal/delivery/http/validator"
	"cliphub/internal/domain/entity"
	domainerrors "cliphub/internal/domain/errors"
	mockservice "cliphub/internal/mocks/service"
	mockusecase "cliphub/internal/mocks/usecase"
	"cliphub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userHandlerFixture struct {
	handler   *UserHandler
	uc        *mockusecase.MockUserUsecase
	profileUc *mockusecase.MockProfileUsecase
	tokenSvc  *mockservice.MockTokenService
	echo      *echo.Echo
}

func newUserHandlerFixture(t *testing.T) *userHandlerFixture {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	uc := mockusecase.NewMockUserUsecase(t)
	profileUc := mockusecase.NewMockProfileUsecase(t)
	tokenSvc := mockservice.NewMockTokenService(t)

	return &userHandlerFixture{
		handler:   NewUserHandler(uc, profileUc, tokenSvc, newDiscardLogger()),
		uc:        uc,
		profileUc: profileUc,
		tokenSvc:  tokenSvc,
		echo:      e,
	}
}

func (f *userHandlerFixture) jsonContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return f.echo.NewContext(req, rec), rec
}

func (f *userHandlerFixture) expectTokenDurations() {
	f.tokenSvc.EXPECT().AccessTokenDuration().Return(15 * time.Minute)
	f.tokenSvc.EXPECT().RefreshTokenDuration().Return(7 * 24 * time.Hour)
}

func cookieByName(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}

	t.Fatalf("cookie %q not set on response", name)

	return nil
}

func sessionUser() *entity.User {
	return &entity.User{
		ID:       uuid.New(),
		Username: "testuser",
		Email:    "test@example.com",
		FullName: "Test User",
		Avatar:   "https://media.example.com/avatar.png",
	}
}

func TestUserHandler_Login_SetsSessionCookies(t *testing.T) {
	fixture := newUserHandlerFixture(t)
	account := sessionUser()

	fixture.uc.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Username: "testuser", Password: "password123"}).
		Return(&usecase.AuthOutput{
			User:         account,
			AccessToken:  "access-token",
			RefreshToken: "refresh-token",
		}, nil)
	fixture.expectTokenDurations()

	c, rec := fixture.jsonContext(http.MethodPost, "/api/v1/users/login",
		`{"username":"testuser","password":"password123"}`)

	require.NoError(t, fixture.handler.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	access := cookieByName(t, rec, "accessToken")
	assert.Equal(t, "access-token", access.Value)
	assert.True(t, access.HttpOnly)
	assert.True(t, access.Secure)
	assert.Equal(t, http.SameSiteStrictMode, access.SameSite)
	assert.Equal(t, int((15 * time.Minute).Seconds()), access.MaxAge)

	refresh := cookieByName(t, rec, "refreshToken")
	assert.Equal(t, "refresh-token", refresh.Value)
	assert.True(t, refresh.HttpOnly)
	assert.True(t, refresh.Secure)
	assert.Equal(t, int((7 * 24 * time.Hour).Seconds()), refresh.MaxAge)

	body := rec.Body.String()
	assert.Contains(t, body, `"success":true`)
	assert.Contains(t, body, "testuser")
	assert.NotContains(t, body, "passwordHash")
}

func TestUserHandler_Login_MissingPassword(t *testing.T) {
	fixture := newUserHandlerFixture(t)

	c, _ := fixture.jsonContext(http.MethodPost, "/api/v1/users/login",
		`{"username":"testuser"}`)

	err := fixture.handler.Login(c)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserHandler_Login_UnknownAccount(t *testing.T) {
	fixture := newUserHandlerFixture(t)

	fixture.uc.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, domainerrors.ErrUserNotFound)

	c, _ := fixture.jsonContext(http.MethodPost, "/api/v1/users/login",
		`{"email":"ghost@example.com","password":"password123"}`)

	err := fixture.handler.Login(c)

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserHandler_Logout_ExpiresCookies(t *testing.T) {
	fixture := newUserHandlerFixture(t)
	userID := uuid.New()

	fixture.uc.EXPECT().Logout(mock.Anything, userID).Return(nil)

	c, rec := fixture.jsonContext(http.MethodPost, "/api/v1/users/logout", "")
	c.Set(middleware.ContextKeyUserID, userID)

	require.NoError(t, fixture.handler.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	access := cookieByName(t, rec, "accessToken")
	assert.Empty(t, access.Value)
	assert.Equal(t, -1, access.MaxAge)

	refresh := cookieByName(t, rec, "refreshToken")
	assert.Empty(t, refresh.Value)
	assert.Equal(t, -1, refresh.MaxAge)
}

func TestUserHandler_Logout_Unauthenticated(t *testing.T) {
	fixture := newUserHandlerFixture(t)

	c, _ := fixture.jsonContext(http.MethodPost, "/api/v1/users/logout", "")

	err := fixture.handler.Logout(c)

	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestUserHandler_RefreshToken_RotatesCookies(t *testing.T) {
	fixture := newUserHandlerFixture(t)
	account := sessionUser()

	fixture.uc.EXPECT().
		Refresh(mock.Anything, "old-refresh-token").
		Return(&usecase.AuthOutput{
			User:         account,
			AccessToken:  "new-access-token",
			RefreshToken: "new-refresh-token",
		}, nil)
	fixture.expectTokenDurations()

	c, rec := fixture.jsonContext(http.MethodPost, "/api/v1/users/refreshToken", "")
	c.Request().AddCookie(&http.Cookie{Name: "refreshToken", Value: "old-refresh-token"})

	require.NoError(t, fixture.handler.RefreshToken(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "new-access-token", cookieByName(t, rec, "accessToken").Value)
	assert.Equal(t, "new-refresh-token", cookieByName(t, rec, "refreshToken").Value)
}

func TestUserHandler_RefreshToken_MissingCookie(t *testing.T) {
	fixture := newUserHandlerFixture(t)

	c, _ := fixture.jsonContext(http.MethodPost, "/api/v1/users/refreshToken", "")

	err := fixture.handler.RefreshToken(c)

	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestUserHandler_RefreshToken_IgnoresAuthorizationHeader(t *testing.T) {
	fixture := newUserHandlerFixture(t)

	c, _ := fixture.jsonContext(http.MethodPost, "/api/v1/users/refreshToken", "")
	c.Request().Header.Set(echo.HeaderAuthorization, "Bearer some-refresh-token")

	err := fixture.handler.RefreshToken(c)

	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestUserHandler_ChangePassword_Success(t *testing.T) {
	fixture := newUserHandlerFixture(t)
	userID := uuid.New()

	fixture.uc.EXPECT().
		ChangePassword(mock.Anything, userID, &usecase.ChangePasswordInput{
			OldPassword: "oldpassword",
			NewPassword: "newpassword",
		}).
		Return(nil)

	c, rec := fixture.jsonContext(http.MethodPatch, "/api/v1/users/updatePassword",
		`{"oldPassword":"oldpassword","newPassword":"newpassword"}`)
	c.Set(middleware.ContextKeyUserID, userID)

	require.NoError(t, fixture.handler.ChangePassword(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Password changed successfully")
}

func TestUserHandler_ChangePassword_ShortNewPassword(t *testing.T) {
	fixture := newUserHandlerFixture(t)

	c, _ := fixture.jsonContext(http.MethodPatch, "/api/v1/users/updatePassword",
		`{"oldPassword":"oldpassword","newPassword":"abc"}`)
	c.Set(middleware.ContextKeyUserID, uuid.New())

	err := fixture.handler.ChangePassword(c)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserHandler_CurrentUser_ReturnsContextUser(t *testing.T) {
	fixture := newUserHandlerFixture(t)
	account := sessionUser()

	c, rec := fixture.jsonContext(http.MethodGet, "/api/v1/users/currentUser", "")
	c.Set(middleware.ContextKeyUser, account)

	require.NoError(t, fixture.handler.CurrentUser(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, account.Username)
	assert.NotContains(t, body, "passwordHash")
	assert.NotContains(t, body, "refreshToken")
}

func TestUserHandler_UpdateAccountDetails_Success(t *testing.T) {
	fixture := newUserHandlerFixture(t)
	userID := uuid.New()
	updated := sessionUser()
	updated.FullName = "Renamed User"

	fixture.profileUc.EXPECT().
		UpdateAccountDetails(mock.Anything, userID, &usecase.UpdateAccountInput{FullName: "Renamed User"}).
		Return(updated, nil)

	c, rec := fixture.jsonContext(http.MethodPatch, "/api/v1/users/updateAccountDetails",
		`{"fullName":"Renamed User"}`)
	c.Set(middleware.ContextKeyUserID, userID)

	require.NoError(t, fixture.handler.UpdateAccountDetails(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Renamed User")
}

func TestUserHandler_UpdateAccountDetails_BadEmail(t *testing.T) {
	fixture := newUserHandlerFixture(t)

	c, _ := fixture.jsonContext(http.MethodPatch, "/api/v1/users/updateAccountDetails",
		`{"email":"not-an-email"}`)
	c.Set(middleware.ContextKeyUserID, uuid.New())

	err := fixture.handler.UpdateAccountDetails(c)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
