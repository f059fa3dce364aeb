// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"cliphub/internal/delivery/http/middleware"
	"cliphub/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	ChannelHandler      *handler.ChannelHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler         *handler.UserHandler
	channelHandler      *handler.ChannelHandler
	authMiddleware      *middleware.AuthMiddleware
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:         params.UserHandler,
		channelHandler:      params.ChannelHandler,
		authMiddleware:      params.AuthMiddleware,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	users := e.Group("/api/v1/users")
	{
		// Public session endpoints
		users.POST("/register", r.userHandler.Register)
		users.POST("/login", r.userHandler.Login)
		users.POST("/refreshToken", r.userHandler.RefreshToken)
	}

	// Everything below requires a valid access token.
	secured := users.Group("", r.authMiddleware.Authenticate)
	{
		secured.POST("/logout", r.userHandler.Logout)
		secured.PATCH("/updatePassword", r.userHandler.ChangePassword)
		secured.GET("/currentUser", r.userHandler.CurrentUser)
		secured.PATCH("/updateAccountDetails", r.userHandler.UpdateAccountDetails)
		secured.PATCH("/updateAvatar", r.userHandler.UpdateAvatar)
		secured.PATCH("/updateCoverImage", r.userHandler.UpdateCoverImage)

		secured.GET("/channelProfile/:username", r.channelHandler.GetChannelProfile)
		secured.POST("/channelProfile/:username/subscribe", r.channelHandler.ToggleSubscription)

		secured.GET("/watchHistory", r.channelHandler.WatchHistory)
		secured.POST("/watchHistory/:videoID", r.channelHandler.RecordWatch)
	}
}
