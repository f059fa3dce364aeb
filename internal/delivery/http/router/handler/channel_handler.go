package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"cliphub/internal/delivery/http/response"
	domainerrors "cliphub/internal/domain/errors"
	"cliphub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ChannelHandler holds dependencies for the channel and watch history endpoints.
type ChannelHandler struct {
	uc     usecase.ChannelUsecase
	logger *slog.Logger
}

// NewChannelHandler is the constructor for ChannelHandler, injected by Fx.
func NewChannelHandler(uc usecase.ChannelUsecase, logger *slog.Logger) *ChannelHandler {
	return &ChannelHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetChannelProfile returns the public profile of the channel named in the path.
func (h *ChannelHandler) GetChannelProfile(c echo.Context) error {
	viewerID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	profile, err := h.uc.GetChannelProfile(c.Request().Context(), c.Param("username"), viewerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newChannelProfileView(profile), "Channel profile fetched successfully")
}

// ToggleSubscription subscribes or unsubscribes the viewer from the channel.
func (h *ChannelHandler) ToggleSubscription(c echo.Context) error {
	viewerID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	subscribed, err := h.uc.ToggleSubscription(c.Request().Context(), c.Param("username"), viewerID)
	if err != nil {
		return errors.WithStack(err)
	}

	message := "Subscribed successfully"
	if !subscribed {
		message = "Unsubscribed successfully"
	}

	return response.Success(c, http.StatusOK, map[string]bool{"subscribed": subscribed}, message)
}

// WatchHistory returns the viewer's most recent watch events, newest first.
// An optional limit query parameter caps the page size.
func (h *ChannelHandler) WatchHistory(c echo.Context) error {
	viewerID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		limit, _ = strconv.Atoi(raw)
	}

	entries, err := h.uc.WatchHistory(c.Request().Context(), viewerID, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newWatchHistoryView(entries), "Watch history fetched successfully")
}

// RecordWatch appends a watch event for the video named in the path.
func (h *ChannelHandler) RecordWatch(c echo.Context) error {
	viewerID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	videoID, err := uuid.Parse(c.Param("videoID"))
	if err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "invalid video id")
	}

	if err := h.uc.RecordWatch(c.Request().Context(), viewerID, videoID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Watch recorded successfully")
}
