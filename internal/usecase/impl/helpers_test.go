package impl

import (
	"io"
	"log/slog"
	"time"

	"cliphub/internal/domain/entity"
	"cliphub/internal/domain/service"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func refreshClaims(userID uuid.UUID) *service.Claims {
	return &service.Claims{
		UserID: userID,
		Type:   service.TokenTypeRefresh,
	}
}

func newTestUser() *entity.User {
	return &entity.User{
		ID:           uuid.New(),
		Username:     "testuser",
		Email:        "test@example.com",
		FullName:     "Test User",
		Avatar:       "https://media.example.com/avatar.png",
		PasswordHash: "hashed_password",
		CreatedAt:    time.Now().Add(-time.Hour),
		UpdatedAt:    time.Now(),
	}
}
