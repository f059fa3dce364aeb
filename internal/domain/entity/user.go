// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is the core entity of the platform: one account, which is also the
// channel it publishes under. PasswordHash and RefreshToken are session
// material and must never leave the service boundary; the delivery layer
// serializes users through a DTO that omits both.
type User struct {
	ID           uuid.UUID // The unique identifier for the account.
	Username     string    // Unique handle, stored lowercased and trimmed.
	Email        string    // Unique contact email, stored lowercased and trimmed.
	FullName     string    // Display name.
	Avatar       string    // Hosted URL of the avatar image, required at registration.
	CoverImage   string    // Hosted URL of the channel cover image, optional.
	PasswordHash string    // bcrypt hash of the password. Never the plaintext.
	RefreshToken string    // The currently valid refresh token, empty when logged out.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NormalizeIdentity lowercases and trims the username and email so that
// uniqueness checks and lookups are case-insensitive.
func (u *User) NormalizeIdentity() {
	u.Username = NormalizeHandle(u.Username)
	u.Email = NormalizeHandle(u.Email)
}

// NormalizeHandle applies the canonical form used for usernames and emails.
func NormalizeHandle(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
