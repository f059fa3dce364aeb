package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Username     string    `gorm:"type:varchar(100);unique;not null;index"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	FullName     string    `gorm:"type:varchar(100);not null;index"`
	Avatar       string    `gorm:"type:text;not null"`
	CoverImage   string    `gorm:"type:text"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	RefreshToken string    `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Videos        []VideoModel        `gorm:"foreignKey:OwnerID"`
	Subscriptions []SubscriptionModel `gorm:"foreignKey:SubscriberID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
