// Package model holds the GORM persistence models. They mirror the tables created by the
// goose migrations and never leave the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	ExternalID      *string   `gorm:"type:text;uniqueIndex"`
	PhoneNumber     *string   `gorm:"type:text;uniqueIndex"`
	AuthMethod      string    `gorm:"type:varchar(16);not null"`
	Name            string    `gorm:"type:varchar(100);not null"`
	Email           *string   `gorm:"type:varchar(255)"`
	ProfilePicture  string    `gorm:"type:text;not null;default:''"`
	IsPhoneVerified bool      `gorm:"not null;default:false"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
