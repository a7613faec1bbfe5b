package model

import (
	"time"

	"github.com/google/uuid"
)

// OTPModel mirrors the 'otp_codes' table.
type OTPModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	PhoneNumber string    `gorm:"type:text;not null;index:idx_otp_codes_phone_created,priority:1"`
	CodeHash    string    `gorm:"type:text;not null"`
	ExpiresAt   time.Time `gorm:"not null;index"`
	Verified    bool      `gorm:"not null;default:false"`
	Attempts    int       `gorm:"not null;default:0"`
	CreatedAt   time.Time `gorm:"index:idx_otp_codes_phone_created,priority:2,sort:desc"`
}

// TableName explicitly sets the table name for GORM.
func (OTPModel) TableName() string {
	return "otp_codes"
}
