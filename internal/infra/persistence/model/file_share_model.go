package model

import (
	"time"

	"github.com/google/uuid"
)

// FileShareModel mirrors the 'file_shares' table.
type FileShareModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShareToken       string    `gorm:"type:char(32);uniqueIndex;not null"`
	FileName         string    `gorm:"type:text;not null"`
	FileSize         int64     `gorm:"not null"`
	FileType         string    `gorm:"type:varchar(255);not null"`
	ObjectID         string    `gorm:"type:text;not null"`
	URL              string    `gorm:"type:text;not null"`
	UploadedBy       uuid.UUID `gorm:"type:uuid;not null;index:idx_file_shares_owner_created,priority:1"`
	UploaderName     string    `gorm:"type:varchar(100);not null"`
	ReceiverPhone    string    `gorm:"type:text;not null"`
	DownloadCount    int64     `gorm:"not null;default:0"`
	LastDownloadedAt *time.Time
	ExpiresAt        *time.Time
	IsActive         bool      `gorm:"not null;default:true"`
	CreatedAt        time.Time `gorm:"index:idx_file_shares_owner_created,priority:2,sort:desc"`
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (FileShareModel) TableName() string {
	return "file_shares"
}
