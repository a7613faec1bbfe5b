package entity

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ShareTokenBytes is the amount of randomness in a share token; the token is its hex encoding.
const ShareTokenBytes = 16

// FileShare is a single uploaded file and the public link that hands it to a recipient.
type FileShare struct {
	ID               uuid.UUID
	ShareToken       string // Immutable, unguessable token embedded in the download link.
	FileName         string
	FileSize         int64
	FileType         string // MIME type
	ObjectID         string // Storage provider object key.
	URL              string // Retrieval URL returned by the storage provider.
	UploadedBy       uuid.UUID
	UploaderName     string
	ReceiverPhone    string
	DownloadCount    int64
	LastDownloadedAt *time.Time
	ExpiresAt        *time.Time // nil means the link never expires.
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IsExpired reports whether the share has an expiry in the past.
func (f *FileShare) IsExpired(now time.Time) bool {
	return f.ExpiresAt != nil && now.After(*f.ExpiresAt)
}

// IsDownloadable reports whether the share can still be fetched at now.
func (f *FileShare) IsDownloadable(now time.Time) bool {
	return f.IsActive && !f.IsExpired(now)
}

// OwnedBy reports whether userID created the share.
func (f *FileShare) OwnedBy(userID uuid.UUID) bool {
	return f.UploadedBy == userID
}

// NewShareToken returns a fresh 32-character hex token.
func NewShareToken() (string, error) {
	buf := make([]byte, ShareTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to read random token")
	}

	return hex.EncodeToString(buf), nil
}
