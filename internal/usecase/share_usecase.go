// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"io"

	"fileshare/internal/domain/entity"
	"fileshare/internal/domain/repository"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateShareInput describes an upload. Content is read once.
type CreateShareInput struct {
	Content       io.Reader
	FileName      string
	FileSize      int64
	MimeType      string
	ReceiverPhone string
}

// --- Output DTOs ---

// ShareOutput is a share together with its public download link.
type ShareOutput struct {
	Share        *entity.FileShare
	DownloadLink string
}

// CreateShareOutput adds the notification outcome to a created share.
type CreateShareOutput struct {
	ShareOutput
	Notified bool
}

// DownloadOutput is the metadata returned for an anonymous download.
type DownloadOutput struct {
	Share        *entity.FileShare
	RetrievalURL string
}

// ShareUsecase manages file shares and their public links.
type ShareUsecase interface {
	CreateShare(ctx context.Context, owner *entity.User, input CreateShareInput) (*CreateShareOutput, error)
	ListOwned(ctx context.Context, ownerID uuid.UUID) ([]*ShareOutput, error)
	FetchForDownload(ctx context.Context, token string) (*DownloadOutput, error)
	DeleteShare(ctx context.Context, ownerID, shareID uuid.UUID) error
	ShareQRCode(ctx context.Context, ownerID, shareID uuid.UUID) ([]byte, error)
	Stats(ctx context.Context) (*repository.ShareStats, error)
}
