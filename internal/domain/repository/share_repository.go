package repository

import (
	"context"
	"errors"
	"time"

	"fileshare/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrShareNotFound is returned when no share matches the lookup.
var ErrShareNotFound = errors.New("file share not found")

// ShareStats summarizes stored shares.
type ShareStats struct {
	Total          int64
	Active         int64
	TotalDownloads int64
}

// ShareRepository persists file shares. Records are never hard-deleted.
type ShareRepository interface {
	// Create persists a new share.
	Create(ctx context.Context, share *entity.FileShare) error

	// FindByID retrieves a share regardless of its active flag.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.FileShare, error)

	// FindByToken retrieves a share by its token regardless of its active flag.
	FindByToken(ctx context.Context, token string) (*entity.FileShare, error)

	// ListActiveByOwner returns the owner's active shares newest first.
	ListActiveByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.FileShare, error)

	// RecordDownload atomically increments the download counter of an active, unexpired share
	// and returns the updated record. It returns ErrShareNotFound when no row qualified.
	RecordDownload(ctx context.Context, token string, now time.Time) (*entity.FileShare, error)

	// Deactivate flips the active flag of a share owned by ownerID. It returns ErrShareNotFound
	// when the share is missing, foreign or already inactive.
	Deactivate(ctx context.Context, id, ownerID uuid.UUID) error

	// Stats returns aggregate counters.
	Stats(ctx context.Context) (*ShareStats, error)

	// ListRecent returns shares newest first, including inactive ones.
	ListRecent(ctx context.Context, limit int) ([]*entity.FileShare, error)
}
