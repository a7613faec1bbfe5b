package memory

import (
	"context"
	"sort"
	"time"

	"fileshare/internal/domain/entity"
	domainerrors "fileshare/internal/domain/errors"
	"fileshare/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type shareRepository struct {
	scope
}

func (repo *shareRepository) Create(_ context.Context, share *entity.FileShare) error {
	d, release := repo.acquire()
	defer release()

	if share.ID == uuid.Nil {
		share.ID = uuid.New()
	}
	if _, ok := d.users[share.UploadedBy]; !ok {
		return errors.Wrap(domainerrors.ErrUserNotFound, "share owner does not exist")
	}
	if _, taken := d.sharesByToken[share.ShareToken]; taken {
		return domainerrors.NewDatabaseExecuteError(errors.New("duplicate share token"), "failed to create file share")
	}

	now := time.Now()
	share.CreatedAt = now
	share.UpdatedAt = now
	d.shares[share.ID] = *share
	d.sharesByToken[share.ShareToken] = share.ID

	return nil
}

func (repo *shareRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.FileShare, error) {
	d, release := repo.acquire()
	defer release()

	return d.shareByID(id)
}

func (repo *shareRepository) FindByToken(_ context.Context, token string) (*entity.FileShare, error) {
	d, release := repo.acquire()
	defer release()

	id, ok := d.sharesByToken[token]
	if !ok {
		return nil, repository.ErrShareNotFound
	}

	return d.shareByID(id)
}

func (repo *shareRepository) ListActiveByOwner(_ context.Context, ownerID uuid.UUID) ([]*entity.FileShare, error) {
	d, release := repo.acquire()
	defer release()

	shares := make([]*entity.FileShare, 0)
	for _, share := range d.shares {
		if share.UploadedBy != ownerID || !share.IsActive {
			continue
		}
		s := share
		shares = append(shares, &s)
	}
	sortNewestFirst(shares)

	return shares, nil
}

func (repo *shareRepository) RecordDownload(_ context.Context, token string, now time.Time) (*entity.FileShare, error) {
	d, release := repo.acquire()
	defer release()

	id, ok := d.sharesByToken[token]
	if !ok {
		return nil, repository.ErrShareNotFound
	}
	share := d.shares[id]
	if !share.IsActive || (share.ExpiresAt != nil && !share.ExpiresAt.After(now)) {
		return nil, repository.ErrShareNotFound
	}

	share.DownloadCount++
	downloadedAt := now
	share.LastDownloadedAt = &downloadedAt
	share.UpdatedAt = now
	d.shares[id] = share

	return &share, nil
}

func (repo *shareRepository) Deactivate(_ context.Context, id, ownerID uuid.UUID) error {
	d, release := repo.acquire()
	defer release()

	share, ok := d.shares[id]
	if !ok || share.UploadedBy != ownerID || !share.IsActive {
		return repository.ErrShareNotFound
	}
	share.IsActive = false
	share.UpdatedAt = time.Now()
	d.shares[id] = share

	return nil
}

func (repo *shareRepository) Stats(_ context.Context) (*repository.ShareStats, error) {
	d, release := repo.acquire()
	defer release()

	stats := &repository.ShareStats{}
	for _, share := range d.shares {
		stats.Total++
		if share.IsActive {
			stats.Active++
		}
		stats.TotalDownloads += share.DownloadCount
	}

	return stats, nil
}

func (repo *shareRepository) ListRecent(_ context.Context, limit int) ([]*entity.FileShare, error) {
	d, release := repo.acquire()
	defer release()

	shares := make([]*entity.FileShare, 0, len(d.shares))
	for _, share := range d.shares {
		s := share
		shares = append(shares, &s)
	}
	sortNewestFirst(shares)
	if limit > 0 && len(shares) > limit {
		shares = shares[:limit]
	}

	return shares, nil
}

func (d *dataset) shareByID(id uuid.UUID) (*entity.FileShare, error) {
	share, ok := d.shares[id]
	if !ok {
		return nil, repository.ErrShareNotFound
	}

	return &share, nil
}

func sortNewestFirst(shares []*entity.FileShare) {
	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].CreatedAt.After(shares[j].CreatedAt)
	})
}
