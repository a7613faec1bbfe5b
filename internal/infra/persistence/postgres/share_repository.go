package postgres

import (
	"context"
	"time"

	"fileshare/internal/domain/entity"
	domainerrors "fileshare/internal/domain/errors"
	"fileshare/internal/domain/repository"
	"fileshare/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type shareRepository struct {
	db *gorm.DB
}

// NewShareRepository is the constructor for shareRepository.
func NewShareRepository(db *gorm.DB) repository.ShareRepository {
	return &shareRepository{db: db}
}

// Create persists a new share.
func (repo *shareRepository) Create(ctx context.Context, share *entity.FileShare) error {
	if share.ID == uuid.Nil {
		share.ID = uuid.New()
	}

	shareM := fromShareDomain(share)
	if err := repo.db.WithContext(ctx).Create(shareM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "share owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create file share")
	}
	share.CreatedAt = shareM.CreatedAt
	share.UpdatedAt = shareM.UpdatedAt

	return nil
}

// FindByID retrieves a share by ID.
func (repo *shareRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.FileShare, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindByToken retrieves a share by token.
func (repo *shareRepository) FindByToken(ctx context.Context, token string) (*entity.FileShare, error) {
	return repo.findOne(ctx, "share_token = ?", token)
}

func (repo *shareRepository) findOne(ctx context.Context, query string, arg any) (*entity.FileShare, error) {
	var shareM model.FileShareModel
	if err := repo.db.WithContext(ctx).Where(query, arg).Take(&shareM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShareNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find file share")
	}

	return toShareDomain(&shareM), nil
}

// ListActiveByOwner returns active shares of the owner newest first.
func (repo *shareRepository) ListActiveByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.FileShare, error) {
	var rows []*model.FileShareModel
	err := repo.db.WithContext(ctx).
		Where("uploaded_by = ? AND is_active = ?", ownerID, true).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list file shares")
	}

	return toShareDomains(rows), nil
}

// RecordDownload increments the counter in a single UPDATE ... RETURNING statement.
func (repo *shareRepository) RecordDownload(ctx context.Context, token string, now time.Time) (*entity.FileShare, error) {
	var rows []*model.FileShareModel
	result := repo.db.WithContext(ctx).
		Model(&rows).
		Clauses(clause.Returning{}).
		Where("share_token = ? AND is_active = ? AND (expires_at IS NULL OR expires_at > ?)", token, true, now).
		Updates(map[string]any{
			"download_count":     gorm.Expr("download_count + 1"),
			"last_downloaded_at": now,
			"updated_at":         now,
		})
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to record download")
	}
	if len(rows) == 0 {
		return nil, repository.ErrShareNotFound
	}

	return toShareDomain(rows[0]), nil
}

// Deactivate soft-deletes an active share owned by ownerID.
func (repo *shareRepository) Deactivate(ctx context.Context, id, ownerID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.FileShareModel{}).
		Where("id = ? AND uploaded_by = ? AND is_active = ?", id, ownerID, true).
		Updates(map[string]any{
			"is_active":  false,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to deactivate file share")
	}
	if result.RowsAffected == 0 {
		return repository.ErrShareNotFound
	}

	return nil
}

// Stats returns aggregate share counters.
func (repo *shareRepository) Stats(ctx context.Context) (*repository.ShareStats, error) {
	var stats repository.ShareStats
	err := repo.db.WithContext(ctx).
		Model(&model.FileShareModel{}).
		Select("COUNT(*) AS total, " +
			"COUNT(*) FILTER (WHERE is_active) AS active, " +
			"COALESCE(SUM(download_count), 0) AS total_downloads").
		Scan(&stats).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to compute share stats")
	}

	return &stats, nil
}

// ListRecent returns shares newest first, including inactive ones.
func (repo *shareRepository) ListRecent(ctx context.Context, limit int) ([]*entity.FileShare, error) {
	var rows []*model.FileShareModel
	if err := repo.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list file shares")
	}

	return toShareDomains(rows), nil
}

func toShareDomains(rows []*model.FileShareModel) []*entity.FileShare {
	shares := make([]*entity.FileShare, 0, len(rows))
	for _, row := range rows {
		shares = append(shares, toShareDomain(row))
	}

	return shares
}

func toShareDomain(data *model.FileShareModel) *entity.FileShare {
	return &entity.FileShare{
		ID:               data.ID,
		ShareToken:       data.ShareToken,
		FileName:         data.FileName,
		FileSize:         data.FileSize,
		FileType:         data.FileType,
		ObjectID:         data.ObjectID,
		URL:              data.URL,
		UploadedBy:       data.UploadedBy,
		UploaderName:     data.UploaderName,
		ReceiverPhone:    data.ReceiverPhone,
		DownloadCount:    data.DownloadCount,
		LastDownloadedAt: data.LastDownloadedAt,
		ExpiresAt:        data.ExpiresAt,
		IsActive:         data.IsActive,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func fromShareDomain(data *entity.FileShare) *model.FileShareModel {
	return &model.FileShareModel{
		ID:               data.ID,
		ShareToken:       data.ShareToken,
		FileName:         data.FileName,
		FileSize:         data.FileSize,
		FileType:         data.FileType,
		ObjectID:         data.ObjectID,
		URL:              data.URL,
		UploadedBy:       data.UploadedBy,
		UploaderName:     data.UploaderName,
		ReceiverPhone:    data.ReceiverPhone,
		DownloadCount:    data.DownloadCount,
		LastDownloadedAt: data.LastDownloadedAt,
		ExpiresAt:        data.ExpiresAt,
		IsActive:         data.IsActive,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}
