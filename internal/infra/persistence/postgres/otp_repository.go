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
)

type otpRepository struct {
	db *gorm.DB
}

// NewOTPRepository is the constructor for otpRepository.
func NewOTPRepository(db *gorm.DB) repository.OTPRepository {
	return &otpRepository{db: db}
}

// Create persists a new one-time code.
func (repo *otpRepository) Create(ctx context.Context, otp *entity.OTP) error {
	if otp.ID == uuid.Nil {
		otp.ID = uuid.New()
	}

	otpM := fromOTPDomain(otp)
	if err := repo.db.WithContext(ctx).Create(otpM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create otp")
	}
	otp.CreatedAt = otpM.CreatedAt

	return nil
}

// FindLatestUnverified returns the newest unverified code by creation time.
func (repo *otpRepository) FindLatestUnverified(ctx context.Context, phoneNumber string) (*entity.OTP, error) {
	var otpM model.OTPModel
	err := repo.db.WithContext(ctx).
		Where("phone_number = ? AND verified = ?", phoneNumber, false).
		Order("created_at DESC").
		Take(&otpM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOTPNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find otp")
	}

	return toOTPDomain(&otpM), nil
}

// IncrementAttempts is a compare-and-swap on the attempt counter.
func (repo *otpRepository) IncrementAttempts(ctx context.Context, id uuid.UUID, observed int) (int, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.OTPModel{}).
		Where("id = ? AND verified = ? AND attempts = ?", id, false, observed).
		Update("attempts", gorm.Expr("attempts + 1"))
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to increment otp attempts")
	}
	if result.RowsAffected == 0 {
		return 0, repository.ErrOTPStateChanged
	}

	return observed + 1, nil
}

// MarkVerified flips verified only while the code is still live.
func (repo *otpRepository) MarkVerified(ctx context.Context, id uuid.UUID, maxAttempts int, now time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OTPModel{}).
		Where("id = ? AND verified = ? AND attempts < ? AND expires_at >= ?", id, false, maxAttempts, now).
		Update("verified", true)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark otp verified")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOTPStateChanged
	}

	return nil
}

// DeleteExpired removes codes whose expiry has passed.
func (repo *otpRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("expires_at <= ?", now).
		Delete(&model.OTPModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete expired otps")
	}

	return result.RowsAffected, nil
}

// Count returns the number of stored codes.
func (repo *otpRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.OTPModel{}).Count(&count).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count otps")
	}

	return count, nil
}

func toOTPDomain(data *model.OTPModel) *entity.OTP {
	return &entity.OTP{
		ID:          data.ID,
		PhoneNumber: data.PhoneNumber,
		CodeHash:    data.CodeHash,
		ExpiresAt:   data.ExpiresAt,
		Verified:    data.Verified,
		Attempts:    data.Attempts,
		CreatedAt:   data.CreatedAt,
	}
}

func fromOTPDomain(data *entity.OTP) *model.OTPModel {
	return &model.OTPModel{
		ID:          data.ID,
		PhoneNumber: data.PhoneNumber,
		CodeHash:    data.CodeHash,
		ExpiresAt:   data.ExpiresAt,
		Verified:    data.Verified,
		Attempts:    data.Attempts,
		CreatedAt:   data.CreatedAt,
	}
}
