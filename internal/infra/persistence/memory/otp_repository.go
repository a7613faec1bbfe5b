package memory

import (
	"context"
	"time"

	"fileshare/internal/domain/entity"
	"fileshare/internal/domain/repository"

	"github.com/google/uuid"
)

type otpRepository struct {
	scope
}

func (repo *otpRepository) Create(_ context.Context, otp *entity.OTP) error {
	d, release := repo.acquire()
	defer release()

	if otp.ID == uuid.Nil {
		otp.ID = uuid.New()
	}
	if otp.CreatedAt.IsZero() {
		otp.CreatedAt = time.Now()
	}
	d.nextSeq++
	d.otpSeq[otp.ID] = d.nextSeq
	d.otps[otp.ID] = *otp

	return nil
}

func (repo *otpRepository) FindLatestUnverified(_ context.Context, phoneNumber string) (*entity.OTP, error) {
	d, release := repo.acquire()
	defer release()

	var latest *entity.OTP
	var latestSeq uint64
	for id, otp := range d.otps {
		if otp.PhoneNumber != phoneNumber || otp.Verified {
			continue
		}
		seq := d.otpSeq[id]
		if latest == nil || otp.CreatedAt.After(latest.CreatedAt) ||
			(otp.CreatedAt.Equal(latest.CreatedAt) && seq > latestSeq) {
			o := otp
			latest = &o
			latestSeq = seq
		}
	}
	if latest == nil {
		return nil, repository.ErrOTPNotFound
	}

	return latest, nil
}

func (repo *otpRepository) IncrementAttempts(_ context.Context, id uuid.UUID, observed int) (int, error) {
	d, release := repo.acquire()
	defer release()

	otp, ok := d.otps[id]
	if !ok || otp.Verified || otp.Attempts != observed {
		return 0, repository.ErrOTPStateChanged
	}
	otp.Attempts++
	d.otps[id] = otp

	return otp.Attempts, nil
}

func (repo *otpRepository) MarkVerified(_ context.Context, id uuid.UUID, maxAttempts int, now time.Time) error {
	d, release := repo.acquire()
	defer release()

	otp, ok := d.otps[id]
	if !ok || otp.Verified || otp.Attempts >= maxAttempts || otp.IsExpired(now) {
		return repository.ErrOTPStateChanged
	}
	otp.Verified = true
	d.otps[id] = otp

	return nil
}

func (repo *otpRepository) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	d, release := repo.acquire()
	defer release()

	var deleted int64
	for id, otp := range d.otps {
		if otp.ExpiresAt.After(now) {
			continue
		}
		delete(d.otps, id)
		delete(d.otpSeq, id)
		deleted++
	}

	return deleted, nil
}

func (repo *otpRepository) Count(_ context.Context) (int64, error) {
	d, release := repo.acquire()
	defer release()

	return int64(len(d.otps)), nil
}
