package repository

import (
	"context"
	"errors"
	"time"

	"fileshare/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrOTPNotFound is returned when no unverified code exists for a phone number.
	ErrOTPNotFound = errors.New("otp not found")
	// ErrOTPStateChanged is returned when a conditional update lost a race against another writer.
	ErrOTPStateChanged = errors.New("otp state changed concurrently")
)

// OTPRepository persists one-time codes. Attempt and verification updates are conditional
// single-statement writes so that concurrent verifications of one record serialize in the store.
type OTPRepository interface {
	// Create persists a new code.
	Create(ctx context.Context, otp *entity.OTP) error

	// FindLatestUnverified returns the most recently created unverified code for the phone number.
	FindLatestUnverified(ctx context.Context, phoneNumber string) (*entity.OTP, error)

	// IncrementAttempts bumps the counter only if it still equals observed and the code is unverified.
	// It returns the new counter or ErrOTPStateChanged.
	IncrementAttempts(ctx context.Context, id uuid.UUID, observed int) (int, error)

	// MarkVerified flips the verified flag only if the code is unverified, below maxAttempts and
	// not expired at now. It returns ErrOTPStateChanged when the flip did not happen.
	MarkVerified(ctx context.Context, id uuid.UUID, maxAttempts int, now time.Time) error

	// DeleteExpired removes every code whose expiry is at or before now and returns the count.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)

	// Count returns the number of stored codes.
	Count(ctx context.Context) (int64, error)
}
