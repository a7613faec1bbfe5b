// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"fileshare/internal/domain/entity"
)

// NotificationDispatcher composes and sends user-facing SMS messages. Callers decide whether a
// returned error is fatal.
type NotificationDispatcher interface {
	SendCode(ctx context.Context, phoneNumber, code string) error
	SendShareLink(ctx context.Context, share *entity.FileShare, downloadLink string) error
}
