package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"fileshare/config"
	deliverycontext "fileshare/internal/delivery/context"
	"fileshare/internal/domain/entity"
	domainerrors "fileshare/internal/domain/errors"
	"fileshare/internal/domain/phone"
	"fileshare/internal/domain/service"
	"fileshare/internal/errors"
	"fileshare/internal/usecase"
)

// notificationDispatcher implements the NotificationDispatcher interface over an SMSProvider.
type notificationDispatcher struct {
	sms     service.SMSProvider
	codeTTL time.Duration
	logger  *slog.Logger
}

// NewNotificationDispatcher is the constructor for notificationDispatcher.
func NewNotificationDispatcher(sms service.SMSProvider, cfg *config.Config, logger *slog.Logger) usecase.NotificationDispatcher {
	return &notificationDispatcher{
		sms:     sms,
		codeTTL: cfg.OTP.CodeTTL,
		logger:  logger,
	}
}

func (d *notificationDispatcher) SendCode(ctx context.Context, phoneNumber, code string) error {
	body := fmt.Sprintf("Your verification code is: %s. This code will expire in %s.", code, humanMinutes(d.codeTTL))

	return d.send(ctx, phoneNumber, body, "verification_code")
}

func (d *notificationDispatcher) SendShareLink(ctx context.Context, share *entity.FileShare, downloadLink string) error {
	body := fmt.Sprintf("%s shared a file with you!\n\nFile: %s\n\nDownload: %s", share.UploaderName, share.FileName, downloadLink)

	return d.send(ctx, share.ReceiverPhone, body, "share_link")
}

func (d *notificationDispatcher) send(ctx context.Context, phoneNumber, body, kind string) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, d.logger)

	receipt, err := d.sms.Send(ctx, phoneNumber, body)
	if err != nil {
		attrs := []any{
			slog.String("kind", kind),
			slog.String("to", phone.Mask(phoneNumber)),
			slog.Any("error", err),
		}
		if providerErr, ok := errors.AsType[*domainerrors.ProviderError](err); ok {
			attrs = append(attrs,
				slog.String("provider", providerErr.Provider()),
				slog.Int("provider_code", providerErr.Code()),
				slog.Bool("trial_restricted", providerErr.TrialRestricted()),
			)
		}
		logger.Warn("SMS delivery failed", attrs...)

		return err
	}

	logger.Info("SMS sent",
		slog.String("kind", kind),
		slog.String("to", phone.Mask(phoneNumber)),
		slog.String("message_id", receipt.MessageID),
		slog.String("status", receipt.Status),
	)

	return nil
}

// deliveryMessage returns the user-facing text for a failed SMS.
func deliveryMessage(err error) string {
	if providerErr, ok := errors.AsType[*domainerrors.ProviderError](err); ok {
		return providerErr.Message()
	}

	return domainerrors.NewProviderError("", 0, "").Message()
}

func humanMinutes(d time.Duration) string {
	minutes := int(math.Round(d.Minutes()))
	if minutes == 1 {
		return "1 minute"
	}

	return fmt.Sprintf("%d minutes", minutes)
}
