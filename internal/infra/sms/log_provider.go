package sms

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "fileshare/internal/delivery/context"
	"fileshare/internal/domain/phone"
	"fileshare/internal/domain/service"

	"github.com/google/uuid"
)

type logProvider struct {
	logger *slog.Logger
}

// NewLogProvider creates an SMSProvider that only logs messages. Used in development.
func NewLogProvider(logger *slog.Logger) service.SMSProvider {
	return &logProvider{logger: logger}
}

func (p *logProvider) Send(ctx context.Context, to, body string) (*service.SMSReceipt, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, p.logger)
	logger.Info("SMS message (not delivered)",
		slog.String("to", phone.Mask(to)),
		slog.String("body", body),
	)

	return &service.SMSReceipt{
		MessageID: "log-" + uuid.NewString(),
		Status:    "logged",
		SentAt:    time.Now(),
	}, nil
}
