// Package sms provides SMSProvider implementations.
package sms

import (
	"log/slog"

	"fileshare/config"
	"fileshare/internal/domain/service"

	"github.com/pkg/errors"
)

// NewSMSProvider creates an SMSProvider for the configured provider.
func NewSMSProvider(cfg *config.Config, logger *slog.Logger) (service.SMSProvider, error) {
	switch cfg.SMS.Provider {
	case config.SMSProviderTwilio:
		return NewTwilioProvider(cfg.SMS)
	case config.SMSProviderLog, "":
		logger.Warn("SMS provider is log-only, messages are not delivered")

		return NewLogProvider(logger), nil
	default:
		return nil, errors.Errorf("unknown SMS provider: %s", cfg.SMS.Provider)
	}
}
