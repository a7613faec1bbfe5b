package service

import (
	"context"
	"time"
)

// SMSReceipt is the provider acknowledgement of an accepted message.
type SMSReceipt struct {
	MessageID string
	Status    string
	SentAt    time.Time
}

// SMSProvider sends text messages. Failures are returned as *errors.ProviderError.
type SMSProvider interface {
	Send(ctx context.Context, to, body string) (*SMSReceipt, error)
}
