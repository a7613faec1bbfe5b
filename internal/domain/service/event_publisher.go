package service

import (
	"context"
	"time"
)

// ShareEventType names a share lifecycle transition.
type ShareEventType string

const (
	ShareEventCreated    ShareEventType = "share.created"
	ShareEventDownloaded ShareEventType = "share.downloaded"
	ShareEventDeleted    ShareEventType = "share.deleted"
)

// ShareEvent is published after a share changes state.
type ShareEvent struct {
	RequestID     string         `json:"request_id,omitempty"` // For distributed tracing
	Type          ShareEventType `json:"type"`
	ShareID       string         `json:"share_id"`
	OwnerID       string         `json:"owner_id"`
	FileName      string         `json:"file_name"`
	FileSize      int64          `json:"file_size"`
	DownloadCount int64          `json:"download_count"`
	OccurredAt    time.Time      `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishShareEvent publishes a share lifecycle event
	PublishShareEvent(ctx context.Context, event *ShareEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
