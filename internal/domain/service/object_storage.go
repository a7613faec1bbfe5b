package service

import (
	"context"
	"io"
	"time"
)

// StoredObject identifies an uploaded object.
type StoredObject struct {
	ObjectID string
	URL      string
}

// ObjectStorage holds the bytes of shared files.
type ObjectStorage interface {
	// Store writes the content and returns its object reference and retrieval URL.
	Store(ctx context.Context, content io.Reader, fileName, mimeType string) (*StoredObject, error)

	// Delete removes an object. Deleting a missing object is not an error.
	Delete(ctx context.Context, objectID string) error

	// PresignedURL returns a time-limited retrieval URL for the object.
	PresignedURL(ctx context.Context, objectID string, expiry time.Duration) (string, error)
}
