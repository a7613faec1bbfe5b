// Package storage implements ObjectStorage on gocloud.dev buckets (S3, GCS, local files, memory).
package storage

import (
	"context"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"fileshare/config"
	"fileshare/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
	"gocloud.dev/gcerrors"
)

type blobStorage struct {
	bucket        *blob.Bucket
	keyPrefix     string
	publicBaseURL string
	logger        *slog.Logger
}

// StorageParams holds dependencies for ObjectStorage, injected by Fx
type StorageParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewObjectStorage opens the configured bucket and closes it on shutdown.
func NewObjectStorage(params StorageParams) (service.ObjectStorage, error) {
	cfg := params.Config.Storage

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", redactURL(cfg.BucketURL))
	}

	params.Logger.Info("Object storage bucket opened", slog.String("bucket", redactURL(cfg.BucketURL)))

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing object storage bucket")

			return errors.WithStack(bucket.Close())
		},
	})

	return NewBlobStorage(bucket, cfg, params.Logger), nil
}

// NewBlobStorage wraps an open bucket. Retrieval URLs are built from publicBaseURL, or from the
// bucket URL when none is configured.
func NewBlobStorage(bucket *blob.Bucket, cfg *config.StorageConfig, logger *slog.Logger) service.ObjectStorage {
	base := cfg.PublicBaseURL
	if base == "" {
		base = redactURL(cfg.BucketURL)
	}

	return &blobStorage{
		bucket:        bucket,
		keyPrefix:     strings.Trim(cfg.KeyPrefix, "/"),
		publicBaseURL: strings.TrimSuffix(base, "/"),
		logger:        logger,
	}
}

func (s *blobStorage) Store(ctx context.Context, content io.Reader, fileName, mimeType string) (*service.StoredObject, error) {
	key := s.objectKey(fileName)

	opts := &blob.WriterOptions{
		ContentType:        mimeType,
		ContentDisposition: mime.FormatMediaType("attachment", map[string]string{"filename": fileName}),
	}
	// Canceling the writer context before Close aborts the upload.
	writeCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	writer, err := s.bucket.NewWriter(writeCtx, key, opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open object writer")
	}

	if _, err := io.Copy(writer, content); err != nil {
		cancel()
		_ = writer.Close()

		return nil, errors.Wrap(err, "failed to write object")
	}
	if err := writer.Close(); err != nil {
		return nil, errors.Wrap(err, "failed to commit object")
	}

	return &service.StoredObject{
		ObjectID: key,
		URL:      s.publicBaseURL + "/" + key,
	}, nil
}

func (s *blobStorage) Delete(ctx context.Context, objectID string) error {
	err := s.bucket.Delete(ctx, objectID)
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "failed to delete object %s", objectID)
	}

	return nil
}

func (s *blobStorage) PresignedURL(ctx context.Context, objectID string, expiry time.Duration) (string, error) {
	signed, err := s.bucket.SignedURL(ctx, objectID, &blob.SignedURLOptions{
		Expiry: expiry,
		Method: http.MethodGet,
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to sign URL for object %s", objectID)
	}

	return signed, nil
}

// objectKey keeps the extension so that storage consoles and CDNs infer the type.
func (s *blobStorage) objectKey(fileName string) string {
	key := uuid.NewString() + strings.ToLower(path.Ext(path.Base(fileName)))
	if s.keyPrefix == "" {
		return key
	}

	return s.keyPrefix + "/" + key
}

// redactURL drops the query string, which may carry credentials or endpoints.
func redactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	u.RawQuery = ""
	u.User = nil

	return u.String()
}
