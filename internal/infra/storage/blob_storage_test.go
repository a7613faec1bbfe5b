package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"fileshare/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	"gocloud.dev/blob/memblob"
)

func createTestBlobStorage(t *testing.T, cfg *config.StorageConfig) (*blobStorage, *blob.Bucket) {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	return NewBlobStorage(bucket, cfg, slog.New(slog.NewTextHandler(io.Discard, nil))).(*blobStorage), bucket
}

func TestBlobStorage_StoreAndDelete(t *testing.T) {
	ctx := context.Background()
	storage, bucket := createTestBlobStorage(t, &config.StorageConfig{
		BucketURL:     "mem://",
		PublicBaseURL: "https://cdn.example.com/",
		KeyPrefix:     "/uploads/",
	})

	obj, err := storage.Store(ctx, strings.NewReader("hello world"), "Report.PDF", "application/pdf")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(obj.ObjectID, "uploads/"))
	assert.True(t, strings.HasSuffix(obj.ObjectID, ".pdf"))
	assert.Equal(t, "https://cdn.example.com/"+obj.ObjectID, obj.URL)

	data, err := bucket.ReadAll(ctx, obj.ObjectID)
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(data))

	attrs, err := bucket.Attributes(ctx, obj.ObjectID)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", attrs.ContentType)
	assert.Contains(t, attrs.ContentDisposition, "Report.PDF")

	require.NoError(t, storage.Delete(ctx, obj.ObjectID))
	exists, err := bucket.Exists(ctx, obj.ObjectID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestBlobStorage_DeleteMissingIsNotAnError(t *testing.T) {
	storage, _ := createTestBlobStorage(t, &config.StorageConfig{BucketURL: "mem://"})

	assert.NoError(t, storage.Delete(context.Background(), "never-stored"))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("client went away") }

func TestBlobStorage_StoreReadFailure(t *testing.T) {
	ctx := context.Background()
	storage, bucket := createTestBlobStorage(t, &config.StorageConfig{BucketURL: "mem://"})

	_, err := storage.Store(ctx, failingReader{}, "a.txt", "text/plain")
	require.Error(t, err)

	iter := bucket.List(nil)
	_, err = iter.Next(ctx)
	assert.ErrorIs(t, err, io.EOF)
}

func TestBlobStorage_URLFallsBackToBucket(t *testing.T) {
	storage, _ := createTestBlobStorage(t, &config.StorageConfig{BucketURL: "s3://files?region=us-east-1"})

	assert.Equal(t, "s3://files", storage.publicBaseURL)
}

func TestRedactURL(t *testing.T) {
	assert.Equal(t, "s3://bucket", redactURL("s3://bucket?region=eu-west-1&endpoint=http://minio:9000"))
	assert.Equal(t, "mem://", redactURL("mem://"))
}
