package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileShare_IsDownloadable(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Minute)
	future := now.Add(time.Minute)

	assert.True(t, (&FileShare{IsActive: true}).IsDownloadable(now))
	assert.True(t, (&FileShare{IsActive: true, ExpiresAt: &future}).IsDownloadable(now))
	assert.False(t, (&FileShare{IsActive: true, ExpiresAt: &past}).IsDownloadable(now))
	assert.False(t, (&FileShare{IsActive: false}).IsDownloadable(now))
}

func TestFileShare_OwnedBy(t *testing.T) {
	owner := uuid.New()
	share := &FileShare{UploadedBy: owner}

	assert.True(t, share.OwnedBy(owner))
	assert.False(t, share.OwnedBy(uuid.New()))
}

func TestNewShareToken(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		token, err := NewShareToken()
		require.NoError(t, err)
		assert.Len(t, token, 32)
		assert.Regexp(t, "^[0-9a-f]{32}$", token)

		_, dup := seen[token]
		assert.False(t, dup)
		seen[token] = struct{}{}
	}
}
