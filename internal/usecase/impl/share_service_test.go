package impl

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"fileshare/config"
	"fileshare/internal/domain/entity"
	domainerrors "fileshare/internal/domain/errors"
	"fileshare/internal/domain/repository"
	"fileshare/internal/domain/service"
	"fileshare/internal/infra/persistence/memory"
	"fileshare/internal/infra/storage"
	mockRepo "fileshare/internal/mocks/repository"
	mockSvc "fileshare/internal/mocks/service"
	mockUsecase "fileshare/internal/mocks/usecase"
	"fileshare/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	"gocloud.dev/blob/memblob"
)

type shareServiceFixtures struct {
	service    *shareService
	shareRepo  *mockRepo.MockShareRepository
	storage    *mockSvc.MockObjectStorage
	dispatcher *mockUsecase.MockNotificationDispatcher
	publisher  *mockSvc.MockEventPublisher
	qrcode     *mockSvc.MockQRCodeService
	now        time.Time
}

func createTestShareService(t *testing.T, tweak func(cfg *config.Config)) shareServiceFixtures {
	fx := shareServiceFixtures{
		shareRepo:  mockRepo.NewMockShareRepository(t),
		storage:    mockSvc.NewMockObjectStorage(t),
		dispatcher: mockUsecase.NewMockNotificationDispatcher(t),
		publisher:  mockSvc.NewMockEventPublisher(t),
		qrcode:     mockSvc.NewMockQRCodeService(t),
		now:        time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}

	cfg := newTestConfig()
	if tweak != nil {
		tweak(cfg)
	}

	fx.service = NewShareService(ShareServiceParams{
		ShareRepo:  fx.shareRepo,
		Storage:    fx.storage,
		Dispatcher: fx.dispatcher,
		Publisher:  fx.publisher,
		QRCode:     fx.qrcode,
		Config:     cfg,
		Logger:     newDiscardLogger(),
	}).(*shareService)
	fx.service.now = func() time.Time { return fx.now }

	return fx
}

func testOwner() *entity.User {
	return &entity.User{ID: uuid.New(), Name: "Ada", PhoneNumber: strPtr("+15550000001")}
}

func testShare(owner uuid.UUID) *entity.FileShare {
	return &entity.FileShare{
		ID:            uuid.New(),
		ShareToken:    "0123456789abcdef0123456789abcdef",
		FileName:      "report.pdf",
		FileSize:      10,
		FileType:      "application/pdf",
		ObjectID:      "uploads/obj.pdf",
		URL:           "https://cdn.example.com/uploads/obj.pdf",
		UploadedBy:    owner,
		ReceiverPhone: testPhone,
		IsActive:      true,
	}
}

func TestShareService_CreateShare(t *testing.T) {
	fx := createTestShareService(t, nil)
	ctx := context.Background()
	owner := testOwner()
	content := strings.NewReader("hello")

	fx.storage.EXPECT().Store(ctx, content, "report.pdf", "application/octet-stream").
		Return(&service.StoredObject{ObjectID: "uploads/obj.pdf", URL: "https://cdn.example.com/uploads/obj.pdf"}, nil)
	fx.shareRepo.EXPECT().Create(ctx, mock.MatchedBy(func(s *entity.FileShare) bool {
		return s.UploadedBy == owner.ID &&
			s.UploaderName == "Ada" &&
			s.ReceiverPhone == testPhone &&
			s.IsActive &&
			s.ExpiresAt == nil &&
			len(s.ShareToken) == 2*entity.ShareTokenBytes
	})).Return(nil)
	fx.dispatcher.EXPECT().SendShareLink(ctx, mock.AnythingOfType("*entity.FileShare"), mock.AnythingOfType("string")).Return(nil)
	fx.publisher.EXPECT().PublishShareEvent(ctx, mock.MatchedBy(func(e *service.ShareEvent) bool {
		return e.Type == service.ShareEventCreated && e.OwnerID == owner.ID.String()
	})).Return(nil)

	out, err := fx.service.CreateShare(ctx, owner, usecase.CreateShareInput{
		Content:       content,
		FileName:      " report.pdf ",
		FileSize:      5,
		ReceiverPhone: "15551234567",
	})

	require.NoError(t, err)
	assert.True(t, out.Notified)
	assert.Equal(t, "https://share.example.com/download/"+out.Share.ShareToken, out.DownloadLink)
	assert.Equal(t, "application/octet-stream", out.Share.FileType)
}

func TestShareService_CreateShare_DefaultTTLAndFailedSMS(t *testing.T) {
	fx := createTestShareService(t, func(cfg *config.Config) { cfg.Share.DefaultTTL = 24 * time.Hour })
	ctx := context.Background()

	fx.storage.EXPECT().Store(ctx, mock.Anything, "a.txt", "text/plain").Return(&service.StoredObject{ObjectID: "k"}, nil)
	fx.shareRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.dispatcher.EXPECT().SendShareLink(ctx, mock.Anything, mock.Anything).Return(domainerrors.NewProviderError("twilio", 30003, "unreachable"))
	fx.publisher.EXPECT().PublishShareEvent(ctx, mock.Anything).Return(errors.New("broker down"))

	out, err := fx.service.CreateShare(ctx, testOwner(), usecase.CreateShareInput{
		Content:       strings.NewReader("hi"),
		FileName:      "a.txt",
		FileSize:      2,
		MimeType:      "text/plain",
		ReceiverPhone: testPhone,
	})

	require.NoError(t, err)
	assert.False(t, out.Notified)
	require.NotNil(t, out.Share.ExpiresAt)
	assert.Equal(t, fx.now.Add(24*time.Hour), *out.Share.ExpiresAt)
}

func TestShareService_CreateShare_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		input   usecase.CreateShareInput
		wantErr error
	}{
		{
			name:    "bad receiver",
			input:   usecase.CreateShareInput{Content: strings.NewReader("x"), FileName: "a", FileSize: 1, ReceiverPhone: "abc"},
			wantErr: domainerrors.ErrInvalidPhoneNumber,
		},
		{
			name:    "no file",
			input:   usecase.CreateShareInput{FileName: "a", ReceiverPhone: testPhone},
			wantErr: domainerrors.ErrFileRequired,
		},
		{
			name:    "no file name",
			input:   usecase.CreateShareInput{Content: strings.NewReader("x"), FileName: "  ", ReceiverPhone: testPhone},
			wantErr: domainerrors.ErrFileRequired,
		},
		{
			name:    "too large",
			input:   usecase.CreateShareInput{Content: strings.NewReader("x"), FileName: "a", FileSize: 1025, ReceiverPhone: testPhone},
			wantErr: domainerrors.ErrPayloadTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestShareService(t, nil)

			_, err := fx.service.CreateShare(context.Background(), testOwner(), tt.input)

			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestShareService_CreateShare_StorageFailureRecordsNothing(t *testing.T) {
	fx := createTestShareService(t, nil)
	ctx := context.Background()

	fx.storage.EXPECT().Store(ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("bucket unavailable"))

	_, err := fx.service.CreateShare(ctx, testOwner(), usecase.CreateShareInput{
		Content: strings.NewReader("x"), FileName: "a", FileSize: 1, ReceiverPhone: testPhone,
	})

	assert.True(t, errors.Is(err, domainerrors.ErrStorageFailure))
}

func TestShareService_CreateShare_RecordFailureRemovesObject(t *testing.T) {
	fx := createTestShareService(t, nil)
	ctx := context.Background()

	fx.storage.EXPECT().Store(ctx, mock.Anything, mock.Anything, mock.Anything).Return(&service.StoredObject{ObjectID: "orphan"}, nil)
	fx.shareRepo.EXPECT().Create(ctx, mock.Anything).Return(errors.New("insert failed"))
	fx.storage.EXPECT().Delete(mock.Anything, "orphan").Return(nil)

	_, err := fx.service.CreateShare(ctx, testOwner(), usecase.CreateShareInput{
		Content: strings.NewReader("x"), FileName: "a", FileSize: 1, ReceiverPhone: testPhone,
	})

	assert.ErrorContains(t, err, "insert failed")
}

func TestShareService_ListOwned(t *testing.T) {
	fx := createTestShareService(t, nil)
	owner := uuid.New()
	share := testShare(owner)

	fx.shareRepo.EXPECT().ListActiveByOwner(mock.Anything, owner).Return([]*entity.FileShare{share}, nil)

	out, err := fx.service.ListOwned(context.Background(), owner)

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "https://share.example.com/download/"+share.ShareToken, out[0].DownloadLink)
}

func TestShareService_FetchForDownload(t *testing.T) {
	fx := createTestShareService(t, nil)
	ctx := context.Background()
	share := testShare(uuid.New())
	share.DownloadCount = 1

	fx.shareRepo.EXPECT().RecordDownload(ctx, share.ShareToken, fx.now).Return(share, nil)
	fx.publisher.EXPECT().PublishShareEvent(ctx, mock.MatchedBy(func(e *service.ShareEvent) bool {
		return e.Type == service.ShareEventDownloaded && e.DownloadCount == 1
	})).Return(nil)

	out, err := fx.service.FetchForDownload(ctx, share.ShareToken)

	require.NoError(t, err)
	assert.Equal(t, share.URL, out.RetrievalURL)
}

func TestShareService_FetchForDownload_Presigned(t *testing.T) {
	fx := createTestShareService(t, func(cfg *config.Config) { cfg.Storage.PresignDownloads = true })
	ctx := context.Background()
	share := testShare(uuid.New())

	fx.shareRepo.EXPECT().RecordDownload(ctx, share.ShareToken, fx.now).Return(share, nil)
	fx.storage.EXPECT().PresignedURL(ctx, share.ObjectID, 15*time.Minute).Return("https://signed.example.com/x", nil)
	fx.publisher.EXPECT().PublishShareEvent(ctx, mock.Anything).Return(nil)

	out, err := fx.service.FetchForDownload(ctx, share.ShareToken)

	require.NoError(t, err)
	assert.Equal(t, "https://signed.example.com/x", out.RetrievalURL)
}

func TestShareService_FetchForDownload_Undownloadable(t *testing.T) {
	token := "0123456789abcdef0123456789abcdef"

	tests := []struct {
		name    string
		found   *entity.FileShare
		findErr error
		wantErr error
	}{
		{name: "unknown token", findErr: repository.ErrShareNotFound, wantErr: domainerrors.ErrShareNotFound},
		{name: "deleted share", found: &entity.FileShare{IsActive: false}, wantErr: domainerrors.ErrShareNotFound},
		{name: "expired share", found: &entity.FileShare{IsActive: true}, wantErr: domainerrors.ErrShareGone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestShareService(t, nil)

			fx.shareRepo.EXPECT().RecordDownload(mock.Anything, token, fx.now).Return(nil, repository.ErrShareNotFound)
			fx.shareRepo.EXPECT().FindByToken(mock.Anything, token).Return(tt.found, tt.findErr)

			_, err := fx.service.FetchForDownload(context.Background(), token)

			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestShareService_DeleteShare(t *testing.T) {
	fx := createTestShareService(t, nil)
	ctx := context.Background()
	owner := uuid.New()
	share := testShare(owner)

	fx.shareRepo.EXPECT().FindByID(ctx, share.ID).Return(share, nil)
	fx.storage.EXPECT().Delete(ctx, share.ObjectID).Return(nil)
	fx.shareRepo.EXPECT().Deactivate(ctx, share.ID, owner).Return(nil)
	fx.publisher.EXPECT().PublishShareEvent(ctx, mock.MatchedBy(func(e *service.ShareEvent) bool {
		return e.Type == service.ShareEventDeleted
	})).Return(nil)

	require.NoError(t, fx.service.DeleteShare(ctx, owner, share.ID))
}

func TestShareService_DeleteShare_Failures(t *testing.T) {
	owner := uuid.New()

	tests := []struct {
		name    string
		caller  uuid.UUID
		setup   func(fx shareServiceFixtures, share *entity.FileShare)
		wantErr error
	}{
		{
			name:   "missing",
			caller: owner,
			setup: func(fx shareServiceFixtures, share *entity.FileShare) {
				fx.shareRepo.EXPECT().FindByID(mock.Anything, share.ID).Return(nil, repository.ErrShareNotFound)
			},
			wantErr: domainerrors.ErrShareNotFound,
		},
		{
			name:   "already deleted",
			caller: owner,
			setup: func(fx shareServiceFixtures, share *entity.FileShare) {
				share.IsActive = false
				fx.shareRepo.EXPECT().FindByID(mock.Anything, share.ID).Return(share, nil)
			},
			wantErr: domainerrors.ErrShareNotFound,
		},
		{
			name:   "foreign share",
			caller: uuid.New(),
			setup: func(fx shareServiceFixtures, share *entity.FileShare) {
				fx.shareRepo.EXPECT().FindByID(mock.Anything, share.ID).Return(share, nil)
			},
			wantErr: domainerrors.ErrShareOwnershipViolation,
		},
		{
			name:   "storage refuses",
			caller: owner,
			setup: func(fx shareServiceFixtures, share *entity.FileShare) {
				fx.shareRepo.EXPECT().FindByID(mock.Anything, share.ID).Return(share, nil)
				fx.storage.EXPECT().Delete(mock.Anything, share.ObjectID).Return(errors.New("permission denied"))
			},
			wantErr: domainerrors.ErrStorageFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestShareService(t, nil)
			share := testShare(owner)
			tt.setup(fx, share)

			err := fx.service.DeleteShare(context.Background(), tt.caller, share.ID)

			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestShareService_ShareQRCode(t *testing.T) {
	fx := createTestShareService(t, nil)
	owner := uuid.New()
	share := testShare(owner)

	fx.shareRepo.EXPECT().FindByID(mock.Anything, share.ID).Return(share, nil)
	fx.qrcode.EXPECT().GenerateLinkQR("https://share.example.com/download/"+share.ShareToken).Return([]byte("png"), nil)

	png, err := fx.service.ShareQRCode(context.Background(), owner, share.ID)

	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}

// createStoreBackedShareService wires the service to the in-memory driver and a memblob bucket,
// with one share already uploaded.
func createStoreBackedShareService(t *testing.T) (*shareService, repository.ShareRepository, *blob.Bucket, *entity.User, *entity.FileShare) {
	t.Helper()

	ctx := context.Background()
	store := memory.NewStore()
	users := memory.NewUserRepository(store)
	shares := memory.NewShareRepository(store)

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	cfg := newTestConfig()
	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().PublishShareEvent(mock.Anything, mock.Anything).Return(nil)
	dispatcher := mockUsecase.NewMockNotificationDispatcher(t)
	dispatcher.EXPECT().SendShareLink(mock.Anything, mock.Anything, mock.Anything).Return(nil)

	srv := NewShareService(ShareServiceParams{
		ShareRepo:  shares,
		Storage:    storage.NewBlobStorage(bucket, cfg.Storage, newDiscardLogger()),
		Dispatcher: dispatcher,
		Publisher:  publisher,
		QRCode:     mockSvc.NewMockQRCodeService(t),
		Config:     cfg,
		Logger:     newDiscardLogger(),
	}).(*shareService)

	owner := testOwner()
	require.NoError(t, users.Create(ctx, owner))

	created, err := srv.CreateShare(ctx, owner, usecase.CreateShareInput{
		Content:       bytes.NewReader([]byte("payload")),
		FileName:      "notes.txt",
		FileSize:      7,
		MimeType:      "text/plain",
		ReceiverPhone: testPhone,
	})
	require.NoError(t, err)

	return srv, shares, bucket, owner, created.Share
}

func TestShareService_SequentialDownloadsCountUp(t *testing.T) {
	srv, _, _, _, share := createStoreBackedShareService(t)
	ctx := context.Background()

	for want := int64(1); want <= 5; want++ {
		out, err := srv.FetchForDownload(ctx, share.ShareToken)
		require.NoError(t, err)

		assert.Equal(t, want, out.Share.DownloadCount)
		assert.Equal(t, "notes.txt", out.Share.FileName)
		assert.EqualValues(t, 7, out.Share.FileSize)
		assert.Equal(t, "text/plain", out.Share.FileType)
		assert.NotEmpty(t, out.RetrievalURL)
	}
}

func TestShareService_ConcurrentDownloadsAreAllCounted(t *testing.T) {
	srv, shares, bucket, owner, created := createStoreBackedShareService(t)
	ctx := context.Background()

	const downloads = 25
	var wg sync.WaitGroup
	wg.Add(downloads)
	for i := 0; i < downloads; i++ {
		go func() {
			defer wg.Done()
			if _, err := srv.FetchForDownload(ctx, created.ShareToken); err != nil {
				t.Errorf("download failed: %v", err)
			}
		}()
	}
	wg.Wait()

	got, err := shares.FindByToken(ctx, created.ShareToken)
	require.NoError(t, err)
	assert.EqualValues(t, downloads, got.DownloadCount)
	assert.NotNil(t, got.LastDownloadedAt)

	require.NoError(t, srv.DeleteShare(ctx, owner.ID, got.ID))
	exists, err := bucket.Exists(ctx, got.ObjectID)
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = srv.FetchForDownload(ctx, created.ShareToken)
	assert.True(t, errors.Is(err, domainerrors.ErrShareNotFound))
}
