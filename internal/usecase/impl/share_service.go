package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"fileshare/config"
	deliverycontext "fileshare/internal/delivery/context"
	"fileshare/internal/domain/constants"
	"fileshare/internal/domain/entity"
	domainerrors "fileshare/internal/domain/errors"
	"fileshare/internal/domain/phone"
	"fileshare/internal/domain/repository"
	"fileshare/internal/domain/service"
	"fileshare/internal/usecase"
	"fileshare/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultMimeType = "application/octet-stream"

// shareService implements the ShareUsecase interface.
type shareService struct {
	shareRepo     repository.ShareRepository
	storage       service.ObjectStorage
	dispatcher    usecase.NotificationDispatcher
	publisher     service.EventPublisher
	qrcode        service.QRCodeService
	publicBaseURL string
	maxUploadSize int64
	defaultTTL    time.Duration
	presign       bool
	presignExpiry time.Duration
	logger        *slog.Logger
	now           func() time.Time
}

// ShareServiceParams holds dependencies for ShareService, injected by Fx.
type ShareServiceParams struct {
	fx.In

	ShareRepo  repository.ShareRepository
	Storage    service.ObjectStorage
	Dispatcher usecase.NotificationDispatcher
	Publisher  service.EventPublisher
	QRCode     service.QRCodeService
	Config     *config.Config
	Logger     *slog.Logger
}

// NewShareService is the constructor for shareService.
func NewShareService(params ShareServiceParams) usecase.ShareUsecase {
	cfg := params.Config

	return &shareService{
		shareRepo:     params.ShareRepo,
		storage:       params.Storage,
		dispatcher:    params.Dispatcher,
		publisher:     params.Publisher,
		qrcode:        params.QRCode,
		publicBaseURL: strings.TrimSuffix(cfg.HTTP.PublicBaseURL, "/"),
		maxUploadSize: cfg.Share.MaxUploadSize,
		defaultTTL:    cfg.Share.DefaultTTL,
		presign:       cfg.Storage.PresignDownloads,
		presignExpiry: cfg.Storage.PresignExpiry,
		logger:        params.Logger,
		now:           time.Now,
	}
}

func (srv *shareService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *shareService) downloadLink(token string) string {
	return srv.publicBaseURL + constants.RouteDownload + token
}

// CreateShare stores the file, records the share and texts the link to the receiver.
// Nothing is recorded when storage fails; a failed SMS only clears Notified.
func (srv *shareService) CreateShare(ctx context.Context, owner *entity.User, input usecase.CreateShareInput) (*usecase.CreateShareOutput, error) {
	receiver, err := phone.Normalize(input.ReceiverPhone)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidPhoneNumber, err.Error())
	}
	fileName := strings.TrimSpace(input.FileName)
	if input.Content == nil || fileName == "" {
		return nil, errors.WithStack(domainerrors.ErrFileRequired)
	}
	if srv.maxUploadSize > 0 && input.FileSize > srv.maxUploadSize {
		return nil, errors.Wrapf(domainerrors.ErrPayloadTooLarge, "%s exceeds the %s limit",
			util.FormatBytes(input.FileSize), util.FormatBytes(srv.maxUploadSize))
	}
	mimeType := input.MimeType
	if mimeType == "" {
		mimeType = defaultMimeType
	}

	token, err := entity.NewShareToken()
	if err != nil {
		return nil, err
	}

	stored, err := srv.storage.Store(ctx, input.Content, fileName, mimeType)
	if err != nil {
		srv.log(ctx).Error("Failed to store file", slog.Any("error", err), slog.String("file_name", fileName))

		return nil, errors.Wrap(domainerrors.ErrStorageFailure, err.Error())
	}

	now := srv.now()
	share := &entity.FileShare{
		ShareToken:    token,
		FileName:      fileName,
		FileSize:      input.FileSize,
		FileType:      mimeType,
		ObjectID:      stored.ObjectID,
		URL:           stored.URL,
		UploadedBy:    owner.ID,
		UploaderName:  owner.Name,
		ReceiverPhone: receiver,
		IsActive:      true,
	}
	if srv.defaultTTL > 0 {
		expiresAt := now.Add(srv.defaultTTL)
		share.ExpiresAt = &expiresAt
	}

	if err := srv.shareRepo.Create(ctx, share); err != nil {
		if delErr := srv.storage.Delete(context.WithoutCancel(ctx), stored.ObjectID); delErr != nil {
			srv.log(ctx).Error("Failed to remove orphaned object",
				slog.Any("error", delErr),
				slog.String("object_id", stored.ObjectID),
			)
		}

		return nil, errors.Wrap(err, "failed to record share")
	}

	link := srv.downloadLink(share.ShareToken)
	notified := srv.dispatcher.SendShareLink(ctx, share, link) == nil

	srv.publish(ctx, service.ShareEventCreated, share)
	srv.log(ctx).Info("File shared",
		slog.String("share_id", share.ID.String()),
		slog.Int64("file_size", share.FileSize),
		slog.Bool("notified", notified),
	)

	return &usecase.CreateShareOutput{
		ShareOutput: usecase.ShareOutput{Share: share, DownloadLink: link},
		Notified:    notified,
	}, nil
}

// ListOwned returns the owner's active shares newest first.
func (srv *shareService) ListOwned(ctx context.Context, ownerID uuid.UUID) ([]*usecase.ShareOutput, error) {
	shares, err := srv.shareRepo.ListActiveByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shares")
	}

	outputs := make([]*usecase.ShareOutput, 0, len(shares))
	for _, share := range shares {
		outputs = append(outputs, &usecase.ShareOutput{Share: share, DownloadLink: srv.downloadLink(share.ShareToken)})
	}

	return outputs, nil
}

// FetchForDownload counts one download and returns where the bytes can be fetched.
func (srv *shareService) FetchForDownload(ctx context.Context, token string) (*usecase.DownloadOutput, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, errors.WithStack(domainerrors.ErrShareNotFound)
	}

	now := srv.now()
	share, err := srv.shareRepo.RecordDownload(ctx, token, now)
	if errors.Is(err, repository.ErrShareNotFound) {
		return nil, srv.classifyUndownloadable(ctx, token)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to record download")
	}

	retrievalURL := share.URL
	if srv.presign {
		retrievalURL, err = srv.storage.PresignedURL(ctx, share.ObjectID, srv.presignExpiry)
		if err != nil {
			return nil, errors.Wrap(domainerrors.ErrStorageFailure, err.Error())
		}
	}

	srv.publish(ctx, service.ShareEventDownloaded, share)

	return &usecase.DownloadOutput{Share: share, RetrievalURL: retrievalURL}, nil
}

// classifyUndownloadable explains why a token did not qualify for a download.
func (srv *shareService) classifyUndownloadable(ctx context.Context, token string) error {
	share, err := srv.shareRepo.FindByToken(ctx, token)
	if errors.Is(err, repository.ErrShareNotFound) {
		return errors.WithStack(domainerrors.ErrShareNotFound)
	}
	if err != nil {
		return errors.Wrap(err, "failed to find share")
	}
	if !share.IsActive {
		return errors.WithStack(domainerrors.ErrShareNotFound)
	}

	// Active but not counted: the expiry has passed.
	return errors.WithStack(domainerrors.ErrShareGone)
}

// DeleteShare removes the stored object and deactivates the share. If the object cannot be
// removed the share stays active.
func (srv *shareService) DeleteShare(ctx context.Context, ownerID, shareID uuid.UUID) error {
	share, err := srv.findOwnedShare(ctx, ownerID, shareID)
	if err != nil {
		return err
	}

	if err := srv.storage.Delete(ctx, share.ObjectID); err != nil {
		srv.log(ctx).Error("Failed to delete stored object", slog.Any("error", err), slog.String("share_id", shareID.String()))

		return errors.Wrap(domainerrors.ErrStorageFailure, err.Error())
	}

	if err := srv.shareRepo.Deactivate(ctx, shareID, ownerID); err != nil {
		if errors.Is(err, repository.ErrShareNotFound) {
			return errors.WithStack(domainerrors.ErrShareNotFound)
		}

		return errors.Wrap(err, "failed to deactivate share")
	}
	share.IsActive = false

	srv.publish(ctx, service.ShareEventDeleted, share)
	srv.log(ctx).Info("Share deleted", slog.String("share_id", shareID.String()))

	return nil
}

// ShareQRCode renders the download link of an owned, active share.
func (srv *shareService) ShareQRCode(ctx context.Context, ownerID, shareID uuid.UUID) ([]byte, error) {
	share, err := srv.findOwnedShare(ctx, ownerID, shareID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcode.GenerateLinkQR(srv.downloadLink(share.ShareToken))
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate QR code")
	}

	return png, nil
}

// Stats returns aggregate share counters.
func (srv *shareService) Stats(ctx context.Context) (*repository.ShareStats, error) {
	stats, err := srv.shareRepo.Stats(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load share stats")
	}

	return stats, nil
}

func (srv *shareService) findOwnedShare(ctx context.Context, ownerID, shareID uuid.UUID) (*entity.FileShare, error) {
	share, err := srv.shareRepo.FindByID(ctx, shareID)
	if errors.Is(err, repository.ErrShareNotFound) {
		return nil, errors.WithStack(domainerrors.ErrShareNotFound)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find share")
	}
	if !share.IsActive {
		return nil, errors.WithStack(domainerrors.ErrShareNotFound)
	}
	if !share.OwnedBy(ownerID) {
		return nil, errors.WithStack(domainerrors.ErrShareOwnershipViolation)
	}

	return share, nil
}

// publish sends a share event. Failures are logged and dropped.
func (srv *shareService) publish(ctx context.Context, eventType service.ShareEventType, share *entity.FileShare) {
	event := &service.ShareEvent{
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		Type:          eventType,
		ShareID:       share.ID.String(),
		OwnerID:       share.UploadedBy.String(),
		FileName:      share.FileName,
		FileSize:      share.FileSize,
		DownloadCount: share.DownloadCount,
		OccurredAt:    srv.now(),
	}
	if err := srv.publisher.PublishShareEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish share event",
			slog.Any("error", err),
			slog.String("type", string(eventType)),
			slog.String("share_id", event.ShareID),
		)
	}
}
