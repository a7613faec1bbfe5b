package handler

import (
	"log/slog"
	"net/http"

	"fileshare/internal/delivery/api/response"
	deliverycontext "fileshare/internal/delivery/context"
	domainerrors "fileshare/internal/domain/errors"
	"fileshare/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ShareHandlerParams holds dependencies for ShareHandler, injected by Fx.
type ShareHandlerParams struct {
	fx.In

	ShareUC usecase.ShareUsecase
	Logger  *slog.Logger
}

// ShareHandler serves the owner-facing upload endpoints and the anonymous download endpoint.
type ShareHandler struct {
	shareUC usecase.ShareUsecase
	logger  *slog.Logger
}

// NewShareHandler is the constructor for ShareHandler
func NewShareHandler(params ShareHandlerParams) *ShareHandler {
	return &ShareHandler{
		shareUC: params.ShareUC,
		logger:  params.Logger,
	}
}

// UploadRequest holds the non-file multipart fields of an upload.
type UploadRequest struct {
	ReceiverPhone string `form:"receiverPhone" validate:"required"`
}

// Upload handles POST /upload with a multipart "file" part.
func (h *ShareHandler) Upload(c echo.Context) error {
	owner, ok := deliverycontext.GetUser(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			return httpErr
		}
		if errors.Is(err, http.ErrMissingFile) {
			return response.HandleAppError(c, domainerrors.ErrFileRequired)
		}

		return response.BadRequest(c, "INVALID_INPUT", "Malformed multipart body")
	}

	var req UploadRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer file.Close()

	out, err := h.shareUC.CreateShare(c.Request().Context(), owner, usecase.CreateShareInput{
		Content:       file,
		FileName:      fileHeader.Filename,
		FileSize:      fileHeader.Size,
		MimeType:      fileHeader.Header.Get(echo.HeaderContentType),
		ReceiverPhone: req.ReceiverPhone,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	view := newShareView(&out.ShareOutput)
	view.Notified = &out.Notified

	return response.Success(c, http.StatusCreated, "File uploaded successfully", view)
}

// ListShares handles GET /upload.
func (h *ShareHandler) ListShares(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	outputs, err := h.shareUC.ListOwned(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	views := make([]*ShareView, 0, len(outputs))
	for _, out := range outputs {
		views = append(views, newShareView(out))
	}

	return response.Success(c, http.StatusOK, "Files retrieved", views)
}

// DeleteShare handles DELETE /upload/:fileId.
func (h *ShareHandler) DeleteShare(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	shareID, err := uuid.Parse(c.Param("fileId"))
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrShareNotFound)
	}

	if err := h.shareUC.DeleteShare(c.Request().Context(), userID, shareID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "File deleted successfully", nil)
}

// ShareQRCode handles GET /upload/:fileId/qr and answers with a PNG.
func (h *ShareHandler) ShareQRCode(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	shareID, err := uuid.Parse(c.Param("fileId"))
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrShareNotFound)
	}

	png, err := h.shareUC.ShareQRCode(c.Request().Context(), userID, shareID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// Download handles GET /download/:shareId. Each successful call counts one download.
func (h *ShareHandler) Download(c echo.Context) error {
	out, err := h.shareUC.FetchForDownload(c.Request().Context(), c.Param("shareId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "File retrieved", newDownloadView(out))
}
