package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fileshare/config"
	apimiddleware "fileshare/internal/delivery/api/middleware"
	"fileshare/internal/delivery/api/router"
	"fileshare/internal/delivery/api/router/handler"
	"fileshare/internal/domain/entity"
	domainerrors "fileshare/internal/domain/errors"
	mockUsecase "fileshare/internal/mocks/usecase"
	"fileshare/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testPhone = "+15551234567"
	testToken = "good-token"
)

type apiFixtures struct {
	echo     *echo.Echo
	otp      *mockUsecase.MockOTPUsecase
	sessions *mockUsecase.MockSessionUsecase
	profiles *mockUsecase.MockProfileUsecase
	shares   *mockUsecase.MockShareUsecase
	owner    *entity.User
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Details map[string]string `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "fileshare"
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.HTTP.CORSOrigins = []string{"http://localhost:5173"}
	cfg.Share = &config.ShareConfig{}
	cfg.Share.MaxUploadSize = 1024
	cfg.Share.RateLimit.Requests = 5
	cfg.Share.RateLimit.Window = time.Minute

	return cfg
}

func createTestAPI(t *testing.T) *apiFixtures {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := testConfig()
	phone := testPhone
	fx := &apiFixtures{
		otp:      mockUsecase.NewMockOTPUsecase(t),
		sessions: mockUsecase.NewMockSessionUsecase(t),
		profiles: mockUsecase.NewMockProfileUsecase(t),
		shares:   mockUsecase.NewMockShareUsecase(t),
		owner: &entity.User{
			ID:          uuid.New(),
			Name:        "Ada",
			PhoneNumber: &phone,
			AuthMethod:  entity.AuthMethodPhone,
		},
	}

	fx.echo = NewEcho(ServerParams{
		Cfg:             cfg,
		Logger:          logger,
		ErrorMiddleware: apimiddleware.NewErrorMiddleware(logger),
		RouterParams: router.RouterParams{
			AuthHandler: handler.NewAuthHandler(handler.AuthHandlerParams{
				OTPUC:     fx.otp,
				SessionUC: fx.sessions,
				ProfileUC: fx.profiles,
				Logger:    logger,
			}),
			ShareHandler: handler.NewShareHandler(handler.ShareHandlerParams{
				ShareUC: fx.shares,
				Logger:  logger,
			}),
			HealthHandler:  handler.NewHealthHandler(cfg),
			AuthMiddleware: apimiddleware.NewAuthMiddleware(fx.sessions),
			Config:         cfg,
		},
	})

	return fx
}

func (fx *apiFixtures) signedIn() {
	fx.sessions.EXPECT().Authenticate(mock.Anything, testToken).Return(fx.owner, nil).Maybe()
}

func (fx *apiFixtures) do(t *testing.T, req *http.Request) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	var body envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}

	return rec, body
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func authorized(req *http.Request) *http.Request {
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+testToken)

	return req
}

func uploadRequest(t *testing.T, target, receiver string, content []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if content != nil {
		part, err := w.CreateFormFile("file", "report.pdf")
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.WriteField("receiverPhone", receiver))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())

	return authorized(req)
}

func TestHealthAndRoot(t *testing.T) {
	fx := createTestAPI(t)

	for _, target := range []string{"/health", "/api/health", "/"} {
		rec, body := fx.do(t, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusOK, rec.Code, target)
		assert.True(t, body.Success, target)
		assert.NotEmpty(t, body.Meta.RequestID, target)
	}
}

func TestUnknownRoute(t *testing.T) {
	fx := createTestAPI(t)

	rec, body := fx.do(t, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "ROUTE_NOT_FOUND", body.Error.Code)
}

func TestRequestIDIsEchoed(t *testing.T) {
	fx := createTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(echo.HeaderXRequestID, "client-req-1")
	rec, body := fx.do(t, req)

	assert.Equal(t, "client-req-1", rec.Header().Get(echo.HeaderXRequestID))
	assert.Equal(t, "client-req-1", body.Meta.RequestID)
}

func TestSendOTP(t *testing.T) {
	t.Run("delivered", func(t *testing.T) {
		fx := createTestAPI(t)
		fx.otp.EXPECT().IssueCode(mock.Anything, "555-123-4567").Return(&usecase.IssueCodeOutput{
			PhoneNumber: testPhone,
			IsNewUser:   true,
			Delivered:   true,
		}, nil).Once()

		rec, body := fx.do(t, jsonRequest(http.MethodPost, "/auth/send-otp", `{"phoneNumber":"555-123-4567"}`))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "OTP sent successfully", body.Message)
		assert.JSONEq(t, `{"phoneNumber":"+15551234567","isNewUser":true,"delivered":true}`, string(body.Data))
	})

	t.Run("sms failure keeps the code and explains", func(t *testing.T) {
		fx := createTestAPI(t)
		fx.otp.EXPECT().IssueCode(mock.Anything, testPhone).Return(&usecase.IssueCodeOutput{
			PhoneNumber:   testPhone,
			DeliveryError: "Failed to send SMS, please try again later",
		}, nil).Once()

		rec, body := fx.do(t, jsonRequest(http.MethodPost, "/api/auth/send-otp", `{"phoneNumber":"+15551234567"}`))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Failed to send SMS, please try again later", body.Message)
	})

	t.Run("missing phone", func(t *testing.T) {
		fx := createTestAPI(t)

		rec, body := fx.do(t, jsonRequest(http.MethodPost, "/auth/send-otp", `{}`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, body.Error)
		assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
		assert.Contains(t, body.Error.Details, "phoneNumber")
	})

	t.Run("malformed body", func(t *testing.T) {
		fx := createTestAPI(t)

		rec, body := fx.do(t, jsonRequest(http.MethodPost, "/auth/send-otp", `{"phoneNumber":`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, body.Error)
		assert.Equal(t, "INVALID_INPUT", body.Error.Code)
	})

	t.Run("invalid number", func(t *testing.T) {
		fx := createTestAPI(t)
		fx.otp.EXPECT().IssueCode(mock.Anything, "12").Return(nil, domainerrors.ErrInvalidPhoneNumber).Once()

		rec, body := fx.do(t, jsonRequest(http.MethodPost, "/auth/send-otp", `{"phoneNumber":"12"}`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, body.Error)
		assert.Equal(t, "INVALID_PHONE_NUMBER", body.Error.Code)
	})
}

func TestVerifyOTP(t *testing.T) {
	t.Run("signs in", func(t *testing.T) {
		fx := createTestAPI(t)
		expiresAt := time.Date(2024, 5, 8, 12, 0, 0, 0, time.UTC)
		fx.otp.EXPECT().VerifyCode(mock.Anything, usecase.VerifyCodeInput{
			PhoneNumber: testPhone,
			Code:        "482913",
			Name:        "Ada",
		}).Return(&usecase.VerifyCodeOutput{
			Session: &usecase.SessionOutput{Token: "jwt", ExpiresAt: expiresAt},
			User:    fx.owner,
			Created: true,
		}, nil).Once()

		rec, body := fx.do(t, jsonRequest(http.MethodPost, "/auth/verify-otp",
			`{"phoneNumber":"+15551234567","otp":"482913","name":"Ada"}`))

		require.Equal(t, http.StatusOK, rec.Code)
		var session handler.SessionView
		require.NoError(t, json.Unmarshal(body.Data, &session))
		assert.Equal(t, "jwt", session.Token)
		assert.True(t, session.IsNewUser)
		assert.Equal(t, fx.owner.ID, session.User.ID)
		assert.Equal(t, testPhone, session.User.PhoneNumber)
	})

	failures := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"wrong code", domainerrors.ErrInvalidOTP, http.StatusBadRequest, "INVALID_OTP"},
		{"exhausted", domainerrors.ErrOTPAttemptsExhausted, http.StatusBadRequest, "OTP_ATTEMPTS_EXHAUSTED"},
		{"lost race", errors.Wrap(domainerrors.ErrConflict, "verification already consumed"), http.StatusConflict, "CONFLICT"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tc := range failures {
		t.Run(tc.name, func(t *testing.T) {
			fx := createTestAPI(t)
			fx.otp.EXPECT().VerifyCode(mock.Anything, mock.Anything).Return(nil, tc.err).Once()

			rec, body := fx.do(t, jsonRequest(http.MethodPost, "/auth/verify-otp",
				`{"phoneNumber":"+15551234567","otp":"000000"}`))

			assert.Equal(t, tc.status, rec.Code)
			require.NotNil(t, body.Error)
			assert.Equal(t, tc.code, body.Error.Code)
			assert.False(t, body.Success)
		})
	}
}

func TestProfileRequiresBearer(t *testing.T) {
	cases := []struct {
		name   string
		header string
		code   string
	}{
		{"missing header", "", "UNAUTHENTICATED"},
		{"basic scheme", "Basic dXNlcjpwYXNz", "TOKEN_INVALID"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fx := createTestAPI(t)
			req := httptest.NewRequest(http.MethodGet, "/auth/profile", nil)
			if tc.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tc.header)
			}

			rec, body := fx.do(t, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			require.NotNil(t, body.Error)
			assert.Equal(t, tc.code, body.Error.Code)
		})
	}

	t.Run("deleted user", func(t *testing.T) {
		fx := createTestAPI(t)
		fx.sessions.EXPECT().Authenticate(mock.Anything, testToken).Return(nil, domainerrors.ErrUserNotFound).Once()

		rec, _ := fx.do(t, authorized(httptest.NewRequest(http.MethodGet, "/auth/profile", nil)))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestProfile(t *testing.T) {
	fx := createTestAPI(t)
	fx.signedIn()
	fx.profiles.EXPECT().GetProfile(mock.Anything, fx.owner.ID).Return(fx.owner, nil).Once()
	email := "ada@example.com"
	fx.profiles.EXPECT().UpdateProfile(mock.Anything, fx.owner.ID, &usecase.UpdateProfileInput{Email: &email}).
		Return(&entity.User{ID: fx.owner.ID, Name: "Ada", Email: &email}, nil).Once()

	rec, body := fx.do(t, authorized(httptest.NewRequest(http.MethodGet, "/auth/profile", nil)))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(body.Data), fx.owner.ID.String())

	rec, body = fx.do(t, authorized(jsonRequest(http.MethodPut, "/auth/profile", `{"email":"ada@example.com"}`)))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(body.Data), email)

	rec, body = fx.do(t, authorized(jsonRequest(http.MethodPut, "/auth/profile", `{"email":"not-an-email"}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, body.Error)
	assert.Contains(t, body.Error.Details, "email")
}

func testShareOutput(owner *entity.User) *usecase.ShareOutput {
	token := "0123456789abcdef0123456789abcdef"

	return &usecase.ShareOutput{
		Share: &entity.FileShare{
			ID:            uuid.New(),
			ShareToken:    token,
			FileName:      "report.pdf",
			FileSize:      5,
			FileType:      "application/pdf",
			UploadedBy:    owner.ID,
			UploaderName:  owner.Name,
			ReceiverPhone: testPhone,
			IsActive:      true,
		},
		DownloadLink: "https://share.example.com/download/" + token,
	}
}

func TestUpload(t *testing.T) {
	t.Run("creates share", func(t *testing.T) {
		fx := createTestAPI(t)
		fx.signedIn()
		out := testShareOutput(fx.owner)
		fx.shares.EXPECT().CreateShare(mock.Anything, fx.owner, mock.MatchedBy(func(in usecase.CreateShareInput) bool {
			content, err := io.ReadAll(in.Content)

			return err == nil && string(content) == "hello" &&
				in.FileName == "report.pdf" && in.FileSize == 5 && in.ReceiverPhone == testPhone
		})).Return(&usecase.CreateShareOutput{ShareOutput: *out, Notified: true}, nil).Once()

		rec, body := fx.do(t, uploadRequest(t, "/upload", testPhone, []byte("hello")))

		require.Equal(t, http.StatusCreated, rec.Code)
		var view handler.ShareView
		require.NoError(t, json.Unmarshal(body.Data, &view))
		assert.Equal(t, out.Share.ShareToken, view.ShareID)
		assert.Equal(t, out.DownloadLink, view.DownloadLink)
		require.NotNil(t, view.Notified)
		assert.True(t, *view.Notified)
	})

	t.Run("missing file", func(t *testing.T) {
		fx := createTestAPI(t)
		fx.signedIn()

		rec, body := fx.do(t, uploadRequest(t, "/upload", testPhone, nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, body.Error)
		assert.Equal(t, "FILE_REQUIRED", body.Error.Code)
	})

	t.Run("missing receiver", func(t *testing.T) {
		fx := createTestAPI(t)
		fx.signedIn()

		rec, body := fx.do(t, uploadRequest(t, "/api/upload", "", []byte("hello")))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, body.Error)
		assert.Contains(t, body.Error.Details, "receiverPhone")
	})

	t.Run("body over the upload limit", func(t *testing.T) {
		fx := createTestAPI(t)
		fx.signedIn()

		rec, body := fx.do(t, uploadRequest(t, "/upload", testPhone, bytes.Repeat([]byte("x"), 2<<20)))

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
		require.NotNil(t, body.Error)
		assert.Equal(t, domainerrors.ErrPayloadTooLarge.ErrorCode(), body.Error.Code)
	})

	t.Run("rate limited after five uploads", func(t *testing.T) {
		fx := createTestAPI(t)
		fx.signedIn()
		out := testShareOutput(fx.owner)
		fx.shares.EXPECT().CreateShare(mock.Anything, fx.owner, mock.Anything).
			Return(&usecase.CreateShareOutput{ShareOutput: *out}, nil).Times(5)

		for i := 0; i < 5; i++ {
			rec, _ := fx.do(t, uploadRequest(t, "/upload", testPhone, []byte("hello")))
			require.Equal(t, http.StatusCreated, rec.Code, "upload %d", i+1)
		}

		rec, body := fx.do(t, uploadRequest(t, "/upload", testPhone, []byte("hello")))
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		require.NotNil(t, body.Error)
		assert.Equal(t, "RATE_LIMITED", body.Error.Code)
	})
}

func TestNonUploadBodiesKeepTheGlobalLimit(t *testing.T) {
	fx := createTestAPI(t)

	big := `{"phoneNumber":"` + strings.Repeat("1", 200*1024) + `"}`
	rec, _ := fx.do(t, jsonRequest(http.MethodPost, "/auth/send-otp", big))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestListAndDeleteShares(t *testing.T) {
	fx := createTestAPI(t)
	fx.signedIn()
	out := testShareOutput(fx.owner)
	foreign := uuid.New()
	fx.shares.EXPECT().ListOwned(mock.Anything, fx.owner.ID).Return([]*usecase.ShareOutput{out}, nil).Once()
	fx.shares.EXPECT().DeleteShare(mock.Anything, fx.owner.ID, out.Share.ID).Return(nil).Once()
	fx.shares.EXPECT().DeleteShare(mock.Anything, fx.owner.ID, foreign).Return(domainerrors.ErrShareOwnershipViolation).Once()

	rec, body := fx.do(t, authorized(httptest.NewRequest(http.MethodGet, "/upload", nil)))
	require.Equal(t, http.StatusOK, rec.Code)
	var views []handler.ShareView
	require.NoError(t, json.Unmarshal(body.Data, &views))
	require.Len(t, views, 1)
	assert.Equal(t, out.Share.ID, views[0].ID)
	assert.Nil(t, views[0].Notified)

	rec, _ = fx.do(t, authorized(httptest.NewRequest(http.MethodDelete, "/upload/"+out.Share.ID.String(), nil)))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, body = fx.do(t, authorized(httptest.NewRequest(http.MethodDelete, "/upload/"+foreign.String(), nil)))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, domainerrors.ErrShareOwnershipViolation.ErrorCode(), body.Error.Code)

	rec, _ = fx.do(t, authorized(httptest.NewRequest(http.MethodDelete, "/upload/not-a-uuid", nil)))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestShareQRCode(t *testing.T) {
	fx := createTestAPI(t)
	fx.signedIn()
	shareID := uuid.New()
	png := []byte("\x89PNG\r\n\x1a\n")
	fx.shares.EXPECT().ShareQRCode(mock.Anything, fx.owner.ID, shareID).Return(png, nil).Once()

	rec, _ := fx.do(t, authorized(httptest.NewRequest(http.MethodGet, "/upload/"+shareID.String()+"/qr", nil)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestDownload(t *testing.T) {
	t.Run("returns metadata", func(t *testing.T) {
		fx := createTestAPI(t)
		out := testShareOutput(fx.owner)
		out.Share.DownloadCount = 1
		fx.shares.EXPECT().FetchForDownload(mock.Anything, out.Share.ShareToken).Return(&usecase.DownloadOutput{
			Share:        out.Share,
			RetrievalURL: "https://cdn.example.com/report.pdf?sig=1",
		}, nil).Once()

		rec, body := fx.do(t, httptest.NewRequest(http.MethodGet, "/api/download/"+out.Share.ShareToken, nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var view handler.DownloadView
		require.NoError(t, json.Unmarshal(body.Data, &view))
		assert.Equal(t, "report.pdf", view.FileName)
		assert.Equal(t, "Ada", view.UploaderName)
		assert.Equal(t, "https://cdn.example.com/report.pdf?sig=1", view.URL)
		assert.EqualValues(t, 1, view.DownloadCount)
	})

	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"unknown token", domainerrors.ErrShareNotFound, http.StatusNotFound},
		{"expired link", domainerrors.ErrShareGone, http.StatusGone},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fx := createTestAPI(t)
			fx.shares.EXPECT().FetchForDownload(mock.Anything, "abc").Return(nil, tc.err).Once()

			rec, body := fx.do(t, httptest.NewRequest(http.MethodGet, "/download/abc", nil))

			assert.Equal(t, tc.status, rec.Code)
			require.NotNil(t, body.Error)
			assert.Nil(t, body.Error.Details)
		})
	}
}
