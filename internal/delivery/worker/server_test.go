package worker

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fileshare/config"
	"fileshare/internal/delivery/worker/handler"
	"fileshare/internal/domain/constants"
	"fileshare/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestWorker(t *testing.T, pushHandler *handler.PushHandler) *echo.Echo {
	t.Helper()

	cfg := &config.Config{}
	cfg.Env.Env = constants.EnvLocal

	if pushHandler == nil {
		pushHandler = handler.NewPushHandler(handler.PushHandlerParams{Config: cfg, Logger: discardLogger()})
	}

	return NewEcho(ServerParams{Cfg: cfg, Logger: discardLogger(), PushHandler: pushHandler})
}

func pushBody(t *testing.T, data string) string {
	t.Helper()

	var msg handler.PubSubMessage
	msg.Subscription = "projects/local/subscriptions/share-events"
	msg.Message.MessageID = "m-1"
	msg.Message.Data = data
	msg.Message.Attributes = map[string]string{"request_id": "req-1"}

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func encodedEvent(t *testing.T, event *service.ShareEvent) string {
	t.Helper()

	raw, err := json.Marshal(event)
	require.NoError(t, err)

	return base64.StdEncoding.EncodeToString(raw)
}

func postPush(e *echo.Echo, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestPush(t *testing.T) {
	event := &service.ShareEvent{
		Type:       service.ShareEventDownloaded,
		ShareID:    "0123456789abcdef0123456789abcdef",
		OwnerID:    "7f2c1d8e-3b4a-4c5d-9e6f-0a1b2c3d4e5f",
		FileName:   "report.pdf",
		OccurredAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}

	cases := []struct {
		name   string
		body   string
		status int
	}{
		{"valid event", pushBody(t, encodedEvent(t, event)), http.StatusOK},
		{"not json", "{", http.StatusBadRequest},
		{"bad base64", pushBody(t, "%%%"), http.StatusBadRequest},
		{"payload is not an event", pushBody(t, base64.StdEncoding.EncodeToString([]byte("[1]"))), http.StatusBadRequest},
		{"event without type", pushBody(t, encodedEvent(t, &service.ShareEvent{ShareID: "x"})), http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := createTestWorker(t, nil)

			rec := postPush(e, tc.body, nil)

			assert.Equal(t, tc.status, rec.Code)
		})
	}
}

func TestPush_VerifiesToken(t *testing.T) {
	var gotToken, gotAudience string
	pushHandler := handler.NewPushHandler(handler.PushHandlerParams{Config: &config.Config{}, Logger: discardLogger()}).
		WithTokenValidator(func(_ context.Context, token, audience string) error {
			gotToken, gotAudience = token, audience
			if token != "signed" {
				return errors.New("bad signature")
			}

			return nil
		})
	e := createTestWorker(t, pushHandler)
	body := pushBody(t, encodedEvent(t, &service.ShareEvent{Type: service.ShareEventCreated, ShareID: "abc"}))

	rec := postPush(e, body, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = postPush(e, body, map[string]string{echo.HeaderAuthorization: "Bearer forged"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = postPush(e, body, map[string]string{echo.HeaderAuthorization: "Bearer signed"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "signed", gotToken)
	assert.Equal(t, "http://example.com/push", gotAudience)
}

func TestWorkerHealth(t *testing.T) {
	e := createTestWorker(t, nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
