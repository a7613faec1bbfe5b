package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"fileshare/config"
	"fileshare/internal/domain/constants"
	"fileshare/internal/domain/service"

	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"cloud.google.com/go/pubsub/v2/pstest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEvent() *service.ShareEvent {
	return &service.ShareEvent{
		RequestID:  "req-1",
		Type:       service.ShareEventCreated,
		ShareID:    "share-1",
		OwnerID:    "owner-1",
		FileName:   "report.pdf",
		FileSize:   42,
		OccurredAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PublishShareEvent(t *testing.T) {
	var received PubSubPushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	require.NoError(t, publisher.PublishShareEvent(context.Background(), testEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.Equal(t, "share.created", received.Message.Attributes["type"])
	assert.Equal(t, "share-1", received.Message.Attributes["share_id"])
	assert.NotEmpty(t, received.Message.MessageID)
	assert.Equal(t, "share-1", received.Message.OrderingKey)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var event service.ShareEvent
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, "report.pdf", event.FileName)
	assert.EqualValues(t, 42, event.FileSize)
}

func TestLocalHTTPPublisher_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)

			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger()).(*localHTTPPublisher)
	publisher.retryDelay = time.Millisecond

	require.NoError(t, publisher.PublishShareEvent(context.Background(), testEvent()))
	assert.EqualValues(t, 3, calls.Load())
}

func TestLocalHTTPPublisher_GivesUp(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantCalls int32
		wantErr   string
	}{
		{"server error exhausts retries", http.StatusBadGateway, localAttempts, "502"},
		{"rejection is not retried", http.StatusBadRequest, 1, "rejected event with 400"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				calls.Add(1)
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			publisher := NewLocalHTTPPublisher(server.URL, discardLogger()).(*localHTTPPublisher)
			publisher.retryDelay = time.Millisecond

			err := publisher.PublishShareEvent(context.Background(), testEvent())

			assert.ErrorContains(t, err, tt.wantErr)
			assert.Equal(t, tt.wantCalls, calls.Load())
		})
	}
}

func TestGooglePubSubPublisher(t *testing.T) {
	ctx := context.Background()
	srv := pstest.NewServer()
	t.Cleanup(func() { _ = srv.Close() })

	opts := []option.ClientOption{
		option.WithEndpoint(srv.Addr),
		option.WithoutAuthentication(),
		option.WithGRPCDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())),
	}

	_, err := NewGooglePubSubPublisher(ctx, "fileshare", "share-events", discardLogger(), opts...)
	require.Error(t, err, "missing topic must fail fast")

	_, err = srv.GServer.CreateTopic(ctx, &pubsubpb.Topic{Name: "projects/fileshare/topics/share-events"})
	require.NoError(t, err)

	publisher, err := NewGooglePubSubPublisher(ctx, "fileshare", "share-events", discardLogger(), opts...)
	require.NoError(t, err)
	require.NoError(t, publisher.PublishShareEvent(ctx, testEvent()))
	require.NoError(t, publisher.Close())

	msgs := srv.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "share.created", msgs[0].Attributes["type"])
	assert.Equal(t, "req-1", msgs[0].Attributes["request_id"])

	var event service.ShareEvent
	require.NoError(t, json.Unmarshal(msgs[0].Data, &event))
	assert.Equal(t, "share-1", event.ShareID)
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr bool
		want    any
	}{
		{"disabled", &config.PubSubConfig{}, false, &noopPublisher{}},
		{"nil config", nil, false, &noopPublisher{}},
		{"local", &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:9999"}, false, &localHTTPPublisher{}},
		{"local without endpoint", &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, true, nil},
		{"google without project", &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, TopicID: "t"}, true, nil},
		{"google without topic", &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p"}, true, nil},
		{"unknown", &config.PubSubConfig{Provider: "kafka"}, true, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: discardLogger(),
			})

			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, publisher)
			lc.RequireStart().RequireStop()
		})
	}
}
