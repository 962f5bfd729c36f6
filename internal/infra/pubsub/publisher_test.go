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

	"ecospot/config"
	"ecospot/internal/domain/constants"
	"ecospot/internal/domain/entity"
	"ecospot/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestMessage() *service.LocationChangedMessage {
	return &service.LocationChangedMessage{
		RequestID: "req-1",
		Event: &entity.LocationChangedEvent{
			UserID:     uuid.New(),
			Before:     &entity.Location{Lat: 44.81, Lng: 20.46},
			After:      &entity.Location{Lat: 44.82, Lng: 20.45},
			Version:    7,
			OccurredAt: time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
		},
	}
}

func TestEncodeLocationChanged_RoundTripsThroughDecoder(t *testing.T) {
	msg := newTestMessage()

	data, attributes, err := encodeLocationChanged(msg)
	require.NoError(t, err)
	assert.Equal(t, constants.EventTypeLocationChanged, attributes[constants.AttributeEventType])
	assert.Equal(t, msg.Event.UserID.String(), attributes[constants.AttributeUserID])
	assert.Equal(t, "7", attributes[constants.AttributeVersion])
	assert.Equal(t, "req-1", attributes[constants.AttributeRequestID])

	decoded, err := DecodeLocationChanged(data)
	require.NoError(t, err)
	assert.Equal(t, msg.Event.UserID, decoded.Event.UserID)
	assert.Equal(t, msg.Event.After, decoded.Event.After)
	assert.Equal(t, int64(7), decoded.Event.Version)
}

func TestEncodeLocationChanged_RejectsEmptyEvent(t *testing.T) {
	_, _, err := encodeLocationChanged(&service.LocationChangedMessage{})
	assert.Error(t, err)

	_, err = DecodeLocationChanged([]byte(`{"request_id":"x"}`))
	assert.Error(t, err)
}

func TestLocalHTTPPublisher_PostsPushEnvelope(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	msg := newTestMessage()

	require.NoError(t, publisher.PublishLocationChanged(context.Background(), msg))
	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.NotEmpty(t, received.Message.MessageID)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	decoded, err := DecodeLocationChanged(data)
	require.NoError(t, err)
	assert.Equal(t, msg.Event.UserID, decoded.Event.UserID)
}

func newFastLocalPublisher(endpoint string) *localHTTPPublisher {
	p := NewLocalHTTPPublisher(endpoint, newDiscardLogger()).(*localHTTPPublisher)
	p.backoff = time.Millisecond

	return p
}

func TestLocalHTTPPublisher_RedeliversUntilAccepted(t *testing.T) {
	var attempts atomic.Int32
	messageIDs := make(chan string, localMaxAttempts)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var received PushMessage
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		messageIDs <- received.Message.MessageID
		if attempts.Add(1) < 2 {
			w.WriteHeader(http.StatusServiceUnavailable)

			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	require.NoError(t, newFastLocalPublisher(server.URL).PublishLocationChanged(context.Background(), newTestMessage()))
	assert.Equal(t, int32(2), attempts.Load())
	assert.Equal(t, <-messageIDs, <-messageIDs)
}

func TestLocalHTTPPublisher_GivesUpOnPersistentFailure(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	err := newFastLocalPublisher(server.URL).PublishLocationChanged(context.Background(), newTestMessage())

	assert.ErrorContains(t, err, "503")
	assert.Equal(t, int32(localMaxAttempts), attempts.Load())
}

func TestLocalHTTPPublisher_DoesNotRetryRejection(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	err := newFastLocalPublisher(server.URL).PublishLocationChanged(context.Background(), newTestMessage())

	assert.ErrorContains(t, err, "401")
	assert.Equal(t, int32(1), attempts.Load())
}

func TestNewEventPublisher_Providers(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr bool
		noop    bool
	}{
		{name: "not configured", cfg: nil, noop: true},
		{name: "noop", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderNoop}, noop: true},
		{name: "local", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:8081/push"}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, wantErr: true},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}, wantErr: true},
		{name: "nats without url", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderNATS}, wantErr: true},
		{name: "unknown", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     fxtest.NewLifecycle(t),
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: newDiscardLogger(),
			})
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			_, isNoop := publisher.(*noopPublisher)
			assert.Equal(t, tt.noop, isNoop)
		})
	}
}
