package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"ecospot/internal/domain/constants"
	"ecospot/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	localSubscription = "projects/local/subscriptions/location-changed-sub"

	localMaxAttempts  = 3
	localFirstBackoff = 200 * time.Millisecond
)

// localHTTPPublisher posts Pub/Sub push envelopes straight to the proximity worker.
// Like a push subscription, it redelivers when the worker answers 429 or 5xx.
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
	backoff    time.Duration
}

// NewLocalHTTPPublisher creates the development publisher that targets endpoint.
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
		backoff:    localFirstBackoff,
	}
}

// PublishLocationChanged delivers the event, retrying with doubling backoff.
// Every attempt reuses the same message id so the worker sees redeliveries as such.
func (p *localHTTPPublisher) PublishLocationChanged(ctx context.Context, msg *service.LocationChangedMessage) error {
	data, attributes, err := encodeLocationChanged(msg)
	if err != nil {
		return err
	}

	pushMsg := PushMessage{Subscription: localSubscription}
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(data)
	pushMsg.Message.Attributes = attributes
	pushMsg.Message.MessageID = uuid.NewString()
	pushMsg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)

	body, err := json.Marshal(pushMsg)
	if err != nil {
		return errors.WithStack(err)
	}

	wait := p.backoff
	for attempt := 1; ; attempt++ {
		retry, err := p.post(ctx, body, msg.RequestID)
		if err == nil {
			p.logger.Debug("[LocalPubSub] Location change delivered",
				slog.String(constants.AttributeUserID, attributes[constants.AttributeUserID]),
				slog.Int("attempt", attempt),
			)

			return nil
		}
		if !retry || attempt == localMaxAttempts {
			return errors.Wrapf(err, "push to %s failed after %d attempt(s)", p.endpoint, attempt)
		}

		p.logger.Warn("[LocalPubSub] Redelivering location change",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Int("attempt", attempt),
			slog.Any("error", err),
		)

		select {
		case <-ctx.Done():
			return errors.WithStack(ctx.Err())
		case <-time.After(wait):
		}
		wait *= 2
	}
}

// post sends one attempt and reports whether a failure is worth redelivering.
func (p *localHTTPPublisher) post(ctx context.Context, body []byte, requestID string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return false, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID != "" {
		req.Header.Set("X-Request-Id", requestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return ctx.Err() == nil, errors.WithStack(err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return false, nil
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return true, errors.Errorf("worker returned status %d", resp.StatusCode)
	default:
		return false, errors.Errorf("worker rejected push with status %d", resp.StatusCode)
	}
}

func (p *localHTTPPublisher) Close() error {
	p.httpClient.CloseIdleConnections()

	return nil
}
