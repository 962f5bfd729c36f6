package worker

import (
	"context"
	"log/slog"
	"sync"

	"ecospot/config"
	"ecospot/internal/delivery"
	"ecospot/internal/delivery/worker/handler"
	"ecospot/internal/domain/lifecycle"

	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// NATSSubscriberParams holds dependencies for the NATS subscriber
type NATSSubscriberParams struct {
	fx.In

	Lc     fx.Lifecycle
	Cfg    *config.Config
	Logger *slog.Logger
	Conn   *nats.Conn
	Events *handler.LocationEventHandler
}

// natsSubscriber consumes location events from a NATS queue group,
// so each event is handled by exactly one worker replica.
type natsSubscriber struct {
	conn    *nats.Conn
	subject string
	queue   string
	events  *handler.LocationEventHandler
	logger  *slog.Logger

	mu      sync.Mutex
	sub     *nats.Subscription
	stopped chan struct{}
	once    sync.Once
}

// NewNATSSubscriber creates the NATS delivery of the worker.
func NewNATSSubscriber(params NATSSubscriberParams) (delivery.Delivery, error) {
	if params.Cfg.NATS == nil || params.Cfg.NATS.Subject == "" {
		return nil, errors.New("nats subject is not configured")
	}

	s := &natsSubscriber{
		conn:    params.Conn,
		subject: params.Cfg.NATS.Subject,
		queue:   params.Cfg.NATS.QueueGroup,
		events:  params.Events,
		logger:  params.Logger,
		stopped: make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

// Serve subscribes and blocks until the subscriber is stopped.
func (s *natsSubscriber) Serve(ctx context.Context) error {
	sub, err := s.conn.QueueSubscribe(s.subject, s.queue, func(msg *nats.Msg) {
		s.handle(ctx, msg)
	})
	if err != nil {
		return errors.Wrapf(err, "failed to subscribe to %s", s.subject)
	}

	s.mu.Lock()
	s.sub = sub
	s.mu.Unlock()

	s.logger.Info("Consuming location events from NATS",
		slog.String("subject", s.subject),
		slog.String("queue", s.queue),
	)

	<-s.stopped

	return nil
}

func (s *natsSubscriber) handle(ctx context.Context, msg *nats.Msg) {
	attributes := make(map[string]string, len(msg.Header))
	for key := range msg.Header {
		attributes[key] = msg.Header.Get(key)
	}

	handleCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	if err := s.events.Handle(handleCtx, msg.Data, attributes); err != nil {
		// Core NATS has no redelivery, so retryable failures are dropped after logging.
		s.logger.Error("[Worker] Failed to process location event",
			slog.String("subject", msg.Subject),
			slog.Any("error", err),
			slog.Bool("retryable", handler.IsRetryable(err)),
		)
	}
}

func (s *natsSubscriber) stop(context.Context) error {
	var err error
	s.once.Do(func() {
		s.mu.Lock()
		if s.sub != nil {
			err = errors.WithStack(s.sub.Drain())
		}
		s.mu.Unlock()
		close(s.stopped)
	})

	return err
}
