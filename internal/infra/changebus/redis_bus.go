package changebus

import (
	"context"
	"log/slog"
	"sync"

	"ecospot/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// RedisBus relays signals through Redis pub/sub so every API replica sees every write.
type RedisBus struct {
	client *redis.Client
	prefix string
	logger *slog.Logger
}

// NewRedisBus creates a bus on an existing client. prefix namespaces the channels.
func NewRedisBus(client *redis.Client, prefix string, logger *slog.Logger) *RedisBus {
	return &RedisBus{client: client, prefix: prefix, logger: logger}
}

func (b *RedisBus) channel(topic string) string {
	return b.prefix + topic
}

// Publish sends an empty message on the topic channel.
func (b *RedisBus) Publish(ctx context.Context, topic string) error {
	if err := b.client.Publish(ctx, b.channel(topic), "").Err(); err != nil {
		return errors.Wrapf(err, "failed to publish change on %s", topic)
	}

	return nil
}

// Subscribe opens a dedicated Redis subscription for topic.
func (b *RedisBus) Subscribe(ctx context.Context, topic string) (<-chan struct{}, func(), error) {
	pubsub := b.client.Subscribe(ctx, b.channel(topic))
	// Receive waits for the subscribe confirmation so no publish after return is missed.
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()

		return nil, nil, errors.Wrapf(err, "failed to subscribe to %s", topic)
	}

	subCtx, cancelSub := context.WithCancel(ctx)
	var once sync.Once
	cancel := func() {
		once.Do(func() {
			cancelSub()
			if err := pubsub.Close(); err != nil {
				b.logger.Debug("Redis subscription close failed", slog.String("topic", topic), slog.Any("error", err))
			}
		})
	}

	out := make(chan struct{}, 1)
	messages := pubsub.Channel()

	go func() {
		defer close(out)
		defer cancel()
		for {
			select {
			case <-subCtx.Done():
				return
			case _, ok := <-messages:
				if !ok {
					return
				}
				signal(out)
			}
		}
	}()

	return out, cancel, nil
}

// Close closes the Redis client and with it every subscription.
func (b *RedisBus) Close() error {
	return errors.WithStack(b.client.Close())
}

var _ service.ChangeBus = (*RedisBus)(nil)
