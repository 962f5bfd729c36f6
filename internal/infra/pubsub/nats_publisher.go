package pubsub

import (
	"context"
	"log/slog"
	"time"

	"ecospot/internal/domain/service"

	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"
)

// natsPublisher implements EventPublisher on a NATS subject.
type natsPublisher struct {
	conn    *nats.Conn
	subject string
	logger  *slog.Logger
}

// ConnectNATS opens a connection that keeps reconnecting for as long as the process lives.
func ConnectNATS(url, name string, logger *slog.Logger) (*nats.Conn, error) {
	conn, err := nats.Connect(url,
		nats.Name(name),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("NATS disconnected", slog.Any("error", err))
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			logger.Info("NATS reconnected", slog.String("url", c.ConnectedUrl()))
		}),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to connect to NATS at %s", url)
	}

	return conn, nil
}

// NewNATSPublisher creates a publisher on an open connection.
func NewNATSPublisher(conn *nats.Conn, subject string, logger *slog.Logger) service.EventPublisher {
	return &natsPublisher{conn: conn, subject: subject, logger: logger}
}

// PublishLocationChanged publishes the event with its attributes as NATS headers.
func (p *natsPublisher) PublishLocationChanged(ctx context.Context, msg *service.LocationChangedMessage) error {
	data, attributes, err := encodeLocationChanged(msg)
	if err != nil {
		return err
	}

	natsMsg := nats.NewMsg(p.subject)
	natsMsg.Data = data
	for key, value := range attributes {
		natsMsg.Header.Set(key, value)
	}

	if err := p.conn.PublishMsg(natsMsg); err != nil {
		return errors.Wrap(err, "failed to publish to NATS")
	}
	// Flush so a publish that never reaches the server surfaces as an error here.
	if err := p.conn.FlushWithContext(ctx); err != nil {
		return errors.Wrap(err, "failed to flush NATS connection")
	}

	return nil
}

// Close drains pending messages and closes the connection.
func (p *natsPublisher) Close() error {
	if p.conn == nil || p.conn.IsClosed() {
		return nil
	}

	return errors.WithStack(p.conn.Drain())
}
