package pubsub

import (
	"context"
	"fmt"
	"log/slog"

	"ecospot/internal/domain/constants"
	"ecospot/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePubSubPublisher publishes location changes to a Cloud Pub/Sub topic.
// Messages of one user share an ordering key, so a subscription with ordering
// enabled hands the worker that user's location versions in order.
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher connects to projectID and checks that topicID exists.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create pubsub client")
	}

	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topicPath}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "location topic %s is not reachable", topicPath)
	}

	publisher := client.Publisher(topicID)
	publisher.EnableMessageOrdering = true

	logger.Info("Google Pub/Sub publisher initialized",
		slog.String("project_id", projectID),
		slog.String("topic_id", topicID),
	)

	return &googlePubSubPublisher{client: client, publisher: publisher, logger: logger}, nil
}

// PublishLocationChanged waits for the server ack. A failed publish pauses the user's
// ordering key, so it is resumed before returning the error.
func (p *googlePubSubPublisher) PublishLocationChanged(ctx context.Context, msg *service.LocationChangedMessage) error {
	data, attributes, err := encodeLocationChanged(msg)
	if err != nil {
		return err
	}
	orderingKey := attributes[constants.AttributeUserID]

	result := p.publisher.Publish(ctx, &pubsub.Message{
		Data:        data,
		Attributes:  attributes,
		OrderingKey: orderingKey,
	})

	serverID, err := result.Get(ctx)
	if err != nil {
		p.publisher.ResumePublish(orderingKey)

		return errors.Wrap(err, "failed to publish location change")
	}

	p.logger.Debug("[GooglePubSub] Location change published",
		slog.String(constants.AttributeUserID, orderingKey),
		slog.String(constants.AttributeVersion, attributes[constants.AttributeVersion]),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close flushes pending messages and releases the client.
func (p *googlePubSubPublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}
