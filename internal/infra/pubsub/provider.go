package pubsub

import (
	"context"
	"log/slog"

	"ecospot/config"
	"ecospot/internal/domain/constants"
	"ecospot/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher drops events. Location updates still succeed without a worker.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishLocationChanged(ctx context.Context, msg *service.LocationChangedMessage) error {
	if msg != nil && msg.Event != nil {
		p.logger.DebugContext(ctx, "[NoopPubSub] Location change dropped",
			slog.String(constants.AttributeUserID, msg.Event.UserID.String()),
		)
	}

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher picks the location event transport from pubsub.provider.
// An empty provider selects the no-op publisher.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	provider := constants.PubSubProviderNoop
	if cfg != nil && cfg.Provider != "" {
		provider = cfg.Provider
	}
	if provider == constants.PubSubProviderNoop {
		logger.Info("Location events disabled, using no-op publisher")

		return &noopPublisher{logger: logger}, nil
	}

	publisher, err := openPublisher(params, provider)
	if err != nil {
		return nil, errors.WithMessagef(err, "pubsub provider %s", provider)
	}
	logger.Info("Location event publisher ready", slog.String("provider", provider))

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			logger.Info("Closing location event publisher", slog.String("provider", provider))

			return publisher.Close()
		},
	})

	return publisher, nil
}

func openPublisher(params PublisherParams, provider string) (service.EventPublisher, error) {
	cfg := params.Config.PubSub

	switch provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("localEndpoint is required")
		}

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, params.Logger), nil

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.New("projectId and topicId are required")
		}

		return NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, params.Logger)

	case constants.PubSubProviderNATS:
		natsCfg := params.Config.NATS
		if natsCfg == nil || natsCfg.URL == "" || natsCfg.Subject == "" {
			return nil, errors.New("nats.url and nats.subject are required")
		}
		conn, err := ConnectNATS(natsCfg.URL, params.Config.Env.ServiceName+"-publisher", params.Logger)
		if err != nil {
			return nil, err
		}

		return NewNATSPublisher(conn, natsCfg.Subject, params.Logger), nil

	default:
		return nil, errors.New("unknown provider")
	}
}
