package main

import (
	"context"
	"log/slog"
	"os"

	"ecospot/config"
	"ecospot/internal/delivery"
	"ecospot/internal/delivery/worker"
	"ecospot/internal/delivery/worker/handler"
	"ecospot/internal/domain/constants"
	logs "ecospot/internal/infra/log"
	"ecospot/internal/infra/notification"
	"ecospot/internal/infra/persistence/postgres"
	"ecospot/internal/infra/pubsub"
	"ecospot/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewSpotRepository,
			postgres.NewNotificationLedgerRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			notification.NewPushSender,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewProximityService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewLocationEventHandler,
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				newNATSDeliveries,
				fx.ResultTags(`group:"deliveries,flatten"`),
			),
		),
	)
}

type natsDeliveryParams struct {
	fx.In

	Lc     fx.Lifecycle
	Cfg    *config.Config
	Logger *slog.Logger
	Events *handler.LocationEventHandler
}

// newNATSDeliveries adds the NATS consumer when events are published over NATS.
// Pub/Sub push deliveries arrive through the worker HTTP server instead.
func newNATSDeliveries(params natsDeliveryParams) ([]delivery.Delivery, error) {
	if params.Cfg.PubSub == nil || params.Cfg.PubSub.Provider != constants.PubSubProviderNATS {
		return nil, nil
	}
	if params.Cfg.NATS == nil || params.Cfg.NATS.URL == "" {
		return nil, errors.New("nats url is required for nats provider")
	}

	conn, err := pubsub.ConnectNATS(params.Cfg.NATS.URL, params.Cfg.Env.ServiceName+"-proximity", params.Logger)
	if err != nil {
		return nil, err
	}
	// Appended before the subscriber so the connection closes after it drains.
	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			conn.Close()

			return nil
		},
	})

	subscriber, err := worker.NewNATSSubscriber(worker.NATSSubscriberParams{
		Lc:     params.Lc,
		Cfg:    params.Cfg,
		Logger: params.Logger,
		Conn:   conn,
		Events: params.Events,
	})
	if err != nil {
		return nil, err
	}

	return []delivery.Delivery{subscriber}, nil
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
