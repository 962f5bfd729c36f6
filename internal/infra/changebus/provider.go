package changebus

import (
	"context"
	"log/slog"

	"ecospot/config"
	"ecospot/internal/domain/constants"
	"ecospot/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params holds dependencies for the ChangeBus, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

type closableBus interface {
	service.ChangeBus
	Close() error
}

// New creates the ChangeBus selected by changeBus.provider.
func New(params Params) (service.ChangeBus, error) {
	cfg := params.Config.ChangeBus
	logger := params.Logger

	var bus closableBus
	switch cfg.Provider {
	case constants.ChangeBusProviderMemory:
		logger.Info("Using in-memory change bus")
		bus = NewMemoryBus()

	case constants.ChangeBusProviderRedis:
		redisCfg := params.Config.Redis
		if redisCfg == nil || redisCfg.Addr == "" {
			return nil, errors.New("redis address is required for redis change bus")
		}
		client := redis.NewClient(&redis.Options{
			Addr:     redisCfg.Addr,
			Password: redisCfg.Password,
			DB:       redisCfg.DB,
		})
		logger.Info("Using Redis change bus", slog.String("addr", redisCfg.Addr))
		bus = NewRedisBus(client, cfg.ChannelPrefix, logger)

		params.Lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				return errors.Wrap(client.Ping(ctx).Err(), "failed to ping Redis")
			},
		})

	default:
		return nil, errors.Errorf("unknown change bus provider: %s", cfg.Provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bus.Close()
		},
	})

	return bus, nil
}
