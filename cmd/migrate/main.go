package main

import (
	"context"
	"log/slog"

	"ecospot/config"
	logs "ecospot/internal/infra/log"
	"ecospot/internal/infra/persistence/model"
	"ecospot/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

type migrateParams struct {
	fx.In
	fx.Shutdowner

	DB     *gorm.DB
	Logger *slog.Logger
}

// migrate creates or updates the tables of every persistence model, then exits.
func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		fx.Invoke(migrate),
		fx.NopLogger,
	).Run()
}

func migrate(lc fx.Lifecycle, params migrateParams) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// gen_random_uuid() defaults need pgcrypto before PostgreSQL 13.
			if err := params.DB.WithContext(ctx).Exec("CREATE EXTENSION IF NOT EXISTS pgcrypto").Error; err != nil {
				return errors.Wrap(err, "enable pgcrypto")
			}
			if err := params.DB.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
				return errors.Wrap(err, "auto migrate failed")
			}
			params.Logger.Info("Database schema is up to date", slog.Int("models", len(model.All())))

			return params.Shutdown()
		},
	})
}
