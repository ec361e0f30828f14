package db_fx

import (
	"context"
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"globetrotter/internal/config"
	"globetrotter/internal/infra"
)

var Module = fx.Provide(
	provideDB)

func provideDB(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	db, err := infra.InitPostgresql(cfg.Postgres, cfg.Server.IsLocal())
	if err != nil {
		return nil, err
	}

	if cfg.Postgres.AutoMigrate {
		if err := infra.AutoMigrate(db); err != nil {
			infra.ClosePostgresql(db, logger)
			return nil, fmt.Errorf("auto migrate: %w", err)
		}
		logger.Info("database schema migrated")
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db, logger)
			return nil
		},
	})

	return db, nil
}
