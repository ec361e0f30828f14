package seed_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"globetrotter/internal/config"
	"globetrotter/internal/repositories"
	"globetrotter/internal/services"
)

var Module = fx.Options(
	fx.Provide(provideSeedService),
	fx.Invoke(runSeed),
)

func provideSeedService(geoRepo repositories.GeoRepository, accountRepo repositories.AccountRepository) services.SeedServiceInterface {
	return services.NewSeedService(geoRepo, accountRepo)
}

// runSeed fills reference data and the admin account before the HTTP server
// starts accepting requests.
func runSeed(lc fx.Lifecycle, cfg *config.Config, seeder services.SeedServiceInterface, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if cfg.Seed.ReferenceData {
				if err := seeder.SeedReferenceData(ctx); err != nil {
					return err
				}
			}
			if err := seeder.EnsureAdmin(ctx, cfg.Seed.AdminEmail, cfg.Seed.AdminPassword); err != nil {
				return err
			}
			logger.Info("seed data ready")
			return nil
		},
	})
}
