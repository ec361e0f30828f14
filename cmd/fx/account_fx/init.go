package account_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"globetrotter/internal/config"
	"globetrotter/internal/repositories"
	"globetrotter/internal/services"
	mem "globetrotter/pkg/memcache"
	"globetrotter/pkg/utils"
)

var Module = fx.Provide(
	provideAccountService, provideAccountRepo, provideJWTManager)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

// provideJWTManager falls back to a random per-process secret in local runs,
// which invalidates every token on restart.
func provideJWTManager(cfg *config.Config, logger *zap.Logger) (*utils.JWTManager, error) {
	secret := cfg.Security.JWTSecret
	if secret == "" {
		generated, err := utils.GenerateSecureToken(32)
		if err != nil {
			return nil, err
		}
		secret = generated
		logger.Warn("JWT_SECRET not set, using an ephemeral secret")
	}
	return utils.NewJWTManager(secret, cfg.Security.JWTTTL), nil
}

func provideAccountService(accountRepo repositories.AccountRepository, jwt *utils.JWTManager, store mem.Store) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, jwt, store)
}
