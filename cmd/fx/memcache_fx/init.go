package memcache_fx

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"globetrotter/internal/config"
	"globetrotter/internal/infra"
	mem "globetrotter/pkg/memcache"
)

const janitorInterval = time.Minute

var Module = fx.Provide(provideRedisClient, provideStore)

// provideRedisClient returns nil when REDIS_ADDR is empty.
func provideRedisClient(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (*redis.Client, error) {
	if !cfg.Redis.Enabled() {
		logger.Info("redis disabled, using in-memory store")
		return nil, nil
	}

	rdb, err := infra.NewRedis(cfg.Redis)
	if err != nil {
		return nil, err
	}
	logger.Info("redis connected", zap.String("addr", cfg.Redis.Addr))

	lc.Append(fx.StopHook(func() error {
		return rdb.Close()
	}))
	return rdb, nil
}

func provideStore(lc fx.Lifecycle, rdb *redis.Client) mem.Store {
	if rdb != nil {
		return mem.NewRedisStore(rdb)
	}

	store := mem.NewMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go store.RunJanitor(ctx, janitorInterval)
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
	return store
}
