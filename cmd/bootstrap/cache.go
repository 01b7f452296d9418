package bootstrap

import (
	"context"
	"log/slog"

	"tour-booking/internal/infra/cache"
	"tour-booking/internal/pkg/config"
	"tour-booking/internal/usecase/queries"
	"tour-booking/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		newTourCache,
		func(c tourCache) queries.TourCache { return c },
		func(c tourCache) shared.TourCacheInvalidator { return c },
	),
)

type tourCache interface {
	queries.TourCache
	shared.TourCacheInvalidator
}

// newTourCache returns the Redis-backed cache when REDIS_ENABLED is set and a
// no-op otherwise. Redis being unreachable at startup is not fatal; reads
// fall through to Postgres.
func newTourCache(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) tourCache {
	if !cfg.Redis.Enabled {
		return cache.NoopTourCache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				logger.Warn("redis ping failed, tour cache will miss", "addr", cfg.Redis.Addr, "error", err)
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return cache.NewTourCache(client, cfg.Redis.TourTTL)
}
