package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"parking-settlement/internal/infra/cache"
	"parking-settlement/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedis,
	),
)

// NewRedis never fails startup: the tariff cache degrades to the database.
func NewRedis(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *redis.Client {
	client := cache.NewRedisClient(cfg.Redis)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
			defer cancel()
			if err := cache.Ping(ctx, client); err != nil {
				logger.Warn("redis unreachable; tariff cache disabled until it recovers",
					"addr", cfg.Redis.Addr,
					"error", err.Error())
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client
}
