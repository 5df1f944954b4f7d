package cache

import (
	"context"
	"time"

	"parking-settlement/internal/pkg/config"

	"github.com/redis/go-redis/v9"
)

func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	})
}

// Ping is used at startup only to log reachability; the service runs without Redis.
func Ping(ctx context.Context, client *redis.Client) error {
	return client.Ping(ctx).Err()
}
