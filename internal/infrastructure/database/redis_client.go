package database

import (
	"context"
	"time"

	appconfig "delivery_payments/internal/config"
	"delivery_payments/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis returns nil when REDIS_ADDR is unset or the server does not
// answer; callers then run without webhook dedupe.
func ConnectRedis(ctx context.Context, cfg appconfig.RedisConfig) *redis.Client {
	if cfg.Addr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Warn(ctx).Err(err).Str("redis_addr", cfg.Addr).Msg("failed to connect to redis - webhook dedupe disabled")
		_ = client.Close()
		return nil
	}
	logger.Info(ctx).Str("redis_addr", cfg.Addr).Msg("connected to redis for webhook dedupe")
	return client
}
