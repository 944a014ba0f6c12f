package cache

import (
	"context"
	"time"

	"delivery_payments/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const webhookKeyPrefix = "payments:webhook:"

// redisClaimer is the subset of redis.Cmdable the deduper needs.
type redisClaimer interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisWebhookDeduper claims provider delivery ids with SET NX and a TTL.
type RedisWebhookDeduper struct {
	client redisClaimer
	ttl    time.Duration
}

var _ interfaces.IWebhookDeduper = (*RedisWebhookDeduper)(nil)

func NewRedisWebhookDeduper(client redisClaimer, ttl time.Duration) *RedisWebhookDeduper {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &RedisWebhookDeduper{client: client, ttl: ttl}
}

func (d *RedisWebhookDeduper) Claim(ctx context.Context, deliveryID string) (bool, error) {
	return d.client.SetNX(ctx, webhookKeyPrefix+deliveryID, time.Now().UTC().Unix(), d.ttl).Result()
}

func (d *RedisWebhookDeduper) Release(ctx context.Context, deliveryID string) error {
	return d.client.Del(ctx, webhookKeyPrefix+deliveryID).Err()
}
