package idgen

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// RedisSequencer implements Sequencer on a Redis INCR key per hub.
type RedisSequencer struct {
	client *redis.Client
}

// NewRedisSequencer wraps an existing Redis client.
func NewRedisSequencer(client *redis.Client) *RedisSequencer {
	return &RedisSequencer{client: client}
}

// Next atomically increments and returns the hub counter.
func (s *RedisSequencer) Next(ctx context.Context, name string) (int64, error) {
	return s.client.Incr(ctx, counterKeyPrefix+name).Result()
}
