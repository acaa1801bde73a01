package feed

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/quickserve/quickserve/internal/config"
	"github.com/quickserve/quickserve/internal/ordersync"
	"github.com/quickserve/quickserve/internal/usecase"
)

// Module wires the Redis client and the order feed into the fx graph.
var Module = fx.Options(
	fx.Provide(newRedisClient),
	fx.Provide(NewRedisFeed),
	fx.Provide(
		func(f *RedisFeed) Publisher { return f },
		func(f *RedisFeed) usecase.EventPublisher { return f },
		func(f *RedisFeed) ordersync.Subscriber { return f },
	),
	fx.Invoke(registerLifecycle),
)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newRedisClient(p clientParams) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: p.Config.RedisAddress})
}

func registerLifecycle(lc fx.Lifecycle, client *redis.Client, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				// Degraded mode: the feed and hub counters fall back to
				// polling and random suffixes until Redis returns.
				logger.Warn("redis unreachable at startup", slog.String("error", err.Error()))
			}
			return nil
		},
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})
}
