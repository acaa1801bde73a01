package feed

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/quickserve/quickserve/internal/domain/model"
)

const ordersChannel = "qs:orders:events"

// Publisher pushes order change notifications to interested sessions.
type Publisher interface {
	PublishOrderEvent(ctx context.Context, event model.OrderEvent) error
}

// RedisFeed carries order insert/update events over a Redis pub/sub channel.
type RedisFeed struct {
	client  *redis.Client
	channel string
	logger  *slog.Logger
}

// NewRedisFeed constructs the feed on the default orders channel.
func NewRedisFeed(client *redis.Client, logger *slog.Logger) *RedisFeed {
	return &RedisFeed{client: client, channel: ordersChannel, logger: logger}
}

// PublishOrderEvent broadcasts one change notification. The feed is advisory;
// sessions re-fetch ground truth on receipt, so a dropped event only delays
// freshness until the next poll.
func (f *RedisFeed) PublishOrderEvent(ctx context.Context, event model.OrderEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return f.client.Publish(ctx, f.channel, payload).Err()
}

// SubscribeOrders returns a channel of decoded order events plus a stop
// function releasing the underlying subscription.
func (f *RedisFeed) SubscribeOrders(ctx context.Context) (<-chan model.OrderEvent, func(), error) {
	sub := f.client.Subscribe(ctx, f.channel)
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, nil, err
	}

	out := make(chan model.OrderEvent, 16)
	go func() {
		defer close(out)
		for msg := range sub.Channel() {
			var event model.OrderEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				f.logger.Warn("malformed order event dropped", slog.String("error", err.Error()))
				continue
			}
			select {
			case out <- event:
			case <-ctx.Done():
				return
			}
		}
	}()

	stop := func() { _ = sub.Close() }
	return out, stop, nil
}
