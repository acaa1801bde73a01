package idgen

import (
	"log/slog"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/quickserve/quickserve/internal/usecase"
)

// Module wires the order ID allocator backed by Redis hub counters.
var Module = fx.Provide(
	func(client *redis.Client) Sequencer { return NewRedisSequencer(client) },
	func(seq Sequencer, logger *slog.Logger) *Allocator { return NewAllocator(seq, logger) },
	func(a *Allocator) usecase.IDAllocator { return a },
)
