// Package idgen allocates human-decodable, hub-prefixed order IDs.
//
// The primary path is an atomic per-hub counter in Redis, which makes IDs
// safe under concurrent checkouts from the same hub. When the counter is
// unreachable the allocator degrades to a time+random suffix that stays
// globally unique but loses the sequential shape.
package idgen

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

const counterKeyPrefix = "qs:hub_seq:"

// Sequencer yields the next value of a named monotonic counter.
type Sequencer interface {
	Next(ctx context.Context, name string) (int64, error)
}

// Allocator builds order base IDs from a hub short code and its counter.
type Allocator struct {
	seq    Sequencer
	logger *slog.Logger
	now    func() time.Time
}

// NewAllocator constructs an allocator. A nil sequencer forces fallback IDs.
func NewAllocator(seq Sequencer, logger *slog.Logger) *Allocator {
	return &Allocator{seq: seq, logger: logger, now: time.Now}
}

// NextBaseID returns the shared base ID for one checkout, e.g. "FC-0042".
// Sibling orders from a split cart append their own "-n" suffix to it.
func (a *Allocator) NextBaseID(ctx context.Context, hubCode string) string {
	code := strings.ToUpper(strings.TrimSpace(hubCode))
	if code == "" {
		code = "QS"
	}
	if a.seq != nil {
		n, err := a.seq.Next(ctx, code)
		if err == nil {
			return fmt.Sprintf("%s-%04d", code, n)
		}
		a.logger.Warn("hub counter unavailable, using random suffix",
			slog.String("hub", code), slog.String("error", err.Error()))
	}
	return fmt.Sprintf("%s-%d-%s", code, a.now().UnixMilli(), uuid.NewString()[:8])
}
