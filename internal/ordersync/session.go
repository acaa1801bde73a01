package ordersync

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	domainErrors "github.com/quickserve/quickserve/internal/domain/errors"
	"github.com/quickserve/quickserve/internal/domain/model"
	"github.com/quickserve/quickserve/internal/pkg/localstore"
)

// SnapshotStore persists best-effort session snapshots for fast cold starts.
// localstore.Store satisfies it.
type SnapshotStore interface {
	Save(key string, v any)
	Load(key string, dest any) bool
}

// Profile identifies the principal a sync session serves and scopes its pulls.
type Profile struct {
	UserID       int64
	CustomerID   string
	Role         model.Role
	RestaurantID int64
	Hub          string
}

// Key returns a stable identifier for session bookkeeping and snapshot files.
func (p Profile) Key() string {
	if p.Role == model.RoleCustomer {
		return "c" + p.CustomerID
	}
	return fmt.Sprintf("u%d", p.UserID)
}

// Source exposes the remote order table to a sync session.
type Source interface {
	ListSince(ctx context.Context, restaurantID int64, sinceMillis int64, limit int) ([]model.Order, error)
	ListRecent(ctx context.Context, limit int) ([]model.Order, error)
	UpdateOrderStatus(ctx context.Context, actor Profile, orderID string, to model.OrderStatus, reason, note string) (*model.Order, error)
	ListRestaurants(ctx context.Context, hub string) ([]model.Restaurant, error)
}

// Subscriber delivers realtime insert/update events from the order feed.
type Subscriber interface {
	SubscribeOrders(ctx context.Context) (<-chan model.OrderEvent, func(), error)
}

// Options tune session cadence and windows. Zero values fall back to the
// observed production defaults.
type Options struct {
	VendorPollInterval   time.Duration
	AdminPollInterval    time.Duration
	CustomerPollInterval time.Duration
	PendingGrace         time.Duration
	IncrementalBatchSize int
	FullWindowSize       int
	DismissalWindow      time.Duration
}

func (o Options) withDefaults() Options {
	if o.VendorPollInterval <= 0 {
		o.VendorPollInterval = 3 * time.Second
	}
	if o.AdminPollInterval <= 0 {
		o.AdminPollInterval = 10 * time.Second
	}
	if o.CustomerPollInterval <= 0 {
		o.CustomerPollInterval = 30 * time.Second
	}
	if o.PendingGrace <= 0 {
		o.PendingGrace = 3 * time.Second
	}
	if o.IncrementalBatchSize <= 0 {
		o.IncrementalBatchSize = 50
	}
	if o.FullWindowSize <= 0 {
		o.FullWindowSize = 200
	}
	if o.DismissalWindow <= 0 {
		o.DismissalWindow = 10 * time.Minute
	}
	return o
}

// Session owns the order cache, pending tracker, poll timers, and feed
// subscription for one authenticated principal. Lifecycle is explicit:
// Start on first use, Stop on logout or shutdown.
type Session struct {
	profile Profile
	source  Source
	feed    Subscriber
	store   SnapshotStore
	logger  *slog.Logger
	opts    Options

	cache   *OrderCache
	tracker *PendingTracker

	// pulling guards the incremental pull: overlapping triggers are dropped,
	// the next tick or feed event catches up.
	pulling atomic.Bool

	restMu      sync.RWMutex
	restaurants []model.Restaurant

	dismissMu sync.Mutex
	dismissed map[string]int64

	lifeMu sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
	now    func() time.Time
}

// NewSession constructs a session; it does nothing until Start is called.
func NewSession(profile Profile, source Source, feed Subscriber, store SnapshotStore, opts Options, logger *slog.Logger) *Session {
	opts = opts.withDefaults()
	return &Session{
		profile:   profile,
		source:    source,
		feed:      feed,
		store:     store,
		logger:    logger,
		opts:      opts,
		cache:     NewOrderCache(),
		tracker:   NewPendingTracker(opts.PendingGrace),
		dismissed: make(map[string]int64),
		now:       time.Now,
	}
}

// Start restores the local snapshot, performs a forced full pull to seed the
// cache from ground truth, then begins the role-based cadence and the feed
// subscription.
func (s *Session) Start(ctx context.Context) {
	s.lifeMu.Lock()
	defer s.lifeMu.Unlock()
	if s.cancel != nil {
		return
	}
	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.restoreSnapshot()
	s.coldStart(runCtx)

	s.wg.Add(1)
	go s.pollLoop(runCtx)

	if s.feed != nil {
		s.wg.Add(1)
		go s.feedLoop(runCtx)
	}
}

// Stop cancels timers and the feed subscription, waits for in-flight work,
// and writes a final snapshot.
func (s *Session) Stop() {
	s.lifeMu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.lifeMu.Unlock()
	s.wg.Wait()
	s.saveSnapshot()
}

// Profile returns the principal this session serves.
func (s *Session) Profile() Profile {
	return s.profile
}

// Orders returns every cached order, newest first.
func (s *Session) Orders() []model.Order {
	return s.cache.List()
}

// ActiveOrders filters out dismissed tickets and terminal tickets that
// aged past the dismissal window.
func (s *Session) ActiveOrders() []model.Order {
	cutoff := s.now().Add(-s.opts.DismissalWindow).UnixMilli()
	s.dismissMu.Lock()
	dismissed := make(map[string]int64, len(s.dismissed))
	for id, at := range s.dismissed {
		dismissed[id] = at
	}
	s.dismissMu.Unlock()

	all := s.cache.List()
	result := make([]model.Order, 0, len(all))
	for _, order := range all {
		if _, ok := dismissed[order.ID]; ok {
			continue
		}
		if order.Status.Terminal() && order.UpdatedAt < cutoff {
			continue
		}
		result = append(result, order)
	}
	return result
}

// Dismiss hides a terminal order from active views.
func (s *Session) Dismiss(orderID string) {
	order, ok := s.cache.Get(orderID)
	if !ok || !order.Status.Terminal() {
		return
	}
	s.dismissMu.Lock()
	s.dismissed[orderID] = s.now().UnixMilli()
	s.dismissMu.Unlock()
	s.saveSnapshot()
}

// Restaurants returns the customer session's cached storefront listing.
func (s *Session) Restaurants() []model.Restaurant {
	s.restMu.RLock()
	defer s.restMu.RUnlock()
	return append([]model.Restaurant(nil), s.restaurants...)
}

// ApplyRemote folds one server-confirmed order into the cache without
// waiting for the next pull.
func (s *Session) ApplyRemote(order model.Order) {
	s.cache.Merge([]model.Order{order}, s.tracker)
	s.saveSnapshot()
}

// UpdateStatus applies an optimistic status change and pushes it to the
// remote source. On remote failure the pending entry is dropped immediately
// and a fresh full pull resynchronizes to ground truth.
func (s *Session) UpdateStatus(ctx context.Context, orderID string, to model.OrderStatus, reason, note string) (*model.Order, error) {
	current, ok := s.cache.Get(orderID)
	if ok && !model.CanTransition(current.Status, to) {
		return nil, fmt.Errorf("order %s: %s to %s: %w", orderID, current.Status, to, domainErrors.ErrInvalidTransition)
	}

	if ok {
		optimistic := current
		optimistic.Status = to
		optimistic.RejectReason = reason
		optimistic.RejectNote = note
		optimistic.UpdatedAt = s.now().UnixMilli()
		s.cache.ApplyLocal(optimistic)
	}
	s.tracker.RegisterPending(orderID, to)

	updated, err := s.source.UpdateOrderStatus(ctx, s.profile, orderID, to, reason, note)
	if err != nil {
		s.tracker.Drop(orderID)
		s.pullFull(ctx)
		return nil, err
	}

	s.tracker.Confirm(orderID)
	s.cache.Merge([]model.Order{*updated}, s.tracker)
	s.saveSnapshot()
	return updated, nil
}

func (s *Session) coldStart(ctx context.Context) {
	switch s.profile.Role {
	case model.RoleCustomer:
		s.refreshRestaurants(ctx)
		s.pullIncremental(ctx)
	default:
		s.pullFull(ctx)
	}
}

func (s *Session) pollLoop(ctx context.Context) {
	defer s.wg.Done()
	ticker := time.NewTicker(s.pollInterval())
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Session) pollInterval() time.Duration {
	switch s.profile.Role {
	case model.RoleVendor:
		return s.opts.VendorPollInterval
	case model.RoleAdmin:
		return s.opts.AdminPollInterval
	default:
		return s.opts.CustomerPollInterval
	}
}

func (s *Session) tick(ctx context.Context) {
	switch s.profile.Role {
	case model.RoleVendor:
		s.pullIncremental(ctx)
	case model.RoleAdmin:
		s.pullFull(ctx)
	default:
		// Customers only refresh storefront availability; their orders
		// arrive through the feed and the initial load.
		s.refreshRestaurants(ctx)
	}
}

func (s *Session) feedLoop(ctx context.Context) {
	defer s.wg.Done()
	events, stop, err := s.feed.SubscribeOrders(ctx)
	if err != nil {
		s.logger.Error("order feed subscription failed",
			slog.String("session", s.profile.Key()),
			slog.String("error", err.Error()))
		return
	}
	defer stop()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			s.handleEvent(ctx, event)
		}
	}
}

func (s *Session) handleEvent(ctx context.Context, event model.OrderEvent) {
	if !s.relevant(event.Order) {
		return
	}
	if s.profile.Role == model.RoleCustomer {
		// Push payloads are authoritative enough for customers; no pull needed.
		s.cache.Merge([]model.Order{event.Order}, s.tracker)
		s.saveSnapshot()
		return
	}
	s.pullIncremental(ctx)
}

func (s *Session) relevant(order model.Order) bool {
	switch s.profile.Role {
	case model.RoleVendor:
		return order.RestaurantID == s.profile.RestaurantID
	case model.RoleCustomer:
		return order.CustomerID == s.profile.CustomerID
	default:
		return true
	}
}

// pullIncremental fetches orders newer than the high-water mark. Only one
// incremental pull may be in flight; overlapping triggers are dropped.
func (s *Session) pullIncremental(ctx context.Context) bool {
	if !s.pulling.CompareAndSwap(false, true) {
		return false
	}
	defer s.pulling.Store(false)

	var restaurantID int64
	if s.profile.Role == model.RoleVendor {
		restaurantID = s.profile.RestaurantID
	}
	batch, err := s.source.ListSince(ctx, restaurantID, s.cache.HighWaterMark(), s.opts.IncrementalBatchSize)
	if err != nil {
		s.logger.Error("incremental order pull failed",
			slog.String("session", s.profile.Key()),
			slog.String("error", err.Error()))
		return true
	}
	if s.profile.Role == model.RoleCustomer {
		batch = s.filterOwn(batch)
	}
	s.cache.Merge(batch, s.tracker)
	s.saveSnapshot()
	return true
}

// pullFull fetches a large bounded window and replaces the cache wholesale.
func (s *Session) pullFull(ctx context.Context) {
	batch, err := s.source.ListRecent(ctx, s.opts.FullWindowSize)
	if err != nil {
		s.logger.Error("full order pull failed",
			slog.String("session", s.profile.Key()),
			slog.String("error", err.Error()))
		return
	}
	if s.profile.Role == model.RoleVendor {
		batch = s.filterRestaurant(batch)
	}
	if s.profile.Role == model.RoleCustomer {
		batch = s.filterOwn(batch)
	}
	s.cache.ReplaceAll(batch, s.tracker)
	s.saveSnapshot()
}

func (s *Session) filterRestaurant(batch []model.Order) []model.Order {
	result := batch[:0:0]
	for _, order := range batch {
		if order.RestaurantID == s.profile.RestaurantID {
			result = append(result, order)
		}
	}
	return result
}

func (s *Session) filterOwn(batch []model.Order) []model.Order {
	result := batch[:0:0]
	for _, order := range batch {
		if order.CustomerID == s.profile.CustomerID {
			result = append(result, order)
		}
	}
	return result
}

func (s *Session) refreshRestaurants(ctx context.Context) {
	listing, err := s.source.ListRestaurants(ctx, s.profile.Hub)
	if err != nil {
		s.logger.Error("restaurant refresh failed",
			slog.String("session", s.profile.Key()),
			slog.String("error", err.Error()))
		return
	}
	s.restMu.Lock()
	s.restaurants = listing
	s.restMu.Unlock()
	if s.store != nil {
		s.store.Save(localstore.SessionKey(localstore.KeyRestaurants, s.profile.Key()), listing)
	}
}

// snapshotState is the durable fallback written for fast cold starts.
type snapshotState struct {
	Orders    []model.Order    `json:"orders"`
	Dismissed map[string]int64 `json:"dismissed"`
}

func (s *Session) saveSnapshot() {
	if s.store == nil {
		return
	}
	s.dismissMu.Lock()
	dismissed := make(map[string]int64, len(s.dismissed))
	for id, at := range s.dismissed {
		dismissed[id] = at
	}
	s.dismissMu.Unlock()
	s.store.Save(localstore.SessionKey(localstore.KeyOrders, s.profile.Key()), snapshotState{
		Orders:    s.cache.List(),
		Dismissed: dismissed,
	})
}

// restoreSnapshot seeds the cache and the high-water mark from local disk.
// The snapshot is best-effort and stops mattering after the first pull.
func (s *Session) restoreSnapshot() {
	if s.store == nil {
		return
	}
	var state snapshotState
	if !s.store.Load(localstore.SessionKey(localstore.KeyOrders, s.profile.Key()), &state) {
		return
	}
	s.cache.Merge(state.Orders, nil)
	for _, order := range state.Orders {
		s.cache.SeedHighWaterMark(order.CreatedAt)
	}
	s.dismissMu.Lock()
	for id, at := range state.Dismissed {
		s.dismissed[id] = at
	}
	s.dismissMu.Unlock()
}
