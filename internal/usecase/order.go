package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	domainErrors "github.com/quickserve/quickserve/internal/domain/errors"
	"github.com/quickserve/quickserve/internal/domain/model"
	"github.com/quickserve/quickserve/internal/domain/repository"
)

// IDAllocator yields hub-prefixed base IDs for new checkouts.
type IDAllocator interface {
	NextBaseID(ctx context.Context, hubCode string) string
}

// EventPublisher pushes order change events to the realtime feed.
type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, event model.OrderEvent) error
}

// OrderUseCase encapsulates checkout and the order status lifecycle.
type OrderUseCase struct {
	orders      repository.OrderRepository
	restaurants repository.RestaurantRepository
	menus       repository.MenuRepository
	areas       repository.AreaRepository
	ids         IDAllocator
	events      EventPublisher
	logger      *slog.Logger
	now         func() time.Time
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(
	orders repository.OrderRepository,
	restaurants repository.RestaurantRepository,
	menus repository.MenuRepository,
	areas repository.AreaRepository,
	ids IDAllocator,
	events EventPublisher,
	logger *slog.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		orders:      orders,
		restaurants: restaurants,
		menus:       menus,
		areas:       areas,
		ids:         ids,
		events:      events,
		logger:      logger,
		now:         time.Now,
	}
}

// cartGroup collects one restaurant's share of a checkout.
type cartGroup struct {
	restaurantID int64
	lines        []model.OrderLine
	total        float64
}

// Checkout turns a validated cart into one order per distinct restaurant.
// A cart spanning two kitchens yields sibling orders sharing a base ID with
// "-1"/"-2" suffixes. Validation runs to completion before any insert: an
// offline kitchen anywhere in the cart fails the whole checkout. clientTotal
// is the total the customer saw; a non-zero value that disagrees with the
// server-side recomputation rejects the checkout.
func (u *OrderUseCase) Checkout(ctx context.Context, customerID, hub string, table int, cart []model.CartItem, clientTotal float64, remark string) ([]model.Order, error) {
	if len(cart) == 0 {
		return nil, domainErrors.ErrEmptyCart
	}

	area, err := u.areas.GetByName(ctx, hub)
	if err != nil {
		return nil, err
	}
	if !area.Active {
		return nil, domainErrors.ErrAreaInactive
	}

	groups, err := u.buildGroups(ctx, cart)
	if err != nil {
		return nil, err
	}

	var grandTotal float64
	for _, group := range groups {
		grandTotal += group.total
	}
	if clientTotal != 0 && math.Abs(grandTotal-clientTotal) > 0.005 {
		return nil, domainErrors.ErrTotalMismatch
	}

	baseID := u.ids.NextBaseID(ctx, area.Code)
	nowMillis := u.now().UnixMilli()

	orders := make([]model.Order, 0, len(groups))
	for i, group := range groups {
		id := baseID
		if len(groups) > 1 {
			id = fmt.Sprintf("%s-%d", baseID, i+1)
		}
		orders = append(orders, model.Order{
			ID:           id,
			RestaurantID: group.restaurantID,
			CustomerID:   customerID,
			Hub:          area.Name,
			TableNumber:  table,
			Items:        group.lines,
			Total:        group.total,
			Status:       model.OrderStatusPending,
			Remark:       strings.TrimSpace(remark),
			CreatedAt:    nowMillis,
			UpdatedAt:    nowMillis,
		})
	}

	if err := u.orders.InsertBatch(ctx, orders); err != nil {
		return nil, err
	}
	for _, order := range orders {
		u.publish(ctx, model.OrderEvent{Type: model.OrderEventInsert, Order: order})
	}
	return orders, nil
}

// buildGroups validates every cart line and buckets them per restaurant,
// preserving the order of first appearance so sibling suffixes are stable.
func (u *OrderUseCase) buildGroups(ctx context.Context, cart []model.CartItem) ([]cartGroup, error) {
	index := make(map[int64]int)
	var groups []cartGroup

	for _, entry := range cart {
		if entry.Quantity < 1 {
			return nil, domainErrors.ErrInvalidQuantity
		}

		item, err := u.menus.GetItem(ctx, entry.MenuItemID)
		if err != nil {
			return nil, domainErrors.ErrItemUnavailable
		}
		if item.Archived {
			return nil, domainErrors.ErrItemUnavailable
		}

		restaurant, err := u.restaurants.GetByID(ctx, item.RestaurantID)
		if err != nil {
			return nil, err
		}
		if !restaurant.Online {
			return nil, domainErrors.ErrKitchenOffline
		}

		unitPrice, err := resolveUnitPrice(item, entry)
		if err != nil {
			return nil, err
		}
		line := model.OrderLine{
			MenuItemID:  item.ID,
			Name:        item.Name,
			UnitPrice:   unitPrice,
			Size:        entry.Size,
			Temperature: entry.Temperature,
			Variant:     entry.Variant,
			Quantity:    entry.Quantity,
			LineTotal:   unitPrice * float64(entry.Quantity),
		}

		pos, ok := index[item.RestaurantID]
		if !ok {
			pos = len(groups)
			index[item.RestaurantID] = pos
			groups = append(groups, cartGroup{restaurantID: item.RestaurantID})
		}
		groups[pos].lines = append(groups[pos].lines, line)
		groups[pos].total += line.LineTotal
	}
	return groups, nil
}

// resolveUnitPrice recomputes the server-authoritative unit price from the
// menu item's base price plus the selected variant deltas.
func resolveUnitPrice(item *model.MenuItem, entry model.CartItem) (float64, error) {
	price := item.Price

	if entry.Size != "" {
		found := false
		for _, size := range item.Sizes {
			if size.Name == entry.Size {
				price += size.PriceDelta
				found = true
				break
			}
		}
		if !found {
			return 0, domainErrors.ErrInvalidMenuItem
		}
	}

	if entry.Temperature != "" {
		if !item.Temperature.Enabled {
			return 0, domainErrors.ErrInvalidMenuItem
		}
		switch strings.ToLower(entry.Temperature) {
		case "hot":
			price += item.Temperature.HotDelta
		case "cold":
			price += item.Temperature.ColdDelta
		default:
			return 0, domainErrors.ErrInvalidMenuItem
		}
	}

	if entry.Variant != "" {
		found := false
		for _, option := range item.Variants.Options {
			if option.Name == entry.Variant {
				price += option.PriceDelta
				found = true
				break
			}
		}
		if !found {
			return 0, domainErrors.ErrInvalidMenuItem
		}
	}

	return price, nil
}

// UpdateStatus applies a monotonic status transition on behalf of the actor.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, actor Actor, orderID string, to model.OrderStatus, reason, note string) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !actor.ownsRestaurant(order.RestaurantID) {
		return nil, domainErrors.ErrForbidden
	}
	if !model.CanTransition(order.Status, to) {
		return nil, domainErrors.ErrInvalidTransition
	}
	if to == model.OrderStatusCancelled && strings.TrimSpace(reason) == "" {
		return nil, domainErrors.ErrReasonRequired
	}
	if to != model.OrderStatusCancelled {
		reason, note = "", ""
	}

	updated, err := u.orders.UpdateStatus(ctx, orderID, to, reason, note)
	if err != nil {
		return nil, err
	}
	u.publish(ctx, model.OrderEvent{Type: model.OrderEventUpdate, Order: *updated})
	return updated, nil
}

// ListSince returns orders newer than the given timestamp, oldest first.
func (u *OrderUseCase) ListSince(ctx context.Context, restaurantID, sinceMillis int64, limit int) ([]model.Order, error) {
	return u.orders.ListSince(ctx, restaurantID, sinceMillis, limit)
}

// ListRecent returns the newest orders across the platform.
func (u *OrderUseCase) ListRecent(ctx context.Context, limit int) ([]model.Order, error) {
	return u.orders.ListRecent(ctx, limit)
}

// ListByCustomer returns a customer's own orders, newest first.
func (u *OrderUseCase) ListByCustomer(ctx context.Context, customerID string) ([]model.Order, error) {
	return u.orders.ListByCustomer(ctx, customerID)
}

// publish is best-effort: the feed only accelerates freshness, polls cover
// for lost events.
func (u *OrderUseCase) publish(ctx context.Context, event model.OrderEvent) {
	if u.events == nil {
		return
	}
	if err := u.events.PublishOrderEvent(ctx, event); err != nil {
		u.logger.Warn("order event publish failed",
			slog.String("order", event.Order.ID),
			slog.String("error", err.Error()))
	}
}
