package test

import (
	"context"
	"sync"

	domainErrors "github.com/quickserve/quickserve/internal/domain/errors"
	"github.com/quickserve/quickserve/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, user *model.User) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.Users[user.Login]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	stored := *user
	stored.ID = s.Next
	s.Next++
	s.Users[stored.Login] = &stored
	s.ByID[stored.ID] = &stored
	return &stored, nil
}

// GetByLogin fetches user by login or returns not found.
func (s *UserRepositoryStub) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[login]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ListByRole returns users holding the given role.
func (s *UserRepositoryStub) ListByRole(ctx context.Context, role model.Role) ([]model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.User
	for id := int64(1); id < s.Next; id++ {
		if user, ok := s.ByID[id]; ok && user.Role == role {
			result = append(result, *user)
		}
	}
	return result, nil
}

// SetActive flips the account's active flag.
func (s *UserRepositoryStub) SetActive(ctx context.Context, id int64, active bool) error {
	if s.Err != nil {
		return s.Err
	}
	user, ok := s.ByID[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	user.Active = active
	return nil
}

// RestaurantRepositoryStub stores storefronts in-memory for tests.
type RestaurantRepositoryStub struct {
	ByID map[int64]*model.Restaurant
	Next int64
	Err  error
}

// NewRestaurantRepositoryStub constructs stub repository with initialized maps.
func NewRestaurantRepositoryStub() *RestaurantRepositoryStub {
	return &RestaurantRepositoryStub{ByID: make(map[int64]*model.Restaurant), Next: 1}
}

// Create stores a storefront and assigns its identifier.
func (s *RestaurantRepositoryStub) Create(ctx context.Context, restaurant *model.Restaurant) (*model.Restaurant, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Next == 0 {
		s.Next = 1
	}
	stored := *restaurant
	stored.ID = s.Next
	s.Next++
	s.ByID[stored.ID] = &stored
	return &stored, nil
}

// GetByID fetches a storefront or returns not found.
func (s *RestaurantRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Restaurant, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if restaurant, ok := s.ByID[id]; ok {
		copy := *restaurant
		return &copy, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByVendor fetches the storefront owned by the vendor.
func (s *RestaurantRepositoryStub) GetByVendor(ctx context.Context, vendorID int64) (*model.Restaurant, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, restaurant := range s.ByID {
		if restaurant.VendorID == vendorID {
			copy := *restaurant
			return &copy, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListByHub returns the hub's storefronts, optionally only online ones.
func (s *RestaurantRepositoryStub) ListByHub(ctx context.Context, hub string, onlineOnly bool) ([]model.Restaurant, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Restaurant
	for id := int64(1); id < s.Next; id++ {
		restaurant, ok := s.ByID[id]
		if !ok || restaurant.Hub != hub {
			continue
		}
		if onlineOnly && !restaurant.Online {
			continue
		}
		result = append(result, *restaurant)
	}
	return result, nil
}

// List returns every storefront.
func (s *RestaurantRepositoryStub) List(ctx context.Context) ([]model.Restaurant, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Restaurant
	for id := int64(1); id < s.Next; id++ {
		if restaurant, ok := s.ByID[id]; ok {
			result = append(result, *restaurant)
		}
	}
	return result, nil
}

// SetOnline flips the storefront's visibility flag.
func (s *RestaurantRepositoryStub) SetOnline(ctx context.Context, id int64, online bool) error {
	if s.Err != nil {
		return s.Err
	}
	restaurant, ok := s.ByID[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	restaurant.Online = online
	return nil
}

// Update replaces the stored storefront.
func (s *RestaurantRepositoryStub) Update(ctx context.Context, restaurant *model.Restaurant) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.ByID[restaurant.ID]; !ok {
		return domainErrors.ErrNotFound
	}
	stored := *restaurant
	s.ByID[restaurant.ID] = &stored
	return nil
}

// MenuRepositoryStub stores menu items in-memory for tests.
type MenuRepositoryStub struct {
	Items map[int64]*model.MenuItem
	Next  int64
	Err   error
}

// NewMenuRepositoryStub constructs stub repository with initialized maps.
func NewMenuRepositoryStub() *MenuRepositoryStub {
	return &MenuRepositoryStub{Items: make(map[int64]*model.MenuItem), Next: 1}
}

// CreateItem stores an item and assigns its identifier.
func (s *MenuRepositoryStub) CreateItem(ctx context.Context, item *model.MenuItem) (*model.MenuItem, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Next == 0 {
		s.Next = 1
	}
	stored := *item
	stored.ID = s.Next
	s.Next++
	s.Items[stored.ID] = &stored
	return &stored, nil
}

// UpdateItem replaces a stored item.
func (s *MenuRepositoryStub) UpdateItem(ctx context.Context, item *model.MenuItem) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Items[item.ID]; !ok {
		return domainErrors.ErrNotFound
	}
	stored := *item
	s.Items[item.ID] = &stored
	return nil
}

// ArchiveItem marks the item archived.
func (s *MenuRepositoryStub) ArchiveItem(ctx context.Context, restaurantID, itemID int64) error {
	if s.Err != nil {
		return s.Err
	}
	item, ok := s.Items[itemID]
	if !ok || item.RestaurantID != restaurantID {
		return domainErrors.ErrNotFound
	}
	item.Archived = true
	return nil
}

// GetItem fetches an item or returns not found.
func (s *MenuRepositoryStub) GetItem(ctx context.Context, itemID int64) (*model.MenuItem, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if item, ok := s.Items[itemID]; ok {
		copy := *item
		return &copy, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ListByRestaurant returns the restaurant's items.
func (s *MenuRepositoryStub) ListByRestaurant(ctx context.Context, restaurantID int64, includeArchived bool) ([]model.MenuItem, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.MenuItem
	for id := int64(1); id < s.Next; id++ {
		item, ok := s.Items[id]
		if !ok || item.RestaurantID != restaurantID {
			continue
		}
		if item.Archived && !includeArchived {
			continue
		}
		result = append(result, *item)
	}
	return result, nil
}

// AreaRepositoryStub stores ordering hubs in-memory for tests.
type AreaRepositoryStub struct {
	ByName map[string]*model.Area
	ByID   map[int64]*model.Area
	Next   int64
	Err    error
}

// NewAreaRepositoryStub constructs stub repository with initialized maps.
func NewAreaRepositoryStub() *AreaRepositoryStub {
	return &AreaRepositoryStub{
		ByName: make(map[string]*model.Area),
		ByID:   make(map[int64]*model.Area),
		Next:   1,
	}
}

// Create stores a hub unless its name is taken.
func (s *AreaRepositoryStub) Create(ctx context.Context, area *model.Area) (*model.Area, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.ByName[area.Name]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	stored := *area
	stored.ID = s.Next
	s.Next++
	s.ByName[stored.Name] = &stored
	s.ByID[stored.ID] = &stored
	return &stored, nil
}

// Update replaces a stored hub.
func (s *AreaRepositoryStub) Update(ctx context.Context, area *model.Area) error {
	if s.Err != nil {
		return s.Err
	}
	existing, ok := s.ByID[area.ID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.ByName, existing.Name)
	stored := *area
	stored.Active = existing.Active
	s.ByID[area.ID] = &stored
	s.ByName[stored.Name] = &stored
	return nil
}

// GetByName fetches a hub or returns not found.
func (s *AreaRepositoryStub) GetByName(ctx context.Context, name string) (*model.Area, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if area, ok := s.ByName[name]; ok {
		copy := *area
		return &copy, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List returns hubs, optionally only active ones.
func (s *AreaRepositoryStub) List(ctx context.Context, activeOnly bool) ([]model.Area, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Area
	for id := int64(1); id < s.Next; id++ {
		area, ok := s.ByID[id]
		if !ok {
			continue
		}
		if activeOnly && !area.Active {
			continue
		}
		result = append(result, *area)
	}
	return result, nil
}

// SetActive flips the hub's active flag.
func (s *AreaRepositoryStub) SetActive(ctx context.Context, id int64, active bool) error {
	if s.Err != nil {
		return s.Err
	}
	area, ok := s.ByID[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	area.Active = active
	return nil
}

// OrderRepositoryStub allows tests to customize order persistence behaviour.
type OrderRepositoryStub struct {
	InsertBatchFn    func(context.Context, []model.Order) error
	GetByIDFn        func(context.Context, string) (*model.Order, error)
	ListSinceFn      func(context.Context, int64, int64, int) ([]model.Order, error)
	ListRecentFn     func(context.Context, int) ([]model.Order, error)
	ListByCustomerFn func(context.Context, string) ([]model.Order, error)
	UpdateStatusFn   func(context.Context, string, model.OrderStatus, string, string) (*model.Order, error)

	mu     sync.Mutex
	Orders map[string]*model.Order
}

// NewOrderRepositoryStub constructs stub repository with initialized maps.
func NewOrderRepositoryStub() *OrderRepositoryStub {
	return &OrderRepositoryStub{Orders: make(map[string]*model.Order)}
}

// InsertBatch stores every order of the batch.
func (s *OrderRepositoryStub) InsertBatch(ctx context.Context, orders []model.Order) error {
	if s.InsertBatchFn != nil {
		return s.InsertBatchFn(ctx, orders)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, order := range orders {
		stored := order
		s.Orders[order.ID] = &stored
	}
	return nil
}

// GetByID fetches an order or returns not found.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id string) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if order, ok := s.Orders[id]; ok {
		copy := *order
		return &copy, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ListSince returns stored orders created after the watermark.
func (s *OrderRepositoryStub) ListSince(ctx context.Context, restaurantID, sinceMillis int64, limit int) ([]model.Order, error) {
	if s.ListSinceFn != nil {
		return s.ListSinceFn(ctx, restaurantID, sinceMillis, limit)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []model.Order
	for _, order := range s.Orders {
		if restaurantID != 0 && order.RestaurantID != restaurantID {
			continue
		}
		if order.CreatedAt > sinceMillis {
			result = append(result, *order)
		}
	}
	return result, nil
}

// ListRecent returns every stored order.
func (s *OrderRepositoryStub) ListRecent(ctx context.Context, limit int) ([]model.Order, error) {
	if s.ListRecentFn != nil {
		return s.ListRecentFn(ctx, limit)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []model.Order
	for _, order := range s.Orders {
		result = append(result, *order)
	}
	return result, nil
}

// ListByCustomer returns the customer's stored orders.
func (s *OrderRepositoryStub) ListByCustomer(ctx context.Context, customerID string) ([]model.Order, error) {
	if s.ListByCustomerFn != nil {
		return s.ListByCustomerFn(ctx, customerID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []model.Order
	for _, order := range s.Orders {
		if order.CustomerID == customerID {
			result = append(result, *order)
		}
	}
	return result, nil
}

// UpdateStatus applies the transition to the stored order.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, id string, to model.OrderStatus, reason, note string) (*model.Order, error) {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, id, to, reason, note)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.Orders[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if !model.CanTransition(order.Status, to) {
		return nil, domainErrors.ErrInvalidTransition
	}
	order.Status = to
	order.RejectReason = reason
	order.RejectNote = note
	copy := *order
	return &copy, nil
}
