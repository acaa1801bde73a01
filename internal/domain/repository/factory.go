package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Users() UserRepository
	Restaurants() RestaurantRepository
	Menus() MenuRepository
	Areas() AreaRepository
	Orders() OrderRepository
}
