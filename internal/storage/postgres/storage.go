package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/quickserve/quickserve/internal/domain/errors"
	"github.com/quickserve/quickserve/internal/domain/model"
	"github.com/quickserve/quickserve/internal/domain/repository"
)

// DB is the subset of pgxpool.Pool the storage layer uses; pgxmock
// satisfies it in tests.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   DB
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type restaurantRepository struct {
	storage *Storage
}

type menuRepository struct {
	storage *Storage
}

type areaRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (DB, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Restaurants() repository.RestaurantRepository {
	return &restaurantRepository{storage: s}
}

func (s *Storage) Menus() repository.MenuRepository {
	return &menuRepository{storage: s}
}

func (s *Storage) Areas() repository.AreaRepository {
	return &areaRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id SERIAL PRIMARY KEY,
            login TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            role TEXT NOT NULL,
            restaurant_id BIGINT NOT NULL DEFAULT 0,
            active BOOLEAN NOT NULL DEFAULT TRUE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS restaurants (
            id SERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            logo_url TEXT NOT NULL DEFAULT '',
            vendor_id BIGINT NOT NULL DEFAULT 0,
            hub TEXT NOT NULL,
            online BOOLEAN NOT NULL DEFAULT FALSE
        )`,
		`CREATE TABLE IF NOT EXISTS menu_items (
            id SERIAL PRIMARY KEY,
            restaurant_id BIGINT NOT NULL REFERENCES restaurants(id),
            name TEXT NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            price DOUBLE PRECISION NOT NULL,
            image_url TEXT NOT NULL DEFAULT '',
            category TEXT NOT NULL DEFAULT '',
            archived BOOLEAN NOT NULL DEFAULT FALSE,
            sizes JSONB NOT NULL DEFAULT '[]',
            temperature JSONB NOT NULL DEFAULT '{}',
            variants JSONB NOT NULL DEFAULT '{}'
        )`,
		`CREATE TABLE IF NOT EXISTS areas (
            id SERIAL PRIMARY KEY,
            name TEXT UNIQUE NOT NULL,
            city TEXT NOT NULL DEFAULT '',
            state TEXT NOT NULL DEFAULT '',
            code TEXT NOT NULL,
            active BOOLEAN NOT NULL DEFAULT TRUE,
            multi_vendor BOOLEAN NOT NULL DEFAULT FALSE
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id TEXT PRIMARY KEY,
            restaurant_id BIGINT NOT NULL REFERENCES restaurants(id),
            customer_id TEXT NOT NULL,
            hub TEXT NOT NULL,
            table_number INT NOT NULL,
            items JSONB NOT NULL,
            total DOUBLE PRECISION NOT NULL,
            status TEXT NOT NULL,
            remark TEXT NOT NULL DEFAULT '',
            reject_reason TEXT NOT NULL DEFAULT '',
            reject_note TEXT NOT NULL DEFAULT '',
            created_at BIGINT NOT NULL,
            updated_at BIGINT NOT NULL
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_restaurant ON orders(restaurant_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_customer ON orders(customer_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_menu_items_restaurant ON menu_items(restaurant_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	const query = `INSERT INTO users (login, password_hash, role, restaurant_id, active)
                   VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`
	created := *user
	err := r.storage.pool.QueryRow(ctx, query, user.Login, user.PasswordHash, user.Role, user.RestaurantID, user.Active).
		Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &created, nil
}

func (r *userRepository) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	const query = `SELECT id, login, password_hash, role, restaurant_id, active, created_at
                   FROM users WHERE login=$1`
	return r.scanOne(r.storage.pool.QueryRow(ctx, query, login))
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT id, login, password_hash, role, restaurant_id, active, created_at
                   FROM users WHERE id=$1`
	return r.scanOne(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *userRepository) scanOne(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Login, &u.PasswordHash, &u.Role, &u.RestaurantID, &u.Active, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) ListByRole(ctx context.Context, role model.Role) ([]model.User, error) {
	const query = `SELECT id, login, password_hash, role, restaurant_id, active, created_at
                   FROM users WHERE role=$1 ORDER BY created_at`
	rows, err := r.storage.pool.Query(ctx, query, role)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Login, &u.PasswordHash, &u.Role, &u.RestaurantID, &u.Active, &u.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *userRepository) SetActive(ctx context.Context, id int64, active bool) error {
	const query = `UPDATE users SET active=$2 WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id, active)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- RestaurantRepository implementation ---

func (r *restaurantRepository) Create(ctx context.Context, restaurant *model.Restaurant) (*model.Restaurant, error) {
	const query = `INSERT INTO restaurants (name, logo_url, vendor_id, hub, online)
                   VALUES ($1, $2, $3, $4, $5) RETURNING id`
	created := *restaurant
	err := r.storage.pool.QueryRow(ctx, query, restaurant.Name, restaurant.LogoURL, restaurant.VendorID, restaurant.Hub, restaurant.Online).
		Scan(&created.ID)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *restaurantRepository) GetByID(ctx context.Context, id int64) (*model.Restaurant, error) {
	const query = `SELECT id, name, logo_url, vendor_id, hub, online FROM restaurants WHERE id=$1`
	return r.scanOne(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *restaurantRepository) GetByVendor(ctx context.Context, vendorID int64) (*model.Restaurant, error) {
	const query = `SELECT id, name, logo_url, vendor_id, hub, online FROM restaurants WHERE vendor_id=$1`
	return r.scanOne(r.storage.pool.QueryRow(ctx, query, vendorID))
}

func (r *restaurantRepository) scanOne(row pgx.Row) (*model.Restaurant, error) {
	var rest model.Restaurant
	err := row.Scan(&rest.ID, &rest.Name, &rest.LogoURL, &rest.VendorID, &rest.Hub, &rest.Online)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &rest, nil
}

func (r *restaurantRepository) ListByHub(ctx context.Context, hub string, onlineOnly bool) ([]model.Restaurant, error) {
	query := `SELECT id, name, logo_url, vendor_id, hub, online FROM restaurants WHERE hub=$1 ORDER BY name`
	if onlineOnly {
		query = `SELECT id, name, logo_url, vendor_id, hub, online FROM restaurants WHERE hub=$1 AND online ORDER BY name`
	}
	rows, err := r.storage.pool.Query(ctx, query, hub)
	if err != nil {
		return nil, err
	}
	return scanRestaurants(rows)
}

func (r *restaurantRepository) List(ctx context.Context) ([]model.Restaurant, error) {
	const query = `SELECT id, name, logo_url, vendor_id, hub, online FROM restaurants ORDER BY hub, name`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return scanRestaurants(rows)
}

func scanRestaurants(rows pgx.Rows) ([]model.Restaurant, error) {
	defer rows.Close()
	var result []model.Restaurant
	for rows.Next() {
		var rest model.Restaurant
		if err := rows.Scan(&rest.ID, &rest.Name, &rest.LogoURL, &rest.VendorID, &rest.Hub, &rest.Online); err != nil {
			return nil, err
		}
		result = append(result, rest)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *restaurantRepository) SetOnline(ctx context.Context, id int64, online bool) error {
	const query = `UPDATE restaurants SET online=$2 WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id, online)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *restaurantRepository) Update(ctx context.Context, restaurant *model.Restaurant) error {
	const query = `UPDATE restaurants SET name=$2, logo_url=$3, vendor_id=$4, hub=$5 WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, restaurant.ID, restaurant.Name, restaurant.LogoURL, restaurant.VendorID, restaurant.Hub)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- MenuRepository implementation ---

func (r *menuRepository) CreateItem(ctx context.Context, item *model.MenuItem) (*model.MenuItem, error) {
	sizes, temperature, variants, err := marshalVariants(item)
	if err != nil {
		return nil, err
	}
	const query = `INSERT INTO menu_items (restaurant_id, name, description, price, image_url, category, archived, sizes, temperature, variants)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	created := *item
	err = r.storage.pool.QueryRow(ctx, query,
		item.RestaurantID, item.Name, item.Description, item.Price, item.ImageURL, item.Category, item.Archived,
		sizes, temperature, variants).Scan(&created.ID)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *menuRepository) UpdateItem(ctx context.Context, item *model.MenuItem) error {
	sizes, temperature, variants, err := marshalVariants(item)
	if err != nil {
		return err
	}
	const query = `UPDATE menu_items
                   SET name=$3, description=$4, price=$5, image_url=$6, category=$7, archived=$8, sizes=$9, temperature=$10, variants=$11
                   WHERE id=$1 AND restaurant_id=$2`
	tag, err := r.storage.pool.Exec(ctx, query,
		item.ID, item.RestaurantID, item.Name, item.Description, item.Price, item.ImageURL, item.Category, item.Archived,
		sizes, temperature, variants)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *menuRepository) ArchiveItem(ctx context.Context, restaurantID, itemID int64) error {
	const query = `UPDATE menu_items SET archived=TRUE WHERE id=$1 AND restaurant_id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, itemID, restaurantID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *menuRepository) GetItem(ctx context.Context, itemID int64) (*model.MenuItem, error) {
	const query = `SELECT id, restaurant_id, name, description, price, image_url, category, archived, sizes, temperature, variants
                   FROM menu_items WHERE id=$1`
	item, err := scanMenuItem(r.storage.pool.QueryRow(ctx, query, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

func (r *menuRepository) ListByRestaurant(ctx context.Context, restaurantID int64, includeArchived bool) ([]model.MenuItem, error) {
	query := `SELECT id, restaurant_id, name, description, price, image_url, category, archived, sizes, temperature, variants
              FROM menu_items WHERE restaurant_id=$1 AND NOT archived ORDER BY category, name`
	if includeArchived {
		query = `SELECT id, restaurant_id, name, description, price, image_url, category, archived, sizes, temperature, variants
                 FROM menu_items WHERE restaurant_id=$1 ORDER BY category, name`
	}
	rows, err := r.storage.pool.Query(ctx, query, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.MenuItem
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func marshalVariants(item *model.MenuItem) ([]byte, []byte, []byte, error) {
	sizes, err := json.Marshal(item.Sizes)
	if err != nil {
		return nil, nil, nil, err
	}
	temperature, err := json.Marshal(item.Temperature)
	if err != nil {
		return nil, nil, nil, err
	}
	variants, err := json.Marshal(item.Variants)
	if err != nil {
		return nil, nil, nil, err
	}
	return sizes, temperature, variants, nil
}

func scanMenuItem(row pgx.Row) (*model.MenuItem, error) {
	var (
		item        model.MenuItem
		sizes       []byte
		temperature []byte
		variants    []byte
	)
	err := row.Scan(&item.ID, &item.RestaurantID, &item.Name, &item.Description, &item.Price,
		&item.ImageURL, &item.Category, &item.Archived, &sizes, &temperature, &variants)
	if err != nil {
		return nil, err
	}
	if len(sizes) > 0 {
		if err := json.Unmarshal(sizes, &item.Sizes); err != nil {
			return nil, fmt.Errorf("decode sizes: %w", err)
		}
	}
	if len(temperature) > 0 {
		if err := json.Unmarshal(temperature, &item.Temperature); err != nil {
			return nil, fmt.Errorf("decode temperature: %w", err)
		}
	}
	if len(variants) > 0 {
		if err := json.Unmarshal(variants, &item.Variants); err != nil {
			return nil, fmt.Errorf("decode variants: %w", err)
		}
	}
	return &item, nil
}

// --- AreaRepository implementation ---

func (r *areaRepository) Create(ctx context.Context, area *model.Area) (*model.Area, error) {
	const query = `INSERT INTO areas (name, city, state, code, active, multi_vendor)
                   VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	created := *area
	err := r.storage.pool.QueryRow(ctx, query, area.Name, area.City, area.State, area.Code, area.Active, area.MultiVendor).
		Scan(&created.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &created, nil
}

// Update leaves the active flag alone; SetActive owns it.
func (r *areaRepository) Update(ctx context.Context, area *model.Area) error {
	const query = `UPDATE areas SET name=$2, city=$3, state=$4, code=$5, multi_vendor=$6 WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, area.ID, area.Name, area.City, area.State, area.Code, area.MultiVendor)
	if err != nil {
		if isUniqueViolation(err) {
			return domainErrors.ErrAlreadyExists
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *areaRepository) GetByName(ctx context.Context, name string) (*model.Area, error) {
	const query = `SELECT id, name, city, state, code, active, multi_vendor FROM areas WHERE name=$1`
	var a model.Area
	err := r.storage.pool.QueryRow(ctx, query, name).
		Scan(&a.ID, &a.Name, &a.City, &a.State, &a.Code, &a.Active, &a.MultiVendor)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *areaRepository) List(ctx context.Context, activeOnly bool) ([]model.Area, error) {
	query := `SELECT id, name, city, state, code, active, multi_vendor FROM areas ORDER BY name`
	if activeOnly {
		query = `SELECT id, name, city, state, code, active, multi_vendor FROM areas WHERE active ORDER BY name`
	}
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Area
	for rows.Next() {
		var a model.Area
		if err := rows.Scan(&a.ID, &a.Name, &a.City, &a.State, &a.Code, &a.Active, &a.MultiVendor); err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *areaRepository) SetActive(ctx context.Context, id int64, active bool) error {
	const query = `UPDATE areas SET active=$2 WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id, active)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- OrderRepository implementation ---

const orderColumns = `id, restaurant_id, customer_id, hub, table_number, items, total, status, remark, reject_reason, reject_note, created_at, updated_at`

func (r *orderRepository) InsertBatch(ctx context.Context, orders []model.Order) error {
	if len(orders) == 0 {
		return nil
	}
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const query = `INSERT INTO orders (` + orderColumns + `)
                       VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
		for _, order := range orders {
			items, err := json.Marshal(order.Items)
			if err != nil {
				return err
			}
			if _, err := tx.Exec(ctx, query,
				order.ID, order.RestaurantID, order.CustomerID, order.Hub, order.TableNumber,
				items, order.Total, order.Status, order.Remark, order.RejectReason, order.RejectNote,
				order.CreatedAt, order.UpdatedAt); err != nil {
				if isUniqueViolation(err) {
					return domainErrors.ErrAlreadyExists
				}
				return err
			}
		}
		return nil
	})
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) ListSince(ctx context.Context, restaurantID int64, sinceMillis int64, limit int) ([]model.Order, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if restaurantID != 0 {
		const query = `SELECT ` + orderColumns + ` FROM orders
                       WHERE restaurant_id=$1 AND created_at > $2 ORDER BY created_at LIMIT $3`
		rows, err = r.storage.pool.Query(ctx, query, restaurantID, sinceMillis, limit)
	} else {
		const query = `SELECT ` + orderColumns + ` FROM orders
                       WHERE created_at > $1 ORDER BY created_at LIMIT $2`
		rows, err = r.storage.pool.Query(ctx, query, sinceMillis, limit)
	}
	if err != nil {
		return nil, err
	}
	return scanOrders(rows)
}

func (r *orderRepository) ListRecent(ctx context.Context, limit int) ([]model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC LIMIT $1`
	rows, err := r.storage.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	return scanOrders(rows)
}

func (r *orderRepository) ListByCustomer(ctx context.Context, customerID string) ([]model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE customer_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	return scanOrders(rows)
}

// UpdateStatus applies the transition only when the stored status allows it,
// so a stale or duplicate request can never move an order backwards.
func (r *orderRepository) UpdateStatus(ctx context.Context, id string, to model.OrderStatus, reason, note string) (*model.Order, error) {
	const query = `UPDATE orders SET status=$2, reject_reason=$3, reject_note=$4, updated_at=$5
                   WHERE id=$1 AND (
                       (status='PENDING' AND $2 IN ('ONGOING', 'CANCELLED'))
                       OR (status='ONGOING' AND $2='COMPLETED')
                   )
                   RETURNING ` + orderColumns
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, id, to, reason, note, time.Now().UnixMilli()))
	if err == nil {
		return order, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	// Distinguish a missing order from a disallowed transition.
	if _, getErr := r.GetByID(ctx, id); getErr != nil {
		return nil, getErr
	}
	return nil, domainErrors.ErrInvalidTransition
}

func scanOrder(row pgx.Row) (*model.Order, error) {
	var (
		order model.Order
		items []byte
	)
	err := row.Scan(&order.ID, &order.RestaurantID, &order.CustomerID, &order.Hub, &order.TableNumber,
		&items, &order.Total, &order.Status, &order.Remark, &order.RejectReason, &order.RejectNote,
		&order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if len(items) > 0 {
		if err := json.Unmarshal(items, &order.Items); err != nil {
			return nil, fmt.Errorf("decode order items: %w", err)
		}
	}
	return &order, nil
}

func scanOrders(rows pgx.Rows) ([]model.Order, error) {
	defer rows.Close()
	var result []model.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
