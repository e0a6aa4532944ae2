package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/bikestores/bikestore/internal/domain/errors"
	"github.com/bikestores/bikestore/internal/domain/model"
	"github.com/bikestores/bikestore/internal/domain/repository"
)

// pgxPool is the subset of pgxpool.Pool the storage uses; it lets tests
// substitute a pgxmock pool.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type customerRepository struct {
	storage *Storage
}

type reportRepository struct {
	storage *Storage
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

func (s *Storage) Customers() repository.CustomerRepository {
	return &customerRepository{storage: s}
}

func (s *Storage) Reports() repository.ReportRepository {
	return &reportRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE SCHEMA IF NOT EXISTS sales`,
		`CREATE SCHEMA IF NOT EXISTS production`,
		`CREATE TABLE IF NOT EXISTS app_users (
            user_id SERIAL PRIMARY KEY,
            email TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS sales.stores (
            store_id SERIAL PRIMARY KEY,
            store_name TEXT NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS sales.customers (
            customer_id SERIAL PRIMARY KEY,
            first_name TEXT NOT NULL,
            last_name TEXT NOT NULL,
            email TEXT NOT NULL,
            city TEXT NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS sales.orders (
            order_id SERIAL PRIMARY KEY,
            store_id BIGINT NOT NULL REFERENCES sales.stores(store_id),
            order_date DATE NOT NULL DEFAULT CURRENT_DATE
        )`,
		`CREATE TABLE IF NOT EXISTS production.products (
            product_id SERIAL PRIMARY KEY,
            product_name TEXT NOT NULL
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_store ON sales.orders(store_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- UserRepository implementation ---

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	const query = `SELECT user_id, email, password_hash FROM app_users WHERE email=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, email).Scan(&u.ID, &u.Email, &u.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// --- CustomerRepository implementation ---

func (r *customerRepository) List(ctx context.Context, search string, limit, offset int) ([]model.Customer, error) {
	const query = `SELECT customer_id, first_name, last_name, email, city
                   FROM sales.customers
                   WHERE first_name ILIKE $1 OR last_name ILIKE $1 OR email ILIKE $1
                   ORDER BY customer_id DESC
                   LIMIT $2 OFFSET $3`
	pattern := "%" + search + "%"
	rows, err := r.storage.pool.Query(ctx, query, pattern, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Customer
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.City); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *customerRepository) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	const query = `SELECT customer_id, first_name, last_name, email, city
                   FROM sales.customers WHERE customer_id=$1`
	var c model.Customer
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.City)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *customerRepository) Insert(ctx context.Context, form model.CustomerForm) (int64, error) {
	const query = `INSERT INTO sales.customers (first_name, last_name, email, city)
                   VALUES ($1, $2, $3, $4) RETURNING customer_id`
	var id int64
	if err := r.storage.pool.QueryRow(ctx, query, form.FirstName, form.LastName, form.Email, form.City).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *customerRepository) Update(ctx context.Context, id int64, form model.CustomerForm) error {
	const query = `UPDATE sales.customers
                   SET first_name=$1, last_name=$2, email=$3, city=$4
                   WHERE customer_id=$5`
	_, err := r.storage.pool.Exec(ctx, query, form.FirstName, form.LastName, form.Email, form.City, id)
	return err
}

// Delete is idempotent: removing an absent customer is not an error.
func (r *customerRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM sales.customers WHERE customer_id=$1`
	_, err := r.storage.pool.Exec(ctx, query, id)
	return err
}

// --- ReportRepository implementation ---

func (r *reportRepository) CountCustomers(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM sales.customers`)
}

func (r *reportRepository) CountOrders(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM sales.orders`)
}

func (r *reportRepository) CountProducts(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM production.products`)
}

func (r *reportRepository) CountStores(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM sales.stores`)
}

func (r *reportRepository) count(ctx context.Context, query string) (int64, error) {
	var total int64
	if err := r.storage.pool.QueryRow(ctx, query).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *reportRepository) TopStoresByOrders(ctx context.Context, limit int) ([]model.StoreOrders, error) {
	const query = `SELECT s.store_name, COUNT(o.order_id) AS total_orders
                   FROM sales.orders o
                   JOIN sales.stores s ON o.store_id = s.store_id
                   GROUP BY s.store_name
                   ORDER BY total_orders DESC
                   LIMIT $1`
	rows, err := r.storage.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.StoreOrders
	for rows.Next() {
		var row model.StoreOrders
		if err := rows.Scan(&row.StoreName, &row.Orders); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GroupByCity returns customer counts per city, most populous first.
// A zero limit means no cap; NULLIF keeps the clause parametrized.
func (r *reportRepository) GroupByCity(ctx context.Context, limit int) ([]model.CityCustomers, error) {
	const query = `SELECT city, COUNT(*) AS total_customers
                   FROM sales.customers
                   GROUP BY city
                   ORDER BY total_customers DESC
                   LIMIT NULLIF($1, 0)`
	rows, err := r.storage.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.CityCustomers
	for rows.Next() {
		var row model.CityCustomers
		if err := rows.Scan(&row.City, &row.Customers); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
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
