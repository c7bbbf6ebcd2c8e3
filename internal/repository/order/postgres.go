package order

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bloomshop/internal/domain"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

// NewPostgres returns a Postgres-backed Repository. A nil logger discards.
func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

const selectColumns = `id::text, email, cart, name, address, city, postal_code, phone, subtotal, shipping, tax, total, status, created_at`

func (r *postgresRepo) Create(ctx context.Context, o domain.Order) (*domain.Order, error) {
	const q = `
INSERT INTO orders (email, cart, name, address, city, postal_code, phone, subtotal, shipping, tax, total, status)
VALUES (lower($1), $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING ` + selectColumns + `
`
	cart, err := json.Marshal(o.Cart)
	if err != nil {
		return nil, err
	}
	status := o.Status
	if status == "" {
		status = domain.OrderStatusPlaced
	}
	row := r.pool.QueryRow(ctx, q,
		o.Email, cart, o.Name, o.Address, o.City, o.PostalCode, o.Phone,
		o.Subtotal, o.Shipping, o.Tax, o.Total, status)
	return scanOrder(row)
}

func (r *postgresRepo) ListByEmail(ctx context.Context, email string) ([]domain.Order, error) {
	const q = `
SELECT ` + selectColumns + `
FROM orders
WHERE email = lower($1)
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}
	return orders, rows.Err()
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	const q = `
SELECT ` + selectColumns + `
FROM orders
WHERE id = $1
`
	o, err := scanOrder(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return o, nil
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var o domain.Order
	var cart []byte
	if err := row.Scan(&o.ID, &o.Email, &cart, &o.Name, &o.Address, &o.City, &o.PostalCode, &o.Phone,
		&o.Subtotal, &o.Shipping, &o.Tax, &o.Total, &o.Status, &o.CreatedAt); err != nil {
		return nil, err
	}
	if len(cart) > 0 {
		if err := json.Unmarshal(cart, &o.Cart); err != nil {
			return nil, err
		}
	}
	return &o, nil
}
