package cartline

import (
	"context"
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

const selectColumns = `id::text, email, product_id, title, price, quantity, image`

func (r *postgresRepo) ListByEmail(ctx context.Context, email string) ([]domain.CartItem, error) {
	const q = `
SELECT ` + selectColumns + `
FROM cart_items
WHERE email = lower($1)
ORDER BY created_at, id
`
	rows, err := r.pool.Query(ctx, q, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.CartItem, 0)
	for rows.Next() {
		var item domain.CartItem
		if err := rows.Scan(&item.ID, &item.Email, &item.ProductID, &item.Title, &item.Price, &item.Quantity, &item.Image); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *postgresRepo) Create(ctx context.Context, item domain.CartItem) (*domain.CartItem, error) {
	const q = `
INSERT INTO cart_items (email, product_id, title, price, quantity, image)
VALUES (lower($1), $2, $3, $4, $5, $6)
RETURNING ` + selectColumns + `
`
	row := r.pool.QueryRow(ctx, q, item.Email, item.ProductID, item.Title, item.Price, item.Quantity, item.Image)
	return scanItem(row)
}

func (r *postgresRepo) UpdateQuantity(ctx context.Context, id string, quantity int) (*domain.CartItem, error) {
	const q = `
UPDATE cart_items
SET quantity = $2
WHERE id = $1
RETURNING ` + selectColumns + `
`
	item, err := scanItem(r.pool.QueryRow(ctx, q, id, quantity))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM cart_items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) DeleteByEmail(ctx context.Context, email string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM cart_items WHERE email = lower($1)`, email)
	return err
}

func scanItem(row pgx.Row) (*domain.CartItem, error) {
	var item domain.CartItem
	if err := row.Scan(&item.ID, &item.Email, &item.ProductID, &item.Title, &item.Price, &item.Quantity, &item.Image); err != nil {
		return nil, err
	}
	return &item, nil
}
