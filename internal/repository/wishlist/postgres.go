package wishlist

import (
	"context"
	"io"
	"log"

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

const selectColumns = `id::text, email, product_id, title, price, image, in_stock`

func (r *postgresRepo) ListByEmail(ctx context.Context, email string) ([]domain.WishlistItem, error) {
	const q = `
SELECT ` + selectColumns + `
FROM wishlist_items
WHERE email = lower($1)
ORDER BY created_at, id
`
	rows, err := r.pool.Query(ctx, q, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.WishlistItem, 0)
	for rows.Next() {
		var item domain.WishlistItem
		if err := rows.Scan(&item.ID, &item.Email, &item.ProductID, &item.Title, &item.Price, &item.Image, &item.InStock); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *postgresRepo) Create(ctx context.Context, item domain.WishlistItem) (*domain.WishlistItem, error) {
	const q = `
INSERT INTO wishlist_items (email, product_id, title, price, image, in_stock)
VALUES (lower($1), $2, $3, $4, $5, $6)
RETURNING ` + selectColumns + `
`
	row := r.pool.QueryRow(ctx, q, item.Email, item.ProductID, item.Title, item.Price, item.Image, item.InStock)
	var created domain.WishlistItem
	if err := row.Scan(&created.ID, &created.Email, &created.ProductID, &created.Title, &created.Price, &created.Image, &created.InStock); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM wishlist_items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) DeleteByEmail(ctx context.Context, email string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM wishlist_items WHERE email = lower($1)`, email)
	return err
}
