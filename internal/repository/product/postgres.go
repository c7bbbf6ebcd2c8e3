package product

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

func (r *postgresRepo) List(ctx context.Context, f Filter) ([]domain.Product, error) {
	const q = `
SELECT id::text, title, description, category, price, image, in_stock, created_at
FROM products
WHERE ($1 = '' OR lower(category) = lower($1))
  AND ($2 = '' OR id::text = $2)
ORDER BY title
`
	rows, err := r.pool.Query(ctx, q, f.Category, f.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]domain.Product, 0)
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Category, &p.Price, &p.Image, &p.InStock, &p.CreatedAt); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *postgresRepo) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (title, description, category, price, image, in_stock)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id::text, title, description, category, price, image, in_stock, created_at
`
	row := r.pool.QueryRow(ctx, q, p.Title, p.Description, p.Category, p.Price, p.Image, p.InStock)
	var created domain.Product
	if err := row.Scan(&created.ID, &created.Title, &created.Description, &created.Category, &created.Price, &created.Image, &created.InStock, &created.CreatedAt); err != nil {
		return nil, err
	}
	return &created, nil
}
