package user

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
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

const uniqueViolation = "23505"

func (r *postgresRepo) Create(ctx context.Context, u domain.User) (*domain.User, error) {
	const q = `
INSERT INTO users (user_name, email, password_hash, settings)
VALUES ($1, lower($2), $3, $4)
RETURNING id::text, user_name, email, password_hash, settings, created_at
`
	settings, err := settingsParam(u.Settings)
	if err != nil {
		return nil, err
	}
	row := r.pool.QueryRow(ctx, q, u.UserName, u.Email, u.PasswordHash, settings)
	created, err := scanUser(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domain.ErrEmailTaken
		}
		return nil, err
	}
	return created, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	const q = `
SELECT id::text, user_name, email, password_hash, settings, created_at
FROM users
WHERE id = $1
`
	return r.fetch(ctx, q, id)
}

func (r *postgresRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	const q = `
SELECT id::text, user_name, email, password_hash, settings, created_at
FROM users
WHERE email = lower($1)
`
	return r.fetch(ctx, q, email)
}

func (r *postgresRepo) Update(ctx context.Context, id string, fields map[string]interface{}) (*domain.User, error) {
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v, ok := fields["userName"].(string); ok && v != "" {
		current.UserName = v
	}
	if v, ok := fields["email"].(string); ok && v != "" {
		current.Email = v
	}
	if v, ok := fields["settings"].(map[string]interface{}); ok {
		if current.Settings == nil {
			current.Settings = make(map[string]interface{}, len(v))
		}
		for k, val := range v {
			current.Settings[k] = val
		}
	}

	const q = `
UPDATE users
SET user_name = $2, email = lower($3), settings = $4
WHERE id = $1
RETURNING id::text, user_name, email, password_hash, settings, created_at
`
	settings, err := settingsParam(current.Settings)
	if err != nil {
		return nil, err
	}
	row := r.pool.QueryRow(ctx, q, id, current.UserName, current.Email, settings)
	return scanUser(row)
}

func (r *postgresRepo) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE users SET password_hash = $2 WHERE id = $1`, id, passwordHash)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) fetch(ctx context.Context, q string, arg interface{}) (*domain.User, error) {
	row := r.pool.QueryRow(ctx, q, arg)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	var settings []byte
	if err := row.Scan(&u.ID, &u.UserName, &u.Email, &u.PasswordHash, &settings, &u.CreatedAt); err != nil {
		return nil, err
	}
	if len(settings) > 0 {
		if err := json.Unmarshal(settings, &u.Settings); err != nil {
			return nil, err
		}
	}
	return &u, nil
}

func settingsParam(settings map[string]interface{}) ([]byte, error) {
	if settings == nil {
		settings = map[string]interface{}{}
	}
	return json.Marshal(settings)
}
