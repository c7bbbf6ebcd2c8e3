package user

import (
	"context"

	"bloomshop/internal/domain"
)

// Repository persists storefront accounts for the dev backend.
type Repository interface {
	Create(ctx context.Context, u domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// Update merges the given fields; keys absent from the map are left
	// untouched, and settings merge key by key.
	Update(ctx context.Context, id string, fields map[string]interface{}) (*domain.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	Delete(ctx context.Context, id string) error
}
