// Package wishlist persists the per-customer wishlist rows served by
// the dev backend.
package wishlist

import (
	"context"

	"bloomshop/internal/domain"
)

type Repository interface {
	ListByEmail(ctx context.Context, email string) ([]domain.WishlistItem, error)
	Create(ctx context.Context, item domain.WishlistItem) (*domain.WishlistItem, error)
	Delete(ctx context.Context, id string) error
	DeleteByEmail(ctx context.Context, email string) error
}
