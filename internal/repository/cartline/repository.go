// Package cartline persists the per-customer cart lines served by the
// dev backend.
package cartline

import (
	"context"

	"bloomshop/internal/domain"
)

type Repository interface {
	ListByEmail(ctx context.Context, email string) ([]domain.CartItem, error)
	Create(ctx context.Context, item domain.CartItem) (*domain.CartItem, error)
	UpdateQuantity(ctx context.Context, id string, quantity int) (*domain.CartItem, error)
	Delete(ctx context.Context, id string) error
	DeleteByEmail(ctx context.Context, email string) error
}
