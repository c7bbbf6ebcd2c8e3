// Package order persists checked-out orders served by the dev backend.
package order

import (
	"context"

	"bloomshop/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, o domain.Order) (*domain.Order, error)
	ListByEmail(ctx context.Context, email string) ([]domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
}
