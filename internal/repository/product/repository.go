// Package product persists the catalog rows served by the dev backend.
package product

import (
	"context"

	"bloomshop/internal/domain"
)

// Filter narrows List. Zero values mean no constraint.
type Filter struct {
	Category string
	ID       string
}

type Repository interface {
	List(ctx context.Context, f Filter) ([]domain.Product, error)
	Create(ctx context.Context, p domain.Product) (*domain.Product, error)
}
