package gateway

import (
	"context"
	"net/http"
	"net/url"

	"bloomshop/internal/domain"
)

// Products lists the catalog, optionally filtered by category.
func (c *Client) Products(ctx context.Context, category string) ([]domain.Product, error) {
	var query url.Values
	if category != "" {
		query = url.Values{"category": []string{category}}
	}
	var products []domain.Product
	if err := c.do(ctx, http.MethodGet, "/products", query, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Product fetches a single catalog entry by ID.
func (c *Client) Product(ctx context.Context, id string) (*domain.Product, error) {
	var products []domain.Product
	query := url.Values{"id": []string{id}}
	if err := c.do(ctx, http.MethodGet, "/products", query, nil, &products); err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, domain.ErrNotFound
	}
	return &products[0], nil
}
