package gateway

import (
	"context"
	"net/http"

	"bloomshop/internal/domain"
)

// CreateOrder submits a checkout. The server assigns the order ID and
// creation timestamp and returns the stored snapshot.
func (c *Client) CreateOrder(ctx context.Context, order domain.Order) (*domain.Order, error) {
	order.ID = ""
	var created domain.Order
	if err := c.do(ctx, http.MethodPost, "/orders", nil, order, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// OrdersByEmail lists every order placed by the account.
func (c *Client) OrdersByEmail(ctx context.Context, email string) ([]domain.Order, error) {
	var orders []domain.Order
	if err := c.do(ctx, http.MethodGet, "/orders", emailQuery(email), nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Order fetches one order by ID. Missing orders surface as domain.ErrNotFound.
func (c *Client) Order(ctx context.Context, id string) (*domain.Order, error) {
	var order domain.Order
	if err := c.do(ctx, http.MethodGet, "/orders/"+id, nil, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}
