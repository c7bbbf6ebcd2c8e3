package gateway

import (
	"context"
	"net/http"

	"bloomshop/internal/domain"
)

// Cart reads the full cart for one account.
func (c *Client) Cart(ctx context.Context, email string) ([]domain.CartItem, error) {
	var items []domain.CartItem
	if err := c.do(ctx, http.MethodGet, "/carts", emailQuery(email), nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// AddCartItem creates a new cart line. The server assigns the line ID.
func (c *Client) AddCartItem(ctx context.Context, item domain.CartItem) error {
	// The line ID is server-assigned; never send one on create.
	item.ID = ""
	return c.do(ctx, http.MethodPost, "/carts", nil, item, nil)
}

// UpdateCartQuantity changes the quantity of one cart line.
func (c *Client) UpdateCartQuantity(ctx context.Context, lineID string, quantity int) error {
	body := map[string]int{"quantity": quantity}
	return c.do(ctx, http.MethodPut, "/carts/"+lineID, nil, body, nil)
}

// RemoveCartItem deletes one cart line.
func (c *Client) RemoveCartItem(ctx context.Context, lineID string) error {
	return c.do(ctx, http.MethodDelete, "/carts/"+lineID, nil, nil, nil)
}

// ClearCart bulk-deletes every cart line belonging to the account.
func (c *Client) ClearCart(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return c.do(ctx, http.MethodDelete, "/cart/clear", nil, body, nil)
}
