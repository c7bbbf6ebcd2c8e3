package gateway

import (
	"context"
	"net/http"

	"bloomshop/internal/domain"
)

// Wishlist reads the full wishlist for one account.
func (c *Client) Wishlist(ctx context.Context, email string) ([]domain.WishlistItem, error) {
	var items []domain.WishlistItem
	if err := c.do(ctx, http.MethodGet, "/wishlist", emailQuery(email), nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// AddWishlistItem saves a product to the wishlist. The server does not dedup;
// adding the same product twice yields two entries.
func (c *Client) AddWishlistItem(ctx context.Context, item domain.WishlistItem) error {
	item.ID = ""
	return c.do(ctx, http.MethodPost, "/wishlist", nil, item, nil)
}

// RemoveWishlistItem deletes one wishlist entry.
func (c *Client) RemoveWishlistItem(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/wishlist/"+id, nil, nil, nil)
}
