package store

import (
	"context"

	"bloomshop/internal/domain"
	"bloomshop/internal/pricing"
)

// AddToCart creates a new cart line for the product with quantity 1, then
// replaces the in-memory cart with a fresh read from the remote store.
func (s *Store) AddToCart(ctx context.Context, p domain.Product) error {
	s.mu.Lock()
	sess, err := s.sessionLocked()
	if err != nil {
		s.mu.Unlock()
		return err
	}

	item := domain.CartItem{
		Email:     sess.Email,
		ProductID: p.ID,
		Title:     p.Title,
		Price:     p.Price,
		Quantity:  1,
		Image:     p.Image,
	}
	if err := s.gw.AddCartItem(ctx, item); err != nil {
		s.mu.Unlock()
		return err
	}
	err = s.refreshCartLocked(ctx, sess.Email)
	s.mu.Unlock()
	if err != nil {
		return err
	}

	s.notify()
	return nil
}

// RemoveFromCart deletes one cart line, then refreshes the whole cart.
func (s *Store) RemoveFromCart(ctx context.Context, lineID string) error {
	s.mu.Lock()
	sess, err := s.sessionLocked()
	if err != nil {
		s.mu.Unlock()
		return err
	}
	if err := s.gw.RemoveCartItem(ctx, lineID); err != nil {
		s.mu.Unlock()
		return err
	}
	err = s.refreshCartLocked(ctx, sess.Email)
	s.mu.Unlock()
	if err != nil {
		return err
	}

	s.notify()
	return nil
}

// UpdateQuantity changes one line's quantity, then refreshes the whole cart.
// Quantities below 1 are a silent no-op: removal happens through
// RemoveFromCart, never through a zero quantity.
func (s *Store) UpdateQuantity(ctx context.Context, lineID string, quantity int) error {
	if quantity < 1 {
		return nil
	}
	s.mu.Lock()
	sess, err := s.sessionLocked()
	if err != nil {
		s.mu.Unlock()
		return err
	}
	if err := s.gw.UpdateCartQuantity(ctx, lineID, quantity); err != nil {
		s.mu.Unlock()
		return err
	}
	err = s.refreshCartLocked(ctx, sess.Email)
	s.mu.Unlock()
	if err != nil {
		return err
	}

	s.notify()
	return nil
}

// ClearCart bulk-deletes the cart remotely and empties memory directly.
// No refetch: the server confirmed the cart is empty.
func (s *Store) ClearCart(ctx context.Context) error {
	s.mu.Lock()
	sess, err := s.sessionLocked()
	if err != nil {
		s.mu.Unlock()
		return err
	}
	if err := s.gw.ClearCart(ctx, sess.Email); err != nil {
		s.mu.Unlock()
		return err
	}
	s.cart = nil
	s.mu.Unlock()

	s.notify()
	return nil
}

// CartTotal is the sum of price times quantity over the current cart.
func (s *Store) CartTotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return pricing.Subtotal(s.cart)
}

// CartItemCount is the sum of quantities, not the number of lines.
func (s *Store) CartItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return pricing.ItemCount(s.cart)
}

// InCart reports whether any cart line references the product.
func (s *Store) InCart(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.cart {
		if it.ProductID == productID {
			return true
		}
	}
	return false
}

// CartQuote prices the current cart for display at checkout.
func (s *Store) CartQuote() pricing.Quote {
	s.mu.Lock()
	defer s.mu.Unlock()
	return pricing.QuoteItems(s.cart)
}
