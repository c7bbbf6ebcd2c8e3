package store

import (
	"context"
	"strings"

	"bloomshop/internal/domain"
	"bloomshop/internal/pricing"
)

// CheckoutInput carries the shipping fields for a checkout.
type CheckoutInput struct {
	Name       string
	Address    string
	City       string
	PostalCode string
	Phone      string
}

// PlaceOrder submits the current cart as an order, then clears the cart.
// The two steps are independent, not a transaction: when order creation
// succeeds but the clear fails, the placed order is returned together with
// the clear error. The order stands either way.
func (s *Store) PlaceOrder(ctx context.Context, in CheckoutInput) (*domain.Order, error) {
	s.mu.Lock()
	sess, err := s.sessionLocked()
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	if len(s.cart) == 0 {
		s.mu.Unlock()
		return nil, &domain.ValidationError{Field: "cart", Reason: "cart is empty"}
	}
	items := append([]domain.CartItem(nil), s.cart...)
	s.mu.Unlock()

	quote := pricing.QuoteItems(items)
	order := domain.Order{
		Email:      sess.Email,
		Cart:       items,
		Name:       in.Name,
		Address:    in.Address,
		City:       in.City,
		PostalCode: in.PostalCode,
		Phone:      in.Phone,
		Subtotal:   quote.Subtotal,
		Shipping:   quote.Shipping,
		Tax:        quote.Tax,
		Total:      quote.Total,
		Status:     domain.OrderStatusPlaced,
	}

	created, err := s.gw.CreateOrder(ctx, order)
	if err != nil {
		return nil, err
	}

	if err := s.ClearCart(ctx); err != nil {
		s.logger.Printf("clear cart after order %s: %v", created.ID, err)
		return created, err
	}
	return created, nil
}

// Orders lists every order the account has placed.
func (s *Store) Orders(ctx context.Context) ([]domain.Order, error) {
	s.mu.Lock()
	sess, err := s.sessionLocked()
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return s.gw.OrdersByEmail(ctx, sess.Email)
}

// TrackOrder fetches one order by its full ID. Works without a session, as
// order IDs are shareable tracking references.
func (s *Store) TrackOrder(ctx context.Context, id string) (*domain.Order, error) {
	return s.gw.Order(ctx, id)
}

// FindOrderByPartialID scans the account's orders for one whose ID contains
// the fragment or whose last six characters equal it.
func (s *Store) FindOrderByPartialID(ctx context.Context, fragment string) (*domain.Order, error) {
	orders, err := s.Orders(ctx)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		id := orders[i].ID
		if strings.Contains(id, fragment) {
			return &orders[i], nil
		}
		if len(id) >= 6 && id[len(id)-6:] == fragment {
			return &orders[i], nil
		}
	}
	return nil, domain.ErrNotFound
}
