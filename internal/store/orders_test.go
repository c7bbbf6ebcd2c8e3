package store

import (
	"context"
	"errors"
	"math"
	"testing"

	"bloomshop/internal/domain"
	"bloomshop/internal/pricing"
)

func TestPlaceOrderSnapshotsCartAndClears(t *testing.T) {
	remote := newFakeRemote()
	s, _ := newTestStore(t, remote)
	signIn(t, s)
	if err := s.AddToCart(context.Background(), domain.Product{ID: "p1", Title: "Tulips", Price: 12.5}); err != nil {
		t.Fatalf("AddToCart: %v", err)
	}
	if err := s.UpdateQuantity(context.Background(), remote.cart[0].ID, 2); err != nil {
		t.Fatalf("UpdateQuantity: %v", err)
	}
	wantQuote := s.CartQuote()

	order, err := s.PlaceOrder(context.Background(), CheckoutInput{
		Name:    "Rose",
		Address: "1 Petal Lane",
		City:    "Bloemfontein",
	})
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}
	if order.ID == "" || order.Status != domain.OrderStatusPlaced {
		t.Fatalf("unexpected order %+v", order)
	}
	if math.Abs(order.Total-wantQuote.Total) > 1e-9 {
		t.Fatalf("order total %v, cart quote %v", order.Total, wantQuote.Total)
	}
	if len(order.Cart) != 1 || order.Cart[0].Quantity != 2 {
		t.Fatalf("order snapshot wrong: %+v", order.Cart)
	}
	if s.CartItemCount() != 0 {
		t.Fatalf("cart not cleared after checkout")
	}

	// Later cart activity never rewrites the placed order.
	if err := s.AddToCart(context.Background(), domain.Product{ID: "p2", Price: 99}); err != nil {
		t.Fatalf("AddToCart: %v", err)
	}
	stored, err := s.TrackOrder(context.Background(), order.ID)
	if err != nil {
		t.Fatalf("TrackOrder: %v", err)
	}
	if len(stored.Cart) != 1 || stored.Cart[0].ProductID != "p1" {
		t.Fatalf("order snapshot mutated: %+v", stored.Cart)
	}
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	remote := newFakeRemote()
	s, _ := newTestStore(t, remote)
	signIn(t, s)

	_, err := s.PlaceOrder(context.Background(), CheckoutInput{Name: "Rose"})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError for empty cart, got %v", err)
	}
	if len(remote.orders) != 0 {
		t.Fatalf("empty-cart checkout reached the server")
	}
}

func TestPlaceOrderClearFailureKeepsOrder(t *testing.T) {
	// Checkout is two independent steps. A clear failure after a successful
	// create is reported, but the order stands and the cart keeps its lines.
	remote := newFakeRemote()
	s, _ := newTestStore(t, remote)
	signIn(t, s)
	if err := s.AddToCart(context.Background(), domain.Product{ID: "p1", Price: 10}); err != nil {
		t.Fatalf("AddToCart: %v", err)
	}
	clearFailed := errors.New("clear refused")
	remote.clearErr = clearFailed

	order, err := s.PlaceOrder(context.Background(), CheckoutInput{Name: "Rose"})
	if !errors.Is(err, clearFailed) {
		t.Fatalf("expected the clear error, got %v", err)
	}
	if order == nil || order.ID == "" {
		t.Fatalf("placed order must be returned despite the clear failure")
	}
	if len(remote.orders) != 1 {
		t.Fatalf("order not committed: %+v", remote.orders)
	}
	if s.CartItemCount() != 1 {
		t.Fatalf("cart must keep its lines when the clear failed")
	}
}

func TestOrdersRequireSession(t *testing.T) {
	remote := newFakeRemote()
	s, _ := newTestStore(t, remote)
	if _, err := s.Orders(context.Background()); !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestTrackOrderNotFound(t *testing.T) {
	remote := newFakeRemote()
	s, _ := newTestStore(t, remote)
	if _, err := s.TrackOrder(context.Background(), "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFindOrderByPartialID(t *testing.T) {
	remote := newFakeRemote()
	s, _ := newTestStore(t, remote)
	signIn(t, s)
	if err := s.AddToCart(context.Background(), domain.Product{ID: "p1", Price: 10}); err != nil {
		t.Fatalf("AddToCart: %v", err)
	}
	order, err := s.PlaceOrder(context.Background(), CheckoutInput{Name: "Rose"})
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}

	found, err := s.FindOrderByPartialID(context.Background(), order.ID[len(order.ID)-4:])
	if err != nil {
		t.Fatalf("FindOrderByPartialID: %v", err)
	}
	if found.ID != order.ID {
		t.Fatalf("found %q, want %q", found.ID, order.ID)
	}

	if _, err := s.FindOrderByPartialID(context.Background(), "zzzzzz"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for bogus fragment, got %v", err)
	}
}

func TestOrderTotalsComeFromPricing(t *testing.T) {
	remote := newFakeRemote()
	s, _ := newTestStore(t, remote)
	signIn(t, s)
	// Above the free-shipping threshold.
	if err := s.AddToCart(context.Background(), domain.Product{ID: "p1", Price: 400}); err != nil {
		t.Fatalf("AddToCart: %v", err)
	}

	order, err := s.PlaceOrder(context.Background(), CheckoutInput{Name: "Rose"})
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}
	if order.Shipping != 0 {
		t.Fatalf("shipping = %v, want free above %v", order.Shipping, pricing.FreeShippingThreshold)
	}
	if math.Abs(order.Tax-40) > 1e-9 {
		t.Fatalf("tax = %v, want 40", order.Tax)
	}
}
