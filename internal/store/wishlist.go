package store

import (
	"context"

	"bloomshop/internal/domain"
)

// AddToWishlist saves a product for later, then refreshes the whole
// wishlist from the remote store. No dedup happens client-side; saving the
// same product twice yields two entries.
func (s *Store) AddToWishlist(ctx context.Context, p domain.Product) error {
	s.mu.Lock()
	sess, err := s.sessionLocked()
	if err != nil {
		s.mu.Unlock()
		return err
	}

	item := domain.WishlistItem{
		Email:     sess.Email,
		ProductID: p.ID,
		Title:     p.Title,
		Price:     p.Price,
		Image:     p.Image,
		InStock:   p.InStock,
	}
	if err := s.gw.AddWishlistItem(ctx, item); err != nil {
		s.mu.Unlock()
		return err
	}
	err = s.refreshWishlistLocked(ctx, sess.Email)
	s.mu.Unlock()
	if err != nil {
		return err
	}

	s.notify()
	return nil
}

// RemoveFromWishlist deletes one entry, then refreshes the whole wishlist.
func (s *Store) RemoveFromWishlist(ctx context.Context, id string) error {
	s.mu.Lock()
	sess, err := s.sessionLocked()
	if err != nil {
		s.mu.Unlock()
		return err
	}
	if err := s.gw.RemoveWishlistItem(ctx, id); err != nil {
		s.mu.Unlock()
		return err
	}
	err = s.refreshWishlistLocked(ctx, sess.Email)
	s.mu.Unlock()
	if err != nil {
		return err
	}

	s.notify()
	return nil
}

// ClearWishlist deletes every entry one by one, there is no bulk endpoint,
// then refreshes from the remote store so memory reflects exactly the deletes
// that landed. The first delete error is returned.
func (s *Store) ClearWishlist(ctx context.Context) error {
	s.mu.Lock()
	sess, err := s.sessionLocked()
	if err != nil {
		s.mu.Unlock()
		return err
	}
	snapshot := append([]domain.WishlistItem(nil), s.wishlist...)

	var firstErr error
	for _, item := range snapshot {
		if err := s.gw.RemoveWishlistItem(ctx, item.ID); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if err := s.refreshWishlistLocked(ctx, sess.Email); err != nil && firstErr == nil {
		firstErr = err
	}
	s.mu.Unlock()

	s.notify()
	return firstErr
}

// MoveResult reports the outcome for one wishlist entry during MoveAllToCart.
type MoveResult struct {
	Item  domain.WishlistItem
	Moved bool
	Err   error
}

// MoveAllToCart promotes every wishlist entry to the cart: add to cart, and
// remove from the wishlist only if the add succeeded. The batch is explicitly
// non-atomic: a failure partway leaves earlier moves committed and that one
// entry in place, reported per item with no rollback. Both aggregates are
// refreshed once after the loop.
func (s *Store) MoveAllToCart(ctx context.Context) ([]MoveResult, error) {
	s.mu.Lock()
	sess, err := s.sessionLocked()
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	snapshot := append([]domain.WishlistItem(nil), s.wishlist...)

	results := make([]MoveResult, 0, len(snapshot))
	for _, item := range snapshot {
		res := MoveResult{Item: item}
		addErr := s.gw.AddCartItem(ctx, domain.CartItem{
			Email:     sess.Email,
			ProductID: item.ProductID,
			Title:     item.Title,
			Price:     item.Price,
			Quantity:  1,
			Image:     item.Image,
		})
		if addErr != nil {
			res.Err = addErr
		} else if rmErr := s.gw.RemoveWishlistItem(ctx, item.ID); rmErr != nil {
			// Added to cart but still wishlisted; surfaced, not rolled back.
			res.Err = rmErr
		} else {
			res.Moved = true
		}
		results = append(results, res)
	}

	if err := s.refreshCartLocked(ctx, sess.Email); err != nil {
		s.logger.Printf("refresh cart after move: %v", err)
	}
	if err := s.refreshWishlistLocked(ctx, sess.Email); err != nil {
		s.logger.Printf("refresh wishlist after move: %v", err)
	}
	s.mu.Unlock()

	s.notify()
	return results, nil
}

// InWishlist reports whether any entry references the product.
func (s *Store) InWishlist(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.wishlist {
		if it.ProductID == productID {
			return true
		}
	}
	return false
}

// WishlistCount is the number of saved entries.
func (s *Store) WishlistCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.wishlist)
}
