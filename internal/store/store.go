// Package store is the process-wide state container behind every storefront
// surface: the signed-in session, the cart and the wishlist, plus the derived
// reads over them. Views hold the one shared Store, subscribe for snapshots,
// and never mutate state on their own.
//
// Consistency model: the client is a read-through cache, never the source of
// truth. Every cart/wishlist mutation is sent to the remote store and the
// whole aggregate is re-read afterwards; nothing is merged locally. The one
// exception is a bulk clear, where the server's confirmation is trusted and
// memory is emptied directly.
//
// Concurrency policy: mutations serialize behind one mutex held across the
// mutate+refresh pair. Overlapping calls therefore apply in completion
// order and the last completed mutation's refresh wins.
package store

import (
	"context"
	"io"
	"log"
	"sync"

	"bloomshop/internal/clientstate"
	"bloomshop/internal/domain"
	"bloomshop/internal/gateway"
)

// Gateway is the slice of the remote sync surface the store issues calls
// against. *gateway.Client satisfies it.
type Gateway interface {
	CheckPassword(ctx context.Context, email, password string) (*domain.Session, error)
	SignUp(ctx context.Context, in gateway.SignUpInput) (*domain.Session, error)
	UpdateUser(ctx context.Context, id string, fields map[string]interface{}) (*domain.Session, error)
	DeleteUser(ctx context.Context, id, email string) error
	ChangePassword(ctx context.Context, id, email, currentPassword, newPassword string) error
	ExportUser(ctx context.Context, id string) (map[string]interface{}, error)
	UserStats(ctx context.Context, id string) (map[string]interface{}, error)

	Products(ctx context.Context, category string) ([]domain.Product, error)

	Cart(ctx context.Context, email string) ([]domain.CartItem, error)
	AddCartItem(ctx context.Context, item domain.CartItem) error
	UpdateCartQuantity(ctx context.Context, lineID string, quantity int) error
	RemoveCartItem(ctx context.Context, lineID string) error
	ClearCart(ctx context.Context, email string) error

	Wishlist(ctx context.Context, email string) ([]domain.WishlistItem, error)
	AddWishlistItem(ctx context.Context, item domain.WishlistItem) error
	RemoveWishlistItem(ctx context.Context, id string) error

	CreateOrder(ctx context.Context, order domain.Order) (*domain.Order, error)
	OrdersByEmail(ctx context.Context, email string) ([]domain.Order, error)
	Order(ctx context.Context, id string) (*domain.Order, error)
}

// Snapshot is an immutable copy of the store state handed to subscribers.
type Snapshot struct {
	Session  *domain.Session
	Cart     []domain.CartItem
	Wishlist []domain.WishlistItem
}

// Store owns the single in-memory copy of session, cart and wishlist.
type Store struct {
	gw     Gateway
	state  clientstate.Store
	logger *log.Logger

	mu       sync.Mutex
	session  *domain.Session
	cart     []domain.CartItem
	wishlist []domain.WishlistItem

	subMu  sync.Mutex
	subs   map[int]func(Snapshot)
	nextID int
}

// New builds the store and rehydrates a persisted session if one exists.
// It performs no network IO; call Hydrate to refetch cart and wishlist.
func New(gw Gateway, state clientstate.Store, logger *log.Logger) (*Store, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	s := &Store{
		gw:     gw,
		state:  state,
		logger: logger,
		subs:   make(map[int]func(Snapshot)),
	}
	sess, ok, err := state.LoadSession()
	if err != nil {
		return nil, err
	}
	if ok {
		s.session = &sess
	}
	return s, nil
}

// Subscribe registers fn to receive a snapshot after every applied state
// change. The returned func unsubscribes; calling it twice is harmless.
func (s *Store) Subscribe(fn func(Snapshot)) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
}

// notify delivers the current snapshot to every subscriber. Called after a
// state change, outside the state mutex.
func (s *Store) notify() {
	snap := s.Snapshot()
	s.subMu.Lock()
	fns := make([]func(Snapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()
	for _, fn := range fns {
		fn(snap)
	}
}

// Snapshot copies the current state. The copies are independent of the
// store's internal slices.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	var snap Snapshot
	if s.session != nil {
		sess := *s.session
		snap.Session = &sess
	}
	snap.Cart = append([]domain.CartItem(nil), s.cart...)
	snap.Wishlist = append([]domain.WishlistItem(nil), s.wishlist...)
	return snap
}

// SignedIn reports whether a session is present.
func (s *Store) SignedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session != nil
}

// Session returns a copy of the current session, or nil when signed out.
func (s *Store) Session() *domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return nil
	}
	sess := *s.session
	return &sess
}

// sessionLocked returns the active session or ErrNotAuthenticated. Callers
// must hold s.mu.
func (s *Store) sessionLocked() (domain.Session, error) {
	if s.session == nil {
		return domain.Session{}, domain.ErrNotAuthenticated
	}
	return *s.session, nil
}

// refreshCartLocked re-reads the whole cart from the remote store. Callers
// must hold s.mu.
func (s *Store) refreshCartLocked(ctx context.Context, email string) error {
	items, err := s.gw.Cart(ctx, email)
	if err != nil {
		return err
	}
	s.cart = items
	return nil
}

// refreshWishlistLocked re-reads the whole wishlist from the remote store.
// Callers must hold s.mu.
func (s *Store) refreshWishlistLocked(ctx context.Context, email string) error {
	items, err := s.gw.Wishlist(ctx, email)
	if err != nil {
		return err
	}
	s.wishlist = items
	return nil
}

// Hydrate refetches cart and wishlist for the active session. A no-op when
// signed out.
func (s *Store) Hydrate(ctx context.Context) error {
	s.mu.Lock()
	sess, err := s.sessionLocked()
	if err != nil {
		s.mu.Unlock()
		return nil
	}
	cartErr := s.refreshCartLocked(ctx, sess.Email)
	wishErr := s.refreshWishlistLocked(ctx, sess.Email)
	s.mu.Unlock()

	s.notify()
	if cartErr != nil {
		return cartErr
	}
	return wishErr
}

// Theme returns the persisted theme preference, or "" when unset.
func (s *Store) Theme() (string, error) {
	return s.state.Theme()
}

// SetTheme persists the theme preference. Independent of the session.
func (s *Store) SetTheme(theme string) error {
	return s.state.SaveTheme(theme)
}

// Products returns the catalog. Uncategorized listings are served from the
// durable product cache when present; the cache never expires on its own.
func (s *Store) Products(ctx context.Context, category string, refresh bool) ([]domain.Product, error) {
	if category == "" && !refresh {
		if cached, ok, err := s.state.ProductCache(); err == nil && ok {
			return cached, nil
		}
	}
	products, err := s.gw.Products(ctx, category)
	if err != nil {
		return nil, err
	}
	if category == "" {
		if err := s.state.SaveProductCache(products); err != nil {
			s.logger.Printf("cache products: %v", err)
		}
	}
	return products, nil
}

// ClearProductCache drops the durable catalog cache so the next listing
// refetches.
func (s *Store) ClearProductCache() error {
	return s.state.ClearProductCache()
}
