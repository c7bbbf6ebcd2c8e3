package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"bloomshop/internal/domain"
	"bloomshop/internal/gateway"
)

// fakeRemote simulates the backend's state so refresh-after-mutation
// behavior can be observed: the store should always end up mirroring this
// struct, never its own local bookkeeping.
type fakeRemote struct {
	mu     sync.Mutex
	nextID int

	account  *domain.Session
	password string

	cart     []domain.CartItem
	wishlist []domain.WishlistItem
	orders   []domain.Order

	// failAddFor fails AddCartItem for specific product IDs.
	failAddFor map[string]error
	clearErr   error

	checkCalls  int
	signUpCalls int
	cartReads   int
	updateCalls int
	lastUpdate  map[string]interface{}
	deletedUser string
	lastPwdArgs [4]string
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{
		account: &domain.Session{
			UserID:   "u1",
			UserName: "Rose",
			Email:    "rose@example.com",
		},
		password: "secret12",
	}
}

func (f *fakeRemote) id(prefix string) string {
	f.nextID++
	return fmt.Sprintf("%s-%04d", prefix, f.nextID)
}

func (f *fakeRemote) CheckPassword(_ context.Context, email, password string) (*domain.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.checkCalls++
	if f.account == nil || f.account.Email != email || f.password != password {
		return nil, domain.ErrInvalidCredentials
	}
	sess := *f.account
	return &sess, nil
}

func (f *fakeRemote) SignUp(_ context.Context, in gateway.SignUpInput) (*domain.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.signUpCalls++
	if f.account != nil && f.account.Email == in.Email {
		return nil, domain.ErrEmailTaken
	}
	sess := domain.Session{UserID: f.id("user"), UserName: in.UserName, Email: in.Email}
	f.account = &sess
	f.password = in.Password
	out := sess
	return &out, nil
}

func (f *fakeRemote) UpdateUser(_ context.Context, id string, fields map[string]interface{}) (*domain.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updateCalls++
	f.lastUpdate = fields
	sess := *f.account
	return &sess, nil
}

func (f *fakeRemote) DeleteUser(_ context.Context, id, email string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletedUser = id
	f.account = nil
	return nil
}

func (f *fakeRemote) ChangePassword(_ context.Context, id, email, currentPassword, newPassword string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastPwdArgs = [4]string{id, email, currentPassword, newPassword}
	if currentPassword != f.password {
		return domain.ErrInvalidCredentials
	}
	f.password = newPassword
	return nil
}

func (f *fakeRemote) ExportUser(_ context.Context, id string) (map[string]interface{}, error) {
	return map[string]interface{}{"userId": id}, nil
}

func (f *fakeRemote) UserStats(_ context.Context, id string) (map[string]interface{}, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var spend float64
	for _, o := range f.orders {
		spend += o.Total
	}
	return map[string]interface{}{"orders": len(f.orders), "totalSpend": spend}, nil
}

func (f *fakeRemote) Products(_ context.Context, category string) ([]domain.Product, error) {
	return nil, nil
}

func (f *fakeRemote) Cart(_ context.Context, email string) ([]domain.CartItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cartReads++
	var out []domain.CartItem
	for _, it := range f.cart {
		if it.Email == email {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeRemote) AddCartItem(_ context.Context, item domain.CartItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failAddFor[item.ProductID]; err != nil {
		return err
	}
	item.ID = f.id("line")
	f.cart = append(f.cart, item)
	return nil
}

func (f *fakeRemote) UpdateCartQuantity(_ context.Context, lineID string, quantity int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.cart {
		if f.cart[i].ID == lineID {
			f.cart[i].Quantity = quantity
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeRemote) RemoveCartItem(_ context.Context, lineID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.cart {
		if f.cart[i].ID == lineID {
			f.cart = append(f.cart[:i], f.cart[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeRemote) ClearCart(_ context.Context, email string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.clearErr != nil {
		return f.clearErr
	}
	var kept []domain.CartItem
	for _, it := range f.cart {
		if it.Email != email {
			kept = append(kept, it)
		}
	}
	f.cart = kept
	return nil
}

func (f *fakeRemote) Wishlist(_ context.Context, email string) ([]domain.WishlistItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.WishlistItem
	for _, it := range f.wishlist {
		if it.Email == email {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeRemote) AddWishlistItem(_ context.Context, item domain.WishlistItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	item.ID = f.id("wish")
	f.wishlist = append(f.wishlist, item)
	return nil
}

func (f *fakeRemote) RemoveWishlistItem(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.wishlist {
		if f.wishlist[i].ID == id {
			f.wishlist = append(f.wishlist[:i], f.wishlist[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeRemote) CreateOrder(_ context.Context, order domain.Order) (*domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	order.ID = f.id("order")
	order.CreatedAt = time.Now().UTC()
	// Snapshot the lines so later cart changes cannot alias into the order.
	order.Cart = append([]domain.CartItem(nil), order.Cart...)
	f.orders = append(f.orders, order)
	out := order
	return &out, nil
}

func (f *fakeRemote) OrdersByEmail(_ context.Context, email string) ([]domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Order
	for _, o := range f.orders {
		if o.Email == email {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeRemote) Order(_ context.Context, id string) (*domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.orders {
		if f.orders[i].ID == id {
			o := f.orders[i]
			return &o, nil
		}
	}
	return nil, domain.ErrNotFound
}
