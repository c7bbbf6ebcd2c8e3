// Package clientstate persists the client's durable state between runs: the
// signed-in identity, the theme preference and the product list cache. Each
// lives under its own key; the product cache is never invalidated
// automatically and must be cleared explicitly to refresh.
package clientstate

import (
	"bloomshop/internal/domain"
)

// Keys under which state is persisted. They are independent: signing out
// clears the session but leaves the theme and product cache alone.
const (
	sessionKey  = "user"
	themeKey    = "theme"
	productsKey = "products"
)

// Store is the durable client-side state.
type Store interface {
	// SaveSession persists the signed-in identity.
	SaveSession(s domain.Session) error
	// LoadSession returns the persisted identity, or ok=false when the
	// client starts unauthenticated.
	LoadSession() (s domain.Session, ok bool, err error)
	// ClearSession removes the persisted identity. Idempotent.
	ClearSession() error

	SaveTheme(theme string) error
	// Theme returns the stored preference, or "" when unset.
	Theme() (string, error)

	SaveProductCache(products []domain.Product) error
	// ProductCache returns the cached catalog, or ok=false when empty.
	ProductCache() (products []domain.Product, ok bool, err error)
	ClearProductCache() error

	Close() error
}
