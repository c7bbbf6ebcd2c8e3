package wishlist

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"bloomshop/internal/domain"
)

type memoryRepo struct {
	mu    sync.RWMutex
	items map[string]domain.WishlistItem
}

// NewMemory returns an in-memory Repository for tests and DSN-less runs.
func NewMemory() Repository {
	return &memoryRepo{items: make(map[string]domain.WishlistItem)}
}

func (r *memoryRepo) ListByEmail(ctx context.Context, email string) ([]domain.WishlistItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.WishlistItem, 0)
	for _, item := range r.items {
		if strings.EqualFold(item.Email, email) {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memoryRepo) Create(ctx context.Context, item domain.WishlistItem) (*domain.WishlistItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item.ID = uuid.NewString()
	r.items[item.ID] = item
	return &item, nil
}

func (r *memoryRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *memoryRepo) DeleteByEmail(ctx context.Context, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, item := range r.items {
		if strings.EqualFold(item.Email, email) {
			delete(r.items, id)
		}
	}
	return nil
}
