package product

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"bloomshop/internal/domain"
)

type memoryRepo struct {
	mu       sync.RWMutex
	products map[string]domain.Product
}

// NewMemory returns an in-memory Repository for tests and DSN-less runs.
func NewMemory() Repository {
	return &memoryRepo{products: make(map[string]domain.Product)}
}

func (r *memoryRepo) List(ctx context.Context, f Filter) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Product, 0)
	for _, p := range r.products {
		if f.ID != "" && p.ID != f.ID {
			continue
		}
		if f.Category != "" && !strings.EqualFold(p.Category, f.Category) {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

func (r *memoryRepo) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	r.products[p.ID] = p
	return &p, nil
}
