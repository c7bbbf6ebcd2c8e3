package user

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"bloomshop/internal/domain"
)

type memoryRepo struct {
	mu    sync.Mutex
	users map[string]domain.User
}

// NewMemory returns an in-memory Repository for tests and DSN-less dev runs.
func NewMemory() Repository {
	return &memoryRepo{users: make(map[string]domain.User)}
}

func (r *memoryRepo) Create(_ context.Context, u domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return nil, domain.ErrEmailTaken
		}
	}
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now().UTC()
	r.users[u.ID] = u
	out := u
	return &out, nil
}

func (r *memoryRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := u
	return &out, nil
}

func (r *memoryRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			out := u
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memoryRepo) Update(_ context.Context, id string, fields map[string]interface{}) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if v, ok := fields["userName"].(string); ok && v != "" {
		u.UserName = v
	}
	if v, ok := fields["email"].(string); ok && v != "" {
		u.Email = v
	}
	if v, ok := fields["settings"].(map[string]interface{}); ok {
		if u.Settings == nil {
			u.Settings = make(map[string]interface{}, len(v))
		}
		for k, val := range v {
			u.Settings[k] = val
		}
	}
	r.users[id] = u
	out := u
	return &out, nil
}

func (r *memoryRepo) UpdatePassword(_ context.Context, id, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return domain.ErrNotFound
	}
	u.PasswordHash = passwordHash
	r.users[id] = u
	return nil
}

func (r *memoryRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.users, id)
	return nil
}
