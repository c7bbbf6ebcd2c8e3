package clientstate

import (
	"sync"

	"bloomshop/internal/domain"
)

// memoryStore backs tests and throwaway runs; nothing survives the process.
type memoryStore struct {
	mu       sync.Mutex
	session  *domain.Session
	theme    string
	products []domain.Product
}

// NewMemory returns a non-durable Store.
func NewMemory() Store {
	return &memoryStore{}
}

func (m *memoryStore) SaveSession(s domain.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = &s
	return nil
}

func (m *memoryStore) LoadSession() (domain.Session, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session == nil {
		return domain.Session{}, false, nil
	}
	return *m.session, true, nil
}

func (m *memoryStore) ClearSession() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = nil
	return nil
}

func (m *memoryStore) SaveTheme(theme string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.theme = theme
	return nil
}

func (m *memoryStore) Theme() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.theme, nil
}

func (m *memoryStore) SaveProductCache(products []domain.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.products = append([]domain.Product(nil), products...)
	return nil
}

func (m *memoryStore) ProductCache() ([]domain.Product, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.products) == 0 {
		return nil, false, nil
	}
	return append([]domain.Product(nil), m.products...), true, nil
}

func (m *memoryStore) ClearProductCache() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.products = nil
	return nil
}

func (m *memoryStore) Close() error { return nil }
