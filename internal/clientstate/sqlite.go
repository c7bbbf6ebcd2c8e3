package clientstate

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"bloomshop/internal/domain"
)

// sqliteStore keeps the durable state in a single-file SQLite database, one
// row per key.
type sqliteStore struct {
	db   *sql.DB
	path string
}

// OpenSQLite creates or opens the state database under dir.
func OpenSQLite(dir string) (Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}
	path := filepath.Join(dir, "bloomshop.db")

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open state db: %w", err)
	}

	const schema = `
CREATE TABLE IF NOT EXISTS client_state (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init state schema: %w", err)
	}

	return &sqliteStore{db: db, path: path}, nil
}

func (s *sqliteStore) put(key string, v interface{}) error {
	buf, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	_, err = s.db.Exec(
		`INSERT INTO client_state (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, string(buf),
	)
	return err
}

func (s *sqliteStore) get(key string, out interface{}) (bool, error) {
	var raw string
	err := s.db.QueryRow(`SELECT value FROM client_state WHERE key = ?`, key).Scan(&raw)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func (s *sqliteStore) delete(key string) error {
	_, err := s.db.Exec(`DELETE FROM client_state WHERE key = ?`, key)
	return err
}

func (s *sqliteStore) SaveSession(sess domain.Session) error {
	return s.put(sessionKey, sess)
}

func (s *sqliteStore) LoadSession() (domain.Session, bool, error) {
	var sess domain.Session
	ok, err := s.get(sessionKey, &sess)
	return sess, ok, err
}

func (s *sqliteStore) ClearSession() error {
	return s.delete(sessionKey)
}

func (s *sqliteStore) SaveTheme(theme string) error {
	return s.put(themeKey, theme)
}

func (s *sqliteStore) Theme() (string, error) {
	var theme string
	if _, err := s.get(themeKey, &theme); err != nil {
		return "", err
	}
	return theme, nil
}

func (s *sqliteStore) SaveProductCache(products []domain.Product) error {
	return s.put(productsKey, products)
}

func (s *sqliteStore) ProductCache() ([]domain.Product, bool, error) {
	var products []domain.Product
	ok, err := s.get(productsKey, &products)
	if err != nil || !ok {
		return nil, false, err
	}
	return products, len(products) > 0, nil
}

func (s *sqliteStore) ClearProductCache() error {
	return s.delete(productsKey)
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}
