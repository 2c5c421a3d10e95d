// Package tags is the flat tag store: an external key-value service
// keyed by "tag-" + bookmark ID, with no transactional guarantees.
package tags

import (
	"context"
	"database/sql"
	"sync"
)

// Store is the flat tag key-value store. GetAll is the single bulk
// read a refresh performs; Set writes one key.
type Store interface {
	GetAll(ctx context.Context) (map[string]string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// SQLiteStore implements Store on a SQLite database opened via the
// storage package.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a SQLiteStore on an already-opened and
// migrated database.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetAll returns the full tag snapshot in one read.
func (s *SQLiteStore) GetAll(ctx context.Context) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT key, value FROM tags")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tags := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		tags[key] = value
	}
	return tags, rows.Err()
}

// Set inserts or replaces a single tag record.
func (s *SQLiteStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO tags (key, value) VALUES (?, ?)", key, value)
	return err
}

// Delete removes a tag record. Missing keys are not an error.
func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM tags WHERE key = ?", key)
	return err
}

// MemoryStore implements Store on a map, for tests.
type MemoryStore struct {
	mu   sync.Mutex
	tags map[string]string
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{tags: make(map[string]string)}
}

// GetAll returns a copy of the tag snapshot.
func (s *MemoryStore) GetAll(ctx context.Context) (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]string, len(s.tags))
	for k, v := range s.tags {
		out[k] = v
	}
	return out, nil
}

// Set inserts or replaces a single tag record.
func (s *MemoryStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tags[key] = value
	return nil
}

// Delete removes a tag record.
func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tags, key)
	return nil
}
