package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/weallth/weallth-backend/internal/kv"
)

// Ensure KVStore implements kv.Store
var _ kv.Store = (*KVStore)(nil)

// KVStore implements kv.Store on a single PostgreSQL table. It gives server
// deployments the same whole-value contract the browser storage offered.
type KVStore struct {
	pool *pgxpool.Pool
}

// NewKVStore creates a new KVStore
func NewKVStore(pool *pgxpool.Pool) *KVStore {
	return &KVStore{pool: pool}
}

// Migrate creates the backing table if it does not exist
func (s *KVStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS kv_entries (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`)
	return err
}

// Get retrieves the value stored under key
func (s *KVStore) Get(key string) (string, bool, error) {
	ctx := context.Background()
	var value string
	err := s.pool.QueryRow(ctx, `SELECT value FROM kv_entries WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}

// Set stores value under key, replacing any previous value
func (s *KVStore) Set(key, value string) error {
	ctx := context.Background()
	_, err := s.pool.Exec(ctx, `
		INSERT INTO kv_entries (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`, key, value)
	return err
}

// Remove deletes key; removing a missing key is a no-op
func (s *KVStore) Remove(key string) error {
	ctx := context.Background()
	_, err := s.pool.Exec(ctx, `DELETE FROM kv_entries WHERE key = $1`, key)
	return err
}
