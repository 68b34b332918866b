// Package sqlitestore keeps the key/value records in a single SQLite table, created by the kv migration.
package sqlitestore

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/gosocial/internal/storage"
)

type SQLiteStore struct {
	db *sql.DB
}

func New(db *sql.DB) storage.Store {
	return &SQLiteStore{
		db: db,
	}
}

// HandleError hides the driver's errors behind the storage sentinels.
func (s *SQLiteStore) HandleError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return storage.ErrNotExist
	default:
		log.Error().Err(err).Msg("sqlite store error")
		return fmt.Errorf("%w: %s", storage.ErrInternal, err)
	}
}

func (s *SQLiteStore) Open(key string) ([]byte, error) {
	var content []byte
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&content)
	if err != nil {
		return nil, s.HandleError(err)
	}
	return content, nil
}

func (s *SQLiteStore) Write(key string, content []byte) error {
	_, err := s.db.Exec(`INSERT INTO kv(key, value, updated_at) VALUES (?, ?, unixepoch())
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, content)
	return s.HandleError(err)
}

func (s *SQLiteStore) Delete(key string) error {
	res, err := s.db.Exec("DELETE FROM kv WHERE key = ?", key)
	if err != nil {
		return s.HandleError(err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return s.HandleError(err)
	}
	if n == 0 {
		return storage.ErrNotExist
	}
	return nil
}
