package storage

import (
	"encoding/json"
	"errors"

	"github.com/rs/zerolog/log"
)

var (
	ErrNotDir   = errors.New("given root is not a directory")
	ErrInternal = errors.New("internal error")
	ErrNotExist = errors.New("key does not exist")
)

// Store is a durable key/value store. Values are opaque bytes; Get and Set layer JSON on top of it.
// Writes to different keys are independent: there is no transaction spanning several keys.
type Store interface {
	Open(key string) ([]byte, error)
	Write(key string, content []byte) error
	Delete(key string) error
}

// Get decodes the JSON value stored under key. It never fails: a missing key, a read error or
// corrupt data all yield fallback.
func Get[T any](s Store, key string, fallback T) T {
	content, err := s.Open(key)
	if err != nil {
		if !errors.Is(err, ErrNotExist) {
			log.Error().Err(err).Str("key", key).Msg("failed to read key, using fallback")
		}
		return fallback
	}

	var v T
	if err = json.Unmarshal(content, &v); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("corrupt value, using fallback")
		return fallback
	}
	return v
}

// Set encodes value as JSON and writes it under key.
func Set(s Store, key string, value any) error {
	content, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.Write(key, content)
}
