package db

import (
	"errors"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
	ErrInternal = errors.New("internal error")
)

// Storage keys of the persisted records.
const (
	AccountsKey = "accounts"
	PostsKey    = "posts"
	SessionKey  = "session"
	ThemeKey    = "theme"
	SeededKey   = "demo-seeded"
)

type DB interface {
	Accounts
	Sessions
	Posts
	Preferences
}
