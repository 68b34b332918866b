package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sidereusnuntius/gosocial/internal/domain"
)

var (
	ErrConflict           = errors.New("conflict")
	ErrInvalidInput       = errors.New("invalid")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("forbidden")
	ErrUnauthenticated    = errors.New("login required")

	ErrDuplicateEmail = fmt.Errorf("%w: email already registered", ErrConflict)
)

type Service interface {
	AccountService
	PostService
	// Theme returns the saved theme, or the configured default if none was saved.
	Theme(ctx context.Context) (domain.Theme, error)
	ToggleTheme(ctx context.Context) (domain.Theme, error)
	// SeedDemo inserts the demo posts once per store; later calls do nothing.
	SeedDemo(ctx context.Context) error
}
