package service

import (
	"context"

	"github.com/sidereusnuntius/gosocial/internal/domain"
)

type AccountService interface {
	// Register creates an account. Fields are trimmed and the email is lowercased; it fails with
	// ErrInvalidInput if a field is empty and ErrDuplicateEmail if the email is taken.
	Register(ctx context.Context, name, email, password string) (domain.Account, error)
	// SignUp registers the account and logs it in. If the login fails the account is removed again.
	SignUp(ctx context.Context, name, email, password string) (domain.Account, error)
	// Authenticate returns the account matching the email, ignoring case, and the exact password, or
	// ErrInvalidCredentials.
	Authenticate(ctx context.Context, email, password string) (domain.Account, error)
	// Login stores a copy of the account as the session, replacing any previous one.
	Login(ctx context.Context, account domain.Account) error
	Logout(ctx context.Context) error
	CurrentSession(ctx context.Context) (account domain.Account, ok bool, err error)
}
