package db

import (
	"context"

	"github.com/sidereusnuntius/gosocial/internal/domain"
)

// Accounts is the Identity Directory.
type Accounts interface {
	// InsertAccount appends the account and persists the whole directory. It fails with ErrConflict if
	// an account with the same email exists; emails are expected to be lowercased by the caller.
	InsertAccount(ctx context.Context, account domain.Account) error
	GetAccountByEmail(ctx context.Context, email string) (domain.Account, error)
	// DeleteAccount removes the account with the given id, or fails with ErrNotFound.
	DeleteAccount(ctx context.Context, id string) error
}

// Sessions holds at most one logged in account, stored as a copy.
type Sessions interface {
	// GetSession returns ok == false when nobody is logged in.
	GetSession(ctx context.Context) (account domain.Account, ok bool, err error)
	PutSession(ctx context.Context, account domain.Account) error
	ClearSession(ctx context.Context) error
}
