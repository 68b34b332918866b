package impl

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/sidereusnuntius/gosocial/internal/db"
	"github.com/sidereusnuntius/gosocial/internal/domain"
	"github.com/sidereusnuntius/gosocial/internal/storage"
)

func (d *dbImpl) InsertAccount(ctx context.Context, account domain.Account) error {
	unlock := d.locks.Lock(db.AccountsKey)
	defer unlock()

	exists := slices.ContainsFunc(d.accounts, func(a domain.Account) bool {
		return a.Email == account.Email
	})
	if exists {
		return fmt.Errorf("%w: email %s already registered", db.ErrConflict, account.Email)
	}

	accounts := append(slices.Clip(d.accounts), account)
	if err := d.persist(db.AccountsKey, accounts); err != nil {
		return err
	}
	d.accounts = accounts
	return nil
}

func (d *dbImpl) GetAccountByEmail(ctx context.Context, email string) (domain.Account, error) {
	unlock := d.locks.RLock(db.AccountsKey)
	defer unlock()

	i := slices.IndexFunc(d.accounts, func(a domain.Account) bool {
		return a.Email == email
	})
	if i < 0 {
		return domain.Account{}, db.ErrNotFound
	}
	return d.accounts[i], nil
}

func (d *dbImpl) DeleteAccount(ctx context.Context, id string) error {
	unlock := d.locks.Lock(db.AccountsKey)
	defer unlock()

	i := slices.IndexFunc(d.accounts, func(a domain.Account) bool {
		return a.ID == id
	})
	if i < 0 {
		return db.ErrNotFound
	}

	accounts := slices.Delete(slices.Clone(d.accounts), i, i+1)
	if err := d.persist(db.AccountsKey, accounts); err != nil {
		return err
	}
	d.accounts = accounts
	return nil
}

func (d *dbImpl) GetSession(ctx context.Context) (account domain.Account, ok bool, err error) {
	unlock := d.locks.RLock(db.SessionKey)
	defer unlock()

	if d.session == nil {
		return
	}
	return *d.session, true, nil
}

func (d *dbImpl) PutSession(ctx context.Context, account domain.Account) error {
	unlock := d.locks.Lock(db.SessionKey)
	defer unlock()

	if err := d.persist(db.SessionKey, account); err != nil {
		return err
	}
	d.session = &account
	return nil
}

func (d *dbImpl) ClearSession(ctx context.Context) error {
	unlock := d.locks.Lock(db.SessionKey)
	defer unlock()

	err := d.store.Delete(db.SessionKey)
	if err != nil && !errors.Is(err, storage.ErrNotExist) {
		return d.HandleError(err)
	}
	d.session = nil
	return nil
}
