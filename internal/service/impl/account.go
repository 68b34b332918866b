package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/gosocial/internal/db"
	"github.com/sidereusnuntius/gosocial/internal/domain"
	"github.com/sidereusnuntius/gosocial/internal/service"
	"github.com/sidereusnuntius/gosocial/internal/validate"
)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AppService) Register(ctx context.Context, name, email, password string) (domain.Account, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)

	err := validate.SignUpForm(name, email, password)
	if err != nil {
		return domain.Account{}, fmt.Errorf("%w: %s", service.ErrInvalidInput, err)
	}

	account := domain.Account{
		ID:       s.NewID(),
		Name:     name,
		Email:    email,
		Password: password,
	}

	err = s.DB.InsertAccount(ctx, account)
	if errors.Is(err, db.ErrConflict) {
		return domain.Account{}, service.ErrDuplicateEmail
	}
	if err != nil {
		return domain.Account{}, err
	}

	log.Info().Str("email", email).Msg("account registered")
	return account, nil
}

func (s *AppService) SignUp(ctx context.Context, name, email, password string) (domain.Account, error) {
	account, err := s.Register(ctx, name, email, password)
	if err != nil {
		return domain.Account{}, err
	}

	if err = s.Login(ctx, account); err != nil {
		if rbErr := s.DB.DeleteAccount(ctx, account.ID); rbErr != nil {
			log.Error().Err(rbErr).Str("email", account.Email).Msg("failed to remove account after failed login")
		}
		return domain.Account{}, err
	}
	return account, nil
}

// Authenticate does not tell apart an unknown email from a wrong password.
func (s *AppService) Authenticate(ctx context.Context, email, password string) (domain.Account, error) {
	email = normalizeEmail(email)

	u, err := s.DB.GetAccountByEmail(ctx, email)
	if errors.Is(err, db.ErrNotFound) {
		return domain.Account{}, service.ErrInvalidCredentials
	}
	if err != nil {
		return domain.Account{}, err
	}

	if u.Password != password {
		return domain.Account{}, service.ErrInvalidCredentials
	}
	return u, nil
}

func (s *AppService) Login(ctx context.Context, account domain.Account) error {
	if err := s.DB.PutSession(ctx, account); err != nil {
		return err
	}
	log.Debug().Str("email", account.Email).Msg("logged in")
	return nil
}

func (s *AppService) Logout(ctx context.Context) error {
	return s.DB.ClearSession(ctx)
}

func (s *AppService) CurrentSession(ctx context.Context) (domain.Account, bool, error) {
	return s.DB.GetSession(ctx)
}
