package dispatch

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sidereusnuntius/gosocial/internal/domain"
	"github.com/sidereusnuntius/gosocial/internal/service"
)

// register logs the new account in, like a login right after signing up.
func (d *Dispatcher) register(ctx context.Context, payload json.RawMessage) error {
	p, err := decode[RegisterPayload](payload)
	if err != nil {
		return err
	}

	_, err = d.service.SignUp(ctx, p.Name, p.Email, p.Password)
	return err
}

func (d *Dispatcher) login(ctx context.Context, payload json.RawMessage) error {
	p, err := decode[LoginPayload](payload)
	if err != nil {
		return err
	}

	account, err := d.service.Authenticate(ctx, p.Email, p.Password)
	if err != nil {
		return err
	}
	return d.service.Login(ctx, account)
}

func (d *Dispatcher) logout(ctx context.Context, _ json.RawMessage) error {
	return d.service.Logout(ctx)
}

func (d *Dispatcher) createPost(ctx context.Context, payload json.RawMessage) error {
	account, err := d.currentAccount(ctx)
	if err != nil {
		return err
	}
	p, err := decode[PostPayload](payload)
	if err != nil {
		return err
	}

	_, err = d.service.CreatePost(ctx, account, p.Content, p.Image)
	return err
}

func (d *Dispatcher) editPost(ctx context.Context, payload json.RawMessage) error {
	account, err := d.currentAccount(ctx)
	if err != nil {
		return err
	}
	p, err := decode[PostPayload](payload)
	if err != nil {
		return err
	}

	_, err = d.service.EditPost(ctx, p.ID, p.Content, p.Image, account)
	return err
}

func (d *Dispatcher) deletePost(ctx context.Context, payload json.RawMessage) error {
	account, err := d.currentAccount(ctx)
	if err != nil {
		return err
	}
	p, err := decode[PostRef](payload)
	if err != nil {
		return err
	}

	return d.service.DeletePost(ctx, p.ID, account)
}

func (d *Dispatcher) toggleLike(ctx context.Context, payload json.RawMessage) error {
	account, err := d.currentAccount(ctx)
	if err != nil {
		return err
	}
	p, err := decode[PostRef](payload)
	if err != nil {
		return err
	}

	_, err = d.service.ToggleLike(ctx, p.ID, account)
	return err
}

func (d *Dispatcher) react(ctx context.Context, payload json.RawMessage) error {
	account, err := d.currentAccount(ctx)
	if err != nil {
		return err
	}
	p, err := decode[ReactPayload](payload)
	if err != nil {
		return err
	}

	_, err = d.service.React(ctx, p.ID, p.Kind, account)
	return err
}

func (d *Dispatcher) query(_ context.Context, payload json.RawMessage) error {
	p, err := decode[QueryPayload](payload)
	if err != nil {
		return err
	}

	mode, err := domain.ParseSortMode(p.Sort)
	if err != nil {
		return fmt.Errorf("%w: %s", service.ErrInvalidInput, err)
	}
	d.search = p.Search
	d.sort = mode
	return nil
}

func (d *Dispatcher) toggleTheme(ctx context.Context, _ json.RawMessage) error {
	_, err := d.service.ToggleTheme(ctx)
	return err
}
