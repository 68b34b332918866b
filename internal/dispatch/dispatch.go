// Package dispatch turns named commands into service calls and returns the view to render afterwards.
package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/gosocial/internal/domain"
	"github.com/sidereusnuntius/gosocial/internal/service"
)

const (
	Register    = "register"
	Login       = "login"
	Logout      = "logout"
	CreatePost  = "createPost"
	EditPost    = "editPost"
	DeletePost  = "deletePost"
	ToggleLike  = "toggleLike"
	React       = "react"
	Query       = "query"
	ToggleTheme = "toggleTheme"
)

var ErrUnknownCommand = fmt.Errorf("%w: unknown command", service.ErrInvalidInput)

type Command struct {
	Name    string          `json:"name"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type RegisterPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type PostPayload struct {
	ID      string `json:"id,omitempty"`
	Content string `json:"content"`
	Image   string `json:"image,omitempty"`
}

type PostRef struct {
	ID string `json:"id"`
}

type ReactPayload struct {
	ID   string          `json:"id"`
	Kind domain.Reaction `json:"kind"`
}

type QueryPayload struct {
	Search string `json:"search"`
	Sort   string `json:"sort"`
}

// FeedItem is a post together with what the current session may do with it.
type FeedItem struct {
	domain.Post
	Mine  bool `json:"mine"`
	Liked bool `json:"liked"`
}

type View struct {
	Session *domain.Identity `json:"session"`
	Theme   domain.Theme     `json:"theme"`
	Search  string           `json:"search"`
	Sort    domain.SortMode  `json:"sort"`
	Feed    []FeedItem       `json:"feed"`
	// NoMatches is set when a non-empty search filtered out every post.
	NoMatches bool `json:"noMatches"`
}

type handler func(ctx context.Context, payload json.RawMessage) error

// Dispatcher runs one command at a time. It owns the search term and sort mode, which are view
// state and are not persisted.
type Dispatcher struct {
	service  service.Service
	handlers map[string]handler

	mu     sync.Mutex
	search string
	sort   domain.SortMode
}

func New(s service.Service) *Dispatcher {
	d := &Dispatcher{
		service: s,
		sort:    domain.Latest,
	}
	d.handlers = map[string]handler{
		Register:    d.register,
		Login:       d.login,
		Logout:      d.logout,
		CreatePost:  d.createPost,
		EditPost:    d.editPost,
		DeletePost:  d.deletePost,
		ToggleLike:  d.toggleLike,
		React:       d.react,
		Query:       d.query,
		ToggleTheme: d.toggleTheme,
	}
	return d
}

// Dispatch runs the command and returns the view as it is afterwards. A failed command leaves the
// state as it was; the returned view still reflects it.
func (d *Dispatcher) Dispatch(ctx context.Context, cmd Command) (View, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	h, ok := d.handlers[cmd.Name]
	if !ok {
		return d.view(ctx), fmt.Errorf("%w: %q", ErrUnknownCommand, cmd.Name)
	}

	if err := h(ctx, cmd.Payload); err != nil {
		log.Debug().Err(err).Str("command", cmd.Name).Msg("command failed")
		return d.view(ctx), err
	}
	return d.view(ctx), nil
}

// View returns the current view without running a command.
func (d *Dispatcher) View(ctx context.Context) View {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.view(ctx)
}

func (d *Dispatcher) view(ctx context.Context) View {
	v := View{
		Search: d.search,
		Sort:   d.sort,
		Feed:   []FeedItem{},
	}

	account, ok, err := d.service.CurrentSession(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to read session")
	}
	if ok {
		id := account.Identity()
		v.Session = &id
	}

	if v.Theme, err = d.service.Theme(ctx); err != nil {
		log.Error().Err(err).Msg("failed to read theme")
	}

	posts, err := d.service.Feed(ctx, d.search, d.sort)
	if err != nil {
		log.Error().Err(err).Msg("failed to query feed")
	}
	for _, p := range posts {
		v.Feed = append(v.Feed, FeedItem{
			Post:  p,
			Mine:  ok && p.AuthorEmail == account.Email,
			Liked: ok && p.LikedByEmail(account.Email),
		})
	}
	v.NoMatches = len(v.Feed) == 0 && strings.TrimSpace(d.search) != ""
	return v
}

func decode[T any](payload json.RawMessage) (T, error) {
	var v T
	if len(payload) == 0 {
		return v, nil
	}
	if err := json.Unmarshal(payload, &v); err != nil {
		return v, fmt.Errorf("%w: malformed payload: %s", service.ErrInvalidInput, err)
	}
	return v, nil
}

func (d *Dispatcher) currentAccount(ctx context.Context) (domain.Account, error) {
	account, ok, err := d.service.CurrentSession(ctx)
	if err != nil {
		return domain.Account{}, err
	}
	if !ok {
		return domain.Account{}, service.ErrUnauthenticated
	}
	return account, nil
}
