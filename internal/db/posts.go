package db

import (
	"context"

	"github.com/sidereusnuntius/gosocial/internal/domain"
)

type Posts interface {
	// ListPosts returns copies of every post in storage order, most recently inserted first.
	ListPosts(ctx context.Context) ([]domain.Post, error)
	// InsertPost puts the post at the front of the storage order.
	InsertPost(ctx context.Context, post domain.Post) error
	// InsertPosts puts the posts, in the given order, at the front of the storage order with a single
	// write.
	InsertPosts(ctx context.Context, posts []domain.Post) error
	// UpdatePost applies f to a copy of the post with the given id and persists the result. If f
	// returns an error nothing is written and the error is returned unchanged.
	UpdatePost(ctx context.Context, id string, f func(p *domain.Post) error) (domain.Post, error)
	// DeletePost removes the post if check, called with a copy of it, returns nil.
	DeletePost(ctx context.Context, id string, check func(p domain.Post) error) error
}

type Preferences interface {
	// GetTheme returns the empty theme when none was saved.
	GetTheme(ctx context.Context) (domain.Theme, error)
	PutTheme(ctx context.Context, theme domain.Theme) error
	IsSeeded(ctx context.Context) (bool, error)
	MarkSeeded(ctx context.Context) error
}
