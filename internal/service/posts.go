package service

import (
	"context"

	"github.com/sidereusnuntius/gosocial/internal/domain"
)

// PostService enforces the post rules. Missing posts are reported with db.ErrNotFound.
type PostService interface {
	CreatePost(ctx context.Context, author domain.Account, content, image string) (domain.Post, error)
	// EditPost replaces the content and image of a post owned by editor.
	EditPost(ctx context.Context, id, content, image string, editor domain.Account) (domain.Post, error)
	DeletePost(ctx context.Context, id string, requester domain.Account) error
	ToggleLike(ctx context.Context, id string, account domain.Account) (domain.Post, error)
	// React increments a reaction counter. Unlike likes, reactions are not deduplicated per account.
	React(ctx context.Context, id string, kind domain.Reaction, account domain.Account) (domain.Post, error)
	// Feed returns the filtered and sorted posts to display.
	Feed(ctx context.Context, search string, mode domain.SortMode) ([]domain.Post, error)
}
