package core

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/gosocial/internal/db"
	"github.com/sidereusnuntius/gosocial/internal/diff"
	"github.com/sidereusnuntius/gosocial/internal/domain"
	"github.com/sidereusnuntius/gosocial/internal/feed"
	"github.com/sidereusnuntius/gosocial/internal/service"
	"github.com/sidereusnuntius/gosocial/internal/validate"
)

func (s *AppService) CreatePost(ctx context.Context, author domain.Account, content, image string) (domain.Post, error) {
	content = strings.TrimSpace(content)
	image = validate.Image(image)

	if err := validate.Post(content, image); err != nil {
		return domain.Post{}, fmt.Errorf("%w: %s", service.ErrInvalidInput, err)
	}

	post := domain.Post{
		ID:          s.NewID(),
		AuthorName:  author.Name,
		AuthorEmail: author.Email,
		Content:     content,
		Image:       image,
		CreatedAt:   s.now(),
		Likes:       0,
		LikedBy:     []string{},
		Reactions:   domain.NewReactions(),
	}

	if err := s.DB.InsertPost(ctx, post); err != nil {
		return domain.Post{}, err
	}
	return post, nil
}

func owns(account domain.Account, p domain.Post) error {
	if account.Email != p.AuthorEmail {
		return fmt.Errorf("%w: post %s belongs to another account", service.ErrForbidden, p.ID)
	}
	return nil
}

func (s *AppService) EditPost(ctx context.Context, id, content, image string, editor domain.Account) (domain.Post, error) {
	content = strings.TrimSpace(content)
	image = validate.Image(image)

	var before string
	p, err := s.DB.UpdatePost(ctx, id, func(p *domain.Post) error {
		if err := owns(editor, *p); err != nil {
			return err
		}
		before = p.Content
		edited := s.now()
		p.Content = content
		p.Image = image
		p.EditedAt = &edited
		return nil
	})
	if err != nil {
		return domain.Post{}, err
	}

	inserted, deleted := diff.Changes(before, content)
	log.Debug().
		Str("post", id).
		Int("inserted", inserted).
		Int("deleted", deleted).
		Str("patch", diff.Patch(before, content)).
		Msg("post edited")
	return p, nil
}

func (s *AppService) DeletePost(ctx context.Context, id string, requester domain.Account) error {
	return s.DB.DeletePost(ctx, id, func(p domain.Post) error {
		return owns(requester, p)
	})
}

func (s *AppService) ToggleLike(ctx context.Context, id string, account domain.Account) (domain.Post, error) {
	return s.DB.UpdatePost(ctx, id, func(p *domain.Post) error {
		if i := slices.Index(p.LikedBy, account.Email); i >= 0 {
			p.LikedBy = slices.Delete(p.LikedBy, i, i+1)
			p.Likes = max(p.Likes-1, 0)
		} else {
			p.LikedBy = append(p.LikedBy, account.Email)
			p.Likes++
		}
		return nil
	})
}

func (s *AppService) React(ctx context.Context, id string, kind domain.Reaction, account domain.Account) (domain.Post, error) {
	if !domain.ValidReaction(kind) {
		return domain.Post{}, fmt.Errorf("%w: unknown reaction %q", db.ErrNotFound, kind)
	}

	return s.DB.UpdatePost(ctx, id, func(p *domain.Post) error {
		p.Reactions[kind]++
		return nil
	})
}

func (s *AppService) Feed(ctx context.Context, search string, mode domain.SortMode) ([]domain.Post, error) {
	posts, err := s.DB.ListPosts(ctx)
	if err != nil {
		return nil, err
	}
	return feed.Query(posts, search, mode), nil
}
