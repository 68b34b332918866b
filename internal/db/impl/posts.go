package impl

import (
	"context"
	"slices"

	"github.com/sidereusnuntius/gosocial/internal/db"
	"github.com/sidereusnuntius/gosocial/internal/domain"
)

func (d *dbImpl) ListPosts(ctx context.Context) ([]domain.Post, error) {
	unlock := d.locks.RLock(db.PostsKey)
	defer unlock()

	posts := make([]domain.Post, len(d.posts))
	for i, p := range d.posts {
		posts[i] = p.Clone()
	}
	return posts, nil
}

func (d *dbImpl) InsertPost(ctx context.Context, post domain.Post) error {
	return d.InsertPosts(ctx, []domain.Post{post})
}

func (d *dbImpl) InsertPosts(ctx context.Context, inserted []domain.Post) error {
	unlock := d.locks.Lock(db.PostsKey)
	defer unlock()

	posts := make([]domain.Post, 0, len(d.posts)+len(inserted))
	for _, p := range inserted {
		posts = append(posts, p.Clone())
	}
	posts = append(posts, d.posts...)

	if err := d.persist(db.PostsKey, posts); err != nil {
		return err
	}
	d.posts = posts
	return nil
}

func (d *dbImpl) indexOf(id string) int {
	return slices.IndexFunc(d.posts, func(p domain.Post) bool {
		return p.ID == id
	})
}

func (d *dbImpl) UpdatePost(ctx context.Context, id string, f func(p *domain.Post) error) (domain.Post, error) {
	unlock := d.locks.Lock(db.PostsKey)
	defer unlock()

	i := d.indexOf(id)
	if i < 0 {
		return domain.Post{}, db.ErrNotFound
	}

	updated := d.posts[i].Clone()
	if err := f(&updated); err != nil {
		return domain.Post{}, err
	}

	posts := slices.Clone(d.posts)
	posts[i] = updated
	if err := d.persist(db.PostsKey, posts); err != nil {
		return domain.Post{}, err
	}
	d.posts = posts
	return updated.Clone(), nil
}

func (d *dbImpl) DeletePost(ctx context.Context, id string, check func(p domain.Post) error) error {
	unlock := d.locks.Lock(db.PostsKey)
	defer unlock()

	i := d.indexOf(id)
	if i < 0 {
		return db.ErrNotFound
	}

	if err := check(d.posts[i].Clone()); err != nil {
		return err
	}

	posts := slices.Delete(slices.Clone(d.posts), i, i+1)
	if err := d.persist(db.PostsKey, posts); err != nil {
		return err
	}
	d.posts = posts
	return nil
}
