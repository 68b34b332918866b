package impl

import (
	"errors"
	"fmt"

	"codeberg.org/gruf/go-mutexes"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/gosocial/internal/db"
	"github.com/sidereusnuntius/gosocial/internal/domain"
	"github.com/sidereusnuntius/gosocial/internal/storage"
)

// dbImpl keeps every record in memory and writes the whole record back to the store after each
// mutation. Each record is guarded by a lock named after its storage key.
type dbImpl struct {
	store storage.Store
	locks *mutexes.MutexMap

	accounts []domain.Account
	posts    []domain.Post
	session  *domain.Account
	theme    domain.Theme
	seeded   bool
}

// New loads the records from the store. Missing or corrupt records start out empty, and the like
// counters of loaded posts are recomputed from their likedBy lists.
func New(store storage.Store) db.DB {
	locks := mutexes.MutexMap{}
	d := &dbImpl{
		store:    store,
		locks:    &locks,
		accounts: storage.Get(store, db.AccountsKey, []domain.Account{}),
		posts:    storage.Get(store, db.PostsKey, []domain.Post{}),
		session:  storage.Get[*domain.Account](store, db.SessionKey, nil),
		theme:    storage.Get(store, db.ThemeKey, domain.Theme("")),
		seeded:   storage.Get(store, db.SeededKey, false),
	}

	for i, p := range d.posts {
		d.posts[i] = p.Repaired()
		if d.posts[i].Likes != p.Likes || len(d.posts[i].LikedBy) != len(p.LikedBy) {
			log.Warn().Str("post", p.ID).Msg("repaired likes of stored post")
		}
	}

	log.Debug().
		Int("accounts", len(d.accounts)).
		Int("posts", len(d.posts)).
		Bool("session", d.session != nil).
		Msg("loaded records from store")
	return d
}

// HandleError takes a storage error and returns a higher level error that hides the implementation
// details of the backend.
func (d *dbImpl) HandleError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, storage.ErrNotExist):
		return db.ErrNotFound
	default:
		log.Error().Err(err).Msg("store error")
		return fmt.Errorf("%w: %s", db.ErrInternal, err)
	}
}

func (d *dbImpl) persist(key string, value any) error {
	return d.HandleError(storage.Set(d.store, key, value))
}
