package core

import (
	"context"
	"slices"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/gosocial/internal/domain"
)

func (s *AppService) Theme(ctx context.Context) (domain.Theme, error) {
	stored, err := s.DB.GetTheme(ctx)
	if err != nil {
		return "", err
	}
	if stored != "" {
		t, err := domain.ParseTheme(string(stored))
		if err == nil {
			return t, nil
		}
		log.Warn().Str("theme", string(stored)).Msg("ignoring unknown stored theme")
	}

	t, err := domain.ParseTheme(s.Config.DefaultTheme)
	if err != nil {
		return domain.Light, nil
	}
	return t, nil
}

func (s *AppService) ToggleTheme(ctx context.Context) (domain.Theme, error) {
	current, err := s.Theme(ctx)
	if err != nil {
		return "", err
	}

	next := current.Toggled()
	if err = s.DB.PutTheme(ctx, next); err != nil {
		return "", err
	}
	return next, nil
}

var demoAuthor = domain.Account{
	Name:  "MicroSocial",
	Email: "demo@microsocial.local",
}

var demoPosts = []struct {
	id      string
	content string
	image   string
	age     time.Duration
	likes   []string
}{
	{"demo-welcome", "Welcome to MicroSocial! Sign up, post something and like what you enjoy.", "", 3 * time.Hour, []string{"bot@microsocial.local"}},
	{"demo-images", "Posts can carry an image link too.", "https://picsum.photos/600/300", 2 * time.Hour, nil},
	{"demo-search", "Use the search box to filter by text or author, and sort by latest, oldest or most liked.", "", time.Hour, nil},
}

// SeedDemo writes every missing demo post in one write and then sets the flag. Demo posts have fixed
// ids, so a run interrupted before the flag is set does not insert them twice.
func (s *AppService) SeedDemo(ctx context.Context) error {
	seeded, err := s.DB.IsSeeded(ctx)
	if err != nil || seeded {
		return err
	}

	existing, err := s.DB.ListPosts(ctx)
	if err != nil {
		return err
	}

	now := s.now()
	var posts []domain.Post
	for _, d := range slices.Backward(demoPosts) {
		if slices.ContainsFunc(existing, func(p domain.Post) bool { return p.ID == d.id }) {
			continue
		}
		likedBy := append([]string{}, d.likes...)
		posts = append(posts, domain.Post{
			ID:          d.id,
			AuthorName:  demoAuthor.Name,
			AuthorEmail: demoAuthor.Email,
			Content:     d.content,
			Image:       d.image,
			CreatedAt:   now.Add(-d.age),
			Likes:       len(likedBy),
			LikedBy:     likedBy,
			Reactions:   domain.NewReactions(),
		})
	}

	if len(posts) > 0 {
		if err = s.DB.InsertPosts(ctx, posts); err != nil {
			return err
		}
	}

	if err = s.DB.MarkSeeded(ctx); err != nil {
		return err
	}
	log.Info().Int("posts", len(posts)).Msg("inserted demo posts")
	return nil
}
