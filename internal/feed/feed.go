// Package feed derives the displayed list of posts from the stored ones.
package feed

import (
	"cmp"
	"slices"
	"strings"

	"github.com/sidereusnuntius/gosocial/internal/domain"
)

// Query filters posts by term and orders them by mode. posts is expected in storage order, which
// breaks ties since the sort is stable. An unknown mode keeps storage order. The input is not modified.
func Query(posts []domain.Post, term string, mode domain.SortMode) []domain.Post {
	list := Filter(posts, term)

	switch mode {
	case domain.Latest:
		slices.SortStableFunc(list, func(a, b domain.Post) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})
	case domain.Oldest:
		slices.SortStableFunc(list, func(a, b domain.Post) int {
			return a.CreatedAt.Compare(b.CreatedAt)
		})
	case domain.MostLiked:
		slices.SortStableFunc(list, func(a, b domain.Post) int {
			return cmp.Compare(b.Likes, a.Likes)
		})
	}
	return list
}

// Filter returns a new slice with the posts whose content or author name contains term, ignoring
// case. A blank term keeps every post.
func Filter(posts []domain.Post, term string) []domain.Post {
	term = strings.ToLower(strings.TrimSpace(term))
	list := make([]domain.Post, 0, len(posts))
	for _, p := range posts {
		if term == "" || Matches(p, term) {
			list = append(list, p)
		}
	}
	return list
}

// Matches expects term to be lowercased already.
func Matches(p domain.Post, term string) bool {
	return strings.Contains(strings.ToLower(p.Content), term) ||
		strings.Contains(strings.ToLower(p.AuthorName), term)
}
