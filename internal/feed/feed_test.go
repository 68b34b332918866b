package feed

import (
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/sidereusnuntius/gosocial/internal/domain"
)

var base = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func post(id, author, content string, hoursAfter, likes int) domain.Post {
	return domain.Post{
		ID:         id,
		AuthorName: author,
		Content:    content,
		CreatedAt:  base.Add(time.Duration(hoursAfter) * time.Hour),
		Likes:      likes,
	}
}

// Storage order: most recently inserted first.
var posts = []domain.Post{
	post("p4", "Carol", "Sunset over the bay", 4, 2),
	post("p3", "Bob", "hello from Bob", 3, 5),
	post("p2", "Alice", "Coffee time", 2, 2),
	post("p1", "alice", "first HELLO", 1, 0),
}

func ids(list []domain.Post) []string {
	out := make([]string, 0, len(list))
	for _, p := range list {
		out = append(out, p.ID)
	}
	return out
}

func TestQuery(t *testing.T) {
	cases := []struct {
		name     string
		term     string
		mode     domain.SortMode
		expected []string
	}{
		{"latest", "", domain.Latest, []string{"p4", "p3", "p2", "p1"}},
		{"oldest", "", domain.Oldest, []string{"p1", "p2", "p3", "p4"}},
		{"most liked keeps storage order on ties", "", domain.MostLiked, []string{"p3", "p4", "p2", "p1"}},
		{"unknown mode keeps storage order", "", domain.SortMode("random"), []string{"p4", "p3", "p2", "p1"}},
		{"content match ignores case", "hello", domain.Latest, []string{"p3", "p1"}},
		{"author match ignores case", "ALICE", domain.Oldest, []string{"p1", "p2"}},
		{"term is trimmed", "  coffee ", domain.Latest, []string{"p2"}},
		{"blank term keeps all", "   ", domain.Latest, []string{"p4", "p3", "p2", "p1"}},
		{"no matches", "nonexistent-xyz", domain.Latest, []string{}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Query(posts, c.term, c.mode)
			if diff := cmp.Diff(c.expected, ids(got)); diff != "" {
				t.Error(diff)
			}
		})
	}
}

func TestQueryDoesNotModifyInput(t *testing.T) {
	before := slices.Clone(posts)
	_ = Query(posts, "", domain.Oldest)
	_ = Query(posts, "alice", domain.MostLiked)
	if diff := cmp.Diff(ids(before), ids(posts)); diff != "" {
		t.Error(diff)
	}
}

func TestOldestIsReverseOfLatest(t *testing.T) {
	latest := ids(Query(posts, "", domain.Latest))
	oldest := ids(Query(posts, "", domain.Oldest))
	slices.Reverse(oldest)
	if diff := cmp.Diff(latest, oldest); diff != "" {
		t.Error(diff)
	}
}

func TestFilterOnlyKeepsMatches(t *testing.T) {
	for _, term := range []string{"o", "bob", "bay", "HELLO"} {
		for _, p := range Filter(posts, term) {
			if !Matches(p, strings.ToLower(term)) {
				t.Errorf("post %s does not contain %q", p.ID, term)
			}
		}
	}
}
