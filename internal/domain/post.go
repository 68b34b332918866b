package domain

import (
	"maps"
	"slices"
	"time"
)

type Reaction string

const (
	Love  Reaction = "love"
	Angry Reaction = "angry"
)

var Reactions = []Reaction{Love, Angry}

func ValidReaction(r Reaction) bool {
	return slices.Contains(Reactions, r)
}

// Post is a unit of user content. AuthorName and AuthorEmail are a snapshot of the author taken when
// the post was created; they are not kept in sync with the account.
type Post struct {
	ID          string           `json:"id"`
	AuthorName  string           `json:"authorName"`
	AuthorEmail string           `json:"authorEmail"`
	Content     string           `json:"content"`
	Image       string           `json:"image,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
	EditedAt    *time.Time       `json:"editedAt,omitempty"`
	Likes       int              `json:"likes"`
	LikedBy     []string         `json:"likedBy"`
	Reactions   map[Reaction]int `json:"reactions"`
}

// NewReactions returns a counter map with every known reaction set to zero.
func NewReactions() map[Reaction]int {
	m := make(map[Reaction]int, len(Reactions))
	for _, r := range Reactions {
		m[r] = 0
	}
	return m
}

// Clone returns a deep copy, so that the copy's LikedBy and Reactions can be changed freely.
func (p Post) Clone() Post {
	c := p
	c.LikedBy = slices.Clone(p.LikedBy)
	if c.LikedBy == nil {
		c.LikedBy = []string{}
	}
	c.Reactions = maps.Clone(p.Reactions)
	if c.Reactions == nil {
		c.Reactions = NewReactions()
	}
	if p.EditedAt != nil {
		t := *p.EditedAt
		c.EditedAt = &t
	}
	return c
}

// Repaired returns a copy whose LikedBy has no duplicate emails, whose Likes equals len(LikedBy), and
// whose Reactions has a counter for every known reaction.
func (p Post) Repaired() Post {
	c := p.Clone()

	seen := make(map[string]bool, len(c.LikedBy))
	c.LikedBy = slices.DeleteFunc(c.LikedBy, func(email string) bool {
		if seen[email] {
			return true
		}
		seen[email] = true
		return false
	})
	c.Likes = len(c.LikedBy)

	for _, r := range Reactions {
		c.Reactions[r] = max(c.Reactions[r], 0)
	}
	return c
}

func (p Post) LikedByEmail(email string) bool {
	return slices.Contains(p.LikedBy, email)
}
