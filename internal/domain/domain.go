package domain

import "fmt"

type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// Toggled returns the opposite theme. Anything that is not Dark toggles to Dark.
func (t Theme) Toggled() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

func ParseTheme(s string) (Theme, error) {
	switch t := Theme(s); t {
	case Light, Dark:
		return t, nil
	}
	return "", fmt.Errorf("unknown theme %q", s)
}

// SortMode selects the display order of the feed.
type SortMode string

const (
	Latest    SortMode = "latest"
	Oldest    SortMode = "oldest"
	MostLiked SortMode = "mostLiked"
)

// ParseSortMode maps an empty string to Latest.
func ParseSortMode(s string) (SortMode, error) {
	switch m := SortMode(s); m {
	case "":
		return Latest, nil
	case Latest, Oldest, MostLiked:
		return m, nil
	}
	return "", fmt.Errorf("unknown sort mode %q", s)
}
