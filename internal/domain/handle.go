package domain

import (
	"strings"
)

// Handle is a user-supplied player identifier. Either a Riot ID
// (GameName + TagLine) or a legacy summoner name (Name).
type Handle struct {
	GameName string
	TagLine  string
	Name     string
}

// IsRiotID reports whether the handle was given in "name#tag" form.
func (h Handle) IsRiotID() bool {
	return h.TagLine != ""
}

// String renders the handle the way the user typed it.
func (h Handle) String() string {
	if h.IsRiotID() {
		return h.GameName + "#" + h.TagLine
	}
	return h.Name
}

// ParseHandle classifies raw input as a Riot ID or a legacy name. The
// presence of '#' decides the shape; both Riot ID parts must be non-empty
// after trimming, as must a legacy name.
func ParseHandle(raw string) (Handle, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Handle{}, ErrInvalidHandle
	}

	if name, tag, ok := strings.Cut(raw, "#"); ok {
		name = strings.TrimSpace(name)
		tag = strings.TrimSpace(tag)
		if name == "" || tag == "" || strings.Contains(tag, "#") {
			return Handle{}, ErrInvalidHandle
		}
		return Handle{GameName: name, TagLine: tag}, nil
	}

	return Handle{Name: raw}, nil
}
