package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// WildcardName excludes every artifact of a group.
const WildcardName = "*"

// Exclusion removes a group, or a single group:name, from transitive resolution.
type Exclusion struct {
	Group string
	Name  string
}

// ParseExclusion accepts "group" or "group:name".
func ParseExclusion(s string) (Exclusion, error) {
	group, name, found := strings.Cut(strings.TrimSpace(s), coordinateSeparator)
	if group == "" || (found && (name == "" || strings.Contains(name, coordinateSeparator))) {
		return Exclusion{}, zerr.With(zerr.Wrap(ErrInvalidExclusion, "expected group or group:name"), "exclusion", s)
	}
	if !found {
		name = WildcardName
	}
	return Exclusion{Group: group, Name: name}, nil
}

// Matches reports whether c is removed by the exclusion.
func (e Exclusion) Matches(c Coordinate) bool {
	if e.Group != c.Group {
		return false
	}
	return e.Name == "" || e.Name == WildcardName || e.Name == c.Name
}

// String returns the group:name form, or the bare group for a wildcard.
func (e Exclusion) String() string {
	if e.Name == "" || e.Name == WildcardName {
		return e.Group
	}
	return e.Group + coordinateSeparator + e.Name
}

// Excluded reports whether any exclusion in the list matches c.
func Excluded(excludes []Exclusion, c Coordinate) bool {
	for _, e := range excludes {
		if e.Matches(c) {
			return true
		}
	}
	return false
}
