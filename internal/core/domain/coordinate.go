// Package domain holds the core types of jarlock: coordinates, specifications,
// lock documents and the merge and query rules that operate on them.
package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// DefaultType is the packaging assumed when a coordinate omits one.
const DefaultType = "jar"

const coordinateSeparator = ":"

// Coordinate identifies a binary artifact.
type Coordinate struct {
	Group      string
	Name       string
	Type       string
	Version    string
	Classifier string
}

// ParseCoordinate parses one of the forms g:n:v, g:n:t:v or g:n:t:v:c.
func ParseCoordinate(s string) (Coordinate, error) {
	parts := strings.Split(strings.TrimSpace(s), coordinateSeparator)
	for _, p := range parts {
		if p == "" {
			return Coordinate{}, zerr.With(zerr.Wrap(ErrInvalidCoordinate, "empty segment"), "coordinate", s)
		}
	}

	switch len(parts) {
	case 3:
		return Coordinate{Group: parts[0], Name: parts[1], Type: DefaultType, Version: parts[2]}, nil
	case 4:
		return Coordinate{Group: parts[0], Name: parts[1], Type: parts[2], Version: parts[3]}, nil
	case 5:
		return Coordinate{
			Group:      parts[0],
			Name:       parts[1],
			Type:       parts[2],
			Version:    parts[3],
			Classifier: parts[4],
		}, nil
	default:
		return Coordinate{}, zerr.With(zerr.Wrap(ErrInvalidCoordinate, "unexpected number of segments"), "coordinate", s)
	}
}

// MustParseCoordinate is like ParseCoordinate but panics on error.
// It is intended for tests and static tables.
func MustParseCoordinate(s string) Coordinate {
	c, err := ParseCoordinate(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Notation returns the canonical group:name:type:version[:classifier] form.
func (c Coordinate) Notation() string {
	typ := c.Type
	if typ == "" {
		typ = DefaultType
	}
	parts := []string{c.Group, c.Name, typ, c.Version}
	if c.Classifier != "" {
		parts = append(parts, c.Classifier)
	}
	return strings.Join(parts, coordinateSeparator)
}

// String implements fmt.Stringer.
func (c Coordinate) String() string {
	return c.Notation()
}

// GroupName returns group:name.
func (c Coordinate) GroupName() string {
	return c.Group + coordinateSeparator + c.Name
}

// ShortNotation returns group:name:version, the form most users type.
func (c Coordinate) ShortNotation() string {
	return c.GroupName() + coordinateSeparator + c.Version
}

// Equal reports whether both coordinates share the same canonical notation.
func (c Coordinate) Equal(other Coordinate) bool {
	return c.Notation() == other.Notation()
}

// Extension returns the file extension used for the artifact in a repository layout.
func (c Coordinate) Extension() string {
	switch c.Type {
	case "", "bundle", "maven-plugin", "ejb", "test-jar":
		return DefaultType
	default:
		return c.Type
	}
}
