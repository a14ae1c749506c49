package domain

import "go.trai.ch/zerr"

// EntryKind tags what a PathEntry refers to.
type EntryKind int

const (
	// EntryArtifact is a coordinate to be located in the local repository.
	EntryArtifact EntryKind = iota
	// EntryLiteralPath is an override path that is not a directory.
	EntryLiteralPath
	// EntryDirectory is an override path naming a directory.
	EntryDirectory
)

// String implements fmt.Stringer.
func (k EntryKind) String() string {
	switch k {
	case EntryArtifact:
		return "artifact"
	case EntryLiteralPath:
		return "path"
	case EntryDirectory:
		return "directory"
	default:
		return "unknown"
	}
}

// PathEntry is one element of a query result.
// Artifact entries carry Coordinate; override entries carry Path.
type PathEntry struct {
	Kind       EntryKind
	Path       string
	Coordinate Coordinate
}

// ArtifactEntry wraps a coordinate.
func ArtifactEntry(c Coordinate) PathEntry {
	return PathEntry{Kind: EntryArtifact, Coordinate: c}
}

// OverrideEntry wraps a map override path. It is tagged as a literal path
// until classified against the filesystem.
func OverrideEntry(path string) PathEntry {
	return PathEntry{Kind: EntryLiteralPath, Path: path}
}

// String returns the coordinate notation for artifacts and the path otherwise.
func (e PathEntry) String() string {
	if e.Kind == EntryArtifact {
		return e.Coordinate.Notation()
	}
	return e.Path
}

// Query flattens the resolved dependencies of the requested scopes.
//
// Scopes are visited in the given order, or in stored order when none are
// given; unknown scope names are skipped. Coordinates are de-duplicated
// keeping the first occurrence and filtered through the document excludes.
// A coordinate with a map override is replaced by its override paths, and
// repeated override paths collapse to their first occurrence.
func Query(doc *LockDocument, scopeNames []string) ([]PathEntry, error) {
	if doc == nil {
		return nil, nil
	}
	if len(scopeNames) == 0 {
		scopeNames = doc.ScopeNames()
	}

	seen := make(map[string]struct{})
	var coords []Coordinate
	for _, name := range scopeNames {
		scope := doc.Scope(name)
		if scope == nil {
			continue
		}
		for _, notation := range scope.ResolvedDependencies {
			c, err := ParseCoordinate(notation)
			if err != nil {
				return nil, zerr.With(zerr.With(zerr.Wrap(ErrLockfileParse, err.Error()), "scope", name), "coordinate", notation)
			}
			key := c.Notation()
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			if Excluded(doc.Excludes, c) {
				continue
			}
			coords = append(coords, c)
		}
	}

	entries := make([]PathEntry, 0, len(coords))
	emitted := make(map[string]struct{})
	for _, c := range coords {
		paths, ok := doc.Overrides(c)
		if !ok {
			entries = append(entries, ArtifactEntry(c))
			continue
		}
		for _, p := range paths {
			if _, dup := emitted[p]; dup {
				continue
			}
			emitted[p] = struct{}{}
			entries = append(entries, OverrideEntry(p))
		}
	}
	return entries, nil
}

// List is Query rendered as strings: notations for artifacts, paths for overrides.
func List(doc *LockDocument, scopeNames []string) ([]string, error) {
	entries, err := Query(doc, scopeNames)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.String())
	}
	return out, nil
}
