package domain

import "slices"

// ScopeLock records what was declared for a scope and what it resolved to.
// ResolvedDependencies keeps resolution output order.
type ScopeLock struct {
	Name                 string
	Dependencies         []string
	ResolvedDependencies []string
}

// LockDocument is the in-memory form of Jarfile.lock.
// Scopes keep the order in which they were first locked.
type LockDocument struct {
	Repositories []string
	Maps         []MapEntry
	Excludes     []Exclusion
	Scopes       []ScopeLock
}

// NewLockDocument returns an empty document.
func NewLockDocument() *LockDocument {
	return &LockDocument{}
}

// Scope returns the lock entry for name, or nil.
func (d *LockDocument) Scope(name string) *ScopeLock {
	for i := range d.Scopes {
		if d.Scopes[i].Name == name {
			return &d.Scopes[i]
		}
	}
	return nil
}

// ScopeNames returns the scope names in stored order.
func (d *LockDocument) ScopeNames() []string {
	names := make([]string, 0, len(d.Scopes))
	for _, s := range d.Scopes {
		names = append(names, s.Name)
	}
	return names
}

// SetScope replaces the scope with the same name in place, or appends it.
func (d *LockDocument) SetScope(s ScopeLock) {
	s = cloneScope(s)
	for i := range d.Scopes {
		if d.Scopes[i].Name == s.Name {
			d.Scopes[i] = s
			return
		}
	}
	d.Scopes = append(d.Scopes, s)
}

// Overrides returns the override paths registered for c.
// An exact notation key wins over group:name:version, which wins over group:name.
func (d *LockDocument) Overrides(c Coordinate) ([]string, bool) {
	for _, key := range []string{c.Notation(), c.ShortNotation(), c.GroupName()} {
		for _, m := range d.Maps {
			if m.Key == key {
				return m.Paths, true
			}
		}
	}
	return nil, false
}

// Clone returns a deep copy.
func (d *LockDocument) Clone() *LockDocument {
	if d == nil {
		return nil
	}
	out := &LockDocument{
		Repositories: slices.Clone(d.Repositories),
		Excludes:     slices.Clone(d.Excludes),
		Maps:         CloneMaps(d.Maps),
	}
	for _, s := range d.Scopes {
		out.Scopes = append(out.Scopes, cloneScope(s))
	}
	return out
}

// Declared converts the document back into the specification that produced it.
func (d *LockDocument) Declared() *Specification {
	b := NewSpecBuilder()
	for _, r := range d.Repositories {
		b.AddRepository(r)
	}
	for _, s := range d.Scopes {
		for _, dep := range s.Dependencies {
			b.Declare(s.Name, dep)
		}
	}
	for _, m := range d.Maps {
		b.Map(m.Key, m.Paths...)
	}
	for _, e := range d.Excludes {
		b.Exclude(e.Group, e.Name)
	}
	return b.Build()
}

func cloneScope(s ScopeLock) ScopeLock {
	return ScopeLock{
		Name:                 s.Name,
		Dependencies:         slices.Clone(s.Dependencies),
		ResolvedDependencies: slices.Clone(s.ResolvedDependencies),
	}
}

// CloneMaps returns a deep copy of maps; nil stays nil.
func CloneMaps(maps []MapEntry) []MapEntry {
	if maps == nil {
		return nil
	}
	out := make([]MapEntry, 0, len(maps))
	for _, m := range maps {
		out = append(out, MapEntry{Key: m.Key, Paths: slices.Clone(m.Paths)})
	}
	return out
}
