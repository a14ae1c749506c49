package domain

import (
	"slices"
	"strings"
)

// DefaultScope is the scope used when a declaration names none.
const DefaultScope = "compile"

// ManifestSuffix marks a declared token as a reference to a pom manifest.
const ManifestSuffix = ".xml"

// ScopeDeclaration is the ordered list of tokens declared for one scope.
type ScopeDeclaration struct {
	Name         string
	Dependencies []string
}

// MapEntry substitutes local paths for every coordinate matching Key.
type MapEntry struct {
	Key   string
	Paths []string
}

// Specification is the structured request produced by the DSL.
type Specification struct {
	Repositories []string
	Scopes       []ScopeDeclaration
	Maps         []MapEntry
	Excludes     []Exclusion
}

// Scope returns the declaration for name, or nil.
func (s *Specification) Scope(name string) *ScopeDeclaration {
	for i := range s.Scopes {
		if s.Scopes[i].Name == name {
			return &s.Scopes[i]
		}
	}
	return nil
}

// IsManifest reports whether a declared token names a manifest file rather than a coordinate.
func IsManifest(token string) bool {
	return strings.HasSuffix(strings.ToLower(token), ManifestSuffix)
}

// SpecBuilder accumulates DSL declarations in call order.
type SpecBuilder struct {
	spec Specification
}

// NewSpecBuilder returns an empty builder.
func NewSpecBuilder() *SpecBuilder {
	return &SpecBuilder{}
}

// Evaluate runs block against a fresh builder and returns the built specification.
func Evaluate(block func(b *SpecBuilder)) *Specification {
	b := NewSpecBuilder()
	if block != nil {
		block(b)
	}
	return b.Build()
}

// Declare appends token to scope. An empty scope means DefaultScope.
// Repeated tokens within a scope are ignored.
func (b *SpecBuilder) Declare(scope, token string) *SpecBuilder {
	if scope == "" {
		scope = DefaultScope
	}
	decl := b.spec.Scope(scope)
	if decl == nil {
		b.spec.Scopes = append(b.spec.Scopes, ScopeDeclaration{Name: scope})
		decl = &b.spec.Scopes[len(b.spec.Scopes)-1]
	}
	if !slices.Contains(decl.Dependencies, token) {
		decl.Dependencies = append(decl.Dependencies, token)
	}
	return b
}

// Jar declares token in the default scope.
func (b *SpecBuilder) Jar(token string, scopes ...string) *SpecBuilder {
	if len(scopes) == 0 {
		return b.Declare(DefaultScope, token)
	}
	for _, s := range scopes {
		b.Declare(s, token)
	}
	return b
}

// Pom declares a manifest file whose dependencies are expanded before resolution.
func (b *SpecBuilder) Pom(path string, scopes ...string) *SpecBuilder {
	return b.Jar(path, scopes...)
}

// Map registers override paths for coordinates matching key.
// Calling Map again with the same key appends paths.
func (b *SpecBuilder) Map(key string, paths ...string) *SpecBuilder {
	for i := range b.spec.Maps {
		if b.spec.Maps[i].Key == key {
			b.spec.Maps[i].Paths = append(b.spec.Maps[i].Paths, paths...)
			return b
		}
	}
	b.spec.Maps = append(b.spec.Maps, MapEntry{Key: key, Paths: slices.Clone(paths)})
	return b
}

// Exclude removes group:name from every scope's resolution.
// An empty name or "*" excludes the whole group.
func (b *SpecBuilder) Exclude(group, name string) *SpecBuilder {
	if name == "" {
		name = WildcardName
	}
	e := Exclusion{Group: group, Name: name}
	if !slices.Contains(b.spec.Excludes, e) {
		b.spec.Excludes = append(b.spec.Excludes, e)
	}
	return b
}

// AddRepository appends a remote repository URL, keeping first-seen order.
func (b *SpecBuilder) AddRepository(url string) *SpecBuilder {
	if !slices.Contains(b.spec.Repositories, url) {
		b.spec.Repositories = append(b.spec.Repositories, url)
	}
	return b
}

// Build returns a deep copy of the accumulated specification.
func (b *SpecBuilder) Build() *Specification {
	out := &Specification{
		Repositories: slices.Clone(b.spec.Repositories),
		Excludes:     slices.Clone(b.spec.Excludes),
	}
	for _, s := range b.spec.Scopes {
		out.Scopes = append(out.Scopes, ScopeDeclaration{Name: s.Name, Dependencies: slices.Clone(s.Dependencies)})
	}
	for _, m := range b.spec.Maps {
		out.Maps = append(out.Maps, MapEntry{Key: m.Key, Paths: slices.Clone(m.Paths)})
	}
	return out
}
