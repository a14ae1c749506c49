package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jarlock/internal/core/domain"
)

func compileScope() domain.ScopeLock {
	return domain.ScopeLock{
		Name:                 "compile",
		Dependencies:         []string{"junit:junit:4.10"},
		ResolvedDependencies: []string{"junit:junit:jar:4.10", "org.hamcrest:hamcrest-core:jar:1.1"},
	}
}

func runtimeScope() domain.ScopeLock {
	return domain.ScopeLock{
		Name:                 "runtime",
		Dependencies:         []string{"org.apache.tomcat:servlet-api:jar:6.0.35"},
		ResolvedDependencies: []string{"org.apache.tomcat:servlet-api:jar:6.0.35"},
	}
}

func TestMerge_DisjointScopesUnion(t *testing.T) {
	t.Parallel()

	d1 := &domain.LockDocument{Scopes: []domain.ScopeLock{compileScope()}}
	d2 := &domain.LockDocument{Scopes: []domain.ScopeLock{runtimeScope()}}

	merged := domain.Merge(d1, d2)
	assert.Equal(t, []string{"compile", "runtime"}, merged.ScopeNames())
	assert.Equal(t, compileScope(), *merged.Scope("compile"))
	assert.Equal(t, runtimeScope(), *merged.Scope("runtime"))

	reversed := domain.Merge(d2, d1)
	assert.ElementsMatch(t, merged.Scopes, reversed.Scopes)
}

func TestMerge_ReplacesScopeWholesale(t *testing.T) {
	t.Parallel()

	existing := &domain.LockDocument{Scopes: []domain.ScopeLock{compileScope(), runtimeScope()}}
	incoming := &domain.LockDocument{Scopes: []domain.ScopeLock{{
		Name:                 "compile",
		Dependencies:         []string{"commons-io:commons-io:1.4"},
		ResolvedDependencies: []string{"commons-io:commons-io:jar:1.4"},
	}}}

	merged := domain.Merge(existing, incoming)
	require.Equal(t, []string{"compile", "runtime"}, merged.ScopeNames())
	assert.Equal(t, []string{"commons-io:commons-io:1.4"}, merged.Scope("compile").Dependencies)
	assert.Equal(t, []string{"commons-io:commons-io:jar:1.4"}, merged.Scope("compile").ResolvedDependencies)
	assert.Equal(t, runtimeScope(), *merged.Scope("runtime"))
}

func TestMerge_TopLevelReplaceByPresence(t *testing.T) {
	t.Parallel()

	existing := &domain.LockDocument{
		Repositories: []string{"https://old.example.com"},
		Maps:         []domain.MapEntry{{Key: "junit:junit", Paths: []string{"tmp"}}},
		Excludes:     []domain.Exclusion{{Group: "logkit", Name: "*"}},
	}

	t.Run("absent keeps existing", func(t *testing.T) {
		t.Parallel()

		merged := domain.Merge(existing, &domain.LockDocument{})
		assert.Equal(t, existing.Repositories, merged.Repositories)
		assert.Equal(t, existing.Maps, merged.Maps)
		assert.Equal(t, existing.Excludes, merged.Excludes)
	})

	t.Run("present replaces", func(t *testing.T) {
		t.Parallel()

		incoming := &domain.LockDocument{
			Repositories: []string{"https://new.example.com"},
			Maps:         []domain.MapEntry{{Key: "junit:junit:4.10", Paths: []string{"classes"}}},
			Excludes:     []domain.Exclusion{{Group: "commons-logging", Name: "*"}},
		}
		merged := domain.Merge(existing, incoming)
		assert.Equal(t, incoming.Repositories, merged.Repositories)
		assert.Equal(t, incoming.Maps, merged.Maps)
		assert.Equal(t, incoming.Excludes, merged.Excludes)
	})

	t.Run("each key independent", func(t *testing.T) {
		t.Parallel()

		incoming := &domain.LockDocument{Excludes: []domain.Exclusion{{Group: "commons-logging", Name: "*"}}}
		merged := domain.Merge(existing, incoming)
		assert.Equal(t, existing.Repositories, merged.Repositories)
		assert.Equal(t, existing.Maps, merged.Maps)
		assert.Equal(t, incoming.Excludes, merged.Excludes)
	})
}

func TestMerge_DoesNotMutateInputs(t *testing.T) {
	t.Parallel()

	existing := &domain.LockDocument{Scopes: []domain.ScopeLock{compileScope()}}
	incoming := &domain.LockDocument{Scopes: []domain.ScopeLock{runtimeScope()}}
	before := existing.Clone()

	merged := domain.Merge(existing, incoming)
	merged.Scopes[0].ResolvedDependencies[0] = "mutated"

	assert.Equal(t, before, existing)
	assert.Len(t, existing.Scopes, 1)
	assert.Equal(t, runtimeScope(), incoming.Scopes[0])
}

func TestMerge_NilDocuments(t *testing.T) {
	t.Parallel()

	incoming := &domain.LockDocument{Scopes: []domain.ScopeLock{compileScope()}}
	assert.Equal(t, incoming, domain.Merge(nil, incoming))

	existing := &domain.LockDocument{Scopes: []domain.ScopeLock{runtimeScope()}}
	assert.Equal(t, existing, domain.Merge(existing, nil))
}

func TestLockDocument_Declared(t *testing.T) {
	t.Parallel()

	doc := &domain.LockDocument{
		Repositories: []string{"https://repo.example.com"},
		Maps:         []domain.MapEntry{{Key: "junit:junit", Paths: []string{"tmp"}}},
		Excludes:     []domain.Exclusion{{Group: "logkit", Name: "*"}},
		Scopes:       []domain.ScopeLock{compileScope(), runtimeScope()},
	}

	spec := doc.Declared()
	assert.Equal(t, doc.Repositories, spec.Repositories)
	assert.Equal(t, doc.Maps, spec.Maps)
	assert.Equal(t, doc.Excludes, spec.Excludes)
	assert.Equal(t, []domain.ScopeDeclaration{
		{Name: "compile", Dependencies: []string{"junit:junit:4.10"}},
		{Name: "runtime", Dependencies: []string{"org.apache.tomcat:servlet-api:jar:6.0.35"}},
	}, spec.Scopes)
}
