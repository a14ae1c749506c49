package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jarlock/internal/core/domain"
)

func fixtureDocument() *domain.LockDocument {
	return &domain.LockDocument{
		Scopes: []domain.ScopeLock{
			{
				Name:         "compile",
				Dependencies: []string{"org.apache.mina:mina-core:2.0.4", "spec/pom.xml"},
				ResolvedDependencies: []string{
					"org.apache.mina:mina-core:jar:2.0.4",
					"org.slf4j:slf4j-api:jar:1.6.1",
					"com.slackworks:modelcitizen:jar:0.2.2",
					"commons-lang:commons-lang:jar:2.6",
				},
			},
			{
				Name:         "runtime",
				Dependencies: []string{"org.apache.tomcat:servlet-api:jar:6.0.35"},
				ResolvedDependencies: []string{
					"org.slf4j:slf4j-api:jar:1.6.1",
					"org.apache.tomcat:servlet-api:jar:6.0.35",
				},
			},
			{
				Name:                 "test",
				Dependencies:         []string{"junit:junit:jar:4.7"},
				ResolvedDependencies: []string{"junit:junit:jar:4.7"},
			},
		},
	}
}

func TestList_ConcatenatesAndDeduplicates(t *testing.T) {
	t.Parallel()

	got, err := domain.List(fixtureDocument(), []string{"compile", "runtime", "bad scope"})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"org.apache.mina:mina-core:jar:2.0.4",
		"org.slf4j:slf4j-api:jar:1.6.1",
		"com.slackworks:modelcitizen:jar:0.2.2",
		"commons-lang:commons-lang:jar:2.6",
		"org.apache.tomcat:servlet-api:jar:6.0.35",
	}, got)
}

func TestList_RequestedOrderWins(t *testing.T) {
	t.Parallel()

	got, err := domain.List(fixtureDocument(), []string{"runtime", "compile"})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"org.slf4j:slf4j-api:jar:1.6.1",
		"org.apache.tomcat:servlet-api:jar:6.0.35",
		"org.apache.mina:mina-core:jar:2.0.4",
		"com.slackworks:modelcitizen:jar:0.2.2",
		"commons-lang:commons-lang:jar:2.6",
	}, got)
}

func TestList_NoScopesMeansAllInStoredOrder(t *testing.T) {
	t.Parallel()

	doc := fixtureDocument()
	all, err := domain.List(doc, nil)
	require.NoError(t, err)

	explicit, err := domain.List(doc, doc.ScopeNames())
	require.NoError(t, err)

	assert.Equal(t, explicit, all)
	assert.Len(t, all, 6)
}

func TestList_UnknownScopeIgnored(t *testing.T) {
	t.Parallel()

	doc := fixtureDocument()
	with, err := domain.List(doc, []string{"test", "nope"})
	require.NoError(t, err)
	without, err := domain.List(doc, []string{"test"})
	require.NoError(t, err)
	assert.Equal(t, without, with)

	none, err := domain.List(doc, []string{"nope"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestList_MapSplicesOverride(t *testing.T) {
	t.Parallel()

	doc := &domain.LockDocument{
		Maps: []domain.MapEntry{{Key: "junit:junit", Paths: []string{"tmp"}}},
		Scopes: []domain.ScopeLock{{
			Name:                 "compile",
			Dependencies:         []string{"junit:junit:4.10"},
			ResolvedDependencies: []string{"junit:junit:jar:4.10", "org.hamcrest:hamcrest-core:jar:1.1"},
		}},
	}

	got, err := domain.List(doc, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"tmp", "org.hamcrest:hamcrest-core:jar:1.1"}, got)
}

func TestQuery_MapPrecedence(t *testing.T) {
	t.Parallel()

	resolved := []string{"junit:junit:jar:4.10", "junit:junit:jar:4.11"}
	tests := []struct {
		name string
		maps []domain.MapEntry
		want []string
	}{
		{
			name: "group name prefix covers all versions",
			maps: []domain.MapEntry{{Key: "junit:junit", Paths: []string{"prefix"}}},
			want: []string{"prefix"},
		},
		{
			name: "short notation matches one version",
			maps: []domain.MapEntry{{Key: "junit:junit:4.10", Paths: []string{"short"}}},
			want: []string{"short", "junit:junit:jar:4.11"},
		},
		{
			name: "full notation beats short and prefix",
			maps: []domain.MapEntry{
				{Key: "junit:junit", Paths: []string{"prefix"}},
				{Key: "junit:junit:4.10", Paths: []string{"short"}},
				{Key: "junit:junit:jar:4.10", Paths: []string{"exact"}},
			},
			want: []string{"exact", "prefix"},
		},
		{
			name: "short beats prefix",
			maps: []domain.MapEntry{
				{Key: "junit:junit", Paths: []string{"prefix"}},
				{Key: "junit:junit:4.11", Paths: []string{"short"}},
			},
			want: []string{"prefix", "short"},
		},
		{
			name: "one coordinate expands to several paths",
			maps: []domain.MapEntry{{Key: "junit:junit:4.10", Paths: []string{"classes", "resources"}}},
			want: []string{"classes", "resources", "junit:junit:jar:4.11"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := &domain.LockDocument{
				Maps:   tt.maps,
				Scopes: []domain.ScopeLock{{Name: "compile", ResolvedDependencies: resolved}},
			}
			got, err := domain.List(doc, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuery_ExcludesAppliedAtQueryTime(t *testing.T) {
	t.Parallel()

	doc := &domain.LockDocument{
		Excludes: []domain.Exclusion{{Group: "commons-logging", Name: "*"}, {Group: "logkit", Name: "*"}},
		Scopes: []domain.ScopeLock{{
			Name: "compile",
			ResolvedDependencies: []string{
				"opensymphony:oscache:jar:2.4.1",
				"commons-logging:commons-logging:jar:1.1",
				"logkit:logkit:jar:1.0.1",
				"javax.jms:jms:jar:1.1",
			},
		}},
	}

	entries, err := domain.Query(doc, nil)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.Equal(t, domain.EntryArtifact, e.Kind)
		assert.NotEqual(t, "commons-logging", e.Coordinate.Group)
		assert.NotEqual(t, "logkit", e.Coordinate.Group)
	}
}

func TestQuery_InvalidResolvedCoordinate(t *testing.T) {
	t.Parallel()

	doc := &domain.LockDocument{Scopes: []domain.ScopeLock{{Name: "compile", ResolvedDependencies: []string{"bogus"}}}}

	_, err := domain.Query(doc, nil)
	require.ErrorIs(t, err, domain.ErrLockfileParse)
	assert.ErrorContains(t, err, domain.ErrInvalidCoordinate.Error())
}

func TestQuery_NilDocument(t *testing.T) {
	t.Parallel()

	entries, err := domain.Query(nil, []string{"compile"})
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestEntryKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "artifact", domain.EntryArtifact.String())
	assert.Equal(t, "path", domain.EntryLiteralPath.String())
	assert.Equal(t, "directory", domain.EntryDirectory.String())
	assert.Equal(t, "unknown", domain.EntryKind(42).String())
}
