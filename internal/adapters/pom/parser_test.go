package pom_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jarlock/internal/adapters/pom"
	"go.trai.ch/jarlock/internal/core/domain"
)

func TestParser_Dependencies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		scope string
		want  []string
	}{
		{
			scope: "compile",
			want: []string{
				"org.apache.mina:mina-core:jar:2.0.4",
				"org.slf4j:slf4j-api:jar:1.6.1",
				"commons-lang:commons-lang:jar:2.6",
				"com.example:sample-api:jar:3.1.0:sources",
			},
		},
		{scope: "runtime", want: []string{"org.apache.tomcat:servlet-api:jar:6.0.35"}},
		{scope: "test", want: []string{"junit:junit:jar:4.10"}},
		{scope: "provided", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.scope, func(t *testing.T) {
			t.Parallel()

			got, err := pom.NewParser().Dependencies(filepath.Join("testdata", "pom.xml"), tt.scope)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParser_EmptyScopeMeansCompile(t *testing.T) {
	t.Parallel()

	p := pom.NewParser()
	path := filepath.Join("testdata", "pom.xml")

	compile, err := p.Dependencies(path, "compile")
	require.NoError(t, err)
	empty, err := p.Dependencies(path, "")
	require.NoError(t, err)
	assert.Equal(t, compile, empty)
}

func TestParser_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{name: "not xml", content: "<project attr=></project>"},
		{name: "no project", content: "<settings/>"},
		{
			name:    "missing version",
			content: "<project><dependencies><dependency><groupId>a</groupId><artifactId>b</artifactId></dependency></dependencies></project>",
		},
		{
			name:    "unresolved property",
			content: "<project><dependencies><dependency><groupId>a</groupId><artifactId>b</artifactId><version>${missing}</version></dependency></dependencies></project>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "pom.xml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), domain.FilePerm))

			_, err := pom.NewParser().Dependencies(path, "compile")
			require.ErrorIs(t, err, domain.ErrManifestParse)
		})
	}
}

func TestParser_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := pom.NewParser().Dependencies(filepath.Join(t.TempDir(), "pom.xml"), "compile")
	require.ErrorIs(t, err, domain.ErrManifestNotFound)
}
