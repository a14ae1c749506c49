package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/jarlock/internal/core/domain"
)

func TestLayoutPaths(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{
			name:     "DefaultResolveCachePath",
			got:      domain.DefaultResolveCachePath(),
			expected: filepath.Join(".jarlock", "cache", "resolve"),
		},
		{
			name:     "DefaultLocalRepository",
			got:      domain.DefaultLocalRepository("/home/user"),
			expected: filepath.Join("/home/user", ".m2", "repository"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("%s() = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := domain.DefaultOptions()

	assert.Equal(t, domain.DefaultLocalRepository(xdg.Home), opts.LocalRepository)
	assert.Equal(t, "Jarfile.lock", opts.Lockfile)
	assert.Equal(t, []string{"compile"}, opts.Scopes)
	assert.True(t, opts.DownloadArtifacts)
	assert.False(t, opts.Offline)
	assert.False(t, opts.NoCache)
	assert.Equal(t, []string{domain.MavenCentral}, domain.DefaultRepositories())
}

func TestOptions_ScopesOr(t *testing.T) {
	opts := domain.Options{Scopes: []string{"compile"}}

	assert.Equal(t, []string{"runtime"}, opts.ScopesOr([]string{"runtime"}))
	assert.Equal(t, []string{"compile"}, opts.ScopesOr(nil))
	assert.Empty(t, domain.Options{}.ScopesOr(nil))
}
