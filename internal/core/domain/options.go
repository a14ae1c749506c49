package domain

import (
	"slices"

	"github.com/adrg/xdg"
)

// Options configures a top-level operation.
type Options struct {
	// LocalRepository is the root of the local artifact cache.
	LocalRepository string
	// Lockfile is the lock file written by lock and read by the query operations.
	Lockfile string
	// Scopes are used when an operation is called without explicit scope names.
	// Empty means every scope of the document.
	Scopes []string
	// DownloadArtifacts fetches missing artifacts into LocalRepository.
	DownloadArtifacts bool
	// Offline disables every remote repository.
	Offline bool
	// NoCache bypasses the resolution cache.
	NoCache bool
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		LocalRepository:   DefaultLocalRepository(xdg.Home),
		Lockfile:          LockfileName,
		Scopes:            []string{DefaultScope},
		DownloadArtifacts: true,
	}
}

// ScopesOr returns explicit when non-empty, otherwise the configured scopes.
func (o Options) ScopesOr(explicit []string) []string {
	if len(explicit) > 0 {
		return slices.Clone(explicit)
	}
	return slices.Clone(o.Scopes)
}
