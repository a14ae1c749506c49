package domain

import "path/filepath"

const (
	// JarlockDirName is the name of the per-project working directory.
	JarlockDirName = ".jarlock"

	// CacheDirName is the name of the cache directory.
	CacheDirName = "cache"

	// ResolveDirName is the name of the resolution cache directory.
	ResolveDirName = "resolve"

	// JarfileName is the name of the dependency specification file.
	JarfileName = "Jarfile"

	// LockfileName is the default name of the lock file.
	LockfileName = "Jarfile.lock"

	// MavenDirName is the directory under the home directory holding the local repository.
	MavenDirName = ".m2"

	// RepositoryDirName is the local repository directory under MavenDirName.
	RepositoryDirName = "repository"

	// MavenCentral is the repository every session starts with.
	MavenCentral = "https://repo1.maven.org/maven2"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultResolveCachePath returns the default path for cached resolutions.
// It joins .jarlock, cache, and resolve.
func DefaultResolveCachePath() string {
	return filepath.Join(JarlockDirName, CacheDirName, ResolveDirName)
}

// DefaultLocalRepository returns <home>/.m2/repository.
func DefaultLocalRepository(home string) string {
	return filepath.Join(home, MavenDirName, RepositoryDirName)
}

// DefaultRepositories returns the remote repositories a session starts with.
func DefaultRepositories() []string {
	return []string{MavenCentral}
}
