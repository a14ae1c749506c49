package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidCoordinate is returned when a coordinate string does not have the g:n[:t]:v[:c] shape.
	ErrInvalidCoordinate = zerr.New("invalid coordinate")

	// ErrInvalidExclusion is returned when an exclusion is not of the form group or group:name.
	ErrInvalidExclusion = zerr.New("invalid exclusion")

	// ErrLockfileNotFound is returned when the lock file does not exist.
	ErrLockfileNotFound = zerr.New("lock file not found")

	// ErrLockfileParse is returned when the lock file is not valid YAML or does not match the schema.
	ErrLockfileParse = zerr.New("failed to parse lock file")

	// ErrLockfileWriteFailed is returned when the lock file cannot be written.
	ErrLockfileWriteFailed = zerr.New("failed to write lock file")

	// ErrLockfileMarshalFailed is returned when the lock document cannot be encoded.
	ErrLockfileMarshalFailed = zerr.New("failed to encode lock file")

	// ErrJarfileNotFound is returned when no Jarfile can be located.
	ErrJarfileNotFound = zerr.New("could not find Jarfile")

	// ErrJarfileParse is returned when a Jarfile is malformed.
	ErrJarfileParse = zerr.New("failed to parse Jarfile")

	// ErrManifestNotFound is returned when a declared pom manifest does not exist.
	ErrManifestNotFound = zerr.New("manifest not found")

	// ErrManifestParse is returned when a pom manifest cannot be interpreted.
	ErrManifestParse = zerr.New("failed to parse manifest")

	// ErrUnresolvableDependency is returned when a coordinate cannot be found in any repository.
	ErrUnresolvableDependency = zerr.New("unresolvable dependency")

	// ErrNetwork is returned when a remote repository cannot be reached.
	ErrNetwork = zerr.New("network failure")

	// ErrDownloadFailed is returned when an artifact transfer fails or is corrupt.
	ErrDownloadFailed = zerr.New("artifact download failed")

	// ErrArtifactNotCached is returned when an artifact is absent locally and downloading is disabled.
	ErrArtifactNotCached = zerr.New("artifact not in local repository")

	// ErrResolverFailed is returned when the resolution backend fails for an unclassified reason.
	ErrResolverFailed = zerr.New("dependency resolver failed")

	// ErrResolverNotInstalled is returned when the resolution backend binary cannot be found.
	ErrResolverNotInstalled = zerr.New("dependency resolver not installed")

	// ErrResolveCacheReadFailed is returned when a cached resolution cannot be read.
	ErrResolveCacheReadFailed = zerr.New("failed to read resolution cache")

	// ErrResolveCacheWriteFailed is returned when a resolution cannot be cached.
	ErrResolveCacheWriteFailed = zerr.New("failed to write resolution cache")

	// ErrLocalRepositoryCreateFailed is returned when the local repository directory cannot be created.
	ErrLocalRepositoryCreateFailed = zerr.New("failed to create local repository directory")

	// ErrPathStatFailed is returned when stating an override path fails.
	ErrPathStatFailed = zerr.New("failed to stat path")

	// ErrFailedToGetAbsPath is returned when a path cannot be made absolute.
	ErrFailedToGetAbsPath = zerr.New("failed to get absolute path")

	// ErrNoCommandSpecified is returned when exec is invoked without a command.
	ErrNoCommandSpecified = zerr.New("no command specified")

	// ErrCommandFailed is returned when a command run with the classpath exits with an error.
	ErrCommandFailed = zerr.New("command failed")
)
