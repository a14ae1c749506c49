package ports

import (
	"context"

	"go.trai.ch/jarlock/internal/core/domain"
)

// ResolveRequest is everything the resolver needs to close one scope.
type ResolveRequest struct {
	Scope        string
	Dependencies []domain.Coordinate
	Excludes     []domain.Exclusion
	Repositories []string
	Offline      bool
	NoCache      bool
}

// Resolver defines the interface for transitive dependency resolution.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type Resolver interface {
	// Resolve returns the transitive closure of the request's dependencies in
	// resolution order, with excludes applied.
	Resolve(ctx context.Context, req ResolveRequest) ([]domain.Coordinate, error)
}

// ArtifactRepository defines the interface for the local artifact cache.
type ArtifactRepository interface {
	// Root returns the local repository directory.
	Root() string

	// LocalPath returns where c lives in the local repository and whether it is present.
	LocalPath(c domain.Coordinate) (string, bool)

	// Download fetches c from the first repository that has it and returns its local path.
	Download(ctx context.Context, c domain.Coordinate, repositories []string) (string, error)
}

// ArtifactRepositoryFactory opens the local artifact cache rooted at a directory.
type ArtifactRepositoryFactory interface {
	// Open returns the repository rooted at root, creating the directory if needed.
	Open(root string) (ArtifactRepository, error)
}
