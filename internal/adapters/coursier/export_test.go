package coursier

import (
	"go.trai.ch/jarlock/internal/core/domain"
	"go.trai.ch/jarlock/internal/core/ports"
)

// NewResolverForTest creates a Resolver with a custom cache directory and binary.
func NewResolverForTest(logger ports.Logger, cacheDir, binary string) *Resolver {
	return newResolverWithPath(logger, cacheDir, binary)
}

// BuildArgsForTest exposes buildArgs.
func BuildArgsForTest(req ports.ResolveRequest) []string {
	return buildArgs(req)
}

// ParseOutputForTest exposes parseOutput.
func ParseOutputForTest(output []byte) ([]domain.Coordinate, error) {
	return parseOutput(output)
}

// ClassifyFailureForTest exposes classifyFailure.
func ClassifyFailureForTest(stderr string) error {
	return classifyFailure(stderr)
}
