package ports

import "go.trai.ch/jarlock/internal/core/domain"

// SpecificationLoader defines the interface for reading a Jarfile.
//
//go:generate mockgen -source=specification_loader.go -destination=mocks/mock_specification_loader.go -package=mocks
type SpecificationLoader interface {
	// Load parses the Jarfile at path. An empty path searches upwards from the
	// working directory.
	Load(path string) (*domain.Specification, error)
}
