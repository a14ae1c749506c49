package ports

import "go.trai.ch/jarlock/internal/core/domain"

// LockStore defines the interface for persisting lock documents.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type LockStore interface {
	// Read parses the lock file at path.
	// It fails with domain.ErrLockfileNotFound when the file is absent and
	// domain.ErrLockfileParse when its content does not match the schema.
	Read(path string) (*domain.LockDocument, error)

	// Write replaces the file at path with the serialized document.
	Write(path string, doc *domain.LockDocument) error
}
