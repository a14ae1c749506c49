// Package ports defines the core interfaces for the application.
package ports

import "context"

// Executor defines the interface for running a command against a classpath.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs argv with the additional environment variables in "KEY=VALUE" form.
	Execute(ctx context.Context, argv []string, env []string) error
}
