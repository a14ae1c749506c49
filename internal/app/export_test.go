package app

import (
	"context"

	"go.trai.ch/jarlock/internal/core/domain"
)

// ResolveForTest exposes resolve.
func (a *App) ResolveForTest(ctx context.Context, spec *domain.Specification, opts domain.Options) (*domain.LockDocument, error) {
	return a.resolve(ctx, spec, opts)
}
