package app

import (
	"context"
	"fmt"
	"runtime"
	"slices"

	"go.trai.ch/jarlock/internal/core/domain"
	"go.trai.ch/jarlock/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// resolve builds an in-memory lock document for spec. Scopes resolve
// concurrently and keep their declaration order in the result.
func (a *App) resolve(ctx context.Context, spec *domain.Specification, opts domain.Options) (*domain.LockDocument, error) {
	repositories := a.effectiveRepositories(spec.Repositories, opts)
	scopes := make([]domain.ScopeLock, len(spec.Scopes))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, decl := range spec.Scopes {
		g.Go(func() error {
			resolved, err := a.resolveScope(ctx, decl, spec.Excludes, repositories, opts)
			if err != nil {
				return err
			}
			scopes[i] = domain.ScopeLock{
				Name:                 decl.Name,
				Dependencies:         slices.Clone(decl.Dependencies),
				ResolvedDependencies: resolved,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &domain.LockDocument{
		Repositories: slices.Clone(spec.Repositories),
		Maps:         domain.CloneMaps(spec.Maps),
		Excludes:     slices.Clone(spec.Excludes),
		Scopes:       scopes,
	}, nil
}

// resolveScope expands manifests, resolves the closure and returns the
// resolved notations with excludes applied and duplicates dropped.
func (a *App) resolveScope(
	ctx context.Context,
	decl domain.ScopeDeclaration,
	excludes []domain.Exclusion,
	repositories []string,
	opts domain.Options,
) ([]string, error) {
	ctx, span := a.tracer.Start(ctx, fmt.Sprintf("resolve %s", decl.Name),
		ports.WithAttribute("jarlock.scope", decl.Name))
	defer span.End()

	deps, err := a.expand(decl)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	a.logger.Debug(fmt.Sprintf("resolving %s with %d declared dependencies", decl.Name, len(deps)))

	resolved, err := a.resolver.Resolve(ctx, ports.ResolveRequest{
		Scope:        decl.Name,
		Dependencies: deps,
		Excludes:     excludes,
		Repositories: repositories,
		Offline:      opts.Offline,
		NoCache:      opts.NoCache,
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	var out []string
	seen := make(map[string]bool, len(resolved))
	for _, c := range resolved {
		if domain.Excluded(excludes, c) {
			continue
		}
		n := c.Notation()
		if seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out, nil
}

// expand turns declared tokens into coordinates, reading manifests for the
// scope and dropping duplicates.
func (a *App) expand(decl domain.ScopeDeclaration) ([]domain.Coordinate, error) {
	var tokens []string
	for _, token := range decl.Dependencies {
		if !domain.IsManifest(token) {
			tokens = append(tokens, token)
			continue
		}
		declared, err := a.manifests.Dependencies(token, decl.Name)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, declared...)
	}

	var deps []domain.Coordinate
	seen := make(map[string]bool, len(tokens))
	for _, token := range tokens {
		c, err := domain.ParseCoordinate(token)
		if err != nil {
			return nil, zerr.With(err, "scope", decl.Name)
		}
		if seen[c.Notation()] {
			continue
		}
		seen[c.Notation()] = true
		deps = append(deps, c)
	}
	return deps, nil
}
