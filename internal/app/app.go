// Package app implements the application layer for jarlock.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"sync"

	"go.trai.ch/jarlock/internal/core/domain"
	"go.trai.ch/jarlock/internal/core/ports"
	"go.trai.ch/jarlock/internal/engine/materializer"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	specLoader   ports.SpecificationLoader
	store        ports.LockStore
	resolver     ports.Resolver
	manifests    ports.ManifestParser
	artifacts    ports.ArtifactRepositoryFactory
	classpath    ports.ClasspathLoader
	executor     ports.Executor
	logger       ports.Logger
	tracer       ports.Tracer
	materializer *materializer.Materializer

	mu           sync.Mutex
	repositories []string
}

// New creates a new App instance. The session repository list starts with
// the default remote repositories.
func New(
	specLoader ports.SpecificationLoader,
	store ports.LockStore,
	resolver ports.Resolver,
	manifests ports.ManifestParser,
	artifacts ports.ArtifactRepositoryFactory,
	classpath ports.ClasspathLoader,
	executor ports.Executor,
	log ports.Logger,
	tracer ports.Tracer,
) *App {
	return &App{
		specLoader:   specLoader,
		store:        store,
		resolver:     resolver,
		manifests:    manifests,
		artifacts:    artifacts,
		classpath:    classpath,
		executor:     executor,
		logger:       log,
		tracer:       tracer,
		materializer: materializer.New(tracer),
		repositories: domain.DefaultRepositories(),
	}
}

// AddRemoteRepository appends url to the session repository list.
func (a *App) AddRemoteRepository(url string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !slices.Contains(a.repositories, url) {
		a.repositories = append(a.repositories, url)
	}
}

// RemoteRepositories returns a copy of the session repository list.
func (a *App) RemoteRepositories() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return slices.Clone(a.repositories)
}

// Read returns the lock document stored at path.
func (a *App) Read(path string) (*domain.LockDocument, error) {
	return a.store.Read(path)
}

// LockResult is the outcome of a successful Lock.
type LockResult struct {
	// Document is the merged document as written to the lock file.
	Document *domain.LockDocument
	// Scopes names the scopes resolved by this call, in declaration order.
	// Scopes kept untouched from the existing lock file are not listed.
	Scopes []string
}

// Lock resolves every scope of the source's specification and merges the
// result into the lock file at opts.Lockfile.
// Nothing is written when any step fails.
func (a *App) Lock(ctx context.Context, src domain.SpecificationSource, opts domain.Options) (*LockResult, error) {
	ctx, span := a.tracer.Start(ctx, "lock", ports.WithAttribute("jarlock.lockfile", opts.Lockfile))
	defer span.End()

	spec, err := a.specification(src)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	existing, err := a.store.Read(opts.Lockfile)
	switch {
	case errors.Is(err, domain.ErrLockfileNotFound):
		existing = nil
	case err != nil:
		span.RecordError(err)
		return nil, err
	}

	incoming, err := a.resolve(ctx, spec, opts)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	if opts.DownloadArtifacts {
		if _, err := a.materialize(ctx, incoming, nil, opts, true, false); err != nil {
			span.RecordError(err)
			return nil, err
		}
	}

	merged := domain.Merge(existing, incoming)
	if err := a.store.Write(opts.Lockfile, merged); err != nil {
		span.RecordError(err)
		return nil, err
	}

	a.logger.Info(fmt.Sprintf("locked %s to %s", plural(len(incoming.Scopes), "scope"), opts.Lockfile))
	return &LockResult{Document: merged, Scopes: incoming.ScopeNames()}, nil
}

// List returns the coordinate notations and override paths of the requested scopes.
func (a *App) List(ctx context.Context, src domain.SpecificationSource, scopes []string, opts domain.Options) ([]string, error) {
	doc, err := a.document(ctx, src, opts)
	if err != nil {
		return nil, err
	}
	return domain.List(doc, opts.ScopesOr(scopes))
}

// Load materializes the requested scopes, directories first, and registers
// the paths with the classpath loader.
func (a *App) Load(ctx context.Context, src domain.SpecificationSource, scopes []string, opts domain.Options) ([]string, error) {
	doc, err := a.document(ctx, src, opts)
	if err != nil {
		return nil, err
	}

	paths, err := a.materialize(ctx, doc, opts.ScopesOr(scopes), opts, opts.DownloadArtifacts, true)
	if err != nil {
		return nil, err
	}

	if err := a.classpath.LoadPaths(paths); err != nil {
		return nil, err
	}
	return paths, nil
}

// Install makes sure every artifact of the requested scopes is in the local
// repository and returns the local paths in query order. It never touches
// the classpath loader or the lock file.
func (a *App) Install(ctx context.Context, src domain.SpecificationSource, scopes []string, opts domain.Options) ([]string, error) {
	doc, err := a.document(ctx, src, opts)
	if err != nil {
		return nil, err
	}
	return a.materialize(ctx, doc, opts.ScopesOr(scopes), opts, true, false)
}

// Exec loads the requested scopes and runs argv with CLASSPATH set to the
// resulting classpath.
func (a *App) Exec(
	ctx context.Context,
	src domain.SpecificationSource,
	scopes []string,
	opts domain.Options,
	argv []string,
) error {
	if len(argv) == 0 {
		return domain.ErrNoCommandSpecified
	}
	if _, err := a.Load(ctx, src, scopes, opts); err != nil {
		return err
	}

	return a.executor.Execute(ctx, argv, a.classpath.Environ())
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	// Cache removes the resolution cache.
	Cache bool
	// Lockfile, when set, is removed as well.
	Lockfile string
}

// Clean removes the resolution cache and optionally the lock file.
func (a *App) Clean(_ context.Context, options CleanOptions) error {
	var errs error

	remove := func(path string, name string) {
		a.logger.Info(fmt.Sprintf("removing %s...", name))
		if err := os.RemoveAll(path); err != nil {
			errs = errors.Join(errs, zerr.Wrap(err, fmt.Sprintf("failed to remove %s", name)))
			return
		}
		a.logger.Info(fmt.Sprintf("removed %s", name))
	}

	if options.Cache {
		remove(domain.DefaultResolveCachePath(), "resolution cache")
	}
	if options.Lockfile != "" {
		remove(options.Lockfile, options.Lockfile)
	}

	return errs
}

// specification returns what the source declares.
func (a *App) specification(src domain.SpecificationSource) (*domain.Specification, error) {
	switch src.Kind {
	case domain.SourceFile:
		return a.specLoader.Load(src.Path)
	case domain.SourceInline:
		if src.Specification == nil {
			return &domain.Specification{}, nil
		}
		return src.Specification, nil
	case domain.SourcePreloaded:
		if src.Document == nil {
			return &domain.Specification{}, nil
		}
		return src.Document.Declared(), nil
	default:
		return nil, zerr.With(zerr.New("unknown specification source"), "kind", int(src.Kind))
	}
}

// document returns the lock document a read operation works on: the lock
// file for file sources, a fresh in-memory resolution for inline sources,
// and the given document for preloaded sources.
func (a *App) document(ctx context.Context, src domain.SpecificationSource, opts domain.Options) (*domain.LockDocument, error) {
	switch src.Kind {
	case domain.SourceFile:
		path := src.Path
		if path == "" {
			path = opts.Lockfile
		}
		return a.store.Read(path)
	case domain.SourceInline:
		spec, err := a.specification(src)
		if err != nil {
			return nil, err
		}
		return a.resolve(ctx, spec, opts)
	case domain.SourcePreloaded:
		if src.Document == nil {
			return domain.NewLockDocument(), nil
		}
		return src.Document, nil
	default:
		_, err := a.specification(src)
		return nil, err
	}
}

// materialize queries doc and maps the result to local paths.
func (a *App) materialize(
	ctx context.Context,
	doc *domain.LockDocument,
	scopes []string,
	opts domain.Options,
	download bool,
	load bool,
) ([]string, error) {
	entries, err := domain.Query(doc, scopes)
	if err != nil {
		return nil, err
	}

	repo, err := a.artifacts.Open(opts.LocalRepository)
	if err != nil {
		return nil, err
	}

	req := materializer.Request{
		Repository:   repo,
		Repositories: a.downloadRepositories(doc.Repositories, opts),
		Download:     download,
	}
	if load {
		return a.materializer.LoadPaths(ctx, entries, req)
	}
	return a.materializer.ToLocalPaths(ctx, entries, req)
}

// effectiveRepositories is the declared list followed by the session list.
// Offline mode drops the session list.
func (a *App) effectiveRepositories(declared []string, opts domain.Options) []string {
	out := slices.Clone(declared)
	if opts.Offline {
		return out
	}
	for _, r := range a.RemoteRepositories() {
		if !slices.Contains(out, r) {
			out = append(out, r)
		}
	}
	return out
}

// downloadRepositories is where missing artifacts may be fetched from. Offline
// mode never downloads.
func (a *App) downloadRepositories(declared []string, opts domain.Options) []string {
	if opts.Offline {
		return nil
	}
	return a.effectiveRepositories(declared, opts)
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
