// Package materializer turns query results into local filesystem paths.
package materializer

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"go.trai.ch/jarlock/internal/core/domain"
	"go.trai.ch/jarlock/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Request describes where artifacts come from.
type Request struct {
	// Repository is the local artifact cache.
	Repository ports.ArtifactRepository
	// Repositories are the remote repositories tried on a cache miss.
	Repositories []string
	// Download allows fetching artifacts missing from the cache.
	Download bool
}

// Materializer resolves query results to local paths.
type Materializer struct {
	tracer ports.Tracer
	limit  int
}

// New creates a Materializer that downloads at most runtime.NumCPU() artifacts at once.
func New(tracer ports.Tracer) *Materializer {
	return &Materializer{tracer: tracer, limit: runtime.NumCPU()}
}

// Classify tags override entries that name an existing directory as
// EntryDirectory. Each path is stat'ed once.
func Classify(entries []domain.PathEntry) ([]domain.PathEntry, error) {
	out := make([]domain.PathEntry, len(entries))
	for i, e := range entries {
		out[i] = e
		if e.Kind == domain.EntryArtifact {
			continue
		}
		info, err := os.Stat(e.Path)
		switch {
		case err == nil && info.IsDir():
			out[i].Kind = domain.EntryDirectory
		case err == nil, errors.Is(err, fs.ErrNotExist):
			out[i].Kind = domain.EntryLiteralPath
		default:
			return nil, zerr.With(zerr.Wrap(domain.ErrPathStatFailed, err.Error()), "path", e.Path)
		}
	}
	return out, nil
}

// ToLocalPaths maps entries to absolute local paths in input order.
// Override paths pass through. Artifacts come from the local repository;
// a miss is downloaded when req.Download is set and is an
// ErrArtifactNotCached error otherwise.
func (m *Materializer) ToLocalPaths(ctx context.Context, entries []domain.PathEntry, req Request) ([]string, error) {
	paths := make([]string, len(entries))
	var missing []int

	for i, e := range entries {
		if e.Kind != domain.EntryArtifact {
			abs, err := filepath.Abs(e.Path)
			if err != nil {
				return nil, zerr.With(zerr.Wrap(domain.ErrFailedToGetAbsPath, err.Error()), "path", e.Path)
			}
			paths[i] = abs
			continue
		}

		if local, ok := req.Repository.LocalPath(e.Coordinate); ok {
			paths[i] = local
			continue
		}
		if !req.Download {
			notation := e.Coordinate.Notation()
			err := zerr.With(zerr.Wrap(domain.ErrArtifactNotCached, notation), "coordinate", notation)
			return nil, zerr.With(err, "local_repository", req.Repository.Root())
		}
		missing = append(missing, i)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(m.limit)
	for _, i := range missing {
		g.Go(func() error {
			p, err := m.download(ctx, entries[i].Coordinate, req)
			if err != nil {
				return err
			}
			paths[i] = p
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}

func (m *Materializer) download(ctx context.Context, c domain.Coordinate, req Request) (string, error) {
	ctx, span := m.tracer.Start(ctx, "download "+c.Notation(), ports.WithAttribute("jarlock.coordinate", c.Notation()))
	defer span.End()

	p, err := req.Repository.Download(ctx, c, req.Repositories)
	if err != nil {
		span.RecordError(err)
		return "", err
	}
	return p, nil
}

// LoadPaths classifies entries, maps them to local paths and orders the
// result with directories first, each group keeping query order.
func (m *Materializer) LoadPaths(ctx context.Context, entries []domain.PathEntry, req Request) ([]string, error) {
	classified, err := Classify(entries)
	if err != nil {
		return nil, err
	}

	paths, err := m.ToLocalPaths(ctx, classified, req)
	if err != nil {
		return nil, err
	}

	dirs := make([]string, 0, len(paths))
	rest := make([]string, 0, len(paths))
	for i, e := range classified {
		if e.Kind == domain.EntryDirectory {
			dirs = append(dirs, paths[i])
		} else {
			rest = append(rest, paths[i])
		}
	}
	return append(dirs, rest...), nil
}
