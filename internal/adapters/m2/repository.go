package m2

import (
	"context"
	"os"
	"path/filepath"

	"go.trai.ch/jarlock/internal/core/domain"
	"go.trai.ch/jarlock/internal/core/ports"
	"go.trai.ch/zerr"
)

// Factory implements ports.ArtifactRepositoryFactory. Repositories opened
// from the same Factory share one HTTP client and one download group.
type Factory struct {
	logger     ports.Logger
	downloader *downloader
}

// NewFactory creates a Factory using the default HTTP client.
func NewFactory(logger ports.Logger) *Factory {
	return &Factory{
		logger:     logger,
		downloader: newDownloader(newHTTPClient()),
	}
}

// Open returns the repository rooted at root, creating the directory if needed.
func (f *Factory) Open(root string) (ports.ArtifactRepository, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrFailedToGetAbsPath, err.Error()), "path", root)
	}
	if err := os.MkdirAll(abs, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrLocalRepositoryCreateFailed, err.Error()), "path", abs)
	}
	return &Repository{root: abs, logger: f.logger, downloader: f.downloader}, nil
}

// Repository implements ports.ArtifactRepository over a directory in Maven layout.
type Repository struct {
	root       string
	logger     ports.Logger
	downloader *downloader
}

// Root returns the repository directory.
func (r *Repository) Root() string {
	return r.root
}

// LocalPath returns where c lives and whether the file is present.
func (r *Repository) LocalPath(c domain.Coordinate) (string, bool) {
	p := filepath.Join(r.root, filepath.FromSlash(RelativePath(c)))
	info, err := os.Stat(p)
	return p, err == nil && info.Mode().IsRegular()
}

// Download fetches c from the first repository that has it. An artifact
// already present is returned without network access.
func (r *Repository) Download(ctx context.Context, c domain.Coordinate, repositories []string) (string, error) {
	dest, ok := r.LocalPath(c)
	if ok {
		return dest, nil
	}
	if len(repositories) == 0 {
		return "", zerr.With(zerr.Wrap(domain.ErrArtifactNotCached, "no remote repositories"), "coordinate", c.Notation())
	}

	_, err, shared := r.downloader.group.Do(dest, func() (any, error) {
		return nil, r.downloader.fetch(ctx, RelativePath(c), dest, repositories)
	})
	if err != nil {
		return "", zerr.With(err, "coordinate", c.Notation())
	}
	if !shared {
		r.logger.Debug("downloaded " + c.Notation())
	}
	return dest, nil
}

