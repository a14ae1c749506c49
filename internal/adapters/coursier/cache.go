package coursier

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/jarlock/internal/core/domain"
	"go.trai.ch/jarlock/internal/core/ports"
	"go.trai.ch/zerr"
)

// cacheEntry is the on-disk form of one cached resolution.
type cacheEntry struct {
	Dependencies []string  `json:"dependencies"`
	Resolved     []string  `json:"resolved"`
	Timestamp    time.Time `json:"timestamp"`
}

// cacheKey hashes everything that can change the resolution result.
// Scope names and the offline flag are not part of it.
func cacheKey(req ports.ResolveRequest) string {
	h := xxhash.New()
	write := func(section string, values []string) {
		_, _ = h.WriteString(section)
		for _, v := range values {
			_, _ = h.WriteString("\x00")
			_, _ = h.WriteString(v)
		}
		_, _ = h.WriteString("\x01")
	}

	deps := make([]string, len(req.Dependencies))
	for i, d := range req.Dependencies {
		deps[i] = d.Notation()
	}
	excludes := make([]string, len(req.Excludes))
	for i, e := range req.Excludes {
		excludes[i] = e.Group + ":" + wildcard(e.Name)
	}

	write("dependencies", deps)
	write("excludes", excludes)
	write("repositories", req.Repositories)
	return fmt.Sprintf("%016x", h.Sum64())
}

// getCachePath returns the file path for the cache entry of req.
func (r *Resolver) getCachePath(req ports.ResolveRequest) string {
	return filepath.Join(r.cacheDir, cacheKey(req)+".json")
}

func loadFromCache(path string) ([]domain.Coordinate, error) {
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrResolveCacheReadFailed
		}
		return nil, zerr.Wrap(domain.ErrResolveCacheReadFailed, err.Error())
	}

	var entry cacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, zerr.Wrap(domain.ErrResolveCacheReadFailed, err.Error())
	}

	out := make([]domain.Coordinate, 0, len(entry.Resolved))
	for _, s := range entry.Resolved {
		c, err := domain.ParseCoordinate(s)
		if err != nil {
			return nil, zerr.Wrap(domain.ErrResolveCacheReadFailed, err.Error())
		}
		out = append(out, c)
	}
	return out, nil
}

func saveToCache(path string, req ports.ResolveRequest, resolved []domain.Coordinate) error {
	entry := cacheEntry{Timestamp: time.Now().UTC()}
	for _, d := range req.Dependencies {
		entry.Dependencies = append(entry.Dependencies, d.Notation())
	}
	for _, c := range resolved {
		entry.Resolved = append(entry.Resolved, c.Notation())
	}

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return zerr.Wrap(domain.ErrResolveCacheWriteFailed, err.Error())
	}

	if err := atomicWriteFile(path, data); err != nil {
		return zerr.Wrap(domain.ErrResolveCacheWriteFailed, err.Error())
	}
	return nil
}

// atomicWriteFile writes data to a file atomically by writing to a temp file and renaming it.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(dir, "resolve-cache-*.json")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}

	if err := tmpFile.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}
