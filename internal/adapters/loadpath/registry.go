// Package loadpath keeps the process-wide classpath that load operations extend.
package loadpath

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.trai.ch/jarlock/internal/core/domain"
	"go.trai.ch/zerr"
)

// Registry implements ports.ClasspathLoader. Entries are unique and keep
// registration order. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries []string
	seen    map[string]struct{}
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{seen: make(map[string]struct{})}
}

// LoadPaths appends paths, made absolute, skipping ones already registered.
func (r *Registry) LoadPaths(paths []string) error {
	abs := make([]string, 0, len(paths))
	for _, p := range paths {
		a, err := filepath.Abs(p)
		if err != nil {
			return zerr.With(zerr.Wrap(domain.ErrFailedToGetAbsPath, err.Error()), "path", p)
		}
		abs = append(abs, a)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range abs {
		if _, ok := r.seen[a]; ok {
			continue
		}
		r.seen[a] = struct{}{}
		r.entries = append(r.entries, a)
	}
	return nil
}

// Classpath returns a copy of the registered entries.
func (r *Registry) Classpath() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.entries))
	copy(out, r.entries)
	return out
}

// Environ returns the CLASSPATH assignment for the registered entries,
// joined with the platform list separator.
func (r *Registry) Environ() []string {
	return []string{"CLASSPATH=" + strings.Join(r.Classpath(), string(os.PathListSeparator))}
}
