// Package coursier implements the Resolver port by running the coursier CLI.
package coursier

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/jarlock/internal/core/domain"
	"go.trai.ch/jarlock/internal/core/ports"
	"go.trai.ch/zerr"
)

// BinaryEnv overrides the coursier executable.
const BinaryEnv = "JARLOCK_COURSIER"

var defaultBinaries = []string{"cs", "coursier"}

// Resolver implements ports.Resolver using `cs resolve` with a local result cache.
type Resolver struct {
	logger   ports.Logger
	cacheDir string
	binary   string
}

// NewResolver creates a Resolver caching under the default resolve cache path.
func NewResolver(logger ports.Logger) *Resolver {
	return newResolverWithPath(logger, domain.DefaultResolveCachePath(), "")
}

// newResolverWithPath creates a Resolver with a custom cache path and binary (used for testing).
func newResolverWithPath(logger ports.Logger, cacheDir, binary string) *Resolver {
	return &Resolver{
		logger:   logger,
		cacheDir: filepath.Clean(cacheDir),
		binary:   binary,
	}
}

// Resolve returns the transitive closure of req.Dependencies in coursier's order.
func (r *Resolver) Resolve(ctx context.Context, req ports.ResolveRequest) ([]domain.Coordinate, error) {
	if len(req.Dependencies) == 0 {
		return nil, nil
	}

	cachePath := r.getCachePath(req)
	if !req.NoCache {
		if cached, err := loadFromCache(cachePath); err == nil {
			r.logger.Debug("resolution cache hit for " + req.Scope)
			return carryOver(cached, req.Dependencies), nil
		}
	}

	binary, err := r.lookupBinary()
	if err != nil {
		return nil, err
	}

	output, err := run(ctx, binary, buildArgs(req))
	if err != nil {
		return nil, zerr.With(err, "scope", req.Scope)
	}

	resolved, err := parseOutput(output)
	if err != nil {
		return nil, zerr.With(err, "scope", req.Scope)
	}
	resolved = carryOver(resolved, req.Dependencies)

	if !req.NoCache {
		if err := saveToCache(cachePath, req, resolved); err != nil {
			r.logger.Warn("could not cache resolution for " + req.Scope + ": " + err.Error())
		}
	}

	return resolved, nil
}

func (r *Resolver) lookupBinary() (string, error) {
	if r.binary != "" {
		return r.binary, nil
	}
	if env := os.Getenv(BinaryEnv); env != "" {
		return env, nil
	}
	for _, name := range defaultBinaries {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}
	candidates := strings.Join(defaultBinaries, ",")
	return "", zerr.With(zerr.Wrap(domain.ErrResolverNotInstalled, candidates), "candidates", candidates)
}

// buildArgs renders the `cs resolve` command line for req.
func buildArgs(req ports.ResolveRequest) []string {
	args := []string{"resolve", "--no-default"}
	for _, repo := range req.Repositories {
		args = append(args, "-r", repo)
	}
	for _, e := range req.Excludes {
		args = append(args, "--exclude", e.Group+":"+wildcard(e.Name))
	}
	if req.Offline {
		args = append(args, "--mode", "offline")
	}
	for _, dep := range req.Dependencies {
		args = append(args, dependencyArg(dep))
	}
	return args
}

func wildcard(name string) string {
	if name == "" {
		return domain.WildcardName
	}
	return name
}

// dependencyArg renders c in coursier's g:n:v[,type=t][,classifier=c] syntax.
func dependencyArg(c domain.Coordinate) string {
	arg := c.ShortNotation()
	if c.Type != "" && c.Type != domain.DefaultType {
		arg += ",type=" + c.Type
	}
	if c.Classifier != "" {
		arg += ",classifier=" + c.Classifier
	}
	return arg
}

func run(ctx context.Context, binary string, args []string) ([]byte, error) {
	var stdout, stderr bytes.Buffer
	//nolint:gosec // binary comes from the environment or PATH lookup
	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, zerr.Wrap(domain.ErrResolverFailed, ctxErr.Error())
		}

		var execErr *exec.Error
		if errors.As(err, &execErr) || errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrResolverNotInstalled, err.Error()), "binary", binary)
		}

		sentinel := classifyFailure(stderr.String())
		wrapped := zerr.With(zerr.Wrap(sentinel, err.Error()), "binary", binary)
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			wrapped = zerr.With(wrapped, "stderr", msg)
		}
		return nil, wrapped
	}
	return stdout.Bytes(), nil
}

var (
	notFoundMarkers = []string{"not found", "no such artifact", "could not find artifact"}
	networkMarkers  = []string{
		"unknownhostexception",
		"connection refused",
		"connectexception",
		"timed out",
		"no route to host",
		"network is unreachable",
	}
)

// classifyFailure maps coursier's stderr onto a domain error category.
func classifyFailure(stderr string) error {
	lower := strings.ToLower(stderr)
	for _, m := range networkMarkers {
		if strings.Contains(lower, m) {
			return domain.ErrNetwork
		}
	}
	for _, m := range notFoundMarkers {
		if strings.Contains(lower, m) {
			return domain.ErrUnresolvableDependency
		}
	}
	return domain.ErrResolverFailed
}
