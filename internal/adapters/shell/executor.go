// Package shell runs commands with the locked classpath in their environment.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/jarlock/internal/core/domain"
	"go.trai.ch/jarlock/internal/core/ports"
	"go.trai.ch/zerr"
)

// ClasspathVar is prepended to rather than replaced when both sides set it.
const ClasspathVar = "CLASSPATH"

const stderrTailLimit = 4096

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger

	mu     sync.Mutex
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewExecutor creates a new Executor attached to the process's standard streams.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// SetOutput redirects the command's stdout and stderr.
func (e *Executor) SetOutput(stdout, stderr io.Writer) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stdout = stdout
	e.stderr = stderr
}

// Execute runs argv with env merged over the current environment.
func (e *Executor) Execute(ctx context.Context, argv, env []string) error {
	if len(argv) == 0 {
		return domain.ErrNoCommandSpecified
	}

	e.mu.Lock()
	stdin, stdout, stderr := e.stdin, e.stdout, e.stderr
	e.mu.Unlock()

	name := argv[0]
	cmdEnv := resolveEnvironment(os.Environ(), env)

	executable := name
	if !filepath.IsAbs(name) && !strings.ContainsRune(name, filepath.Separator) {
		if lp, err := lookPath(name, cmdEnv); err == nil {
			executable = lp
		}
	}

	cmd := exec.CommandContext(ctx, executable, argv[1:]...) //nolint:gosec // user provided command
	if len(cmd.Args) > 0 {
		cmd.Args[0] = name
	}
	cmd.Env = cmdEnv
	cmd.Stdin = stdin
	cmd.Stdout = stdout

	tail := &tailBuffer{limit: stderrTailLimit}
	cmd.Stderr = io.MultiWriter(stderr, tail)

	e.logger.Debug("exec " + strings.Join(argv, " "))

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		wrapped := zerr.With(zerr.Wrap(domain.ErrCommandFailed, err.Error()), "exit_code", exitCode)
		wrapped = zerr.With(wrapped, "command", name)
		if msg := strings.TrimSpace(tail.String()); msg != "" {
			wrapped = zerr.With(wrapped, "stderr", msg)
		}
		return wrapped
	}
	return nil
}

// resolveEnvironment applies overrides on top of the system environment.
// CLASSPATH from overrides is prepended to an existing system CLASSPATH.
// The result is sorted by key.
func resolveEnvironment(sysEnv, overrides []string) []string {
	envMap := make(map[string]string, len(sysEnv))
	for _, entry := range sysEnv {
		if k, v, ok := strings.Cut(entry, "="); ok {
			envMap[k] = v
		}
	}

	for _, entry := range overrides {
		k, v, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if k == ClasspathVar {
			if existing := envMap[k]; existing != "" && v != "" {
				v = v + string(os.PathListSeparator) + existing
			}
		}
		envMap[k] = v
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	slices.Sort(result)
	return result
}

// lookPath searches for an executable in the directories named by the PATH environment variable.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
			break
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}

// tailBuffer keeps the last limit bytes written to it.
type tailBuffer struct {
	limit int
	buf   []byte
}

func (t *tailBuffer) Write(p []byte) (int, error) {
	t.buf = append(t.buf, p...)
	if over := len(t.buf) - t.limit; over > 0 {
		t.buf = t.buf[over:]
	}
	return len(p), nil
}

func (t *tailBuffer) String() string {
	return string(t.buf)
}
