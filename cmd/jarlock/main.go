// Package main is the entry point for jarlock.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/jarlock/cmd/jarlock/commands"
	"go.trai.ch/jarlock/internal/app"
	"go.trai.ch/jarlock/internal/core/domain"
	_ "go.trai.ch/jarlock/internal/wiring"
	"go.trai.ch/zerr"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

// outputSetter is implemented by executors whose streams can be redirected.
type outputSetter interface {
	SetOutput(stdout, stderr io.Writer)
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, func() {}, err
	}))
}

func run(
	ctx context.Context,
	args []string,
	stderr io.Writer,
	provider ComponentProvider,
	opts ...func(*app.App),
) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, cleanup, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	defer cleanup()

	for _, opt := range opts {
		opt(components.App)
	}

	if s, ok := components.Executor.(outputSetter); ok {
		s.SetOutput(os.Stdout, stderr)
	}

	// 2. Interface - CLI
	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, domain.ErrCommandFailed) {
			return commandExitCode(err)
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}

// commandExitCode returns the exit status recorded on a failed exec, or 1.
func commandExitCode(err error) int {
	var zErr *zerr.Error
	if errors.As(err, &zErr) {
		if code, ok := zErr.Metadata()["exit_code"].(int); ok && code > 0 {
			return code
		}
	}
	return 1
}
