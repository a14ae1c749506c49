// Package commands implements the CLI commands for jarlock.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/jarlock/internal/app"
	"go.trai.ch/jarlock/internal/build"
	"go.trai.ch/jarlock/internal/core/domain"
)

// CLI represents the command line interface for jarlock.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
	flags   globalFlags
}

type globalFlags struct {
	lockfile        string
	localRepository string
	offline         bool
	repositories    []string
	scopes          []string
	allScopes       bool
}

// Application represents the application logic interface.
type Application interface {
	Lock(ctx context.Context, src domain.SpecificationSource, opts domain.Options) (*app.LockResult, error)
	Read(path string) (*domain.LockDocument, error)
	List(ctx context.Context, src domain.SpecificationSource, scopes []string, opts domain.Options) ([]string, error)
	Load(ctx context.Context, src domain.SpecificationSource, scopes []string, opts domain.Options) ([]string, error)
	Install(ctx context.Context, src domain.SpecificationSource, scopes []string, opts domain.Options) ([]string, error)
	Exec(ctx context.Context, src domain.SpecificationSource, scopes []string, opts domain.Options, argv []string) error
	AddRemoteRepository(url string)
	RemoteRepositories() []string
	Clean(ctx context.Context, opts app.CleanOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "jarlock",
		Short:         "Lock, fetch and load Java dependencies",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	defaults := domain.DefaultOptions()
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&c.flags.lockfile, "lockfile", "l", defaults.Lockfile, "Path of the lock file")
	pf.StringVar(&c.flags.localRepository, "local-repo", defaults.LocalRepository, "Local Maven repository")
	pf.BoolVar(&c.flags.offline, "offline", false, "Resolve and load from local caches only")
	pf.StringSliceVar(&c.flags.repositories, "repo", nil, "Additional remote repository (repeatable)")
	pf.StringSliceVarP(&c.flags.scopes, "scope", "s", nil, "Scope to read (repeatable, defaults to compile)")
	pf.BoolVar(&c.flags.allScopes, "all-scopes", false, "Read every locked scope")

	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		for _, r := range c.flags.repositories {
			c.app.AddRemoteRepository(r)
		}
	}

	rootCmd.AddCommand(c.newLockCmd())
	rootCmd.AddCommand(c.newListCmd())
	rootCmd.AddCommand(c.newClasspathCmd())
	rootCmd.AddCommand(c.newInstallCmd())
	rootCmd.AddCommand(c.newExecCmd())
	rootCmd.AddCommand(c.newShowCmd())
	rootCmd.AddCommand(c.newReposCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// options maps the global flags onto the default options.
func (c *CLI) options() domain.Options {
	opts := domain.DefaultOptions()
	opts.Lockfile = c.flags.lockfile
	opts.LocalRepository = c.flags.localRepository
	opts.Offline = c.flags.offline
	if c.flags.allScopes {
		opts.Scopes = nil
	}
	return opts
}

// scopes returns the explicitly requested scopes. --all-scopes overrides --scope.
func (c *CLI) scopes() []string {
	if c.flags.allScopes {
		return nil
	}
	return c.flags.scopes
}
