package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/jarlock/internal/core/domain"
)

func (c *CLI) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the locked dependencies of the requested scopes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := c.options()
			entries, err := c.app.List(cmd.Context(), domain.FromFile(opts.Lockfile), c.scopes(), opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, e := range entries {
				_, _ = fmt.Fprintln(out, e)
			}
			return nil
		},
	}
}

func (c *CLI) newClasspathCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classpath",
		Short: "Print the classpath of the requested scopes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			noDownload, _ := cmd.Flags().GetBool("no-download")

			opts := c.options()
			opts.DownloadArtifacts = !noDownload

			paths, err := c.app.Load(cmd.Context(), domain.FromFile(opts.Lockfile), c.scopes(), opts)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(paths, string(os.PathListSeparator)))
			return nil
		},
	}

	cmd.Flags().Bool("no-download", false, "Fail instead of downloading missing artifacts")

	return cmd
}

func (c *CLI) newInstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "install",
		Short: "Download the locked artifacts into the local repository",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := c.options()
			paths, err := c.app.Install(cmd.Context(), domain.FromFile(opts.Lockfile), c.scopes(), opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, p := range paths {
				_, _ = fmt.Fprintln(out, p)
			}
			return nil
		},
	}
}

func (c *CLI) newExecCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exec -- COMMAND [ARGS...]",
		Short: "Run a command with CLASSPATH set to the requested scopes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.options()
			return c.app.Exec(cmd.Context(), domain.FromFile(opts.Lockfile), c.scopes(), opts, args)
		},
	}

	cmd.Flags().SetInterspersed(false)

	return cmd
}
