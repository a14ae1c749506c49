package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/jarlock/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Clean the resolution cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			all, _ := cmd.Flags().GetBool("all")

			opts := app.CleanOptions{Cache: true}
			if all {
				opts.Lockfile = c.options().Lockfile
			}

			return c.app.Clean(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolP("all", "a", false, "Also remove the lock file")

	return cmd
}
