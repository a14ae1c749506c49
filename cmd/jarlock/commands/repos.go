package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newReposCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repos",
		Short: "Print the session remote repositories",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			for _, r := range c.app.RemoteRepositories() {
				_, _ = fmt.Fprintln(out, r)
			}
		},
	}
}
