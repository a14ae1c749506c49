package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/jarlock/internal/core/domain"
	"go.trai.ch/jarlock/internal/ui/style"
)

func (c *CLI) newLockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lock [JARFILE]",
		Short: "Resolve the Jarfile and write the lock file",
		Long: "Resolve every scope declared in the Jarfile and merge the result into the lock file.\n" +
			"Without an argument the Jarfile is searched for upwards from the working directory.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			noDownload, _ := cmd.Flags().GetBool("no-download")
			noCache, _ := cmd.Flags().GetBool("no-cache")

			opts := c.options()
			opts.DownloadArtifacts = !noDownload
			opts.NoCache = noCache

			var path string
			if len(args) > 0 {
				path = args[0]
			}

			res, err := c.app.Lock(cmd.Context(), domain.FromFile(path), opts)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s Locked %s to %s\n",
				style.Success.Render(style.Check),
				strings.Join(res.Scopes, ", "),
				opts.Lockfile)
			return nil
		},
	}

	cmd.Flags().Bool("no-download", false, "Do not download resolved artifacts")
	cmd.Flags().Bool("no-cache", false, "Ignore the resolution cache")

	return cmd
}
